package filerecord

import (
	domain "filevault-api/internal/domain/filerecord"
)

func fromDBModel(model *FileRecord) *domain.FileRecord {
	var fr = &domain.FileRecord{
		UUID:    model.UUID,
		OwnerID: model.OwnerID,

		Bucket:      model.Bucket,
		StorageKey:  model.StorageKey,
		FileName:    model.FileName,
		MimeType:    model.MimeType,
		SizeBytes:   model.SizeBytes,
		DownloadURL: model.DownloadURL,

		CreatedAt: model.CreatedAt,
	}

	return fr
}

func fromDBModels(models *FileRecords) domain.FileRecords {
	frs := make(domain.FileRecords, len(*models))
	for idx, f := range *models {
		frs[idx] = fromDBModel(f)
	}

	return frs
}
