package filerecord

import (
	"time"

	"github.com/google/uuid"

	"filevault-api/internal/domain/principal"
)

type (
	FileRecord struct {
		UUID    uuid.UUID
		OwnerID *principal.ID

		Bucket      string
		StorageKey  string
		FileName    string
		MimeType    string
		SizeBytes   uint64
		DownloadURL string

		CreatedAt time.Time
	}
	FileRecords []*FileRecord
)
