package file

import (
	"filevault-api/internal/domain/filerecord"
)

func ToResponseFile(frDomain filerecord.FileRecord) File {
	var f = File{
		ID:   frDomain.UUID,
		Name: frDomain.FileName,
		Size: frDomain.SizeBytes,
		URL:  frDomain.DownloadURL,
		Type: frDomain.MimeType,
	}

	return f
}

func ToResponseFiles(frDomain filerecord.FileRecords) Files {
	fs := make(Files, len(frDomain))
	for idx, f := range frDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}
