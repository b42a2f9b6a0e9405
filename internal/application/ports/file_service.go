package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"filevault-api/internal/application/pipeline"
	"filevault-api/internal/domain/filerecord"
	"filevault-api/internal/domain/principal"
)

type FileService interface {
	Upload(ctx context.Context, principalUUID principal.UUID, in *multipart.FileHeader) (*pipeline.UploadResult, error)
	FindFiles(ctx context.Context, principalUUID principal.UUID) (filerecord.FileRecords, error)
	DeleteFile(ctx context.Context, principalUUID principal.UUID, fileUUID uuid.UUID) error
}
