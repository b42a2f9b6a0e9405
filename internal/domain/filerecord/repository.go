package filerecord

import (
	"context"

	"github.com/google/uuid"

	"filevault-api/internal/domain/principal"
)

type Repository interface {
	// FetchByOwner returns records newest-first.
	FetchByOwner(ctx context.Context, ownerID principal.ID) (FileRecords, error)
	FetchByUUID(ctx context.Context, fileUUID uuid.UUID) (*FileRecord, error)
	CreateFileRecord(ctx context.Context, ownerID principal.ID, req *FileRecord) (*FileRecord, error)
	DeleteFileRecord(ctx context.Context, fileUUID uuid.UUID) error
}
