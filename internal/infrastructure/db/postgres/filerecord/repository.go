package filerecord

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"filevault-api/internal/domain/filerecord"
	"filevault-api/internal/domain/principal"
	"filevault-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) filerecord.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByOwner(ctx context.Context, ownerID principal.ID) (filerecord.FileRecords, error) {
	rows, err := r.db.Query(ctx, SelectFilesByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var frs FileRecords
	for rows.Next() {
		fr := new(FileRecord)

		if err = rows.Scan(
			&fr.ID,
			&fr.UUID,
			&fr.OwnerID,

			&fr.Bucket,
			&fr.StorageKey,
			&fr.FileName,
			&fr.MimeType,
			&fr.SizeBytes,
			&fr.DownloadURL,

			&fr.CreatedAt,
		); err != nil {
			return nil, err
		}

		frs = append(frs, fr)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&frs), nil
}

func (r *Repository) FetchByUUID(ctx context.Context, fileUUID uuid.UUID) (*filerecord.FileRecord, error) {
	fr := new(FileRecord)
	err := r.db.QueryRow(ctx, SelectFileByUUID, fileUUID.String()).Scan(
		&fr.ID,
		&fr.UUID,
		&fr.OwnerID,

		&fr.Bucket,
		&fr.StorageKey,
		&fr.FileName,
		&fr.MimeType,
		&fr.SizeBytes,
		&fr.DownloadURL,

		&fr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(fr), err
}

func (r *Repository) CreateFileRecord(ctx context.Context, ownerID principal.ID, req *filerecord.FileRecord) (*filerecord.FileRecord, error) {
	fr := new(FileRecord)

	err := r.db.QueryRow(
		ctx,
		InsertFileRecord,
		ownerID, req.Bucket, req.StorageKey, req.FileName, req.MimeType, req.SizeBytes, req.DownloadURL,
	).Scan(
		&fr.ID,
		&fr.UUID,
		&fr.OwnerID,

		&fr.Bucket,
		&fr.StorageKey,
		&fr.FileName,
		&fr.MimeType,
		&fr.SizeBytes,
		&fr.DownloadURL,

		&fr.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(fr), err
}

func (r *Repository) DeleteFileRecord(ctx context.Context, fileUUID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, DeleteFileByUUID, fileUUID.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("file record %s not found", fileUUID.String())
	}

	return nil
}
