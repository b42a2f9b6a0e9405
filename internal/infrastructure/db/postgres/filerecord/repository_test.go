package filerecord

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "filevault-api/internal/domain/filerecord"
	"filevault-api/internal/domain/principal"
)

var fileColumns = []string{
	"id", "uuid", "owner_id", "bucket", "storage_key", "file_name", "mime_type", "size_bytes", "download_url", "created_at",
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func addFileRow(rows *pgxmock.Rows, fr *FileRecord) *pgxmock.Rows {
	return rows.AddRow(
		fr.ID, fr.UUID, fr.OwnerID,
		fr.Bucket, fr.StorageKey, fr.FileName, fr.MimeType, fr.SizeBytes, fr.DownloadURL,
		fr.CreatedAt,
	)
}

func storedFile(id uint64, owner principal.ID, name string, createdAt time.Time) *FileRecord {
	return &FileRecord{
		ID:          id,
		UUID:        uuid.New(),
		OwnerID:     &owner,
		Bucket:      "filevault",
		StorageKey:  "uploads/p/ts/" + name,
		FileName:    name,
		MimeType:    "text/plain",
		SizeBytes:   12,
		DownloadURL: "https://cdn.test/uploads/p/ts/" + name,
		CreatedAt:   createdAt,
	}
}

func TestRepository_FetchByOwner_NewestFirst(t *testing.T) {
	mock, repo := newMockRepo(t)

	owner := principal.ID(7)
	now := time.Now()
	newer := storedFile(2, owner, "b.txt", now)
	older := storedFile(1, owner, "a.txt", now.Add(-time.Hour))

	rows := pgxmock.NewRows(fileColumns)
	addFileRow(rows, newer)
	addFileRow(rows, older)

	mock.ExpectQuery(regexp.QuoteMeta(SelectFilesByOwner)).
		WithArgs(owner).
		WillReturnRows(rows)

	frs, err := repo.FetchByOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, frs, 2)
	assert.Equal(t, "b.txt", frs[0].FileName)
	assert.Equal(t, "a.txt", frs[1].FileName)
	require.NotNil(t, frs[0].OwnerID)
	assert.Equal(t, owner, *frs[0].OwnerID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchByUUID_NoRows(t *testing.T) {
	mock, repo := newMockRepo(t)

	fileUUID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(SelectFileByUUID)).
		WithArgs(fileUUID.String()).
		WillReturnRows(pgxmock.NewRows(fileColumns))

	fr, err := repo.FetchByUUID(context.Background(), fileUUID)
	require.NoError(t, err)
	assert.Nil(t, fr, "an unknown file resolves to nil, not an error")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateFileRecord(t *testing.T) {
	mock, repo := newMockRepo(t)

	owner := principal.ID(7)
	stored := storedFile(3, owner, "photo.jpg", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta(InsertFileRecord)).
		WithArgs(owner, stored.Bucket, stored.StorageKey, stored.FileName, stored.MimeType, stored.SizeBytes, stored.DownloadURL).
		WillReturnRows(addFileRow(pgxmock.NewRows(fileColumns), stored))

	fr, err := repo.CreateFileRecord(context.Background(), owner, &domain.FileRecord{
		Bucket:      stored.Bucket,
		StorageKey:  stored.StorageKey,
		FileName:    stored.FileName,
		MimeType:    stored.MimeType,
		SizeBytes:   stored.SizeBytes,
		DownloadURL: stored.DownloadURL,
	})
	require.NoError(t, err)
	require.NotNil(t, fr)
	assert.Equal(t, stored.UUID, fr.UUID)
	assert.Equal(t, stored.StorageKey, fr.StorageKey)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteFileRecord_Table(t *testing.T) {
	tests := []struct {
		name    string
		rows    int64
		execErr error
		wantErr bool
	}{
		{"deleted", 1, nil, false},
		{"missing record", 0, nil, true},
		{"exec failure", 0, errors.New("db down"), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMockRepo(t)

			fileUUID := uuid.New()
			exp := mock.ExpectExec(regexp.QuoteMeta(DeleteFileByUUID)).
				WithArgs(fileUUID.String())
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("DELETE", tt.rows))
			}

			err := repo.DeleteFileRecord(context.Background(), fileUUID)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
