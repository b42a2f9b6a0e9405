package principal

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "filevault-api/internal/domain/principal"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func principalRows(p *Principal) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "uuid", "email", "password_hash", "display_name", "upload_count", "created_at", "updated_at",
	}).AddRow(p.ID, p.UUID, p.Email, p.PasswordHash, p.DisplayName, p.UploadCount, p.CreatedAt, p.UpdatedAt)
}

func TestRepository_FetchByEmail(t *testing.T) {
	mock, repo := newMockRepo(t)

	hash := "bcrypt-hash"
	stored := &Principal{
		ID:           1,
		UUID:         uuid.New(),
		Email:        "jane@example.com",
		PasswordHash: &hash,
		DisplayName:  "Jane",
		UploadCount:  3,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(SelectPrincipalByEmail)).
		WithArgs("jane@example.com").
		WillReturnRows(principalRows(stored))

	p, err := repo.FetchByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, stored.UUID, p.UUID)
	assert.Equal(t, uint64(3), p.UploadCount)
	require.NotNil(t, p.PasswordHash)
	assert.Equal(t, hash, *p.PasswordHash)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchByEmail_NoRows(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(SelectPrincipalByEmail)).
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "uuid", "email", "password_hash", "display_name", "upload_count", "created_at", "updated_at",
		}))

	p, err := repo.FetchByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, p, "an unknown email resolves to nil, not an error")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreatePrincipal_UniqueViolation(t *testing.T) {
	mock, repo := newMockRepo(t)

	hash := "bcrypt-hash"
	mock.ExpectQuery(regexp.QuoteMeta(InsertPrincipal)).
		WithArgs("jane@example.com", &hash, "Jane").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	p, err := repo.CreatePrincipal(context.Background(), domain.Principal{
		Email:        "jane@example.com",
		PasswordHash: &hash,
		DisplayName:  "Jane",
	})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Nil(t, p)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AdjustUploadCount(t *testing.T) {
	tests := []struct {
		name    string
		delta   int64
		tag     pgconn.CommandTag
		execErr error
		wantErr bool
	}{
		{"increment", 1, pgxmock.NewResult("UPDATE", 1), nil, false},
		{"decrement", -1, pgxmock.NewResult("UPDATE", 1), nil, false},
		{"unknown principal", 1, pgxmock.NewResult("UPDATE", 0), nil, true},
		{"exec failure", 1, pgconn.CommandTag{}, errors.New("db down"), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMockRepo(t)

			exp := mock.ExpectExec(regexp.QuoteMeta(AdjustUploadCountByID)).
				WithArgs(domain.ID(7), tt.delta)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.tag)
			}

			err := repo.AdjustUploadCount(context.Background(), 7, tt.delta)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FetchInternalID(t *testing.T) {
	mock, repo := newMockRepo(t)

	principalUUID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(SelectIDByUUID)).
		WithArgs(principalUUID.String()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uint64(42)))

	id, err := repo.FetchInternalID(context.Background(), principalUUID)
	require.NoError(t, err)
	assert.Equal(t, domain.ID(42), id)

	require.NoError(t, mock.ExpectationsWereMet())
}
