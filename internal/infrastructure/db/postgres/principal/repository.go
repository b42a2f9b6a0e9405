package principal

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"filevault-api/internal/domain/principal"
	"filevault-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already registered")

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) principal.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByUUID(ctx context.Context, uuid principal.UUID) (*principal.Principal, error) {
	p := new(Principal)
	err := r.db.QueryRow(ctx, SelectPrincipalByUUID, uuid.String()).Scan(
		&p.ID,
		&p.UUID,
		&p.Email,
		&p.PasswordHash,
		&p.DisplayName,
		&p.UploadCount,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), err
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*principal.Principal, error) {
	p := new(Principal)
	err := r.db.QueryRow(ctx, SelectPrincipalByEmail, email).Scan(
		&p.ID,
		&p.UUID,
		&p.Email,
		&p.PasswordHash,
		&p.DisplayName,
		&p.UploadCount,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), err
}

func (r *Repository) CreatePrincipal(ctx context.Context, req principal.Principal) (*principal.Principal, error) {
	p := new(Principal)

	err := r.db.QueryRow(
		ctx,
		InsertPrincipal,
		req.Email, req.PasswordHash, req.DisplayName,
	).Scan(
		&p.ID,
		&p.UUID,
		&p.Email,
		&p.PasswordHash,
		&p.DisplayName,
		&p.UploadCount,

		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(p), err
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid principal.UUID) (principal.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIDByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("principal not found by uuid %s: %w", uuid.String(), err)
		}
		return 0, err
	}

	return principal.ID(id), nil
}

func (r *Repository) AdjustUploadCount(ctx context.Context, id principal.ID, delta int64) error {
	tag, err := r.db.Exec(ctx, AdjustUploadCountByID, id, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("principal %d not found for counter update", id)
	}

	return nil
}
