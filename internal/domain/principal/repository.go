package principal

import (
	"context"
)

type Repository interface {
	FetchByUUID(ctx context.Context, uuid UUID) (*Principal, error)
	FetchByEmail(ctx context.Context, email string) (*Principal, error)
	CreatePrincipal(ctx context.Context, req Principal) (*Principal, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)
	// AdjustUploadCount applies delta atomically on the DB side
	// (single UPDATE, clamped at zero), never read-modify-write.
	AdjustUploadCount(ctx context.Context, id ID, delta int64) error
}
