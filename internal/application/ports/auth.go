package ports

import (
	"context"

	"filevault-api/internal/domain/principal"
)

type Auth interface {
	Signup(ctx context.Context, email, password, displayName string) (*principal.Principal, error)
	Login(ctx context.Context, email, password string) (string, *principal.Principal, error)
}
