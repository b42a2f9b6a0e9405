package principal

import (
	"time"

	"github.com/google/uuid"
)

type (
	Principal struct {
		ID           uint64
		UUID         uuid.UUID
		Email        string
		PasswordHash *string
		DisplayName  string
		UploadCount  uint64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Principals []*Principal
)
