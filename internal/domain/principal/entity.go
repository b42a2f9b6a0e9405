package principal

import (
	"time"

	"github.com/google/uuid"
)

type (
	// ID is the internal surrogate key; never leaves the service.
	ID   uint64
	UUID = uuid.UUID

	Principal struct {
		UUID         UUID
		Email        string
		PasswordHash *string
		DisplayName  string

		// UploadCount is an advisory aggregate maintained by the upload and
		// delete pipelines. The file records are the source of truth.
		UploadCount uint64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Principals []*Principal
)
