package principal

import (
	"github.com/google/uuid"
)

type Principal struct {
	UID         uuid.UUID `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	UploadCount uint64    `json:"uploadCount"`
}
