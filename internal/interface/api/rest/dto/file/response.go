package file

import (
	"github.com/google/uuid"
)

type (
	File struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
		Size uint64    `json:"size"`
		URL  string    `json:"url"`
		Type string    `json:"type"`
	}
	Files        []File
	ListResponse struct {
		Count int   `json:"count"`
		Files Files `json:"files"`
	}
)
