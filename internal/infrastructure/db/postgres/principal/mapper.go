package principal

import (
	domain "filevault-api/internal/domain/principal"
)

func fromDBModel(model *Principal) *domain.Principal {
	var p = &domain.Principal{
		UUID:         model.UUID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		DisplayName:  model.DisplayName,
		UploadCount:  model.UploadCount,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return p
}
