package principal

import (
	domain "filevault-api/internal/domain/principal"
)

func ToResponsePrincipal(pDomain domain.Principal) Principal {
	var p = Principal{
		UID:         pDomain.UUID,
		Email:       pDomain.Email,
		DisplayName: pDomain.DisplayName,
		UploadCount: pDomain.UploadCount,
	}

	return p
}
