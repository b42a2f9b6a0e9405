package principal

const (
	SelectPrincipalByUUID = `
		SELECT id, uuid, email, password_hash, display_name, upload_count, created_at, updated_at
		FROM principals
		WHERE uuid = $1
	`
	SelectPrincipalByEmail = `
		SELECT id, uuid, email, password_hash, display_name, upload_count, created_at, updated_at
		FROM principals
		WHERE email = $1
	`
	InsertPrincipal = `
		INSERT INTO principals (email, password_hash, display_name)
		VALUES ($1, $2, $3)
		RETURNING
		  id, uuid, email, password_hash, display_name, upload_count, created_at, updated_at
	`
	SelectIDByUUID = `SELECT id FROM principals WHERE uuid = $1::uuid`

	// Single atomic UPDATE, clamped at zero: the aggregate is advisory and
	// concurrent pipelines may interleave, but it must never go negative.
	AdjustUploadCountByID = `
		UPDATE principals
		SET upload_count = GREATEST(upload_count + $2, 0),
		    updated_at = now()
		WHERE id = $1
	`
)
