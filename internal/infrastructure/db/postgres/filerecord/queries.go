package filerecord

const (
	SelectFilesByOwner = `
		SELECT id, uuid, owner_id, bucket, storage_key, file_name, mime_type, size_bytes, download_url, created_at
		FROM file_records
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`
	SelectFileByUUID = `
		SELECT id, uuid, owner_id, bucket, storage_key, file_name, mime_type, size_bytes, download_url, created_at
		FROM file_records
		WHERE uuid = $1
	`
	InsertFileRecord = `
		INSERT INTO file_records (owner_id, bucket, storage_key, file_name, mime_type, size_bytes, download_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, uuid, owner_id, bucket, storage_key, file_name, mime_type, size_bytes, download_url, created_at
	`
	DeleteFileByUUID = `DELETE FROM file_records WHERE uuid = $1`
)
