package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"filevault-api/internal/application/pipeline"
	"filevault-api/internal/application/ports"
	domain "filevault-api/internal/domain/filerecord"
	"filevault-api/internal/domain/principal"
	"filevault-api/internal/infrastructure/mq"
	"filevault-api/internal/interface/api/rest/dto/file"
)

var (
	ErrFileNotFound = fmt.Errorf("file not found")
	ErrNotFileOwner = fmt.Errorf("file is owned by another principal")
)

// FileService runs the staged write pipelines. The underlying stores expose
// no cross-store transaction, so the stage order is the whole guarantee:
// object before record on upload, object before record on delete, and the
// aggregate counter always last because it is advisory.
type FileService struct {
	objectStore         ports.ObjectStore
	fileRepository      domain.Repository
	principalRepository principal.Repository
	mq                  ports.RabbitMQ
	mCounter            *prometheus.CounterVec
	logger              *zap.Logger
}

func NewFileService(
	objectStore ports.ObjectStore,
	fileRepository domain.Repository,
	principalRepository principal.Repository,
	rbMQ ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.FileService {
	return &FileService{
		objectStore:         objectStore,
		fileRepository:      fileRepository,
		principalRepository: principalRepository,
		mq:                  rbMQ,
		mCounter:            mCounter,
		logger:              logger,
	}
}

func (fs *FileService) FindFiles(ctx context.Context, principalUUID principal.UUID) (domain.FileRecords, error) {
	id, err := fs.principalRepository.FetchInternalID(ctx, principalUUID)
	if err != nil {
		return nil, err
	}

	frs, err := fs.fileRepository.FetchByOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	return frs, nil
}

// Upload runs write-object, create-record, increment-counter in order.
// A create-record failure triggers a compensating object delete; if that
// also fails the returned StageError carries the orphaned path. An
// increment-counter failure never fails the upload: the file record is the
// source of truth and the counter is a cached aggregate.
func (fs *FileService) Upload(
	ctx context.Context,
	principalUUID principal.UUID,
	in *multipart.FileHeader,
) (*pipeline.UploadResult, error) {
	id, err := fs.principalRepository.FetchInternalID(ctx, principalUUID)
	if err != nil {
		return nil, err
	}

	fr := fs.fillMetaData(in, principalUUID)

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// stage write-object
	if err = fs.objectStore.PutObject(ctx, fr.StorageKey, fr.MimeType, f, int64(fr.SizeBytes)); err != nil {
		return nil, &pipeline.StageError{Stage: pipeline.StageWriteObject, Err: err}
	}

	// stage create-record
	out, err := fs.fileRepository.CreateFileRecord(ctx, id, fr)
	if err != nil {
		stageErr := &pipeline.StageError{Stage: pipeline.StageCreateRecord, Err: err}
		if compErr := fs.objectStore.DeleteObject(ctx, fr.StorageKey); compErr != nil {
			stageErr.CompensationErr = compErr
			stageErr.OrphanedObjectPath = fr.StorageKey
			fs.mCounter.WithLabelValues("orphaned_objects_total").Inc()
			fs.logger.Error("orphaned object needs reconciliation",
				zap.String("storage_key", fr.StorageKey),
				zap.Error(compErr),
			)
		}
		return nil, stageErr
	}

	res := &pipeline.UploadResult{Record: out}

	// stage increment-counter
	if err = fs.principalRepository.AdjustUploadCount(ctx, id, 1); err != nil {
		res.CounterErr = &pipeline.StageError{Stage: pipeline.StageIncrementCounter, Err: err}
		fs.mCounter.WithLabelValues("counter_update_failures_total").Inc()
		fs.logger.Warn("upload count is stale",
			zap.Stringer("principal_uuid", principalUUID),
			zap.Error(err),
		)
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:          uuid.New(),
		TS:          time.Now(),
		Method:      http.MethodPost,
		PrincipalID: principalUUID.String(),
		Payload:     file.ToResponseFile(*out),
	}

	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return res, nil
}

// DeleteFile runs delete-object, delete-record, decrement-counter in order.
// The object delete happens first: metadata is never removed while the
// object might still exist. A record-delete failure after the object is
// gone carries the dangling record id; no compensation is possible then.
func (fs *FileService) DeleteFile(
	ctx context.Context,
	principalUUID principal.UUID,
	fileUUID uuid.UUID,
) error {
	id, err := fs.principalRepository.FetchInternalID(ctx, principalUUID)
	if err != nil {
		return err
	}

	fr, err := fs.fileRepository.FetchByUUID(ctx, fileUUID)
	if err != nil {
		return err
	}
	if fr == nil {
		return ErrFileNotFound
	}
	if fr.OwnerID == nil || *fr.OwnerID != id {
		return ErrNotFileOwner
	}

	// stage delete-object
	if err = fs.objectStore.DeleteObject(ctx, fr.StorageKey); err != nil {
		return &pipeline.StageError{Stage: pipeline.StageDeleteObject, Err: err}
	}

	// stage delete-record
	if err = fs.fileRepository.DeleteFileRecord(ctx, fr.UUID); err != nil {
		fs.mCounter.WithLabelValues("dangling_records_total").Inc()
		fs.logger.Error("dangling file record needs reconciliation",
			zap.Stringer("file_uuid", fr.UUID),
			zap.Error(err),
		)
		return &pipeline.StageError{
			Stage:            pipeline.StageDeleteRecord,
			Err:              err,
			DanglingRecordID: fr.UUID.String(),
		}
	}

	// stage decrement-counter, best-effort
	if err = fs.principalRepository.AdjustUploadCount(ctx, id, -1); err != nil {
		fs.mCounter.WithLabelValues("counter_update_failures_total").Inc()
		fs.logger.Warn("upload count is stale",
			zap.Stringer("principal_uuid", principalUUID),
			zap.Error(err),
		)
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:          uuid.New(),
		TS:          time.Now(),
		Method:      http.MethodDelete,
		PrincipalID: principalUUID.String(),
		Payload:     file.ToResponseFile(*fr),
	}

	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

func (fs *FileService) fillMetaData(in *multipart.FileHeader, principalUUID principal.UUID) *domain.FileRecord {
	fr := new(domain.FileRecord)

	fr.FileName = sanitizeFileName(in.Filename)
	fr.MimeType = in.Header.Get("Content-Type")
	fr.SizeBytes = uint64(in.Size)
	fr.Bucket = fs.objectStore.GetBucket()
	fr.StorageKey = fs.genStorageKey(fr, principalUUID)
	fr.DownloadURL = fs.objectStore.GetPublicURL(fr.StorageKey)

	return fr
}

// genStorageKey: "uploads/<principal-uuid>/<ts-nanosec>/<filename>.ext".
// The principal prefix partitions the namespace, the nanosecond timestamp
// makes repeated uploads of the same name distinct.
func (fs *FileService) genStorageKey(fr *domain.FileRecord, principalUUID principal.UUID) string {
	return fmt.Sprintf(
		"uploads/%s/%s/%s",
		strings.ToLower(strings.ReplaceAll(principalUUID.String(), "-", "")),
		time.Now().UTC().Format("20060102T150405.000000000Z"),
		safeObjectName(fr.FileName, fr.MimeType),
	)
}
