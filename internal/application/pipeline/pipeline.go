// Package pipeline defines the contract of the staged write pipelines that
// coordinate object storage, metadata records and the advisory upload
// counter. The backing stores expose no cross-store transaction, so each
// stage commits independently and a failure must say exactly how far
// execution got and which identifiers are left behind for reconciliation.
package pipeline

import (
	"fmt"

	"filevault-api/internal/domain/filerecord"
)

type Stage string

const (
	StageWriteObject      Stage = "write-object"
	StageCreateRecord     Stage = "create-record"
	StageIncrementCounter Stage = "increment-counter"

	StageDeleteObject     Stage = "delete-object"
	StageDeleteRecord     Stage = "delete-record"
	StageDecrementCounter Stage = "decrement-counter"
)

// Kind is the stable, caller-facing error kind for a failed stage.
func (s Stage) Kind() string {
	switch s {
	case StageWriteObject:
		return "ObjectWriteFailed"
	case StageCreateRecord:
		return "RecordCreateFailed"
	case StageDeleteObject:
		return "ObjectDeleteFailed"
	case StageDeleteRecord:
		return "RecordDeleteFailed"
	case StageIncrementCounter, StageDecrementCounter:
		return "CounterUpdateFailed"
	}
	return "PipelineFailed"
}

// StageError reports a single failed stage. Stages that already committed
// stay committed; the fields below carry whatever identifiers an operator
// needs to reconcile the leftover state out-of-band.
type StageError struct {
	Stage Stage
	Err   error

	// OrphanedObjectPath is set when an object was written, the record
	// create failed, and the compensating object delete failed too.
	OrphanedObjectPath string

	// DanglingRecordID is set when the object is already gone but the
	// record delete failed. The object is unrecoverable at that point,
	// so no compensation is possible.
	DanglingRecordID string

	// CompensationErr is the error from a best-effort compensating
	// action, if one was attempted and failed.
	CompensationErr error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: stage %q: %v", e.Stage.Kind(), string(e.Stage), e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// UploadResult is the outcome of a successful upload pipeline run.
// CounterErr, when non-nil, is an increment-counter StageError: the upload
// itself succeeded and the file record is authoritative, the cached
// aggregate is merely stale.
type UploadResult struct {
	Record     *filerecord.FileRecord
	CounterErr error
}
