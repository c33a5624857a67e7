package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyMatrix is returned when the toolchain matrix has no usable entries.
	ErrEmptyMatrix = zerr.New("toolchain matrix is empty")

	// ErrDuplicateMatrixEntry is returned when the same toolchain appears twice in the matrix.
	ErrDuplicateMatrixEntry = zerr.New("duplicate toolchain matrix entry")

	// ErrUnknownTrigger is returned when a trigger event is neither push nor pull_request.
	ErrUnknownTrigger = zerr.New("unknown trigger event")

	// ErrSnapshotStale is returned when the dependency manifest changed after the
	// snapshot was recorded. Verification must fail instead of re-resolving.
	ErrSnapshotStale = zerr.New("dependency snapshot is stale")

	// ErrPipelineFailed is returned by the app when at least one matrix entry failed.
	ErrPipelineFailed = zerr.New("pipeline execution failed")
)
