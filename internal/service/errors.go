package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariant is returned for a variant key outside the supported set.
	ErrUnknownVariant = errors.New("unknown monitoring variant")
	// ErrEmptyImport is returned when a submission holds no rows at all.
	ErrEmptyImport = errors.New("import contains no rows")
	// ErrStationNotFound is returned when a query filters on an unknown station.
	ErrStationNotFound = errors.New("station not found")
	// ErrInvalidFilter is returned for query parameters that cannot be applied.
	ErrInvalidFilter = errors.New("invalid filter")
)

// PersistenceError aborts an import job. Chunks committed before the failure
// stay committed; no chunk after it is attempted.
type PersistenceError struct {
	// Stage is resolve, dedup or insert.
	Stage string
	// Chunk is the 1-based chunk that failed; zero outside the insert stage.
	Chunk int
	// Committed counts records persisted by earlier chunks.
	Committed int
	Err       error
}

func (e *PersistenceError) Error() string {
	if e.Chunk > 0 {
		return fmt.Sprintf("persistence failure in %s stage at chunk %d (%d records committed before it): %v",
			e.Stage, e.Chunk, e.Committed, e.Err)
	}
	return fmt.Sprintf("persistence failure in %s stage: %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
