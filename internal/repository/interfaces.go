package repository

import (
	"context"
	"time"

	"hydromon/internal/domain"
)

// StationRepository defines methods for station directory access.
type StationRepository interface {
	// FindByCodes returns the active stations whose code is in codes.
	FindByCodes(ctx context.Context, codes []string) ([]domain.StationRef, error)
	// Create creates a station and returns its id. Creating a code that already
	// has an active station returns the existing id.
	Create(ctx context.Context, code, name string, kind domain.StationKind) (int64, error)
	// GetByCode returns the most recent station with the code, tombstoned or not.
	GetByCode(ctx context.Context, code string) (*domain.Station, error)
}

// SeriesRepository defines methods for time-series data access of one variant.
type SeriesRepository[M domain.Measurement] interface {
	// ExistingTimes returns which of times already have an active record for the station.
	ExistingTimes(ctx context.Context, stationID int64, times []time.Time) ([]time.Time, error)
	// InsertBatch persists records in a single transaction.
	InsertBatch(ctx context.Context, records []domain.ValidatedRecord[M]) error
	// StreamAll streams matching records for export.
	StreamAll(ctx context.Context, filter domain.RecordFilter, callback func(domain.StoredRecord) error) error
	// ListPage returns one page of matching records and the total match count.
	ListPage(ctx context.Context, q domain.PageQuery) (domain.RecordPage, error)
	// Aggregate averages one measurement field of a station per interval.
	Aggregate(ctx context.Context, q domain.ChartQuery) ([]domain.ChartPoint, error)
}

// ImportJobRepository defines methods for import job data access.
type ImportJobRepository interface {
	CreateImportJob(ctx context.Context, job *domain.ImportJob) error
	GetImportJob(ctx context.Context, id string) (*domain.ImportJob, error)
	GetImportJobByIdempotencyToken(ctx context.Context, token string) (*domain.ImportJob, error)
	UpdateImportJob(ctx context.Context, job *domain.ImportJob) error
}
