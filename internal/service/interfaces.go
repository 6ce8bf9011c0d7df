package service

import (
	"context"
	"io"

	"hydromon/internal/domain"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// ImportRequest describes one import submission.
type ImportRequest struct {
	Variant string
	// Format selects the decoder: json, csv or xlsx.
	Format           string
	Source           string
	IdempotencyToken string
	Body             io.Reader
}

// ExportRequest narrows a streaming export. Zero values mean no filter.
type ExportRequest struct {
	Variant     string
	StationCode string
	// Start and End use the monitoring time layout; End is exclusive.
	Start            string
	End              string
	DataQuality      string
	CollectionMethod string
	DataSource       string
}

func (r ExportRequest) filterParams() recordFilterParams {
	return recordFilterParams{
		StationCode:      r.StationCode,
		Start:            r.Start,
		End:              r.End,
		DataQuality:      r.DataQuality,
		CollectionMethod: r.CollectionMethod,
		DataSource:       r.DataSource,
	}
}

// ListRequest selects one page of records. Zero values mean no filter,
// newest first, page 1 and the default page size.
type ListRequest struct {
	Variant          string
	StationCode      string
	Start            string
	End              string
	DataQuality      string
	CollectionMethod string
	DataSource       string
	// Sort is time_desc or time_asc.
	Sort string
	Page int
	Size int
}

func (r ListRequest) filterParams() recordFilterParams {
	return recordFilterParams{
		StationCode:      r.StationCode,
		Start:            r.Start,
		End:              r.End,
		DataQuality:      r.DataQuality,
		CollectionMethod: r.CollectionMethod,
		DataSource:       r.DataSource,
	}
}

// ChartRequest selects interval averages of one field at one station.
// Interval defaults to hour and Field to the variant's first measurement field.
type ChartRequest struct {
	Variant     string `json:"-"`
	StationCode string `json:"station_code"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Interval    string `json:"interval"`
	Field       string `json:"field"`
}

// ImportServiceInterface defines the interface for import operations.
// Used for dependency injection and mocking in tests.
type ImportServiceInterface interface {
	// Import runs an import synchronously and returns its job. On a persistence
	// failure the failed job is returned together with a *PersistenceError.
	Import(ctx context.Context, req ImportRequest) (*domain.ImportJob, error)
	// GetImportJob retrieves an import job by ID.
	GetImportJob(ctx context.Context, id string) (*domain.ImportJob, error)
	// WriteTemplate renders the xlsx import template of a variant.
	WriteTemplate(variant string, w io.Writer) error
}

// ExportServiceInterface defines the interface for export operations.
// Used for dependency injection and mocking in tests.
type ExportServiceInterface interface {
	// StreamCSV streams persisted records as CSV and returns how many were written.
	StreamCSV(ctx context.Context, req ExportRequest, writer StreamWriter) (int, error)
}

// QueryServiceInterface defines the interface for record queries.
// Used for dependency injection and mocking in tests.
type QueryServiceInterface interface {
	// ListRecords returns one page of persisted records.
	ListRecords(ctx context.Context, req ListRequest) (*domain.RecordPage, error)
	// Chart returns the interval averages of one measurement field at one station.
	Chart(ctx context.Context, req ChartRequest) (*domain.ChartSeries, error)
}
