package service

import (
	"context"
	"log/slog"

	"hydromon/internal/domain"
	"hydromon/internal/logger"
	"hydromon/internal/metrics"
	"hydromon/internal/repository"
	"hydromon/internal/validator"
)

const (
	// DefaultChunkSize is the number of records persisted per transaction.
	DefaultChunkSize = 5000
	// DefaultExistsBatchSize bounds the timestamps sent in one existence query.
	DefaultExistsBatchSize = 500
	// DefaultMaxErrors caps the detailed error list of an ImportResult.
	DefaultMaxErrors = 100
)

// PipelineConfig holds the size bounds of one import run.
type PipelineConfig struct {
	ChunkSize       int
	ExistsBatchSize int
	MaxErrors       int
}

// DefaultPipelineConfig returns the standard bounds.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		ChunkSize:       DefaultChunkSize,
		ExistsBatchSize: DefaultExistsBatchSize,
		MaxErrors:       DefaultMaxErrors,
	}
}

// Pipeline runs one variant's import: validate, resolve stations, drop
// duplicates, insert in chunks, aggregate. It holds no per-job state, so one
// Pipeline serves concurrent imports.
type Pipeline[M domain.Measurement] struct {
	variant   domain.Variant
	resolver  *StationResolver
	detector  *DuplicateDetector[M]
	inserter  *ChunkInserter[M]
	maxErrors int
}

// NewPipeline wires the stages for the variant of M.
func NewPipeline[M domain.Measurement](
	stations repository.StationRepository,
	series repository.SeriesRepository[M],
	cfg PipelineConfig,
) *Pipeline[M] {
	var zero M
	variant := zero.Variant()

	return &Pipeline[M]{
		variant:   variant,
		resolver:  NewStationResolver(stations, variant),
		detector:  NewDuplicateDetector(series, cfg.ExistsBatchSize),
		inserter:  NewChunkInserter(series, cfg.ChunkSize),
		maxErrors: cfg.MaxErrors,
	}
}

// Run imports batch. Row-level problems end up in the result; a storage
// failure returns a *PersistenceError and no result.
func (p *Pipeline[M]) Run(ctx context.Context, batch domain.ImportBatch[M]) (domain.ImportResult, error) {
	log := logger.FromContext(ctx)
	variant := string(p.variant)

	agg := NewResultAggregator(p.maxErrors)
	agg.Reject(batch.Rejected...)

	timer := metrics.NewTimer()
	valid := make([]domain.ValidRow[M], 0, len(batch.Rows))
	for _, row := range batch.Rows {
		v, rowErr := validator.ValidateRow(row)
		if rowErr != nil {
			agg.Reject(*rowErr)
			continue
		}
		valid = append(valid, v)
	}
	timer.ObserveDuration(metrics.StageDuration.WithLabelValues(variant, "validate"))

	// codes come only from valid rows; last non-empty name wins
	codes := make([]string, 0)
	names := make(map[string]string)
	seenCodes := make(map[string]struct{})
	for _, v := range valid {
		if _, ok := seenCodes[v.StationCode]; !ok {
			seenCodes[v.StationCode] = struct{}{}
			codes = append(codes, v.StationCode)
		}
		if v.StationName != "" {
			names[v.StationCode] = v.StationName
		}
	}

	timer = metrics.NewTimer()
	stationIDs, err := p.resolver.Resolve(ctx, codes, names)
	if err != nil {
		return domain.ImportResult{}, &PersistenceError{Stage: "resolve", Err: err}
	}
	timer.ObserveDuration(metrics.StageDuration.WithLabelValues(variant, "resolve"))

	records := make([]domain.ValidatedRecord[M], 0, len(valid))
	for _, v := range valid {
		id, ok := stationIDs[v.StationCode]
		if !ok {
			agg.Reject(domain.ImportError{
				RowNumber:   v.RowNumber,
				StationCode: v.StationCode,
				Kind:        domain.ErrInvalidReference,
				Message:     "station code could not be resolved",
			})
			continue
		}
		records = append(records, v.Resolve(id))
	}

	timer = metrics.NewTimer()
	accepted, duplicates, err := p.detector.Filter(ctx, records)
	if err != nil {
		return domain.ImportResult{}, &PersistenceError{Stage: "dedup", Err: err}
	}
	agg.Reject(duplicates...)
	timer.ObserveDuration(metrics.StageDuration.WithLabelValues(variant, "dedup"))

	inserted, err := p.inserter.Insert(ctx, accepted)
	if err != nil {
		return domain.ImportResult{}, err
	}

	result := agg.Result(batch.Len(), inserted)
	log.InfoContext(ctx, "Import pipeline finished",
		slog.String("variant", variant),
		slog.Int("total_rows", result.TotalRows),
		slog.Int("success_rows", result.SuccessRows),
		slog.Int("error_rows", result.ErrorRows),
		slog.Int("duplicate_rows", result.DuplicateRows),
		slog.Int("stations", len(stationIDs)))

	return result, nil
}
