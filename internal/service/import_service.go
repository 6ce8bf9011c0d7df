package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hydromon/internal/codec"
	"hydromon/internal/domain"
	"hydromon/internal/logger"
	"hydromon/internal/metrics"
	"hydromon/internal/repository"
)

// SeriesRepositories holds the time-series store of every variant.
type SeriesRepositories struct {
	Flow         repository.SeriesRepository[domain.FlowMeasurement]
	WaterLevel   repository.SeriesRepository[domain.WaterLevelMeasurement]
	WaterQuality repository.SeriesRepository[domain.WaterQualityMeasurement]
	Rainfall     repository.SeriesRepository[domain.RainfallMeasurement]
}

// importFunc runs a decoded submission.
type importFunc func(ctx context.Context) (domain.ImportResult, error)

// variantImporter decodes a submission for one variant.
type variantImporter interface {
	prepare(format codec.Format, r io.Reader) (rows int, run importFunc, err error)
	writeTemplate(w io.Writer) error
}

type pipelineImporter[M domain.Measurement] struct {
	pipeline *Pipeline[M]
}

func (p pipelineImporter[M]) prepare(format codec.Format, r io.Reader) (int, importFunc, error) {
	batch, err := decodeBatch[M](format, r)
	if err != nil {
		return 0, nil, err
	}
	return batch.Len(), func(ctx context.Context) (domain.ImportResult, error) {
		return p.pipeline.Run(ctx, batch)
	}, nil
}

func (p pipelineImporter[M]) writeTemplate(w io.Writer) error {
	return codec.WriteTemplate[M](w)
}

func decodeBatch[M domain.Measurement](format codec.Format, r io.Reader) (domain.ImportBatch[M], error) {
	switch format {
	case codec.FormatJSON:
		return codec.DecodeJSON[M](r)
	case codec.FormatCSV:
		return codec.DecodeCSV[M](r)
	case codec.FormatXLSX:
		return codec.DecodeXLSX[M](r)
	}
	return domain.ImportBatch[M]{}, codec.ErrUnsupportedFormat
}

// ImportService runs imports and records them as jobs.
type ImportService struct {
	jobRepo   repository.ImportJobRepository
	importers map[domain.Variant]variantImporter
}

// NewImportService creates an ImportService with one pipeline per variant.
func NewImportService(
	stations repository.StationRepository,
	series SeriesRepositories,
	jobRepo repository.ImportJobRepository,
	cfg PipelineConfig,
) *ImportService {
	return &ImportService{
		jobRepo: jobRepo,
		importers: map[domain.Variant]variantImporter{
			domain.VariantFlow:         pipelineImporter[domain.FlowMeasurement]{NewPipeline(stations, series.Flow, cfg)},
			domain.VariantWaterLevel:   pipelineImporter[domain.WaterLevelMeasurement]{NewPipeline(stations, series.WaterLevel, cfg)},
			domain.VariantWaterQuality: pipelineImporter[domain.WaterQualityMeasurement]{NewPipeline(stations, series.WaterQuality, cfg)},
			domain.VariantRainfall:     pipelineImporter[domain.RainfallMeasurement]{NewPipeline(stations, series.Rainfall, cfg)},
		},
	}
}

func (s *ImportService) importer(variant string) (variantImporter, error) {
	imp, ok := s.importers[domain.Variant(variant)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	return imp, nil
}

// Import decodes the submission, runs the variant pipeline and records the job.
// A token that already has a job returns that job without running anything.
func (s *ImportService) Import(ctx context.Context, req ImportRequest) (*domain.ImportJob, error) {
	imp, err := s.importer(req.Variant)
	if err != nil {
		return nil, err
	}

	ctx = logger.NewContext(ctx, logger.WithFields(ctx, slog.String("variant", req.Variant)))
	log := logger.FromContext(ctx)

	if req.IdempotencyToken != "" {
		existing, err := s.jobRepo.GetImportJobByIdempotencyToken(ctx, req.IdempotencyToken)
		if err != nil {
			return nil, fmt.Errorf("check idempotency token: %w", err)
		}
		if existing != nil {
			log.InfoContext(ctx, "Returning existing job for idempotency token", slog.String("job_id", existing.ID))
			return existing, nil
		}
	} else {
		req.IdempotencyToken = uuid.New().String()
	}

	rows, run, err := imp.prepare(codec.Format(req.Format), req.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s submission: %w", req.Format, err)
	}
	if rows == 0 {
		return nil, ErrEmptyImport
	}

	now := time.Now()
	job := &domain.ImportJob{
		ID:               uuid.New().String(),
		Variant:          domain.Variant(req.Variant),
		Status:           domain.JobStatusProcessing,
		Source:           req.Source,
		Result:           domain.ImportResult{Errors: []domain.ImportError{}},
		IdempotencyToken: req.IdempotencyToken,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	jobID := job.ID
	if err := s.jobRepo.CreateImportJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create import job: %w", err)
	}
	if job.ID != jobID {
		// lost a race on the token; the other request owns the import
		log.InfoContext(ctx, "Idempotency token claimed concurrently", slog.String("job_id", job.ID))
		return job, nil
	}

	ctx = logger.NewContext(ctx, logger.WithJobID(ctx, job.ID))
	log = logger.FromContext(ctx)
	log.InfoContext(ctx, "Starting import", slog.Int("rows", rows), slog.String("source", req.Source))

	metrics.StartImport(req.Variant)
	defer metrics.EndImport(req.Variant)
	startTime := time.Now()

	result, runErr := run(ctx)

	finished := time.Now()
	job.UpdatedAt = finished
	job.CompletedAt = &finished

	if runErr != nil {
		job.Status = domain.JobStatusFailed
		job.Result = domain.ImportResult{Errors: []domain.ImportError{}}
		msg := runErr.Error()
		job.ErrorMessage = &msg
		if err := s.jobRepo.UpdateImportJob(ctx, job); err != nil {
			log.ErrorContext(ctx, "Failed to update import job", slog.String("error", err.Error()))
		}
		metrics.ObserveImportCompletion(req.Variant, string(job.Status), time.Since(startTime).Seconds(), 0, 0, 0)
		log.ErrorContext(ctx, "Import aborted", slog.String("error", msg))

		var persistErr *PersistenceError
		if errors.As(runErr, &persistErr) {
			return job, runErr
		}
		return job, fmt.Errorf("run import: %w", runErr)
	}

	job.Result = result
	job.Status = domain.StatusFor(result)
	if err := s.jobRepo.UpdateImportJob(ctx, job); err != nil {
		log.ErrorContext(ctx, "Failed to update import job", slog.String("error", err.Error()))
	}

	elapsed := time.Since(startTime)
	metrics.ObserveImportCompletion(req.Variant, string(job.Status), elapsed.Seconds(),
		result.SuccessRows, result.ErrorRows, result.DuplicateRows)
	log.InfoContext(ctx, "Import completed",
		slog.String("status", string(job.Status)),
		slog.Int("total_rows", result.TotalRows),
		slog.Int("success_rows", result.SuccessRows),
		slog.Int("error_rows", result.ErrorRows),
		slog.Duration("elapsed", elapsed.Round(time.Millisecond)))

	return job, nil
}

// GetImportJob retrieves an import job by ID.
func (s *ImportService) GetImportJob(ctx context.Context, id string) (*domain.ImportJob, error) {
	return s.jobRepo.GetImportJob(ctx, id)
}

// WriteTemplate renders the xlsx import template of a variant.
func (s *ImportService) WriteTemplate(variant string, w io.Writer) error {
	imp, err := s.importer(variant)
	if err != nil {
		return err
	}
	return imp.writeTemplate(w)
}
