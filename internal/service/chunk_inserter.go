package service

import (
	"context"
	"log/slog"

	"hydromon/internal/domain"
	"hydromon/internal/logger"
	"hydromon/internal/metrics"
	"hydromon/internal/repository"
)

// ChunkInserter persists records in fixed-size chunks, one transaction per chunk.
type ChunkInserter[M domain.Measurement] struct {
	series    repository.SeriesRepository[M]
	chunkSize int
}

// NewChunkInserter creates an inserter; a non-positive size uses DefaultChunkSize.
func NewChunkInserter[M domain.Measurement](series repository.SeriesRepository[M], chunkSize int) *ChunkInserter[M] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ChunkInserter[M]{series: series, chunkSize: chunkSize}
}

// Insert writes records chunk by chunk in order and returns how many were
// persisted. The first failing chunk stops the run with a *PersistenceError.
func (c *ChunkInserter[M]) Insert(ctx context.Context, records []domain.ValidatedRecord[M]) (int, error) {
	var zero M
	variant := string(zero.Variant())
	log := logger.FromContext(ctx)

	inserted := 0
	for start, chunk := 0, 1; start < len(records); start, chunk = start+c.chunkSize, chunk+1 {
		end := min(start+c.chunkSize, len(records))
		batch := records[start:end]

		timer := metrics.NewTimer()
		if err := c.series.InsertBatch(ctx, batch); err != nil {
			log.ErrorContext(ctx, "Chunk insert failed, aborting import",
				slog.String("variant", variant),
				slog.Int("chunk", chunk),
				slog.Int("first_row", batch[0].RowNumber),
				slog.Int("size", len(batch)),
				slog.String("error", err.Error()))
			return inserted, &PersistenceError{Stage: "insert", Chunk: chunk, Committed: inserted, Err: err}
		}
		timer.ObserveDuration(metrics.StageDuration.WithLabelValues(variant, "insert"))

		inserted += len(batch)
		log.DebugContext(ctx, "Chunk inserted",
			slog.String("variant", variant),
			slog.Int("chunk", chunk),
			slog.Int("size", len(batch)),
			slog.Int("inserted", inserted))
	}

	return inserted, nil
}
