package service

import (
	"context"
	"fmt"
	"time"

	"hydromon/internal/domain"
	"hydromon/internal/repository"
)

const (
	msgDuplicateInBatch = "duplicate record within submitted batch"
	msgDuplicateInStore = "record already exists in storage"
)

// DuplicateDetector rejects records whose (station, time) key repeats within
// the submission or already exists in the store.
type DuplicateDetector[M domain.Measurement] struct {
	series    repository.SeriesRepository[M]
	batchSize int
}

// NewDuplicateDetector creates a detector that checks the store with at most
// batchSize timestamps per query.
func NewDuplicateDetector[M domain.Measurement](series repository.SeriesRepository[M], batchSize int) *DuplicateDetector[M] {
	if batchSize <= 0 {
		batchSize = DefaultExistsBatchSize
	}
	return &DuplicateDetector[M]{series: series, batchSize: batchSize}
}

// Filter splits records into accepted and rejected, both in input order.
// The first occurrence of a key wins; later ones are in-batch duplicates.
func (d *DuplicateDetector[M]) Filter(ctx context.Context, records []domain.ValidatedRecord[M]) ([]domain.ValidatedRecord[M], []domain.ImportError, error) {
	verdicts := make([]domain.ErrorKind, len(records))

	// in-batch pass; candidates are grouped by station in first-seen order
	seen := make(map[domain.DedupKey]struct{}, len(records))
	candidates := make(map[int64][]int)
	var stationOrder []int64
	for i, rec := range records {
		key := rec.Key()
		if _, dup := seen[key]; dup {
			verdicts[i] = domain.ErrDuplicateInBatch
			continue
		}
		seen[key] = struct{}{}

		if _, ok := candidates[rec.StationID]; !ok {
			stationOrder = append(stationOrder, rec.StationID)
		}
		candidates[rec.StationID] = append(candidates[rec.StationID], i)
	}

	// store pass
	for _, stationID := range stationOrder {
		idxs := candidates[stationID]
		for start := 0; start < len(idxs); start += d.batchSize {
			end := min(start+d.batchSize, len(idxs))
			group := idxs[start:end]

			times := make([]time.Time, len(group))
			for j, idx := range group {
				times[j] = records[idx].MonitoringTime
			}

			existing, err := d.series.ExistingTimes(ctx, stationID, times)
			if err != nil {
				return nil, nil, fmt.Errorf("check existing records for station %d: %w", stationID, err)
			}
			if len(existing) == 0 {
				continue
			}

			found := make(map[domain.DedupKey]struct{}, len(existing))
			for _, t := range existing {
				found[domain.NewDedupKey(stationID, t)] = struct{}{}
			}
			for _, idx := range group {
				if _, ok := found[records[idx].Key()]; ok {
					verdicts[idx] = domain.ErrDuplicateInStore
				}
			}
		}
	}

	accepted := make([]domain.ValidatedRecord[M], 0, len(records))
	var rejected []domain.ImportError
	for i, rec := range records {
		switch verdicts[i] {
		case "":
			accepted = append(accepted, rec)
		case domain.ErrDuplicateInBatch:
			rejected = append(rejected, duplicateError(rec, domain.ErrDuplicateInBatch, msgDuplicateInBatch))
		case domain.ErrDuplicateInStore:
			rejected = append(rejected, duplicateError(rec, domain.ErrDuplicateInStore, msgDuplicateInStore))
		}
	}

	return accepted, rejected, nil
}

func duplicateError[M domain.Measurement](rec domain.ValidatedRecord[M], kind domain.ErrorKind, msg string) domain.ImportError {
	return domain.ImportError{
		RowNumber:   rec.RowNumber,
		StationCode: rec.StationCode,
		Kind:        kind,
		Message:     msg,
	}
}
