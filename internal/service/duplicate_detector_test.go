package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hydromon/internal/domain"
	"hydromon/internal/mocks"
	"hydromon/internal/service"
)

func flowRecord(row int, stationID int64, offset int) domain.ValidatedRecord[domain.FlowMeasurement] {
	return domain.ValidatedRecord[domain.FlowMeasurement]{
		RowNumber:      row,
		StationCode:    "S1",
		StationID:      stationID,
		MonitoringTime: baseTime.Add(time.Duration(offset) * time.Hour),
		Measurement:    domain.FlowMeasurement{InstantFlow: dec("1")},
		Quality:        domain.QualityNormal,
	}
}

func TestDuplicateDetector_Filter(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects in-batch repeats without asking the store twice", func(t *testing.T) {
		series := mocks.NewMockSeriesRepository[domain.FlowMeasurement](t)
		series.EXPECT().
			ExistingTimes(mock.Anything, int64(1), []time.Time{baseTime, baseTime.Add(time.Hour)}).
			Return(nil, nil).
			Once()

		d := service.NewDuplicateDetector[domain.FlowMeasurement](series, 500)
		accepted, rejected, err := d.Filter(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{
			flowRecord(1, 1, 0),
			flowRecord(2, 1, 0),
			flowRecord(3, 1, 1),
		})

		require.NoError(t, err)
		require.Len(t, accepted, 2)
		assert.Equal(t, 1, accepted[0].RowNumber)
		assert.Equal(t, 3, accepted[1].RowNumber)
		require.Len(t, rejected, 1)
		assert.Equal(t, 2, rejected[0].RowNumber)
		assert.Equal(t, domain.ErrDuplicateInBatch, rejected[0].Kind)
		assert.Equal(t, "duplicate record within submitted batch", rejected[0].Message)
	})

	t.Run("rejects keys already stored", func(t *testing.T) {
		series := mocks.NewMockSeriesRepository[domain.FlowMeasurement](t)
		series.EXPECT().
			ExistingTimes(mock.Anything, int64(1), mock.Anything).
			Return([]time.Time{baseTime.Add(time.Hour)}, nil)

		d := service.NewDuplicateDetector[domain.FlowMeasurement](series, 500)
		accepted, rejected, err := d.Filter(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{
			flowRecord(1, 1, 0),
			flowRecord(2, 1, 1),
		})

		require.NoError(t, err)
		require.Len(t, accepted, 1)
		assert.Equal(t, 1, accepted[0].RowNumber)
		require.Len(t, rejected, 1)
		assert.Equal(t, domain.ErrDuplicateInStore, rejected[0].Kind)
		assert.Equal(t, "record already exists in storage", rejected[0].Message)
	})

	t.Run("same time at different stations is not a duplicate", func(t *testing.T) {
		series := mocks.NewMockSeriesRepository[domain.FlowMeasurement](t)
		series.EXPECT().ExistingTimes(mock.Anything, int64(1), mock.Anything).Return(nil, nil)
		series.EXPECT().ExistingTimes(mock.Anything, int64(2), mock.Anything).Return(nil, nil)

		d := service.NewDuplicateDetector[domain.FlowMeasurement](series, 500)
		accepted, rejected, err := d.Filter(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{
			flowRecord(1, 1, 0),
			flowRecord(2, 2, 0),
		})

		require.NoError(t, err)
		assert.Len(t, accepted, 2)
		assert.Empty(t, rejected)
	})

	t.Run("never sends more than the batch size", func(t *testing.T) {
		series := mocks.NewMockSeriesRepository[domain.FlowMeasurement](t)
		var sizes []int
		series.EXPECT().
			ExistingTimes(mock.Anything, int64(7), mock.Anything).
			RunAndReturn(func(_ context.Context, _ int64, times []time.Time) ([]time.Time, error) {
				sizes = append(sizes, len(times))
				return nil, nil
			})

		records := make([]domain.ValidatedRecord[domain.FlowMeasurement], 0, 25)
		for i := 0; i < 25; i++ {
			records = append(records, flowRecord(i+1, 7, i))
		}

		d := service.NewDuplicateDetector[domain.FlowMeasurement](series, 10)
		accepted, _, err := d.Filter(ctx, records)

		require.NoError(t, err)
		assert.Len(t, accepted, 25)
		assert.Equal(t, []int{10, 10, 5}, sizes)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		series := mocks.NewMockSeriesRepository[domain.FlowMeasurement](t)
		series.EXPECT().
			ExistingTimes(mock.Anything, int64(1), mock.Anything).
			Return(nil, errors.New("connection refused"))

		d := service.NewDuplicateDetector[domain.FlowMeasurement](series, 500)
		_, _, err := d.Filter(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{flowRecord(1, 1, 0)})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "station 1")
	})

	t.Run("no records means no queries", func(t *testing.T) {
		series := mocks.NewMockSeriesRepository[domain.FlowMeasurement](t)

		d := service.NewDuplicateDetector[domain.FlowMeasurement](series, 500)
		accepted, rejected, err := d.Filter(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, accepted)
		assert.Empty(t, rejected)
	})
}
