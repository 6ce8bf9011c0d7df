package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hydromon/internal/domain"
	"hydromon/internal/repository"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func flowRecord(stationID int64, at time.Time, instant string) domain.ValidatedRecord[domain.FlowMeasurement] {
	return domain.ValidatedRecord[domain.FlowMeasurement]{
		StationID:        stationID,
		MonitoringTime:   at,
		Measurement:      domain.FlowMeasurement{InstantFlow: dec(instant)},
		Quality:          domain.QualityNormal,
		CollectionMethod: domain.CollectionManual,
		DataSource:       domain.DefaultDataSource,
	}
}

func TestPostgresSeriesRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	stations := repository.NewPostgresStationRepository(testDB.Pool)
	flows := repository.NewPostgresSeriesRepository[domain.FlowMeasurement](testDB.Pool)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("insert batch then existing times", func(t *testing.T) {
		testDB.TruncateTables(t, "flow_monitoring_data", "monitoring_stations")

		stationID, err := stations.Create(ctx, "ST001", "ST001", domain.StationKindFlow)
		require.NoError(t, err)

		records := []domain.ValidatedRecord[domain.FlowMeasurement]{
			flowRecord(stationID, base, "12.5"),
			flowRecord(stationID, base.Add(time.Hour), "13.25"),
		}
		require.NoError(t, flows.InsertBatch(ctx, records))

		existing, err := flows.ExistingTimes(ctx, stationID, []time.Time{
			base, base.Add(time.Hour), base.Add(2 * time.Hour),
		})
		require.NoError(t, err)
		require.Len(t, existing, 2)
		for _, e := range existing {
			assert.True(t, e.Equal(base) || e.Equal(base.Add(time.Hour)))
		}
	})

	t.Run("existing times is scoped to the station", func(t *testing.T) {
		testDB.TruncateTables(t, "flow_monitoring_data", "monitoring_stations")

		a, err := stations.Create(ctx, "A", "A", domain.StationKindFlow)
		require.NoError(t, err)
		b, err := stations.Create(ctx, "B", "B", domain.StationKindFlow)
		require.NoError(t, err)

		require.NoError(t, flows.InsertBatch(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{
			flowRecord(a, base, "1"),
		}))

		existing, err := flows.ExistingTimes(ctx, b, []time.Time{base})
		require.NoError(t, err)
		assert.Empty(t, existing)
	})

	t.Run("failed batch persists nothing", func(t *testing.T) {
		testDB.TruncateTables(t, "flow_monitoring_data", "monitoring_stations")

		stationID, err := stations.Create(ctx, "ST001", "ST001", domain.StationKindFlow)
		require.NoError(t, err)

		// second record violates the active (station, time) uniqueness
		err = flows.InsertBatch(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{
			flowRecord(stationID, base, "1"),
			flowRecord(stationID, base, "2"),
		})
		require.Error(t, err)

		existing, err := flows.ExistingTimes(ctx, stationID, []time.Time{base})
		require.NoError(t, err)
		assert.Empty(t, existing)
	})

	t.Run("tombstoned records do not count as existing", func(t *testing.T) {
		testDB.TruncateTables(t, "flow_monitoring_data", "monitoring_stations")

		stationID, err := stations.Create(ctx, "ST001", "ST001", domain.StationKindFlow)
		require.NoError(t, err)
		require.NoError(t, flows.InsertBatch(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{
			flowRecord(stationID, base, "1"),
		}))
		_, err = testDB.Pool.Exec(ctx, `UPDATE flow_monitoring_data SET deleted_at = NOW()`)
		require.NoError(t, err)

		existing, err := flows.ExistingTimes(ctx, stationID, []time.Time{base})
		require.NoError(t, err)
		assert.Empty(t, existing)

		require.NoError(t, flows.InsertBatch(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{
			flowRecord(stationID, base, "2"),
		}))
	})

	t.Run("stream all returns decimals and filters", func(t *testing.T) {
		testDB.TruncateTables(t, "flow_monitoring_data", "monitoring_stations")

		stationID, err := stations.Create(ctx, "ST001", "Weir", domain.StationKindFlow)
		require.NoError(t, err)
		other, err := stations.Create(ctx, "ST002", "ST002", domain.StationKindFlow)
		require.NoError(t, err)

		rec := flowRecord(stationID, base, "-12.345")
		rec.Measurement.CumulativeFlow = dec("1000")
		rec.Remark = "checked"
		require.NoError(t, flows.InsertBatch(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{
			rec,
			flowRecord(stationID, base.Add(24*time.Hour), "1"),
			flowRecord(other, base, "2"),
		}))

		end := base.Add(time.Hour)
		var got []domain.StoredRecord
		err = flows.StreamAll(ctx, domain.RecordFilter{StationID: &stationID, End: &end}, func(r domain.StoredRecord) error {
			got = append(got, r)
			return nil
		})
		require.NoError(t, err)
		require.Len(t, got, 1)

		assert.Equal(t, "ST001", got[0].StationCode)
		assert.Equal(t, "Weir", got[0].StationName)
		assert.True(t, got[0].MonitoringTime.Equal(base))
		require.Len(t, got[0].Values, 2)
		assert.True(t, got[0].Values[0].Equal(decimal.RequireFromString("-12.345")))
		assert.True(t, got[0].Values[1].Equal(decimal.RequireFromString("1000")))
		assert.Equal(t, domain.QualityNormal, got[0].Quality)
		assert.Equal(t, domain.CollectionManual, got[0].CollectionMethod)
		assert.Equal(t, "checked", got[0].Remark)

		var all int
		err = flows.StreamAll(ctx, domain.RecordFilter{}, func(domain.StoredRecord) error {
			all++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, all)
	})

	t.Run("null measurement columns stream as nil", func(t *testing.T) {
		testDB.TruncateTables(t, "rainfall_monitoring_data", "monitoring_stations")

		rain := repository.NewPostgresSeriesRepository[domain.RainfallMeasurement](testDB.Pool)
		stationID, err := stations.Create(ctx, "R1", "R1", domain.StationKindRainfall)
		require.NoError(t, err)

		require.NoError(t, rain.InsertBatch(ctx, []domain.ValidatedRecord[domain.RainfallMeasurement]{{
			StationID:        stationID,
			MonitoringTime:   base,
			Measurement:      domain.RainfallMeasurement{Rainfall: dec("3.5")},
			Quality:          domain.QualityAbnormal,
			CollectionMethod: domain.CollectionAutomatic,
			DataSource:       "SCADA",
		}}))

		var got []domain.StoredRecord
		require.NoError(t, rain.StreamAll(ctx, domain.RecordFilter{}, func(r domain.StoredRecord) error {
			got = append(got, r)
			return nil
		}))
		require.Len(t, got, 1)
		require.Len(t, got[0].Values, 3)
		assert.NotNil(t, got[0].Values[0])
		assert.Nil(t, got[0].Values[1])
		assert.Nil(t, got[0].Values[2])
		assert.Equal(t, "SCADA", got[0].DataSource)
	})
	t.Run("stream all filters on quality, method and source", func(t *testing.T) {
		testDB.TruncateTables(t, "flow_monitoring_data", "monitoring_stations")

		stationID, err := stations.Create(ctx, "ST001", "ST001", domain.StationKindFlow)
		require.NoError(t, err)

		auto := flowRecord(stationID, base, "1")
		auto.CollectionMethod = domain.CollectionAutomatic
		auto.DataSource = "SCADA"
		abnormal := flowRecord(stationID, base.Add(time.Hour), "2")
		abnormal.Quality = domain.QualityAbnormal
		require.NoError(t, flows.InsertBatch(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{
			auto, abnormal, flowRecord(stationID, base.Add(2*time.Hour), "3"),
		}))

		count := func(filter domain.RecordFilter) int {
			n := 0
			require.NoError(t, flows.StreamAll(ctx, filter, func(domain.StoredRecord) error {
				n++
				return nil
			}))
			return n
		}

		quality := domain.QualityAbnormal
		method := domain.CollectionAutomatic
		source := "SCADA"
		manual := domain.CollectionManual
		assert.Equal(t, 1, count(domain.RecordFilter{Quality: &quality}))
		assert.Equal(t, 1, count(domain.RecordFilter{CollectionMethod: &method}))
		assert.Equal(t, 1, count(domain.RecordFilter{DataSource: &source}))
		assert.Equal(t, 2, count(domain.RecordFilter{CollectionMethod: &manual}))
		assert.Equal(t, 0, count(domain.RecordFilter{CollectionMethod: &method, Quality: &quality}))
	})

	t.Run("list page sorts, pages and counts", func(t *testing.T) {
		testDB.TruncateTables(t, "flow_monitoring_data", "monitoring_stations")

		stationID, err := stations.Create(ctx, "ST001", "ST001", domain.StationKindFlow)
		require.NoError(t, err)
		other, err := stations.Create(ctx, "ST002", "ST002", domain.StationKindFlow)
		require.NoError(t, err)

		records := make([]domain.ValidatedRecord[domain.FlowMeasurement], 0, 6)
		for i := 0; i < 5; i++ {
			records = append(records, flowRecord(stationID, base.Add(time.Duration(i)*time.Hour), "1"))
		}
		records = append(records, flowRecord(other, base, "9"))
		require.NoError(t, flows.InsertBatch(ctx, records))

		page, err := flows.ListPage(ctx, domain.PageQuery{
			Filter: domain.RecordFilter{StationID: &stationID},
			Sort:   domain.SortTimeDesc,
			Page:   2,
			Size:   2,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, page.Total)
		assert.Equal(t, []string{"instant_flow", "cumulative_flow"}, page.Fields)
		require.Len(t, page.Items, 2)
		assert.True(t, page.Items[0].MonitoringTime.Equal(base.Add(2*time.Hour)))
		assert.True(t, page.Items[1].MonitoringTime.Equal(base.Add(time.Hour)))

		page, err = flows.ListPage(ctx, domain.PageQuery{Sort: domain.SortTimeAsc, Page: 1, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, 6, page.Total)
		require.Len(t, page.Items, 6)
		assert.True(t, page.Items[0].MonitoringTime.Equal(base))

		page, err = flows.ListPage(ctx, domain.PageQuery{Sort: domain.SortTimeAsc, Page: 4, Size: 2})
		require.NoError(t, err)
		assert.Equal(t, 6, page.Total)
		assert.Empty(t, page.Items)

		_, err = flows.ListPage(ctx, domain.PageQuery{Sort: "random", Page: 1, Size: 2})
		assert.Error(t, err)
	})

	t.Run("aggregate averages per bucket", func(t *testing.T) {
		testDB.TruncateTables(t, "flow_monitoring_data", "monitoring_stations")

		stationID, err := stations.Create(ctx, "ST001", "ST001", domain.StationKindFlow)
		require.NoError(t, err)
		other, err := stations.Create(ctx, "ST002", "ST002", domain.StationKindFlow)
		require.NoError(t, err)

		require.NoError(t, flows.InsertBatch(ctx, []domain.ValidatedRecord[domain.FlowMeasurement]{
			flowRecord(stationID, base, "1"),
			flowRecord(stationID, base.Add(30*time.Minute), "2"),
			flowRecord(stationID, base.Add(time.Hour), "10"),
			flowRecord(stationID, base.Add(25*time.Hour), "4"),
			flowRecord(other, base, "100"),
		}))

		hourly, err := flows.Aggregate(ctx, domain.ChartQuery{
			StationID: stationID,
			Interval:  domain.IntervalHour,
			Field:     "instant_flow",
		})
		require.NoError(t, err)
		require.Len(t, hourly, 3)
		assert.True(t, hourly[0].Bucket.Equal(base))
		assert.True(t, hourly[0].Value.Equal(decimal.RequireFromString("1.5")))
		assert.True(t, hourly[1].Value.Equal(decimal.RequireFromString("10")))

		end := base.Add(24 * time.Hour)
		daily, err := flows.Aggregate(ctx, domain.ChartQuery{
			StationID: stationID,
			End:       &end,
			Interval:  domain.IntervalDay,
			Field:     "instant_flow",
		})
		require.NoError(t, err)
		require.Len(t, daily, 1)
		assert.True(t, daily[0].Bucket.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.True(t, daily[0].Value.Equal(decimal.RequireFromString("4.333")))

		empty, err := flows.Aggregate(ctx, domain.ChartQuery{
			StationID: stationID,
			Interval:  domain.IntervalDay,
			Field:     "cumulative_flow",
		})
		require.NoError(t, err)
		require.Len(t, empty, 2)
		assert.Nil(t, empty[0].Value)

		_, err = flows.Aggregate(ctx, domain.ChartQuery{StationID: stationID, Interval: domain.IntervalDay, Field: "water_level"})
		assert.Error(t, err)
		_, err = flows.Aggregate(ctx, domain.ChartQuery{StationID: stationID, Interval: "year", Field: "instant_flow"})
		assert.Error(t, err)
	})
}
