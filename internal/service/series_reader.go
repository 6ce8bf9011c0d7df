package service

import (
	"context"
	"fmt"

	"hydromon/internal/codec"
	"hydromon/internal/domain"
	"hydromon/internal/repository"
)

// seriesReader reads one variant's persisted records without exposing M.
type seriesReader interface {
	header() []string
	fields() []string
	stream(ctx context.Context, filter domain.RecordFilter, callback func(domain.StoredRecord) error) error
	page(ctx context.Context, q domain.PageQuery) (domain.RecordPage, error)
	aggregate(ctx context.Context, q domain.ChartQuery) ([]domain.ChartPoint, error)
}

type typedSeriesReader[M domain.Measurement] struct {
	series repository.SeriesRepository[M]
}

func (r typedSeriesReader[M]) header() []string {
	return codec.Header[M]()
}

func (r typedSeriesReader[M]) fields() []string {
	return domain.FieldNames[M]()
}

func (r typedSeriesReader[M]) stream(ctx context.Context, filter domain.RecordFilter, callback func(domain.StoredRecord) error) error {
	return r.series.StreamAll(ctx, filter, callback)
}

func (r typedSeriesReader[M]) page(ctx context.Context, q domain.PageQuery) (domain.RecordPage, error) {
	return r.series.ListPage(ctx, q)
}

func (r typedSeriesReader[M]) aggregate(ctx context.Context, q domain.ChartQuery) ([]domain.ChartPoint, error) {
	return r.series.Aggregate(ctx, q)
}

func newSeriesReaders(series SeriesRepositories) map[domain.Variant]seriesReader {
	return map[domain.Variant]seriesReader{
		domain.VariantFlow:         typedSeriesReader[domain.FlowMeasurement]{series.Flow},
		domain.VariantWaterLevel:   typedSeriesReader[domain.WaterLevelMeasurement]{series.WaterLevel},
		domain.VariantWaterQuality: typedSeriesReader[domain.WaterQualityMeasurement]{series.WaterQuality},
		domain.VariantRainfall:     typedSeriesReader[domain.RainfallMeasurement]{series.Rainfall},
	}
}

func readerFor(readers map[domain.Variant]seriesReader, variant string) (seriesReader, error) {
	rd, ok := readers[domain.Variant(variant)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}
	return rd, nil
}
