package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"hydromon/internal/domain"
	"hydromon/internal/logger"
	"hydromon/internal/metrics"
	"hydromon/internal/repository"
)

// QueryService serves paged record listings and chart series.
type QueryService struct {
	stations repository.StationRepository
	readers  map[domain.Variant]seriesReader
}

// NewQueryService creates a QueryService.
func NewQueryService(stations repository.StationRepository, series SeriesRepositories) *QueryService {
	return &QueryService{
		stations: stations,
		readers:  newSeriesReaders(series),
	}
}

// ListRecords returns one page of active records. Page and size are clamped
// to 1 and 1..domain.MaxPageSize.
func (s *QueryService) ListRecords(ctx context.Context, req ListRequest) (*domain.RecordPage, error) {
	rd, err := readerFor(s.readers, req.Variant)
	if err != nil {
		return nil, err
	}

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.QueryDuration.WithLabelValues(req.Variant, "list"))

	sort := domain.SortOrder(strings.ToLower(strings.TrimSpace(req.Sort)))
	if sort == "" {
		sort = domain.SortTimeDesc
	}
	if !sort.IsValid() {
		return nil, fmt.Errorf("%w: sort must be %s or %s", ErrInvalidFilter, domain.SortTimeDesc, domain.SortTimeAsc)
	}

	filter, err := resolveRecordFilter(ctx, s.stations, req.filterParams())
	if err != nil {
		return nil, err
	}

	q := domain.PageQuery{Filter: filter, Sort: sort, Page: req.Page, Size: req.Size}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 {
		q.Size = domain.DefaultPageSize
	}
	if q.Size > domain.MaxPageSize {
		logger.FromContext(ctx).WarnContext(ctx, "Page size clamped",
			slog.Int("requested", q.Size),
			slog.Int("max", domain.MaxPageSize))
		q.Size = domain.MaxPageSize
	}

	page, err := rd.page(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list %s records: %w", req.Variant, err)
	}
	return &page, nil
}

// Chart averages one measurement field of a station per interval.
func (s *QueryService) Chart(ctx context.Context, req ChartRequest) (*domain.ChartSeries, error) {
	rd, err := readerFor(s.readers, req.Variant)
	if err != nil {
		return nil, err
	}

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.QueryDuration.WithLabelValues(req.Variant, "chart"))

	fields := rd.fields()
	req.StationCode = strings.TrimSpace(req.StationCode)
	req.Start = strings.TrimSpace(req.Start)
	req.End = strings.TrimSpace(req.End)
	req.Interval = strings.ToLower(strings.TrimSpace(req.Interval))
	req.Field = strings.TrimSpace(req.Field)
	if req.Interval == "" {
		req.Interval = string(domain.IntervalHour)
	}
	if req.Field == "" {
		req.Field = fields[0]
	}

	intervals := make([]interface{}, len(domain.ValidIntervals))
	for i, v := range domain.ValidIntervals {
		intervals[i] = string(v)
	}
	allowed := make([]interface{}, len(fields))
	for i, f := range fields {
		allowed[i] = f
	}
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.StationCode, validation.Required),
		validation.Field(&req.Start, validation.By(monitoringTimeRule)),
		validation.Field(&req.End, validation.By(monitoringTimeRule)),
		validation.Field(&req.Interval, validation.In(intervals...).Error("must be hour, day, week or month")),
		validation.Field(&req.Field, validation.In(allowed...).
			Error("must be one of "+strings.Join(fields, ", "))),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	start, end, err := timeBounds(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	station, err := activeStation(ctx, s.stations, req.StationCode)
	if err != nil {
		return nil, err
	}

	interval := domain.ChartInterval(req.Interval)
	points, err := rd.aggregate(ctx, domain.ChartQuery{
		StationID: station.ID,
		Start:     start,
		End:       end,
		Interval:  interval,
		Field:     req.Field,
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate %s records: %w", req.Variant, err)
	}

	series := &domain.ChartSeries{
		StationCode: station.Code,
		Field:       req.Field,
		Interval:    interval,
		Labels:      make([]string, len(points)),
		Values:      make([]*decimal.Decimal, len(points)),
	}
	for i, p := range points {
		series.Labels[i] = p.Bucket.Format(interval.LabelLayout())
		series.Values[i] = p.Value
	}
	return series, nil
}
