package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"hydromon/internal/domain"
)

// fakeStations is an in-memory station directory.
type fakeStations struct {
	mu      sync.Mutex
	ids     map[string]int64
	names   map[string]string
	kinds   map[string]domain.StationKind
	nextID  int64
	creates int
	findErr error
}

func newFakeStations(existing ...string) *fakeStations {
	s := &fakeStations{
		ids:    map[string]int64{},
		names:  map[string]string{},
		kinds:  map[string]domain.StationKind{},
		nextID: 100,
	}
	for _, code := range existing {
		s.nextID++
		s.ids[code] = s.nextID
		s.names[code] = code
	}
	return s
}

func (s *fakeStations) FindByCodes(_ context.Context, codes []string) ([]domain.StationRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	var refs []domain.StationRef
	for _, c := range codes {
		if id, ok := s.ids[c]; ok {
			refs = append(refs, domain.StationRef{Code: c, ID: id})
		}
	}
	return refs, nil
}

func (s *fakeStations) Create(_ context.Context, code, name string, kind domain.StationKind) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.ids[code]; ok {
		return id, nil
	}
	s.creates++
	s.nextID++
	s.ids[code] = s.nextID
	s.names[code] = name
	s.kinds[code] = kind
	return s.nextID, nil
}

func (s *fakeStations) GetByCode(_ context.Context, code string) (*domain.Station, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.ids[code]
	if !ok {
		return nil, nil
	}
	return &domain.Station{ID: id, Code: code, Name: s.names[code], Kind: s.kinds[code]}, nil
}

// fakeSeries is an in-memory time-series store with an active-key uniqueness
// constraint and all-or-nothing batches.
type fakeSeries[M domain.Measurement] struct {
	mu          sync.Mutex
	rows        map[domain.DedupKey]domain.ValidatedRecord[M]
	insertSizes []int
	existsSizes []int
	failInsert  int // 1-based InsertBatch call that fails; 0 never
	existsErr   error
}

func newFakeSeries[M domain.Measurement]() *fakeSeries[M] {
	return &fakeSeries[M]{rows: map[domain.DedupKey]domain.ValidatedRecord[M]{}}
}

func (f *fakeSeries[M]) ExistingTimes(_ context.Context, stationID int64, times []time.Time) ([]time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.existsSizes = append(f.existsSizes, len(times))
	if f.existsErr != nil {
		return nil, f.existsErr
	}
	var found []time.Time
	for _, t := range times {
		if _, ok := f.rows[domain.NewDedupKey(stationID, t)]; ok {
			found = append(found, t)
		}
	}
	return found, nil
}

func (f *fakeSeries[M]) InsertBatch(_ context.Context, records []domain.ValidatedRecord[M]) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertSizes = append(f.insertSizes, len(records))
	if f.failInsert == len(f.insertSizes) {
		return errors.New("connection reset by peer")
	}
	staged := make(map[domain.DedupKey]struct{}, len(records))
	for _, r := range records {
		if _, ok := f.rows[r.Key()]; ok {
			return fmt.Errorf("unique violation for station %d at %s", r.StationID, r.MonitoringTime)
		}
		if _, ok := staged[r.Key()]; ok {
			return fmt.Errorf("unique violation for station %d at %s", r.StationID, r.MonitoringTime)
		}
		staged[r.Key()] = struct{}{}
	}
	for _, r := range records {
		f.rows[r.Key()] = r
	}
	return nil
}

func matchesFilter[M domain.Measurement](filter domain.RecordFilter, r domain.ValidatedRecord[M]) bool {
	switch {
	case filter.StationID != nil && r.StationID != *filter.StationID:
		return false
	case filter.Start != nil && r.MonitoringTime.Before(*filter.Start):
		return false
	case filter.End != nil && !r.MonitoringTime.Before(*filter.End):
		return false
	case filter.Quality != nil && r.Quality != *filter.Quality:
		return false
	case filter.CollectionMethod != nil && r.CollectionMethod != *filter.CollectionMethod:
		return false
	case filter.DataSource != nil && r.DataSource != *filter.DataSource:
		return false
	}
	return true
}

func storedRecord[M domain.Measurement](r domain.ValidatedRecord[M]) domain.StoredRecord {
	values := make([]*decimal.Decimal, 0)
	for _, field := range r.Measurement.Fields() {
		values = append(values, field.Value)
	}
	return domain.StoredRecord{
		StationID:        r.StationID,
		StationCode:      r.StationCode,
		MonitoringTime:   r.MonitoringTime,
		Values:           values,
		Quality:          r.Quality,
		CollectionMethod: r.CollectionMethod,
		DataSource:       r.DataSource,
		Remark:           r.Remark,
	}
}

// matching returns the records matching filter ordered by station and time.
func (f *fakeSeries[M]) matching(filter domain.RecordFilter) []domain.ValidatedRecord[M] {
	f.mu.Lock()
	records := make([]domain.ValidatedRecord[M], 0, len(f.rows))
	for _, r := range f.rows {
		if matchesFilter(filter, r) {
			records = append(records, r)
		}
	}
	f.mu.Unlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].StationID != records[j].StationID {
			return records[i].StationID < records[j].StationID
		}
		return records[i].MonitoringTime.Before(records[j].MonitoringTime)
	})
	return records
}

func (f *fakeSeries[M]) StreamAll(_ context.Context, filter domain.RecordFilter, callback func(domain.StoredRecord) error) error {
	for _, r := range f.matching(filter) {
		if err := callback(storedRecord(r)); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeSeries[M]) ListPage(_ context.Context, q domain.PageQuery) (domain.RecordPage, error) {
	records := f.matching(q.Filter)
	sort.SliceStable(records, func(i, j int) bool {
		if q.Sort == domain.SortTimeAsc {
			return records[i].MonitoringTime.Before(records[j].MonitoringTime)
		}
		return records[i].MonitoringTime.After(records[j].MonitoringTime)
	})

	page := domain.RecordPage{
		Fields: domain.FieldNames[M](),
		Items:  []domain.StoredRecord{},
		Total:  len(records),
		Page:   q.Page,
		Size:   q.Size,
	}
	for i := q.Offset(); i < len(records) && i < q.Offset()+q.Size; i++ {
		page.Items = append(page.Items, storedRecord(records[i]))
	}
	return page, nil
}

func (f *fakeSeries[M]) Aggregate(context.Context, domain.ChartQuery) ([]domain.ChartPoint, error) {
	return nil, errors.New("fakeSeries does not aggregate")
}

func (f *fakeSeries[M]) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// flowRow builds a valid flow row at baseTime plus offset hours.
func flowRow(rowNumber int, code string, offset int, instant string) domain.ImportRow[domain.FlowMeasurement] {
	return domain.ImportRow[domain.FlowMeasurement]{
		RowNumber:      rowNumber,
		StationCode:    code,
		MonitoringTime: baseTime.Add(time.Duration(offset) * time.Hour).Format(domain.MonitoringTimeLayout),
		Measurement:    domain.FlowMeasurement{InstantFlow: dec(instant)},
	}
}

func flowBatch(rows ...domain.ImportRow[domain.FlowMeasurement]) domain.ImportBatch[domain.FlowMeasurement] {
	return domain.ImportBatch[domain.FlowMeasurement]{Rows: rows}
}
