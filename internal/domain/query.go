package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 1000
)

// SortOrder orders listed records by monitoring time.
type SortOrder string

const (
	SortTimeDesc SortOrder = "time_desc"
	SortTimeAsc  SortOrder = "time_asc"
)

// IsValid checks if a sort order is supported.
func (s SortOrder) IsValid() bool {
	return s == SortTimeDesc || s == SortTimeAsc
}

// PageQuery selects one page of persisted records.
type PageQuery struct {
	Filter RecordFilter
	Sort   SortOrder
	// Page is 1-based.
	Page int
	Size int
}

// Offset returns the number of records before the page.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Size
}

// RecordPage is one page of records together with the total match count.
type RecordPage struct {
	// Fields names the measurement values of every item, in order.
	Fields []string
	Items  []StoredRecord
	Total  int
	Page   int
	Size   int
}

// ChartInterval is the bucket width of a chart series.
type ChartInterval string

const (
	IntervalHour  ChartInterval = "hour"
	IntervalDay   ChartInterval = "day"
	IntervalWeek  ChartInterval = "week"
	IntervalMonth ChartInterval = "month"
)

// ValidIntervals contains all chart intervals.
var ValidIntervals = []ChartInterval{IntervalHour, IntervalDay, IntervalWeek, IntervalMonth}

// IsValid checks if an interval is supported.
func (i ChartInterval) IsValid() bool {
	for _, v := range ValidIntervals {
		if v == i {
			return true
		}
	}
	return false
}

// LabelLayout returns the time layout used for bucket labels.
// Week buckets are labelled with the Monday that starts them.
func (i ChartInterval) LabelLayout() string {
	switch i {
	case IntervalHour:
		return "2006-01-02 15:00"
	case IntervalMonth:
		return "2006-01"
	}
	return "2006-01-02"
}

// ChartQuery selects the interval averages of one measurement field at one station.
type ChartQuery struct {
	StationID int64
	Start     *time.Time
	End       *time.Time
	Interval  ChartInterval
	Field     string
}

// ChartPoint is the average of a field over the bucket starting at Bucket.
// Value is nil when no record in the bucket carries the field.
type ChartPoint struct {
	Bucket time.Time
	Value  *decimal.Decimal
}

// ChartSeries is a labelled series of interval averages.
type ChartSeries struct {
	StationCode string             `json:"stationCode"`
	Field       string             `json:"field"`
	Interval    ChartInterval      `json:"interval"`
	Labels      []string           `json:"labels"`
	Values      []*decimal.Decimal `json:"values"`
}
