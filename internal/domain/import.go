package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonitoringTimeLayout is the only accepted monitoring time format.
const MonitoringTimeLayout = "2006-01-02 15:04:05"

// ParseMonitoringTime parses s as a UTC wall-clock time in MonitoringTimeLayout.
// Input that does not format back to itself, such as fractional seconds or
// unpadded fields, is rejected.
func ParseMonitoringTime(s string) (time.Time, error) {
	t, err := time.Parse(MonitoringTimeLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(MonitoringTimeLayout) != s {
		return time.Time{}, fmt.Errorf("monitoring time %q is not in layout %s", s, MonitoringTimeLayout)
	}
	return t, nil
}

// Variant identifies a monitoring data family.
type Variant string

const (
	VariantFlow         Variant = "flow"
	VariantWaterLevel   Variant = "water-level"
	VariantWaterQuality Variant = "water-quality"
	VariantRainfall     Variant = "rainfall"
)

// ValidVariants contains all importable variants.
var ValidVariants = []Variant{VariantFlow, VariantWaterLevel, VariantWaterQuality, VariantRainfall}

// IsValidVariant checks if a variant key is valid.
func IsValidVariant(v string) bool {
	for _, vv := range ValidVariants {
		if string(vv) == v {
			return true
		}
	}
	return false
}

// StationKind returns the kind tag given to stations auto-created by this variant.
func (v Variant) StationKind() StationKind {
	switch v {
	case VariantFlow:
		return StationKindFlow
	case VariantWaterLevel:
		return StationKindWaterLevel
	case VariantWaterQuality:
		return StationKindWaterQuality
	case VariantRainfall:
		return StationKindRainfall
	}
	return ""
}

// Quality is the reliability code of a measurement.
type Quality int

const (
	QualityNormal   Quality = 1
	QualityAbnormal Quality = 2
	QualityMissing  Quality = 3
)

func (q Quality) String() string {
	switch q {
	case QualityNormal:
		return "normal"
	case QualityAbnormal:
		return "abnormal"
	case QualityMissing:
		return "missing"
	}
	return "unknown"
}

// CollectionMethod records how a measurement was collected.
type CollectionMethod string

const (
	CollectionAutomatic CollectionMethod = "AUTO"
	CollectionManual    CollectionMethod = "MANUAL"
)

// DefaultDataSource tags records whose row carried no data source.
const DefaultDataSource = "EXCEL_IMPORT"

// ImportRow is one raw row of an import submission.
type ImportRow[M Measurement] struct {
	RowNumber        int
	StationCode      string
	StationName      string
	MonitoringTime   string
	Measurement      M
	DataQuality      *int
	CollectionMethod string
	DataSource       string
	Remark           string
}

// ValidRow is a row that passed validation but whose station is not resolved yet.
type ValidRow[M Measurement] struct {
	RowNumber        int
	StationCode      string
	StationName      string
	MonitoringTime   time.Time
	Measurement      M
	Quality          Quality
	CollectionMethod CollectionMethod
	DataSource       string
	Remark           string
}

// Resolve binds the row to an internal station identifier.
func (r ValidRow[M]) Resolve(stationID int64) ValidatedRecord[M] {
	return ValidatedRecord[M]{
		RowNumber:        r.RowNumber,
		StationCode:      r.StationCode,
		StationID:        stationID,
		MonitoringTime:   r.MonitoringTime,
		Measurement:      r.Measurement,
		Quality:          r.Quality,
		CollectionMethod: r.CollectionMethod,
		DataSource:       r.DataSource,
		Remark:           r.Remark,
	}
}

// ValidatedRecord is a fully normalized record ready for persistence.
type ValidatedRecord[M Measurement] struct {
	RowNumber        int
	StationCode      string
	StationID        int64
	MonitoringTime   time.Time
	Measurement      M
	Quality          Quality
	CollectionMethod CollectionMethod
	DataSource       string
	Remark           string
}

// Key returns the dedup key of the record.
func (r ValidatedRecord[M]) Key() DedupKey {
	return NewDedupKey(r.StationID, r.MonitoringTime)
}

// DedupKey identifies at most one persisted record.
type DedupKey struct {
	StationID int64
	Unix      int64
}

// NewDedupKey builds the key for a station and monitoring time.
func NewDedupKey(stationID int64, at time.Time) DedupKey {
	return DedupKey{StationID: stationID, Unix: at.Unix()}
}

// StoredRecord is a persisted record read back for export.
type StoredRecord struct {
	ID               int64
	StationID        int64
	StationCode      string
	StationName      string
	MonitoringTime   time.Time
	Values           []*decimal.Decimal
	Quality          Quality
	CollectionMethod CollectionMethod
	DataSource       string
	Remark           string
}

// ErrorKind classifies a rejected row.
type ErrorKind string

const (
	ErrMissingField       ErrorKind = "missing_field"
	ErrTimestampFormat    ErrorKind = "timestamp_format"
	ErrNoMeasurement      ErrorKind = "no_measurement"
	ErrNegativeValue      ErrorKind = "negative_value"
	ErrOutOfRange         ErrorKind = "out_of_range"
	ErrInvalidEnum        ErrorKind = "invalid_enum"
	ErrMalformedValue     ErrorKind = "malformed_value"
	ErrInvalidReference   ErrorKind = "invalid_reference"
	ErrDuplicateInBatch   ErrorKind = "duplicate_in_batch"
	ErrDuplicateInStore   ErrorKind = "duplicate_in_store"
	ErrPersistenceFailure ErrorKind = "persistence_failure"
)

// IsDuplicate reports whether the kind counts towards duplicateRows.
func (k ErrorKind) IsDuplicate() bool {
	return k == ErrDuplicateInBatch || k == ErrDuplicateInStore
}

// ImportError represents a per-row rejection.
type ImportError struct {
	RowNumber   int       `json:"rowNumber"`
	StationCode string    `json:"stationCode"`
	Kind        ErrorKind `json:"kind"`
	Message     string    `json:"error"`
}

// ImportResult represents the final result of an import operation.
type ImportResult struct {
	TotalRows     int           `json:"totalRows"`
	SuccessRows   int           `json:"successRows"`
	ErrorRows     int           `json:"errorRows"`
	DuplicateRows int           `json:"duplicateRows"`
	Errors        []ImportError `json:"errors"`
}

// RecordFilter narrows a listing or export of persisted records. Nil fields
// do not filter. Start is inclusive and End exclusive.
type RecordFilter struct {
	StationID        *int64
	Start            *time.Time
	End              *time.Time
	Quality          *Quality
	CollectionMethod *CollectionMethod
	DataSource       *string
}

// ImportBatch is one decoded submission: the rows that decoded and the rows
// rejected while decoding.
type ImportBatch[M Measurement] struct {
	Rows     []ImportRow[M]
	Rejected []ImportError
}

// Len returns the number of submitted rows.
func (b ImportBatch[M]) Len() int {
	return len(b.Rows) + len(b.Rejected)
}
