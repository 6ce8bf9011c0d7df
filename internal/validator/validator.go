package validator

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"hydromon/internal/domain"
)

var (
	validCollectionMethods = []interface{}{
		string(domain.CollectionAutomatic),
		string(domain.CollectionManual),
	}

	// precedence decides which failure is reported when a row breaks several rules.
	precedence = []domain.ErrorKind{
		domain.ErrMissingField,
		domain.ErrTimestampFormat,
		domain.ErrNoMeasurement,
		domain.ErrNegativeValue,
		domain.ErrOutOfRange,
		domain.ErrInvalidEnum,
	}
)

const (
	fieldStationCode      = "station_code"
	fieldMonitoringTime   = "monitoring_time"
	fieldMeasurement      = "measurement"
	fieldDataQuality      = "data_quality"
	fieldCollectionMethod = "collection_method"
)

// ValidateRow validates one raw import row. It is a pure function of the row.
// On success the normalized row is returned with a nil error; otherwise the
// returned ImportError describes the single failure reported for the row.
func ValidateRow[M domain.Measurement](row domain.ImportRow[M]) (domain.ValidRow[M], *domain.ImportError) {
	code := strings.TrimSpace(row.StationCode)
	ts := strings.TrimSpace(row.MonitoringTime)
	method := strings.ToUpper(strings.TrimSpace(row.CollectionMethod))
	fields := row.Measurement.Fields()

	order := []string{fieldStationCode, fieldMonitoringTime, fieldMeasurement}
	errs := validation.Errors{
		fieldStationCode: validation.Validate(code,
			validation.Required.ErrorObject(newError(domain.ErrMissingField, "station code is required")),
		),
		fieldMonitoringTime: validation.Validate(ts,
			validation.Required.ErrorObject(newError(domain.ErrMissingField, "monitoring time is required")),
			validation.By(timestampRule),
		),
		fieldMeasurement: validation.Validate(row.Measurement, validation.By(hasMeasurementRule)),
	}
	for _, f := range fields {
		order = append(order, f.Name)
		errs[f.Name] = validation.Validate(f.Value, validation.By(boundsRule(f)))
	}
	order = append(order, fieldDataQuality, fieldCollectionMethod)
	errs[fieldDataQuality] = validation.Validate(row.DataQuality, validation.By(qualityRule))
	errs[fieldCollectionMethod] = validation.Validate(method,
		validation.In(validCollectionMethods...).ErrorObject(
			newError(domain.ErrInvalidEnum, "collection method must be AUTO or MANUAL")),
	)

	if err := errs.Filter(); err != nil {
		ie := selectError(row.RowNumber, row.StationCode, order, err)
		return domain.ValidRow[M]{}, &ie
	}

	// Already checked by timestampRule.
	at, _ := domain.ParseMonitoringTime(ts)

	valid := domain.ValidRow[M]{
		RowNumber:        row.RowNumber,
		StationCode:      code,
		StationName:      strings.TrimSpace(row.StationName),
		MonitoringTime:   at,
		Measurement:      row.Measurement,
		Quality:          domain.QualityNormal,
		CollectionMethod: domain.CollectionManual,
		DataSource:       strings.TrimSpace(row.DataSource),
		Remark:           row.Remark,
	}
	if row.DataQuality != nil {
		valid.Quality = domain.Quality(*row.DataQuality)
	}
	if method != "" {
		valid.CollectionMethod = domain.CollectionMethod(method)
	}
	if valid.DataSource == "" {
		valid.DataSource = domain.DefaultDataSource
	}
	return valid, nil
}

func newError(kind domain.ErrorKind, message string) validation.ErrorObject {
	return validation.NewError(string(kind), message).(validation.ErrorObject)
}

func timestampRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := domain.ParseMonitoringTime(s); err != nil {
		return newError(domain.ErrTimestampFormat, "monitoring time must be formatted as yyyy-MM-dd HH:mm:ss")
	}
	return nil
}

func hasMeasurementRule(value interface{}) error {
	m, ok := value.(domain.Measurement)
	if !ok || !domain.HasValue(m) {
		return newError(domain.ErrNoMeasurement, "row carries no measurement value")
	}
	return nil
}

func qualityRule(value interface{}) error {
	q, ok := value.(*int)
	if !ok || q == nil {
		return nil
	}
	switch domain.Quality(*q) {
	case domain.QualityNormal, domain.QualityAbnormal, domain.QualityMissing:
		return nil
	}
	return newError(domain.ErrInvalidEnum, "data quality must be 1 (normal), 2 (abnormal) or 3 (missing)")
}

// boundsRule checks a measurement field against its sign and range constraints.
func boundsRule(f domain.MeasurementField) validation.RuleFunc {
	return func(value interface{}) error {
		d, ok := value.(*decimal.Decimal)
		if !ok || d == nil {
			return nil
		}
		if f.NonNegative && d.IsNegative() {
			return newError(domain.ErrNegativeValue, fmt.Sprintf("%s must not be negative", f.Name))
		}
		if f.Min != nil && d.LessThan(*f.Min) {
			return newError(domain.ErrOutOfRange, fmt.Sprintf("%s must not be less than %s", f.Name, f.Min))
		}
		if f.Max != nil && d.GreaterThan(*f.Max) {
			return newError(domain.ErrOutOfRange, fmt.Sprintf("%s must not be greater than %s", f.Name, f.Max))
		}
		return nil
	}
}

// selectError converts ozzo validation errors to the one ImportError reported for the row.
func selectError(rowNum int, stationCode string, order []string, err error) domain.ImportError {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return domain.ImportError{
			RowNumber:   rowNum,
			StationCode: stationCode,
			Kind:        domain.ErrMalformedValue,
			Message:     err.Error(),
		}
	}

	for _, kind := range precedence {
		for _, field := range order {
			fieldErr, ok := ve[field]
			if !ok {
				continue
			}
			var vErr validation.Error
			if errors.As(fieldErr, &vErr) && vErr.Code() == string(kind) {
				return domain.ImportError{
					RowNumber:   rowNum,
					StationCode: stationCode,
					Kind:        kind,
					Message:     vErr.Message(),
				}
			}
		}
	}

	// Not reachable with the rules above.
	return domain.ImportError{
		RowNumber:   rowNum,
		StationCode: stationCode,
		Kind:        domain.ErrMalformedValue,
		Message:     ve.Error(),
	}
}
