package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"hydromon/internal/domain"
)

// tableDecoder maps header-addressed records (CSV lines, sheet rows) to rows of M.
type tableDecoder[M domain.Measurement] struct {
	colMap map[string]int
	fields []string
	batch  domain.ImportBatch[M]
}

// normalizeColumn folds snake_case, camelCase and spaced headers to one key.
func normalizeColumn(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(s)
}

func newTableDecoder[M domain.Measurement](header []string) (*tableDecoder[M], error) {
	t := &tableDecoder[M]{
		colMap: make(map[string]int, len(header)),
		fields: domain.FieldNames[M](),
	}
	for i, col := range header {
		key := normalizeColumn(col)
		if _, dup := t.colMap[key]; !dup && key != "" {
			t.colMap[key] = i
		}
	}

	var missing []string
	for _, col := range []string{ColStationCode, ColMonitoringTime} {
		if !t.has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required columns: %s", ErrMalformedInput, strings.Join(missing, ", "))
	}

	hasMeasurement := false
	for _, f := range t.fields {
		hasMeasurement = hasMeasurement || t.has(f)
	}
	if !hasMeasurement {
		return nil, fmt.Errorf("%w: no measurement column, expected one of: %s",
			ErrMalformedInput, strings.Join(t.fields, ", "))
	}

	return t, nil
}

func (t *tableDecoder[M]) has(col string) bool {
	_, ok := t.colMap[normalizeColumn(col)]
	return ok
}

func (t *tableDecoder[M]) index(col string) (int, bool) {
	idx, ok := t.colMap[normalizeColumn(col)]
	return idx, ok
}

func (t *tableDecoder[M]) cell(record []string, col string) string {
	if idx, ok := t.index(col); ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

// add decodes one record. Blank records are skipped and not counted.
func (t *tableDecoder[M]) add(rowNumber int, record []string) {
	if isBlank(record) {
		return
	}

	row, rowErr := t.decode(rowNumber, record)
	if rowErr != nil {
		t.batch.Rejected = append(t.batch.Rejected, *rowErr)
		return
	}
	t.batch.Rows = append(t.batch.Rows, row)
}

func (t *tableDecoder[M]) decode(rowNumber int, record []string) (domain.ImportRow[M], *domain.ImportError) {
	row := domain.ImportRow[M]{
		RowNumber:        rowNumber,
		StationCode:      t.cell(record, ColStationCode),
		StationName:      t.cell(record, ColStationName),
		MonitoringTime:   t.cell(record, ColMonitoringTime),
		CollectionMethod: t.cell(record, ColCollectionMethod),
		DataSource:       t.cell(record, ColDataSource),
		Remark:           t.cell(record, ColRemark),
	}
	malformed := func(msg string) *domain.ImportError {
		return &domain.ImportError{
			RowNumber:   rowNumber,
			StationCode: row.StationCode,
			Kind:        domain.ErrMalformedValue,
			Message:     msg,
		}
	}

	values := make(map[string]*decimal.Decimal, len(t.fields))
	for _, name := range t.fields {
		raw := t.cell(record, name)
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return row, malformed(fmt.Sprintf("%s is not a number: %q", name, raw))
		}
		values[name] = &d
	}
	row.Measurement = domain.NewMeasurement[M](values)

	if raw := t.cell(record, ColDataQuality); raw != "" {
		q, err := strconv.Atoi(raw)
		if err != nil {
			return row, malformed(fmt.Sprintf("data quality is not an integer: %q", raw))
		}
		row.DataQuality = &q
	}

	return row, nil
}

func isBlank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
