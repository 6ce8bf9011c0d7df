package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"hydromon/internal/domain"
)

// maxExcelSerial is 9999-12-31, the last date Excel can represent.
const maxExcelSerial = 2958465

const (
	templateDataSheet         = "data"
	templateInstructionsSheet = "instructions"
)

// DecodeXLSX reads the first sheet of a workbook: a header row followed by
// data rows. Row numbers are sheet row numbers, so the first data row is row 2.
// Monitoring times stored as numeric or date cells are converted to the text
// layout; text cells are taken as written.
func DecodeXLSX[M domain.Measurement](r io.Reader) (domain.ImportBatch[M], error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.ImportBatch[M]{}, fmt.Errorf("%w: open workbook: %v", ErrMalformedInput, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.ImportBatch[M]{}, fmt.Errorf("%w: workbook has no sheets", ErrMalformedInput)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return domain.ImportBatch[M]{}, fmt.Errorf("%w: read sheet: %v", ErrMalformedInput, err)
	}
	defer func() { _ = rows.Close() }()

	var table *tableDecoder[M]
	timeCol := -1
	rowNumber := 0

	for rows.Next() {
		rowNumber++
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return domain.ImportBatch[M]{}, fmt.Errorf("%w: row %d: %v", ErrMalformedInput, rowNumber, err)
		}

		if table == nil {
			if isBlank(cols) {
				return domain.ImportBatch[M]{}, fmt.Errorf("%w: first row must be the header", ErrMalformedInput)
			}
			if table, err = newTableDecoder[M](cols); err != nil {
				return domain.ImportBatch[M]{}, err
			}
			timeCol, _ = table.index(ColMonitoringTime)
			continue
		}

		if timeCol >= 0 && timeCol < len(cols) {
			numeric, err := isNumericCell(f, sheets[0], timeCol, rowNumber)
			if err != nil {
				return domain.ImportBatch[M]{}, fmt.Errorf("%w: row %d: %v", ErrMalformedInput, rowNumber, err)
			}
			if numeric {
				cols[timeCol] = serialToLayout(cols[timeCol])
			}
		}
		table.add(rowNumber, cols)
	}
	if err := rows.Error(); err != nil {
		return domain.ImportBatch[M]{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	if table == nil {
		return domain.ImportBatch[M]{}, fmt.Errorf("%w: empty sheet", ErrMalformedInput)
	}
	return table.batch, nil
}

// isNumericCell reports whether the cell holds a number or a date rather than text.
func isNumericCell(f *excelize.File, sheet string, col, row int) (bool, error) {
	axis, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return false, err
	}
	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return false, err
	}
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeDate:
		return true, nil
	}
	return false, nil
}

// serialToLayout converts an Excel date serial to the monitoring time layout.
// Anything that is not a serial number is returned unchanged.
func serialToLayout(cell string) string {
	v := strings.TrimSpace(cell)
	serial, err := strconv.ParseFloat(v, 64)
	if err != nil || serial <= 0 || serial > maxExcelSerial {
		return cell
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return cell
	}
	// serials carry float noise; round to the nearest second
	return t.Round(time.Second).Format(domain.MonitoringTimeLayout)
}

// WriteTemplate renders an import workbook for M: a data sheet holding the
// header and one example row, plus an instructions sheet.
func WriteTemplate[M domain.Measurement](w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", templateDataSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := Header[M]()
	example := exampleRow[M]()
	for i := range header {
		if err := setCell(f, templateDataSheet, i+1, 1, header[i]); err != nil {
			return err
		}
		if err := setCell(f, templateDataSheet, i+1, 2, example[i]); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return fmt.Errorf("column name: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(templateDataSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	// text format keeps monitoring times from being turned into dates
	text, err := f.NewStyle(&excelize.Style{NumFmt: 49})
	if err != nil {
		return fmt.Errorf("create text style: %w", err)
	}
	if err := f.SetColStyle(templateDataSheet, "A:C", text); err != nil {
		return fmt.Errorf("style text columns: %w", err)
	}
	if err := f.SetColWidth(templateDataSheet, "A", lastCol, 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if _, err := f.NewSheet(templateInstructionsSheet); err != nil {
		return fmt.Errorf("create instructions sheet: %w", err)
	}
	for i, line := range instructions[M]() {
		if err := setCell(f, templateInstructionsSheet, 1, i+1, line); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellStr(sheet, cell, value); err != nil {
		return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
	}
	return nil
}

func exampleRow[M domain.Measurement]() []string {
	row := []string{"ST001", "Example station", "2024-01-01 08:00:00"}
	for _, name := range domain.FieldNames[M]() {
		v := "0"
		if name == "ph_value" {
			v = "7"
		}
		row = append(row, v)
	}
	return append(row, "1", string(domain.CollectionManual), domain.DefaultDataSource, "")
}

func instructions[M domain.Measurement]() []string {
	var zero M
	lines := []string{
		fmt.Sprintf("Import template for %s monitoring data", zero.Variant()),
		"station_code and monitoring_time are required.",
		fmt.Sprintf("monitoring_time format: %s", domain.MonitoringTimeLayout),
		"At least one measurement column must hold a value.",
		"data_quality: 1 normal, 2 abnormal, 3 missing (default 1).",
		"collection_method: AUTO or MANUAL (default MANUAL).",
		fmt.Sprintf("data_source defaults to %s.", domain.DefaultDataSource),
		"Unknown station codes create a new station named after station_name.",
	}
	for _, f := range zero.Fields() {
		var bounds []string
		if f.NonNegative {
			bounds = append(bounds, ">= 0")
		}
		if f.Min != nil {
			bounds = append(bounds, ">= "+f.Min.String())
		}
		if f.Max != nil {
			bounds = append(bounds, "<= "+f.Max.String())
		}
		if len(bounds) > 0 {
			lines = append(lines, fmt.Sprintf("%s: %s", f.Name, strings.Join(bounds, ", ")))
		}
	}
	return lines
}
