package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"hydromon/internal/domain"
)

// DecodeCSV reads a header line followed by data lines. Row numbers are file
// line numbers, so the first data line is row 2.
func DecodeCSV[M domain.Measurement](r io.Reader) (domain.ImportBatch[M], error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.ImportBatch[M]{}, fmt.Errorf("%w: empty file", ErrMalformedInput)
	}
	if err != nil {
		return domain.ImportBatch[M]{}, fmt.Errorf("%w: read CSV header: %v", ErrMalformedInput, err)
	}

	table, err := newTableDecoder[M](header)
	if err != nil {
		return domain.ImportBatch[M]{}, err
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.ImportBatch[M]{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		line, _ := reader.FieldPos(0)
		table.add(line, record)
	}

	return table.batch, nil
}
