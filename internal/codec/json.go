package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"hydromon/internal/domain"
)

// jsonRow holds the variant-independent fields of a JSON row. Measurement
// fields sit next to them and are decoded into M separately.
type jsonRow struct {
	RowNumber        int    `json:"rowNumber"`
	StationCode      string `json:"stationCode"`
	StationName      string `json:"stationName"`
	MonitoringTime   string `json:"monitoringTime"`
	DataQuality      *int   `json:"dataQuality"`
	CollectionMethod string `json:"collectionMethod"`
	DataSource       string `json:"dataSource"`
	Remark           string `json:"remark"`
}

// DecodeJSON reads a JSON array of row objects. A row whose values cannot be
// decoded is rejected on its own; a body that is not an array fails as a whole.
// Rows without a rowNumber are numbered by position, starting at 1.
func DecodeJSON[M domain.Measurement](r io.Reader) (domain.ImportBatch[M], error) {
	var batch domain.ImportBatch[M]
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return batch, fmt.Errorf("%w: empty body", ErrMalformedInput)
	}
	if err != nil {
		return batch, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return batch, fmt.Errorf("%w: expected a JSON array of rows", ErrMalformedInput)
	}

	position := 0
	for dec.More() {
		position++

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return batch, fmt.Errorf("%w: row %d: %v", ErrMalformedInput, position, err)
		}

		row, rowErr := decodeJSONRow[M](raw, position)
		if rowErr != nil {
			batch.Rejected = append(batch.Rejected, *rowErr)
			continue
		}
		batch.Rows = append(batch.Rows, row)
	}

	if _, err := dec.Token(); err != nil {
		return batch, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return batch, nil
}

func decodeJSONRow[M domain.Measurement](raw json.RawMessage, position int) (domain.ImportRow[M], *domain.ImportError) {
	var head jsonRow
	headErr := json.Unmarshal(raw, &head)

	rowNumber := head.RowNumber
	if rowNumber <= 0 {
		rowNumber = position
	}

	var m M
	if headErr == nil {
		headErr = json.Unmarshal(raw, &m)
	}
	if headErr != nil {
		return domain.ImportRow[M]{}, &domain.ImportError{
			RowNumber:   rowNumber,
			StationCode: head.StationCode,
			Kind:        domain.ErrMalformedValue,
			Message:     fmt.Sprintf("malformed row: %v", headErr),
		}
	}

	return domain.ImportRow[M]{
		RowNumber:        rowNumber,
		StationCode:      head.StationCode,
		StationName:      head.StationName,
		MonitoringTime:   head.MonitoringTime,
		Measurement:      m,
		DataQuality:      head.DataQuality,
		CollectionMethod: head.CollectionMethod,
		DataSource:       head.DataSource,
		Remark:           head.Remark,
	}, nil
}
