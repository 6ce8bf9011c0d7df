// Package codec decodes import submissions into typed rows and renders the
// matching spreadsheet templates.
package codec

import (
	"errors"
	"path/filepath"
	"strings"

	"hydromon/internal/domain"
)

// Format is an accepted upload encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var (
	// ErrMalformedInput means the submission as a whole could not be decoded.
	ErrMalformedInput = errors.New("malformed import input")
	// ErrUnsupportedFormat means the file extension is not csv or xlsx.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Common columns, in template order around the measurement columns.
const (
	ColStationCode      = "station_code"
	ColStationName      = "station_name"
	ColMonitoringTime   = "monitoring_time"
	ColDataQuality      = "data_quality"
	ColCollectionMethod = "collection_method"
	ColDataSource       = "data_source"
	ColRemark           = "remark"
)

// DetectFormat picks the decoder for an uploaded file name.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", ErrUnsupportedFormat
}

// Header returns the column layout shared by templates, file imports and exports.
func Header[M domain.Measurement]() []string {
	header := []string{ColStationCode, ColStationName, ColMonitoringTime}
	header = append(header, domain.FieldNames[M]()...)
	return append(header, ColDataQuality, ColCollectionMethod, ColDataSource, ColRemark)
}
