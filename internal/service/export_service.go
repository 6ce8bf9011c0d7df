package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"hydromon/internal/domain"
	"hydromon/internal/logger"
	"hydromon/internal/metrics"
	"hydromon/internal/repository"
)

const (
	// ExportFlushEvery is the number of CSV rows written between flushes.
	ExportFlushEvery = 1000
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportService streams persisted monitoring data as CSV in the import layout,
// so an export can be re-imported as is.
type ExportService struct {
	stations repository.StationRepository
	readers  map[domain.Variant]seriesReader
}

// NewExportService creates an ExportService.
func NewExportService(stations repository.StationRepository, series SeriesRepositories) *ExportService {
	return &ExportService{
		stations: stations,
		readers:  newSeriesReaders(series),
	}
}

// StreamCSV writes a UTF-8 BOM, the header and one line per record, flushing
// every ExportFlushEvery lines. Memory use does not depend on the record count.
func (s *ExportService) StreamCSV(ctx context.Context, req ExportRequest, writer StreamWriter) (int, error) {
	rd, err := readerFor(s.readers, req.Variant)
	if err != nil {
		return 0, err
	}

	filter, err := resolveRecordFilter(ctx, s.stations, req.filterParams())
	if err != nil {
		return 0, err
	}

	metrics.StartStreamingExport(req.Variant)
	startTime := time.Now()
	count := 0
	result := "success"
	defer func() {
		metrics.EndStreamingExport(req.Variant, result, time.Since(startTime).Seconds(), count)
	}()

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	csvWriter := csv.NewWriter(&buf)
	flush := func() error {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return err
		}
		if err := writer.Write(buf.Bytes()); err != nil {
			return err
		}
		buf.Reset()
		writer.Flush()
		return nil
	}

	if err := csvWriter.Write(rd.header()); err != nil {
		result = "error"
		return 0, fmt.Errorf("write header: %w", err)
	}

	err = rd.stream(ctx, filter, func(rec domain.StoredRecord) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := csvWriter.Write(recordLine(rec)); err != nil {
			return err
		}
		count++
		if count%ExportFlushEvery == 0 {
			return flush()
		}
		return nil
	})
	if err != nil {
		result = "error"
		return count, fmt.Errorf("stream %s records: %w", req.Variant, err)
	}

	if err := flush(); err != nil {
		result = "error"
		return count, fmt.Errorf("flush export: %w", err)
	}

	logger.FromContext(ctx).InfoContext(ctx, "Streaming export completed",
		slog.String("variant", req.Variant),
		slog.Int("records", count),
		slog.Duration("elapsed", time.Since(startTime).Round(time.Millisecond)))

	return count, nil
}

func recordLine(rec domain.StoredRecord) []string {
	line := make([]string, 0, len(rec.Values)+7)
	line = append(line, rec.StationCode, rec.StationName, rec.MonitoringTime.Format(domain.MonitoringTimeLayout))
	for _, v := range rec.Values {
		if v == nil {
			line = append(line, "")
			continue
		}
		line = append(line, v.String())
	}
	return append(line,
		strconv.Itoa(int(rec.Quality)),
		string(rec.CollectionMethod),
		rec.DataSource,
		rec.Remark)
}
