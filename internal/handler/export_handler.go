package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"hydromon/internal/domain"
	"hydromon/internal/logger"
	"hydromon/internal/service"
)

// ExportHandler handles export-related HTTP requests.
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// StreamExportRequest represents query parameters for streaming export.
type StreamExportRequest struct {
	StationCode      string `form:"station_code"`
	Start            string `form:"start"`
	End              string `form:"end"`
	DataQuality      string `form:"data_quality"`
	CollectionMethod string `form:"collection_method"`
	DataSource       string `form:"data_source"`
}

// ginStreamWriter wraps gin.ResponseWriter for streaming. Response headers
// go out with the first chunk.
type ginStreamWriter struct {
	writer   gin.ResponseWriter
	filename string
	started  bool
}

func (w *ginStreamWriter) Write(data []byte) error {
	if !w.started {
		w.started = true
		header := w.writer.Header()
		header.Set("Content-Type", contentTypeCSV)
		header.Set("X-Content-Type-Options", "nosniff")
		header.Set("Content-Disposition", `attachment; filename="`+w.filename+`"`)
		w.writer.WriteHeader(http.StatusOK)
	}
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// StreamExport handles GET /api/v1/monitoring/:variant/export?station_code=&start=&end=&data_quality=&collection_method=&data_source=
func (h *ExportHandler) StreamExport(c *gin.Context) {
	variant := c.Param("variant")
	if !domain.IsValidVariant(variant) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown monitoring variant: " + variant})
		return
	}

	var query StreamExportRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	log := logger.FromContext(ctx)
	log.InfoContext(ctx, "Streaming export",
		slog.String("variant", variant),
		slog.String("station_code", query.StationCode))

	writer := &ginStreamWriter{writer: c.Writer, filename: variant + "-monitoring-data.csv"}
	count, err := h.exportService.StreamCSV(ctx, service.ExportRequest{
		Variant:          variant,
		StationCode:      query.StationCode,
		Start:            query.Start,
		End:              query.End,
		DataQuality:      query.DataQuality,
		CollectionMethod: query.CollectionMethod,
		DataSource:       query.DataSource,
	}, writer)
	if err != nil {
		if writer.started {
			// headers are gone; the truncated body is all the client gets
			log.ErrorContext(ctx, "Streaming export aborted",
				slog.Int("records", count),
				slog.String("error", err.Error()))
			return
		}
		switch {
		case errors.Is(err, service.ErrUnknownVariant), errors.Is(err, service.ErrStationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidFilter):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.ErrorContext(ctx, "Streaming export failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export monitoring data"})
		}
	}
}
