package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hydromon/internal/domain"
	"hydromon/internal/logger"
	"hydromon/internal/service"
)

// QueryHandler serves record listings and chart series.
type QueryHandler struct {
	queryService service.QueryServiceInterface
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(queryService service.QueryServiceInterface) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// ListRecordsRequest represents query parameters for a record listing.
type ListRecordsRequest struct {
	StationCode      string `form:"station_code"`
	Start            string `form:"start"`
	End              string `form:"end"`
	DataQuality      string `form:"data_quality"`
	CollectionMethod string `form:"collection_method"`
	DataSource       string `form:"data_source"`
	Sort             string `form:"sort"`
	Page             int    `form:"page"`
	Size             int    `form:"size"`
}

// ChartQueryRequest represents query parameters for a chart series.
type ChartQueryRequest struct {
	StationCode string `form:"station_code"`
	Start       string `form:"start"`
	End         string `form:"end"`
	Interval    string `form:"interval"`
	Field       string `form:"field"`
}

// RecordResponse represents one stored record in the API response.
type RecordResponse struct {
	StationCode      string                      `json:"stationCode"`
	StationName      string                      `json:"stationName"`
	MonitoringTime   string                      `json:"monitoringTime"`
	Values           map[string]*decimal.Decimal `json:"values"`
	DataQuality      int                         `json:"dataQuality"`
	CollectionMethod string                      `json:"collectionMethod"`
	DataSource       string                      `json:"dataSource"`
	Remark           string                      `json:"remark,omitempty"`
}

// RecordPageResponse represents one page of records.
type RecordPageResponse struct {
	Items []RecordResponse `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}

func toRecordPageResponse(page *domain.RecordPage) RecordPageResponse {
	response := RecordPageResponse{
		Items: make([]RecordResponse, 0, len(page.Items)),
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
	}
	for _, r := range page.Items {
		values := make(map[string]*decimal.Decimal, len(page.Fields))
		for i, name := range page.Fields {
			if i < len(r.Values) {
				values[name] = r.Values[i]
			}
		}
		response.Items = append(response.Items, RecordResponse{
			StationCode:      r.StationCode,
			StationName:      r.StationName,
			MonitoringTime:   r.MonitoringTime.Format(domain.MonitoringTimeLayout),
			Values:           values,
			DataQuality:      int(r.Quality),
			CollectionMethod: string(r.CollectionMethod),
			DataSource:       r.DataSource,
			Remark:           r.Remark,
		})
	}
	return response
}

// ListRecords handles GET /api/v1/monitoring/:variant/records
func (h *QueryHandler) ListRecords(c *gin.Context) {
	variant := c.Param("variant")
	if !domain.IsValidVariant(variant) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown monitoring variant: " + variant})
		return
	}

	var query ListRecordsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.queryService.ListRecords(c.Request.Context(), service.ListRequest{
		Variant:          variant,
		StationCode:      query.StationCode,
		Start:            query.Start,
		End:              query.End,
		DataQuality:      query.DataQuality,
		CollectionMethod: query.CollectionMethod,
		DataSource:       query.DataSource,
		Sort:             query.Sort,
		Page:             query.Page,
		Size:             query.Size,
	})
	if err != nil {
		h.writeError(c, "List records failed", err)
		return
	}

	c.JSON(http.StatusOK, toRecordPageResponse(page))
}

// GetChart handles GET /api/v1/monitoring/:variant/chart
func (h *QueryHandler) GetChart(c *gin.Context) {
	variant := c.Param("variant")
	if !domain.IsValidVariant(variant) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown monitoring variant: " + variant})
		return
	}

	var query ChartQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.queryService.Chart(c.Request.Context(), service.ChartRequest{
		Variant:     variant,
		StationCode: query.StationCode,
		Start:       query.Start,
		End:         query.End,
		Interval:    query.Interval,
		Field:       query.Field,
	})
	if err != nil {
		h.writeError(c, "Chart query failed", err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

func (h *QueryHandler) writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownVariant), errors.Is(err, service.ErrStationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx := c.Request.Context()
		logger.FromContext(ctx).ErrorContext(ctx, msg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query monitoring data"})
	}
}
