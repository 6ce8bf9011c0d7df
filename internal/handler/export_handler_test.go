package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hydromon/internal/mocks"
	"hydromon/internal/service"
)

func newExportRouter(h *ExportHandler) *gin.Engine {
	router := gin.New()
	router.GET("/api/v1/monitoring/:variant/export", h.StreamExport)
	return router
}

func TestExportHandler_StreamExport(t *testing.T) {
	t.Run("streams csv with filters", func(t *testing.T) {
		mockService := mocks.NewMockExportServiceInterface(t)
		mockService.EXPECT().
			StreamCSV(mock.Anything, service.ExportRequest{
				Variant:          "water-quality",
				StationCode:      "WQ01",
				Start:            "2024-01-01 00:00:00",
				End:              "2024-02-01 00:00:00",
				DataQuality:      "2",
				CollectionMethod: "AUTO",
				DataSource:       "SCADA",
			}, mock.Anything).
			RunAndReturn(func(_ context.Context, _ service.ExportRequest, w service.StreamWriter) (int, error) {
				if err := w.Write([]byte("\ufeffstation_code\nWQ01\n")); err != nil {
					return 0, err
				}
				w.Flush()
				return 1, nil
			})

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/monitoring/water-quality/export?station_code=WQ01&start=2024-01-01+00:00:00&end=2024-02-01+00:00:00"+
			"&data_quality=2&collection_method=AUTO&data_source=SCADA", nil)
		w := httptest.NewRecorder()
		newExportRouter(NewExportHandler(mockService)).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, contentTypeCSV, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "water-quality-monitoring-data.csv")
		assert.Equal(t, "\ufeffstation_code\nWQ01\n", w.Body.String())
	})

	t.Run("maps errors raised before streaming", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"station not found", fmt.Errorf("%w: X", service.ErrStationNotFound), http.StatusNotFound},
			{"invalid filter", fmt.Errorf("%w: end must be after start", service.ErrInvalidFilter), http.StatusBadRequest},
			{"storage failure", errors.New("connection refused"), http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockService := mocks.NewMockExportServiceInterface(t)
				mockService.EXPECT().StreamCSV(mock.Anything, mock.Anything, mock.Anything).Return(0, tt.err)

				req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/flow/export?station_code=X", nil)
				w := httptest.NewRecorder()
				newExportRouter(NewExportHandler(mockService)).ServeHTTP(w, req)

				assert.Equal(t, tt.wantStatus, w.Code)
				assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
				assert.NotContains(t, w.Body.String(), "connection refused")
			})
		}
	})

	t.Run("keeps the partial body when streaming fails midway", func(t *testing.T) {
		mockService := mocks.NewMockExportServiceInterface(t)
		mockService.EXPECT().
			StreamCSV(mock.Anything, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ service.ExportRequest, w service.StreamWriter) (int, error) {
				_ = w.Write([]byte("station_code\nS1\n"))
				return 1, errors.New("connection reset")
			})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/flow/export", nil)
		w := httptest.NewRecorder()
		newExportRouter(NewExportHandler(mockService)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "station_code\nS1\n", w.Body.String())
	})

	t.Run("unknown variant", func(t *testing.T) {
		mockService := mocks.NewMockExportServiceInterface(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/monitoring/snow/export", nil)
		w := httptest.NewRecorder()
		newExportRouter(NewExportHandler(mockService)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
