package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hydromon/internal/codec"
	"hydromon/internal/domain"
	"hydromon/internal/logger"
	"hydromon/internal/service"
)

// ImportHandler handles import-related HTTP requests.
type ImportHandler struct {
	importService service.ImportServiceInterface
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// ImportJobResponse represents an import job in the API response.
type ImportJobResponse struct {
	ID               string               `json:"id"`
	Variant          string               `json:"variant"`
	Status           string               `json:"status"`
	Source           string               `json:"source,omitempty"`
	IdempotencyToken string               `json:"idempotencyToken"`
	Result           *domain.ImportResult `json:"result,omitempty"`
	ErrorMessage     *string              `json:"errorMessage,omitempty"`
	CreatedAt        string               `json:"createdAt"`
	UpdatedAt        string               `json:"updatedAt"`
	CompletedAt      *string              `json:"completedAt,omitempty"`
}

// toImportJobResponse converts a domain.ImportJob to an ImportJobResponse.
// Jobs that are still running or were aborted by a storage failure carry no result.
func toImportJobResponse(job *domain.ImportJob) ImportJobResponse {
	response := ImportJobResponse{
		ID:               job.ID,
		Variant:          string(job.Variant),
		Status:           string(job.Status),
		Source:           job.Source,
		IdempotencyToken: job.IdempotencyToken,
		ErrorMessage:     job.ErrorMessage,
		CreatedAt:        job.CreatedAt.Format(TimeFormat),
		UpdatedAt:        job.UpdatedAt.Format(TimeFormat),
	}
	if hasResult(job) {
		result := job.Result
		if result.Errors == nil {
			result.Errors = []domain.ImportError{}
		}
		response.Result = &result
	}
	if job.CompletedAt != nil {
		completedAt := job.CompletedAt.Format(TimeFormat)
		response.CompletedAt = &completedAt
	}
	return response
}

func hasResult(job *domain.ImportJob) bool {
	switch {
	case job.Status == domain.JobStatusProcessing:
		return false
	case job.Status == domain.JobStatusFailed && job.ErrorMessage != nil:
		return false
	}
	return true
}

// jobStatusCode maps a finished job to its HTTP status.
func jobStatusCode(job *domain.ImportJob) int {
	switch {
	case job.Status == domain.JobStatusProcessing:
		return http.StatusAccepted
	case job.Status == domain.JobStatusFailed && job.ErrorMessage != nil:
		return http.StatusInternalServerError
	case job.Status == domain.JobStatusFailed:
		return http.StatusBadRequest
	}
	return http.StatusOK
}

// CreateImport handles POST /api/v1/monitoring/:variant/imports. The body is
// either a JSON array of rows or a multipart form with a csv/xlsx file.
func (h *ImportHandler) CreateImport(c *gin.Context) {
	variant := c.Param("variant")
	if !domain.IsValidVariant(variant) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown monitoring variant: " + variant})
		return
	}

	req := service.ImportRequest{
		Variant:          variant,
		IdempotencyToken: c.GetHeader(IdempotencyKeyHeader),
	}

	contentType := c.ContentType()
	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			if isBodyTooLarge(err) {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		defer file.Close()

		format, err := codec.DetectFormat(header.Filename)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file must be .csv, .xlsx or .json"})
			return
		}
		if req.IdempotencyToken == "" {
			req.IdempotencyToken = c.PostForm("idempotency_token")
		}
		req.Format = string(format)
		req.Source = header.Filename
		req.Body = file
	case contentType == "" || contentType == gin.MIMEJSON:
		req.Format = string(codec.FormatJSON)
		req.Source = "api"
		req.Body = c.Request.Body
	default:
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "body must be application/json or multipart/form-data"})
		return
	}

	if req.IdempotencyToken != "" {
		if _, err := uuid.Parse(req.IdempotencyToken); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "idempotency token must be a valid UUID"})
			return
		}
	}

	ctx := c.Request.Context()
	job, err := h.importService.Import(ctx, req)
	if err != nil {
		h.writeImportError(c, job, err)
		return
	}

	c.JSON(jobStatusCode(job), toImportJobResponse(job))
}

func (h *ImportHandler) writeImportError(c *gin.Context, job *domain.ImportJob, err error) {
	ctx := c.Request.Context()
	log := logger.FromContext(ctx)

	var persistErr *service.PersistenceError
	switch {
	case errors.Is(err, service.ErrUnknownVariant):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, codec.ErrMalformedInput),
		errors.Is(err, codec.ErrUnsupportedFormat),
		errors.Is(err, service.ErrEmptyImport):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isBodyTooLarge(err):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
	case errors.As(err, &persistErr):
		log.ErrorContext(ctx, "Import aborted", slog.String("error", err.Error()))
		body := gin.H{"error": "import aborted by a storage failure"}
		if job != nil {
			body["jobId"] = job.ID
		}
		c.JSON(http.StatusInternalServerError, body)
	default:
		log.ErrorContext(ctx, "Failed to process import", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process import request"})
	}
}

func isBodyTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}

// GetImport handles GET /api/v1/imports/:id
func (h *ImportHandler) GetImport(c *gin.Context) {
	id := c.Param("id")

	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	ctx := c.Request.Context()
	job, err := h.importService.GetImportJob(ctx, id)
	if err != nil {
		logger.FromContext(ctx).ErrorContext(ctx, "Failed to get import job",
			slog.String("job_id", id),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve import job"})
		return
	}

	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "import job not found"})
		return
	}

	c.JSON(http.StatusOK, toImportJobResponse(job))
}

// GetTemplate handles GET /api/v1/monitoring/:variant/import-template
func (h *ImportHandler) GetTemplate(c *gin.Context) {
	variant := c.Param("variant")

	var buf bytes.Buffer
	if err := h.importService.WriteTemplate(variant, &buf); err != nil {
		if errors.Is(err, service.ErrUnknownVariant) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx := c.Request.Context()
		logger.FromContext(ctx).ErrorContext(ctx, "Failed to render import template",
			slog.String("variant", variant),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render template"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+variant+`-import-template.xlsx"`)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}
