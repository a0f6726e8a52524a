package server

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"acordier/expense-extract/internal/export"
	"acordier/expense-extract/internal/extractor"
	"acordier/expense-extract/internal/logging"
	"acordier/expense-extract/internal/parsererror"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	batch  *extractor.BatchRunner
	logger logging.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(batch *extractor.BatchRunner, logger logging.Logger) *Handlers {
	return &Handlers{
		batch:  batch,
		logger: logger,
	}
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error    string            `json:"error"`
	Failures []FailureResponse `json:"failures,omitempty"`
}

// FailureResponse describes a single document that could not be processed.
type FailureResponse struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthCheck handles GET /healthz
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Extract handles POST /api/extract. It accepts one or more uploaded PDFs
// as multipart "files" parts and responds with a spreadsheet of extracted
// records. Pass ?format=csv for CSV output instead of XLSX.
func (h *Handlers) Extract(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form: " + err.Error()})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no files uploaded, expected multipart parts named 'files'"})
		return
	}

	// Stage uploads under a per-request directory so original file names
	// survive into the source_name column.
	stagingDir := filepath.Join(os.TempDir(), "expense-extract-"+uuid.New().String())
	if err := os.MkdirAll(stagingDir, 0750); err != nil {
		h.logger.WithError(err).Error("Failed to create staging directory")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to stage uploads"})
		return
	}
	defer func() {
		if err := os.RemoveAll(stagingDir); err != nil {
			h.logger.WithError(err).Warn("Failed to clean staging directory")
		}
	}()

	paths := make([]string, 0, len(files))
	for _, file := range files {
		dst := filepath.Join(stagingDir, filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			h.logger.WithError(err).Error("Failed to save uploaded file",
				logging.Field{Key: "file", Value: file.Filename})
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to stage uploads"})
			return
		}
		paths = append(paths, dst)
	}

	h.logger.Info("Processing uploaded documents",
		logging.Field{Key: "count", Value: len(paths)})

	records, failures := h.batch.Run(c.Request.Context(), paths)

	if len(records) == 0 || extractor.AllEmpty(records) {
		emptyErr := &parsererror.EmptyBatchError{DocumentCount: len(paths)}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:    emptyErr.Error(),
			Failures: failureResponses(failures),
		})
		return
	}

	if c.Query("format") == "csv" {
		buf, err := export.RecordsToCSV(records)
		if err != nil {
			h.logger.WithError(err).Error("Failed to render CSV")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to render CSV"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="expense_records.csv"`)
		c.Data(http.StatusOK, contentTypeCSV, buf.Bytes())
		return
	}

	buf, err := export.RecordsToXLSX(records)
	if err != nil {
		h.logger.WithError(err).Error("Failed to render XLSX")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to render XLSX"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="expense_records.xlsx"`)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

func failureResponses(failures []extractor.Failure) []FailureResponse {
	if len(failures) == 0 {
		return nil
	}
	out := make([]FailureResponse, 0, len(failures))
	for _, f := range failures {
		out = append(out, FailureResponse{
			File:   filepath.Base(f.Path),
			Reason: f.Err.Error(),
		})
	}
	return out
}
