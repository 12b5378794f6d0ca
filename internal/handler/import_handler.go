package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-modakk/modakk-backend/internal/domain"
	"github.com/dev-modakk/modakk-backend/internal/middleware"
	"github.com/dev-modakk/modakk-backend/internal/service"
	"github.com/dev-modakk/modakk-backend/internal/tabular"
)

// ImportHandler handles bulk import requests.
type ImportHandler struct {
	importService service.ImportServiceInterface
	templates     map[string]templateFormat
	Responder
}

type templateFormat struct {
	contentType string
	render      func(io.Writer) error
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportServiceInterface, r Responder) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		templates: map[string]templateFormat{
			"csv":  {contentType: "text/csv; charset=utf-8", render: tabular.WriteTemplateCSV},
			"xlsx": {contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", render: tabular.WriteTemplateXLSX},
		},
		Responder: r,
	}
}

// ImportRunResponse represents an import run in the API response.
type ImportRunResponse struct {
	ID           string  `json:"id"`
	ResourceType string  `json:"resourceType"`
	FileName     string  `json:"fileName"`
	Status       string  `json:"status"`
	TotalRows    int     `json:"totalRows"`
	SuccessCount int     `json:"successCount"`
	ErrorCount   int     `json:"errorCount"`
	ErrorMessage *string `json:"errorMessage,omitempty"`
	RequestID    string  `json:"requestId,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	CompletedAt  *string `json:"completedAt,omitempty"`
}

// toImportRunResponse converts a domain.ImportRun to an ImportRunResponse.
func toImportRunResponse(run *domain.ImportRun) ImportRunResponse {
	response := ImportRunResponse{
		ID:           run.ID,
		ResourceType: run.ResourceType,
		FileName:     run.FileName,
		Status:       string(run.Status),
		TotalRows:    run.TotalRows,
		SuccessCount: run.SuccessCount,
		ErrorCount:   run.ErrorCount,
		ErrorMessage: run.ErrorMessage,
		RequestID:    run.RequestID,
		CreatedAt:    run.CreatedAt.Format(TimeFormat),
	}
	if run.CompletedAt != nil {
		completedAt := run.CompletedAt.Format(TimeFormat)
		response.CompletedAt = &completedAt
	}
	return response
}

// BulkImport handles POST /api/v1/kidsgiftboxes/bulkimport
func (h *ImportHandler) BulkImport(c *gin.Context) {
	data, fileName, ok := h.readUpload(c)
	if !ok {
		return
	}

	report, err := h.importService.ImportGiftBoxes(c.Request.Context(), data, fileName, middleware.GetRequestID(c))
	if err != nil {
		h.Fail(c, err, MsgImportNotFound)
		return
	}

	status := http.StatusOK
	if report.ErrorCount > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, report)
}

// Template handles GET /api/v1/kidsgiftboxes/bulkimport/template
func (h *ImportHandler) Template(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")

	tf, ok := h.templates[format]
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgUnsupportedFormat + "csv, xlsx"})
		return
	}

	// Nothing is written to the response until the template has rendered.
	var buf bytes.Buffer
	if err := tf.render(&buf); err != nil {
		h.Fail(c, fmt.Errorf("render %s template: %w", format, err), MsgImportNotFound)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+tabular.TemplateFileName(format)+`"`)
	c.Data(http.StatusOK, tf.contentType, buf.Bytes())
}

// GetImport handles GET /api/v1/imports/:id
func (h *ImportHandler) GetImport(c *gin.Context) {
	run, err := h.importService.GetImportRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Fail(c, err, MsgImportNotFound)
		return
	}
	c.JSON(http.StatusOK, toImportRunResponse(run))
}

// readUpload buffers the multipart file. It writes the error response and
// returns false when the upload is missing or too large.
func (r Responder) readUpload(c *gin.Context) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile(UploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: MsgBodyTooLarge})
			return nil, "", false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: MsgNoFile})
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		r.Fail(c, err, MsgNoFile)
		return nil, "", false
	}
	return data, header.Filename, true
}
