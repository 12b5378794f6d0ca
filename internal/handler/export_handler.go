package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-modakk/modakk-backend/internal/logger"
	"github.com/dev-modakk/modakk-backend/internal/middleware"
	"github.com/dev-modakk/modakk-backend/internal/service"
)

// ExportHandler handles export requests.
type ExportHandler struct {
	giftBoxService service.GiftBoxServiceInterface
	Responder
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(giftBoxService service.GiftBoxServiceInterface, r Responder) *ExportHandler {
	return &ExportHandler{
		giftBoxService: giftBoxService,
		Responder:      r,
	}
}

// ginStreamWriter wraps gin.ResponseWriter for streaming.
type ginStreamWriter struct {
	writer gin.ResponseWriter
}

func (w *ginStreamWriter) Write(data []byte) error {
	_, err := w.writer.Write(data)
	return err
}

func (w *ginStreamWriter) Flush() {
	w.writer.Flush()
}

// StreamExport handles GET /api/v1/kidsgiftboxes/export?format=csv|ndjson
func (h *ExportHandler) StreamExport(c *gin.Context) {
	format := c.DefaultQuery("format", service.FormatCSV)

	var contentType string
	switch format {
	case service.FormatCSV:
		contentType = "text/csv; charset=utf-8"
	case service.FormatNDJSON:
		contentType = "application/x-ndjson"
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: MsgUnsupportedFormat + "csv, ndjson"})
		return
	}

	log := logger.WithRequestID(middleware.GetRequestID(c))
	log.InfoContext(c.Request.Context(), "Streaming export", "format", format)

	c.Header("Content-Type", contentType)
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("Content-Disposition", `attachment; filename="kidsgiftboxes_`+time.Now().UTC().Format("20060102")+`.`+format+`"`)
	c.Status(http.StatusOK)

	writer := &ginStreamWriter{writer: c.Writer}
	count, err := h.giftBoxService.Export(c.Request.Context(), format, writer)
	if err != nil {
		// Headers are already sent.
		log.ErrorContext(c.Request.Context(), "Streaming export failed", "error", err, "count", count)
		return
	}

	log.InfoContext(c.Request.Context(), "Streaming export completed", "format", format, "count", count)
}
