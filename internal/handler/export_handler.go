package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/contract-capacity-api/internal/service"
	"github.com/noah-isme/contract-capacity-api/pkg/response"
)

type exportService interface {
	CapacitySheet(ctx context.Context, search string) (*service.ExportFile, error)
	AgendaPDF(ctx context.Context, month string) (*service.ExportFile, error)
}

// ExportHandler streams generated downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs an ExportHandler.
func NewExportHandler(svc exportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// CapacitySheet godoc
// @Summary Download capacity sheet
// @Tags Exports
// @Produce text/csv
// @Param search query string false "Filter by name or area"
// @Success 200 {file} file
// @Router /exports/capacity.csv [get]
func (h *ExportHandler) CapacitySheet(c *gin.Context) {
	file, err := h.service.CapacitySheet(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.FileName, file.ContentType, file.Data)
}

// AgendaPDF godoc
// @Summary Download monthly agenda
// @Tags Exports
// @Produce application/pdf
// @Param month query string false "Month as YYYY-MM"
// @Success 200 {file} file
// @Router /exports/agenda.pdf [get]
func (h *ExportHandler) AgendaPDF(c *gin.Context) {
	file, err := h.service.AgendaPDF(c.Request.Context(), c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.FileName, file.ContentType, file.Data)
}
