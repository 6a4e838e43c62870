package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/contract-capacity-api/internal/dto"
	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
	"github.com/noah-isme/contract-capacity-api/pkg/response"
)

type activityService interface {
	ListMonth(ctx context.Context, month string) (*dto.MonthAgendaResponse, error)
	ScheduleBatch(ctx context.Context, req dto.ScheduleBatchRequest) (*dto.ScheduleBatchResponse, error)
	Delete(ctx context.Context, id string) error
	Grid(month string) (*dto.CalendarGridResponse, error)
	ToggleSelection(req dto.ToggleSelectionRequest) (*dto.ToggleSelectionResponse, error)
}

// ActivityHandler serves the extra-grade agenda and the calendar picker.
type ActivityHandler struct {
	service activityService
}

// NewActivityHandler constructs an ActivityHandler.
func NewActivityHandler(svc activityService) *ActivityHandler {
	return &ActivityHandler{service: svc}
}

// ListMonth godoc
// @Summary List activities of a month
// @Tags Activities
// @Produce json
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} response.Envelope
// @Router /activities [get]
func (h *ActivityHandler) ListMonth(c *gin.Context) {
	agenda, err := h.service.ListMonth(c.Request.Context(), c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, agenda, nil)
}

// ScheduleBatch godoc
// @Summary Schedule one activity per selected date
// @Tags Activities
// @Accept json
// @Produce json
// @Param payload body dto.ScheduleBatchRequest true "Batch template and dates"
// @Success 201 {object} response.Envelope
// @Success 200 {object} response.Envelope "No dates selected, nothing created"
// @Router /activities/batch [post]
func (h *ActivityHandler) ScheduleBatch(c *gin.Context) {
	var req dto.ScheduleBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid batch payload"))
		return
	}
	result, err := h.service.ScheduleBatch(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result.Count == 0 {
		response.JSON(c, http.StatusOK, result, nil)
		return
	}
	response.Created(c, result)
}

// Delete godoc
// @Summary Delete activity
// @Tags Activities
// @Param id path string true "Activity ID"
// @Success 204
// @Router /activities/{id} [delete]
func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Grid godoc
// @Summary Month picker layout
// @Tags Calendar
// @Produce json
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} response.Envelope
// @Router /calendar/grid [get]
func (h *ActivityHandler) Grid(c *gin.Context) {
	grid, err := h.service.Grid(c.Query("month"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grid, nil)
}

// ToggleSelection godoc
// @Summary Add or remove a date from a selection
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.ToggleSelectionRequest true "Current selection and date"
// @Success 200 {object} response.Envelope
// @Router /calendar/selection/toggle [post]
func (h *ActivityHandler) ToggleSelection(c *gin.Context) {
	var req dto.ToggleSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid selection payload"))
		return
	}
	result, err := h.service.ToggleSelection(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
