package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/contract-capacity-api/internal/dto"
	"github.com/noah-isme/contract-capacity-api/internal/models"
	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
	"github.com/noah-isme/contract-capacity-api/pkg/response"
)

type instructorService interface {
	List(ctx context.Context, filter models.InstructorFilter) ([]models.Instructor, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Instructor, error)
	Create(ctx context.Context, req dto.CreateInstructorRequest) (*models.Instructor, error)
	Update(ctx context.Context, id string, req dto.UpdateInstructorRequest) (*models.Instructor, error)
	Delete(ctx context.Context, id string) error
	ToggleContract(ctx context.Context, id string) (*models.Instructor, error)
	ToggleStatus(ctx context.Context, id string) (*models.Instructor, error)
	SetMonthlyCapacity(ctx context.Context, id string, req dto.UpdateCapacityRequest) (*models.Instructor, error)
	SetWorkShift(ctx context.Context, id string, req dto.UpdateWorkShiftRequest) (*models.Instructor, error)
	SetArea(ctx context.Context, id string, req dto.UpdateAreaRequest) (*models.Instructor, error)
}

// InstructorHandler wires instructor services to HTTP routes.
type InstructorHandler struct {
	service instructorService
}

// NewInstructorHandler constructs a new InstructorHandler.
func NewInstructorHandler(svc instructorService) *InstructorHandler {
	return &InstructorHandler{service: svc}
}

// List godoc
// @Summary List instructors
// @Tags Instructors
// @Produce json
// @Param search query string false "Search by name or area"
// @Param status query string false "ATIVO or INATIVO"
// @Param contract_type query string false "MENSALISTA or HORISTA"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort query string false "Sort field (name,area,weekly_hours,created_at)"
// @Param order query string false "Sort order (asc/desc)"
// @Success 200 {object} response.Envelope
// @Router /instructors [get]
func (h *InstructorHandler) List(c *gin.Context) {
	filter := models.InstructorFilter{
		Search:       strings.TrimSpace(c.Query("search")),
		Status:       models.InstructorStatus(strings.ToUpper(c.Query("status"))),
		ContractType: models.ContractType(strings.ToUpper(c.Query("contract_type"))),
		SortBy:       c.Query("sort"),
		SortOrder:    c.Query("order"),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	instructors, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.NewInstructorResponses(instructors), pagination)
}

// Get godoc
// @Summary Get instructor detail
// @Tags Instructors
// @Produce json
// @Param id path string true "Instructor ID"
// @Success 200 {object} response.Envelope
// @Router /instructors/{id} [get]
func (h *InstructorHandler) Get(c *gin.Context) {
	inst, err := h.service.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, inst, err)
}

// Create godoc
// @Summary Register instructor
// @Tags Instructors
// @Accept json
// @Produce json
// @Param payload body dto.CreateInstructorRequest true "Instructor payload"
// @Success 201 {object} response.Envelope
// @Router /instructors [post]
func (h *InstructorHandler) Create(c *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid instructor payload"))
		return
	}
	inst, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewInstructorResponse(*inst))
}

// Update godoc
// @Summary Update instructor
// @Tags Instructors
// @Accept json
// @Produce json
// @Param id path string true "Instructor ID"
// @Param payload body dto.UpdateInstructorRequest true "Instructor payload"
// @Success 200 {object} response.Envelope
// @Router /instructors/{id} [put]
func (h *InstructorHandler) Update(c *gin.Context) {
	var req dto.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid instructor payload"))
		return
	}
	inst, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	h.respond(c, inst, err)
}

// Delete godoc
// @Summary Delete instructor
// @Tags Instructors
// @Param id path string true "Instructor ID"
// @Success 204
// @Router /instructors/{id} [delete]
func (h *InstructorHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ToggleContract godoc
// @Summary Toggle contract type between MENSALISTA and HORISTA
// @Tags Instructors
// @Produce json
// @Param id path string true "Instructor ID"
// @Success 200 {object} response.Envelope
// @Router /instructors/{id}/contract/toggle [post]
func (h *InstructorHandler) ToggleContract(c *gin.Context) {
	inst, err := h.service.ToggleContract(c.Request.Context(), c.Param("id"))
	h.respond(c, inst, err)
}

// ToggleStatus godoc
// @Summary Toggle status between ATIVO and INATIVO
// @Tags Instructors
// @Produce json
// @Param id path string true "Instructor ID"
// @Success 200 {object} response.Envelope
// @Router /instructors/{id}/status/toggle [post]
func (h *InstructorHandler) ToggleStatus(c *gin.Context) {
	inst, err := h.service.ToggleStatus(c.Request.Context(), c.Param("id"))
	h.respond(c, inst, err)
}

// SetCapacity godoc
// @Summary Set monthly capacity
// @Tags Instructors
// @Accept json
// @Produce json
// @Param id path string true "Instructor ID"
// @Param payload body dto.UpdateCapacityRequest true "Monthly hours"
// @Success 200 {object} response.Envelope
// @Router /instructors/{id}/capacity [put]
func (h *InstructorHandler) SetCapacity(c *gin.Context) {
	var req dto.UpdateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid capacity payload"))
		return
	}
	inst, err := h.service.SetMonthlyCapacity(c.Request.Context(), c.Param("id"), req)
	h.respond(c, inst, err)
}

// SetWorkShift godoc
// @Summary Set base work shift
// @Tags Instructors
// @Accept json
// @Produce json
// @Param id path string true "Instructor ID"
// @Param payload body dto.UpdateWorkShiftRequest true "Work shift"
// @Success 200 {object} response.Envelope
// @Router /instructors/{id}/work-shift [put]
func (h *InstructorHandler) SetWorkShift(c *gin.Context) {
	var req dto.UpdateWorkShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid work shift payload"))
		return
	}
	inst, err := h.service.SetWorkShift(c.Request.Context(), c.Param("id"), req)
	h.respond(c, inst, err)
}

// SetArea godoc
// @Summary Set area
// @Tags Instructors
// @Accept json
// @Produce json
// @Param id path string true "Instructor ID"
// @Param payload body dto.UpdateAreaRequest true "Area"
// @Success 200 {object} response.Envelope
// @Router /instructors/{id}/area [put]
func (h *InstructorHandler) SetArea(c *gin.Context) {
	var req dto.UpdateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid area payload"))
		return
	}
	inst, err := h.service.SetArea(c.Request.Context(), c.Param("id"), req)
	h.respond(c, inst, err)
}

func (h *InstructorHandler) respond(c *gin.Context, inst *models.Instructor, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.NewInstructorResponse(*inst), nil)
}
