package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/contract-capacity-api/internal/dto"
	"github.com/noah-isme/contract-capacity-api/internal/models"
	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
	"github.com/noah-isme/contract-capacity-api/pkg/logger"
	"github.com/noah-isme/contract-capacity-api/pkg/response"
)

// multipartOverhead leaves room for boundaries and part headers around the file.
const multipartOverhead = 64 << 10

type importService interface {
	MaxFileSize() int64
	Preview(ctx context.Context, fileName string, raw []byte) (*models.ImportSession, error)
	Get(ctx context.Context, sessionID string) (*models.ImportSession, error)
	Confirm(ctx context.Context, sessionID string) (*dto.ConfirmImportResponse, error)
	Cancel(ctx context.Context, sessionID string) error
	PurgeSessions(ctx context.Context) error
}

// ImportHandler exposes the workload import flow: upload, review, confirm.
type ImportHandler struct {
	service importService
	logger  *zap.Logger
}

// NewImportHandler constructs an ImportHandler.
func NewImportHandler(svc importService, log *zap.Logger) *ImportHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImportHandler{service: svc, logger: log}
}

// Upload godoc
// @Summary Upload workload sheet and build a preview
// @Tags Imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Delimited sheet with name and monthly hours columns"
// @Success 201 {object} response.Envelope
// @Failure 413 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /imports/workload [post]
func (h *ImportHandler) Upload(c *gin.Context) {
	limit := h.service.MaxFileSize()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			response.Error(c, appErrors.Clone(appErrors.ErrPayloadTooLarge, "uploaded file exceeds the size limit"))
			return
		}
		if errors.Is(err, http.ErrMissingFile) {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file is required"))
			return
		}
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid multipart payload"))
		return
	}
	if fileHeader.Size > limit {
		response.Error(c, appErrors.Clone(appErrors.ErrPayloadTooLarge, "uploaded file exceeds the size limit"))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open file"))
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read file"))
		return
	}

	session, err := h.service.Preview(c.Request.Context(), fileHeader.Filename, raw)
	if err != nil {
		response.Error(c, err)
		return
	}

	log := logger.FromContext(c, h.logger)
	if claims := claimsFromContext(c); claims != nil {
		log = log.With(zap.String("user_id", claims.UserID))
	}
	log.Info("workload sheet uploaded", zap.String("session_id", session.ID), zap.Int64("bytes", fileHeader.Size))

	response.Created(c, session)
}

// Get godoc
// @Summary Get import preview
// @Tags Imports
// @Produce json
// @Param sessionId path string true "Import session ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /imports/workload/{sessionId} [get]
func (h *ImportHandler) Get(c *gin.Context) {
	session, err := h.service.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Confirm godoc
// @Summary Apply import preview to instructor capacity
// @Tags Imports
// @Produce json
// @Param sessionId path string true "Import session ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /imports/workload/{sessionId}/confirm [post]
func (h *ImportHandler) Confirm(c *gin.Context) {
	result, err := h.service.Confirm(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Cancel godoc
// @Summary Discard import preview
// @Tags Imports
// @Param sessionId path string true "Import session ID"
// @Success 204
// @Router /imports/workload/{sessionId} [delete]
func (h *ImportHandler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), c.Param("sessionId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Purge godoc
// @Summary Discard every pending import preview
// @Tags Imports
// @Success 204
// @Router /imports/workload [delete]
func (h *ImportHandler) Purge(c *gin.Context) {
	if err := h.service.PurgeSessions(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
