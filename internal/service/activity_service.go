package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/contract-capacity-api/internal/capacity"
	"github.com/noah-isme/contract-capacity-api/internal/dto"
	"github.com/noah-isme/contract-capacity-api/internal/models"
	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
)

type activityRepository interface {
	ListByDateRange(ctx context.Context, from, to string) ([]models.ActivityWithInstructor, error)
	BulkCreate(ctx context.Context, activities []models.InstructorActivity) error
	Delete(ctx context.Context, id string) error
}

type instructorReader interface {
	FindByID(ctx context.Context, id string) (*models.Instructor, error)
}

// ActivityService schedules extra-grade activities and serves the month agenda.
type ActivityService struct {
	activities  activityRepository
	instructors instructorReader
	validator   *validator.Validate
	metrics     *MetricsService
	logger      *zap.Logger
	ids         capacity.IDGenerator
	now         func() time.Time
}

// NewActivityService constructs an ActivityService.
func NewActivityService(activities activityRepository, instructors instructorReader, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger, ids capacity.IDGenerator) *ActivityService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ids == nil {
		ids = capacity.UUIDGenerator
	}
	return &ActivityService{
		activities:  activities,
		instructors: instructors,
		validator:   validate,
		metrics:     metrics,
		logger:      logger,
		ids:         ids,
		now:         time.Now,
	}
}

// ResolveMonth parses a YYYY-MM value, defaulting to the current month.
func (s *ActivityService) ResolveMonth(raw string) (capacity.YearMonth, error) {
	if strings.TrimSpace(raw) == "" {
		return capacity.YearMonthOf(s.now().UTC()), nil
	}
	ym, err := capacity.ParseYearMonth(raw)
	if err != nil {
		return capacity.YearMonth{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "month must be YYYY-MM")
	}
	return ym, nil
}

// ListMonth returns the month's activities sorted by date.
func (s *ActivityService) ListMonth(ctx context.Context, month string) (*dto.MonthAgendaResponse, error) {
	ym, err := s.ResolveMonth(month)
	if err != nil {
		return nil, err
	}
	activities, err := s.activities.ListByDateRange(ctx, ym.FirstDay(), ym.LastDay())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list activities")
	}
	if activities == nil {
		activities = []models.ActivityWithInstructor{}
	}
	var total float64
	for _, act := range activities {
		total += act.Hours
	}
	return &dto.MonthAgendaResponse{
		Month:      ym.String(),
		Prev:       ym.Prev().String(),
		Next:       ym.Next().String(),
		TotalHours: total,
		Activities: activities,
	}, nil
}

// ScheduleBatch creates one activity per requested date in a single
// transaction. No dates means nothing is created and no error is returned.
func (s *ActivityService) ScheduleBatch(ctx context.Context, req dto.ScheduleBatchRequest) (*dto.ScheduleBatchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid batch payload")
	}
	sel, err := capacity.NewDateSelection(req.Dates...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid batch dates")
	}
	if sel.Len() == 0 {
		return &dto.ScheduleBatchResponse{Created: []models.InstructorActivity{}}, nil
	}

	if _, err := s.instructors.FindByID(ctx, req.InstructorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load instructor")
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = models.DefaultActivityCode
	}
	tmpl := models.ActivityTemplate{
		InstructorID: req.InstructorID,
		Code:         code,
		Hours:        req.Hours,
		Shift:        req.Shift,
	}
	_, created := capacity.ScheduleBatch(nil, tmpl, sel, s.ids)

	if err := s.activities.BulkCreate(ctx, created); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to schedule activities")
	}

	s.metrics.RecordActivitiesScheduled(len(created))
	s.logger.Info("activities scheduled",
		zap.String("instructor_id", req.InstructorID),
		zap.String("code", code),
		zap.Int("count", len(created)),
	)
	return &dto.ScheduleBatchResponse{Created: created, Count: len(created)}, nil
}

// Delete removes one activity.
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	if err := s.activities.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "activity not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete activity")
	}
	return nil
}

// Grid lays out the month picker for month (current month when blank).
func (s *ActivityService) Grid(month string) (*dto.CalendarGridResponse, error) {
	ym, err := s.ResolveMonth(month)
	if err != nil {
		return nil, err
	}
	return &dto.CalendarGridResponse{
		MonthGrid: capacity.BuildMonthGrid(ym),
		Prev:      ym.Prev().String(),
		Next:      ym.Next().String(),
	}, nil
}

// ToggleSelection adds or removes a date from the caller's selection.
func (s *ActivityService) ToggleSelection(req dto.ToggleSelectionRequest) (*dto.ToggleSelectionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid selection payload")
	}
	sel, err := capacity.NewDateSelection(req.Selected...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid selection")
	}
	if err := sel.Toggle(req.Date); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid date")
	}
	selected := sel.Dates()
	return &dto.ToggleSelectionResponse{Selected: selected}, nil
}
