package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/contract-capacity-api/internal/capacity"
	"github.com/noah-isme/contract-capacity-api/internal/dto"
	"github.com/noah-isme/contract-capacity-api/internal/models"
	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
)

type instructorRepository interface {
	List(ctx context.Context, filter models.InstructorFilter) ([]models.Instructor, int, error)
	ListAll(ctx context.Context) ([]models.Instructor, error)
	FindByID(ctx context.Context, id string) (*models.Instructor, error)
	Create(ctx context.Context, instructor *models.Instructor) error
	Update(ctx context.Context, instructor *models.Instructor) error
	UpdateCapacities(ctx context.Context, instructors []models.Instructor) error
	Delete(ctx context.Context, id string) error
}

// InstructorService orchestrates instructor registration and edits.
type InstructorService struct {
	repo      instructorRepository
	validator *validator.Validate
	logger    *zap.Logger
	ids       capacity.IDGenerator
}

// NewInstructorService constructs an InstructorService.
func NewInstructorService(repo instructorRepository, validate *validator.Validate, logger *zap.Logger, ids capacity.IDGenerator) *InstructorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ids == nil {
		ids = capacity.UUIDGenerator
	}
	return &InstructorService{repo: repo, validator: validate, logger: logger, ids: ids}
}

// List returns instructors plus pagination data.
func (s *InstructorService) List(ctx context.Context, filter models.InstructorFilter) ([]models.Instructor, *models.Pagination, error) {
	instructors, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return instructors, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Get returns an instructor by id.
func (s *InstructorService) Get(ctx context.Context, id string) (*models.Instructor, error) {
	inst, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load instructor")
	}
	return inst, nil
}

// Create registers a new instructor with the registration defaults.
func (s *InstructorService) Create(ctx context.Context, req dto.CreateInstructorRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid instructor payload")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name is required")
	}

	inst := capacity.NewInstructor(s.ids.NewID(), req.Name, req.Area, req.ContractType, req.WorkShift)
	if err := s.repo.Create(ctx, &inst); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create instructor")
	}
	s.logger.Info("instructor created", zap.String("instructor_id", inst.ID), zap.String("area", inst.Area))
	return &inst, nil
}

// Update replaces the editable fields of an instructor.
func (s *InstructorService) Update(ctx context.Context, id string, req dto.UpdateInstructorRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid instructor payload")
	}
	return s.mutate(ctx, id, "failed to update instructor", func(inst models.Instructor) models.Instructor {
		inst.Name = strings.ToUpper(strings.TrimSpace(req.Name))
		inst.Area = strings.TrimSpace(req.Area)
		inst.ContractType = req.ContractType
		inst.Status = req.Status
		inst.WorkShift = strings.TrimSpace(req.WorkShift)
		if req.MonthlyHours != nil {
			inst = capacity.WithMonthlyCapacity(inst, *req.MonthlyHours)
		}
		return inst
	})
}

// ToggleContract flips the instructor between salaried and hourly.
func (s *InstructorService) ToggleContract(ctx context.Context, id string) (*models.Instructor, error) {
	return s.mutate(ctx, id, "failed to toggle contract type", capacity.ToggleContract)
}

// ToggleStatus flips the instructor between active and inactive.
func (s *InstructorService) ToggleStatus(ctx context.Context, id string) (*models.Instructor, error) {
	return s.mutate(ctx, id, "failed to toggle status", capacity.ToggleStatus)
}

// SetMonthlyCapacity stores a monthly capacity figure.
func (s *InstructorService) SetMonthlyCapacity(ctx context.Context, id string, req dto.UpdateCapacityRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid capacity payload")
	}
	return s.mutate(ctx, id, "failed to update capacity", func(inst models.Instructor) models.Instructor {
		return capacity.WithMonthlyCapacity(inst, *req.MonthlyHours)
	})
}

// SetWorkShift changes the base work shift.
func (s *InstructorService) SetWorkShift(ctx context.Context, id string, req dto.UpdateWorkShiftRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid work shift payload")
	}
	return s.mutate(ctx, id, "failed to update work shift", func(inst models.Instructor) models.Instructor {
		inst.WorkShift = strings.TrimSpace(req.WorkShift)
		return inst
	})
}

// SetArea changes the instructor's area.
func (s *InstructorService) SetArea(ctx context.Context, id string, req dto.UpdateAreaRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid area payload")
	}
	return s.mutate(ctx, id, "failed to update area", func(inst models.Instructor) models.Instructor {
		inst.Area = strings.TrimSpace(req.Area)
		return inst
	})
}

// Delete removes an instructor. Activities that reference it are kept.
func (s *InstructorService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete instructor")
	}
	s.logger.Info("instructor deleted", zap.String("instructor_id", id))
	return nil
}

func (s *InstructorService) mutate(ctx context.Context, id, failure string, fn func(models.Instructor) models.Instructor) (*models.Instructor, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := fn(*current)
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, failure)
	}
	return &updated, nil
}
