package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/contract-capacity-api/internal/capacity"
	"github.com/noah-isme/contract-capacity-api/internal/dto"
	"github.com/noah-isme/contract-capacity-api/internal/models"
	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
)

const importSessionKeyPrefix = "import:workload:"

type importInstructorRepository interface {
	ListAll(ctx context.Context) ([]models.Instructor, error)
	UpdateCapacities(ctx context.Context, instructors []models.Instructor) error
}

type sessionStore interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Invalidate(ctx context.Context, pattern string) error
}

// ImportConfig bounds uploads and how long previews wait for confirmation.
type ImportConfig struct {
	MaxFileSizeBytes int64
	SessionTTL       time.Duration
}

// ImportService turns uploaded workload sheets into previews and applies
// confirmed previews to instructor capacity.
type ImportService struct {
	instructors importInstructorRepository
	sessions    sessionStore
	metrics     *MetricsService
	logger      *zap.Logger
	cfg         ImportConfig
	ids         capacity.IDGenerator
	now         func() time.Time
}

// NewImportService constructs an ImportService.
func NewImportService(instructors importInstructorRepository, sessions sessionStore, metrics *MetricsService, logger *zap.Logger, cfg ImportConfig, ids capacity.IDGenerator) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxFileSizeBytes <= 0 {
		cfg.MaxFileSizeBytes = 2 << 20
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if ids == nil {
		ids = capacity.UUIDGenerator
	}
	return &ImportService{
		instructors: instructors,
		sessions:    sessions,
		metrics:     metrics,
		logger:      logger,
		cfg:         cfg,
		ids:         ids,
		now:         time.Now,
	}
}

// MaxFileSize is the largest accepted upload in bytes.
func (s *ImportService) MaxFileSize() int64 {
	return s.cfg.MaxFileSizeBytes
}

// Preview parses raw, matches every row against the current instructors and
// stores the result as a session awaiting confirmation. Nothing is stored
// when parsing fails.
func (s *ImportService) Preview(ctx context.Context, fileName string, raw []byte) (*models.ImportSession, error) {
	if int64(len(raw)) > s.cfg.MaxFileSizeBytes {
		s.metrics.RecordImportSession(ImportRejected)
		return nil, appErrors.Clone(appErrors.ErrPayloadTooLarge, "uploaded file exceeds the size limit")
	}

	content, err := capacity.DecodeWorkload(raw)
	if err != nil {
		s.metrics.RecordImportSession(ImportRejected)
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unreadable file encoding")
	}

	parsed, err := capacity.ParseWorkload(content)
	if err != nil {
		s.metrics.RecordImportSession(ImportRejected)
		s.logger.Info("workload upload rejected", zap.String("file_name", fileName), zap.Error(err))
		return nil, err
	}

	instructors, err := s.instructors.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load instructors")
	}

	rows := capacity.MatchWorkload(parsed.Rows, instructors)
	matched, unmatched := capacity.CountMatches(rows)
	session := &models.ImportSession{
		ID:        s.ids.NewID(),
		FileName:  strings.TrimSpace(fileName),
		Rows:      rows,
		Matched:   matched,
		Unmatched: unmatched,
		Skipped:   parsed.Skipped,
		CreatedAt: s.now().UTC(),
	}

	if err := s.sessions.Set(ctx, importSessionKeyPrefix+session.ID, session, s.cfg.SessionTTL); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store import session")
	}

	s.metrics.RecordImportSession(ImportPreviewed)
	s.metrics.RecordImportRows(matched, unmatched, parsed.Skipped)
	s.logger.Info("workload preview stored",
		zap.String("session_id", session.ID),
		zap.String("file_name", session.FileName),
		zap.String("delimiter", parsed.Delimiter),
		zap.Int("matched", matched),
		zap.Int("unmatched", unmatched),
		zap.Int("skipped", parsed.Skipped),
	)
	return session, nil
}

// Get returns a stored preview.
func (s *ImportService) Get(ctx context.Context, sessionID string) (*models.ImportSession, error) {
	var session models.ImportSession
	found, err := s.sessions.Get(ctx, importSessionKeyPrefix+sessionID, &session)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load import session")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrImportSessionNotFound, "")
	}
	return &session, nil
}

// Confirm applies a preview to the current instructors and persists the
// instructors whose capacity or contract changed, then drops the session.
func (s *ImportService) Confirm(ctx context.Context, sessionID string) (*dto.ConfirmImportResponse, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	before, err := s.instructors.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load instructors")
	}
	after := capacity.ApplyWorkload(before, session.Rows)
	changed := capacity.ChangedInstructors(before, after)

	if err := s.instructors.UpdateCapacities(ctx, changed); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to apply workload import")
	}

	if err := s.sessions.Delete(ctx, importSessionKeyPrefix+sessionID); err != nil {
		s.logger.Warn("failed to drop confirmed import session", zap.String("session_id", sessionID), zap.Error(err))
	}

	s.metrics.RecordImportSession(ImportConfirmed)
	s.metrics.RecordCapacityUpdates(len(changed))
	s.logger.Info("workload import applied", zap.String("session_id", sessionID), zap.Int("updated", len(changed)))

	return &dto.ConfirmImportResponse{
		SessionID:   sessionID,
		Updated:     len(changed),
		Instructors: dto.NewInstructorResponses(changed),
	}, nil
}

// Cancel discards a preview.
func (s *ImportService) Cancel(ctx context.Context, sessionID string) error {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, importSessionKeyPrefix+sessionID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to cancel import session")
	}
	s.metrics.RecordImportSession(ImportCancelled)
	return nil
}

// PurgeSessions discards every pending preview.
func (s *ImportService) PurgeSessions(ctx context.Context) error {
	if err := s.sessions.Invalidate(ctx, importSessionKeyPrefix+"*"); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to purge import sessions")
	}
	s.logger.Info("pending import sessions purged")
	return nil
}
