package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/contract-capacity-api/internal/models"
	"github.com/noah-isme/contract-capacity-api/pkg/database"
)

const instructorColumns = "id, name, area, contract_type, weekly_hours, status, work_shift, created_at, updated_at"

// likeEscaper makes LIKE wildcards in search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// InstructorRepository manages persistence for instructors.
type InstructorRepository struct {
	db *sqlx.DB
}

// NewInstructorRepository constructs an InstructorRepository.
func NewInstructorRepository(db *sqlx.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// List returns instructors matching filters along with total count.
func (r *InstructorRepository) List(ctx context.Context, filter models.InstructorFilter) ([]models.Instructor, int, error) {
	base := "FROM instructors WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.ContractType != "" {
		conditions = append(conditions, fmt.Sprintf("contract_type = $%d", len(args)+1))
		args = append(args, filter.ContractType)
	}
	if filter.Search != "" {
		search := "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(filter.Search))) + "%"
		conditions = append(conditions, fmt.Sprintf(`(LOWER(name) LIKE $%d ESCAPE '\' OR LOWER(area) LIKE $%d ESCAPE '\')`, len(args)+1, len(args)+1))
		args = append(args, search)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	allowedSorts := map[string]string{
		"name":         "name",
		"area":         "area",
		"weekly_hours": "weekly_hours",
		"created_at":   "created_at",
	}
	column, ok := allowedSorts[filter.SortBy]
	if !ok {
		column = "name"
	}

	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY %s %s, id ASC LIMIT %d OFFSET %d", instructorColumns, base, column, order, size, offset)
	var instructors []models.Instructor
	if err := r.db.SelectContext(ctx, &instructors, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list instructors: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count instructors: %w", err)
	}

	return instructors, total, nil
}

// ListAll returns every instructor in registration order, the collection
// order name matching relies on.
func (r *InstructorRepository) ListAll(ctx context.Context) ([]models.Instructor, error) {
	query := fmt.Sprintf("SELECT %s FROM instructors ORDER BY created_at ASC, id ASC", instructorColumns)
	var instructors []models.Instructor
	if err := r.db.SelectContext(ctx, &instructors, query); err != nil {
		return nil, fmt.Errorf("list all instructors: %w", err)
	}
	return instructors, nil
}

// FindByID fetches an instructor by ID.
func (r *InstructorRepository) FindByID(ctx context.Context, id string) (*models.Instructor, error) {
	query := fmt.Sprintf("SELECT %s FROM instructors WHERE id = $1", instructorColumns)
	var instructor models.Instructor
	if err := r.db.GetContext(ctx, &instructor, query, id); err != nil {
		return nil, err
	}
	return &instructor, nil
}

// Create inserts a new instructor record.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) error {
	if instructor.ID == "" {
		instructor.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if instructor.CreatedAt.IsZero() {
		instructor.CreatedAt = now
	}
	instructor.UpdatedAt = now

	const query = `INSERT INTO instructors (id, name, area, contract_type, weekly_hours, status, work_shift, created_at, updated_at)
		VALUES (:id, :name, :area, :contract_type, :weekly_hours, :status, :work_shift, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, instructor); err != nil {
		return fmt.Errorf("create instructor: %w", err)
	}
	return nil
}

const updateInstructorQuery = `UPDATE instructors SET name = :name, area = :area, contract_type = :contract_type, weekly_hours = :weekly_hours,
	status = :status, work_shift = :work_shift, updated_at = :updated_at WHERE id = :id`

// Update modifies an existing instructor record.
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	instructor.UpdatedAt = time.Now().UTC()
	if _, err := r.db.NamedExecContext(ctx, updateInstructorQuery, instructor); err != nil {
		return fmt.Errorf("update instructor: %w", err)
	}
	return nil
}

// UpdateCapacities writes the capacity and contract of every given
// instructor in a single transaction.
func (r *InstructorRepository) UpdateCapacities(ctx context.Context, instructors []models.Instructor) error {
	if len(instructors) == 0 {
		return nil
	}
	const query = `UPDATE instructors SET weekly_hours = $1, contract_type = $2, updated_at = $3 WHERE id = $4`
	now := time.Now().UTC()
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, inst := range instructors {
			if _, err := tx.ExecContext(ctx, query, inst.WeeklyHours, inst.ContractType, now, inst.ID); err != nil {
				return fmt.Errorf("update capacity for instructor %s: %w", inst.ID, err)
			}
		}
		return nil
	})
}

// Delete removes an instructor. It returns sql.ErrNoRows when nothing matched.
func (r *InstructorRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete instructor: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete instructor rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
