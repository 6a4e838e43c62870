package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/contract-capacity-api/internal/models"
	"github.com/noah-isme/contract-capacity-api/pkg/database"
)

// ActivityRepository manages extra-grade activities.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository constructs an ActivityRepository.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ListByDateRange returns activities dated between from and to inclusive,
// oldest first, with the instructor name when the instructor still exists.
func (r *ActivityRepository) ListByDateRange(ctx context.Context, from, to string) ([]models.ActivityWithInstructor, error) {
	const query = `SELECT a.id, a.instructor_id, a.code, a.hours, to_char(a.activity_date, 'YYYY-MM-DD') AS activity_date, a.shift, a.created_at,
		i.name AS instructor_name
		FROM instructor_activities a
		LEFT JOIN instructors i ON i.id = a.instructor_id
		WHERE a.activity_date BETWEEN $1 AND $2
		ORDER BY a.activity_date ASC, a.created_at ASC, a.id ASC`
	var activities []models.ActivityWithInstructor
	if err := r.db.SelectContext(ctx, &activities, query, from, to); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

// BulkCreate inserts every activity in one transaction; either all rows land
// or none do.
func (r *ActivityRepository) BulkCreate(ctx context.Context, activities []models.InstructorActivity) error {
	if len(activities) == 0 {
		return nil
	}
	const query = `INSERT INTO instructor_activities (id, instructor_id, code, hours, activity_date, shift, created_at)
		VALUES (:id, :instructor_id, :code, :hours, :activity_date, :shift, :created_at)`
	now := time.Now().UTC()
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for i := range activities {
			if activities[i].CreatedAt.IsZero() {
				activities[i].CreatedAt = now
			}
			if _, err := tx.NamedExecContext(ctx, query, activities[i]); err != nil {
				return fmt.Errorf("insert activity %s: %w", activities[i].ID, err)
			}
		}
		return nil
	})
}

// Delete removes one activity. It returns sql.ErrNoRows when nothing matched.
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM instructor_activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete activity rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
