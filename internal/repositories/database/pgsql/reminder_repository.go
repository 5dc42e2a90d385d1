package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/firmbooks/firmbooks_backend/internal/apperrors"
	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	portsrepo "github.com/firmbooks/firmbooks_backend/internal/core/ports/repositories"
	"github.com/firmbooks/firmbooks_backend/internal/models"
	"github.com/firmbooks/firmbooks_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReminderRepository struct {
	pool *pgxpool.Pool
}

// newPgxReminderRepository creates a new repository for reminder data.
func newPgxReminderRepository(pool *pgxpool.Pool) portsrepo.ReminderRepositoryFacade {
	return &PgxReminderRepository{pool: pool}
}

var _ portsrepo.ReminderRepositoryFacade = (*PgxReminderRepository)(nil)

const reminderColumns = `reminder_id, title, kind, amount, due_date, status, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanReminderRow(row pgx.Row) (models.Reminder, error) {
	var m models.Reminder
	err := row.Scan(
		&m.ReminderID,
		&m.Title,
		&m.Kind,
		&m.Amount,
		&m.DueDate,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxReminderRepository) SaveReminder(ctx context.Context, reminder domain.Reminder) error {
	m := mapping.ToModelReminder(reminder)

	query := `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ReminderID,
		m.Title,
		m.Kind,
		m.Amount,
		m.DueDate,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: reminder with ID %s already exists", apperrors.ErrDuplicate, m.ReminderID)
		}
		return fmt.Errorf("failed to save reminder %s: %w", m.ReminderID, err)
	}
	return nil
}

func (r *PgxReminderRepository) FindReminderByID(ctx context.Context, reminderID string) (*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE reminder_id = $1;`

	m, err := scanReminderRow(r.pool.QueryRow(ctx, query, reminderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reminder by ID %s: %w", reminderID, err)
	}

	d := mapping.ToDomainReminder(m)
	return &d, nil
}

// ListReminders retrieves reminders ordered by due date, optionally filtered
// by status.
func (r *PgxReminderRepository) ListReminders(ctx context.Context, status string) ([]domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY due_date ASC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	reminders := []domain.Reminder{}
	for rows.Next() {
		m, err := scanReminderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder row: %w", err)
		}
		reminders = append(reminders, mapping.ToDomainReminder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminder rows: %w", err)
	}
	return reminders, nil
}

func (r *PgxReminderRepository) UpdateReminder(ctx context.Context, reminder domain.Reminder) error {
	m := mapping.ToModelReminder(reminder)

	query := `
		UPDATE reminders
		SET title = $2, kind = $3, amount = $4, due_date = $5, status = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE reminder_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.ReminderID,
		m.Title,
		m.Kind,
		m.Amount,
		m.DueDate,
		m.Status,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder %s: %w", m.ReminderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReminderRepository) DeleteReminder(ctx context.Context, reminderID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reminders WHERE reminder_id = $1;`, reminderID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", reminderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
