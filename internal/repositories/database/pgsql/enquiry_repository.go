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

type PgxEnquiryRepository struct {
	pool *pgxpool.Pool
}

// newPgxEnquiryRepository creates a new repository for enquiry data.
func newPgxEnquiryRepository(pool *pgxpool.Pool) portsrepo.EnquiryRepositoryFacade {
	return &PgxEnquiryRepository{pool: pool}
}

var _ portsrepo.EnquiryRepositoryFacade = (*PgxEnquiryRepository)(nil)

const enquiryColumns = `enquiry_id, student_name, phone, course, status, follow_up_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanEnquiryRow(row pgx.Row) (models.Enquiry, error) {
	var m models.Enquiry
	err := row.Scan(
		&m.EnquiryID,
		&m.StudentName,
		&m.Phone,
		&m.Course,
		&m.Status,
		&m.FollowUpDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEnquiryRepository) SaveEnquiry(ctx context.Context, enquiry domain.Enquiry) error {
	m := mapping.ToModelEnquiry(enquiry)

	query := `
		INSERT INTO enquiries (` + enquiryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.EnquiryID,
		m.StudentName,
		m.Phone,
		m.Course,
		m.Status,
		m.FollowUpDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: enquiry with ID %s already exists", apperrors.ErrDuplicate, m.EnquiryID)
		}
		return fmt.Errorf("failed to save enquiry %s: %w", m.EnquiryID, err)
	}
	return nil
}

func (r *PgxEnquiryRepository) FindEnquiryByID(ctx context.Context, enquiryID string) (*domain.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries WHERE enquiry_id = $1;`

	m, err := scanEnquiryRow(r.pool.QueryRow(ctx, query, enquiryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find enquiry by ID %s: %w", enquiryID, err)
	}

	d := mapping.ToDomainEnquiry(m)
	return &d, nil
}

// ListEnquiries retrieves enquiries newest first, optionally filtered by status.
func (r *PgxEnquiryRepository) ListEnquiries(ctx context.Context, status string) ([]domain.Enquiry, error) {
	query := `SELECT ` + enquiryColumns + ` FROM enquiries`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query enquiries: %w", err)
	}
	defer rows.Close()

	enquiries := []domain.Enquiry{}
	for rows.Next() {
		m, err := scanEnquiryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enquiry row: %w", err)
		}
		enquiries = append(enquiries, mapping.ToDomainEnquiry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enquiry rows: %w", err)
	}
	return enquiries, nil
}

func (r *PgxEnquiryRepository) UpdateEnquiry(ctx context.Context, enquiry domain.Enquiry) error {
	m := mapping.ToModelEnquiry(enquiry)

	query := `
		UPDATE enquiries
		SET student_name = $2, phone = $3, course = $4, status = $5, follow_up_date = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE enquiry_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.EnquiryID,
		m.StudentName,
		m.Phone,
		m.Course,
		m.Status,
		m.FollowUpDate,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update enquiry %s: %w", m.EnquiryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEnquiryRepository) DeleteEnquiry(ctx context.Context, enquiryID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM enquiries WHERE enquiry_id = $1;`, enquiryID)
	if err != nil {
		return fmt.Errorf("failed to delete enquiry %s: %w", enquiryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
