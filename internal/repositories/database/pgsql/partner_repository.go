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

type PgxPartnerRepository struct {
	pool *pgxpool.Pool
}

// newPgxPartnerRepository creates a new repository for partner and mahajan data.
func newPgxPartnerRepository(pool *pgxpool.Pool) portsrepo.PartnerRepositoryFacade {
	return &PgxPartnerRepository{pool: pool}
}

var _ portsrepo.PartnerRepositoryFacade = (*PgxPartnerRepository)(nil)

const partnerColumns = `partner_id, name, phone, email, address, total_invested, created_at, created_by, last_updated_at, last_updated_by`

func scanPartnerRow(row pgx.Row) (models.Partner, error) {
	var m models.Partner
	err := row.Scan(
		&m.PartnerID,
		&m.Name,
		&m.Phone,
		&m.Email,
		&m.Address,
		&m.TotalInvested,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePartner inserts a new partner with a zero invested total.
func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	m := mapping.ToModelPartner(partner)

	query := `
		INSERT INTO partners (` + partnerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PartnerID,
		m.Name,
		m.Phone,
		m.Email,
		m.Address,
		m.TotalInvested,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: partner with ID %s already exists", apperrors.ErrDuplicate, m.PartnerID)
		}
		return fmt.Errorf("failed to save partner %s: %w", m.PartnerID, err)
	}
	return nil
}

// FindPartnerByID retrieves a specific partner.
func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE partner_id = $1;`

	m, err := scanPartnerRow(r.pool.QueryRow(ctx, query, partnerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partner by ID %s: %w", partnerID, err)
	}

	d := mapping.ToDomainPartner(m)
	return &d, nil
}

// FindPartnersByIDs retrieves multiple partners by their IDs.
func (r *PgxPartnerRepository) FindPartnersByIDs(ctx context.Context, partnerIDs []string) (map[string]domain.Partner, error) {
	if len(partnerIDs) == 0 {
		return map[string]domain.Partner{}, nil
	}

	query := `SELECT ` + partnerColumns + ` FROM partners WHERE partner_id = ANY($1);`

	rows, err := r.pool.Query(ctx, query, partnerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners by IDs: %w", err)
	}
	defer rows.Close()

	partnersMap := make(map[string]domain.Partner)
	for rows.Next() {
		m, err := scanPartnerRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner row during batch fetch: %w", err)
		}
		partnersMap[m.PartnerID] = mapping.ToDomainPartner(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner rows during batch fetch: %w", err)
	}
	return partnersMap, nil
}

// ListPartners retrieves all partners ordered by name.
func (r *PgxPartnerRepository) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	defer rows.Close()

	partners := []domain.Partner{}
	for rows.Next() {
		m, err := scanPartnerRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner row: %w", err)
		}
		partners = append(partners, mapping.ToDomainPartner(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner rows: %w", err)
	}
	return partners, nil
}

// FindMahajansByIDs retrieves mahajans by their IDs for name resolution.
func (r *PgxPartnerRepository) FindMahajansByIDs(ctx context.Context, mahajanIDs []string) (map[string]domain.Mahajan, error) {
	if len(mahajanIDs) == 0 {
		return map[string]domain.Mahajan{}, nil
	}

	query := `SELECT mahajan_id, name, phone, created_at, created_by, last_updated_at, last_updated_by FROM mahajans WHERE mahajan_id = ANY($1);`

	rows, err := r.pool.Query(ctx, query, mahajanIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query mahajans by IDs: %w", err)
	}
	defer rows.Close()

	mahajansMap := make(map[string]domain.Mahajan)
	for rows.Next() {
		var m models.Mahajan
		err := rows.Scan(
			&m.MahajanID,
			&m.Name,
			&m.Phone,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mahajan row during batch fetch: %w", err)
		}
		mahajansMap[m.MahajanID] = mapping.ToDomainMahajan(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mahajan rows during batch fetch: %w", err)
	}
	return mahajansMap, nil
}

// UpdatePartner updates a partner's contact details. The invested total is
// owned by payment recording and stays out of this statement.
func (r *PgxPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	m := mapping.ToModelPartner(partner)

	query := `
		UPDATE partners
		SET name = $2, phone = $3, email = $4, address = $5, last_updated_at = $6, last_updated_by = $7
		WHERE partner_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.PartnerID,
		m.Name,
		m.Phone,
		m.Email,
		m.Address,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update partner %s: %w", m.PartnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
