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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPartnerTransactionRepository struct {
	BaseRepository
}

// newPgxPartnerTransactionRepository creates a new repository for partner payment data.
func newPgxPartnerTransactionRepository(pool *pgxpool.Pool) portsrepo.PartnerTransactionRepositoryFacade {
	return &PgxPartnerTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartnerTransactionRepositoryFacade = (*PgxPartnerTransactionRepository)(nil)

const partnerTxnColumns = `transaction_id, partner_id, mahajan_id, amount, payment_mode, notes, payment_date, created_at, created_by, last_updated_at, last_updated_by`

// SavePayment inserts a partner payment and bumps the partner's invested
// total in the same database transaction, so the two never drift apart.
func (r *PgxPartnerTransactionRepository) SavePayment(ctx context.Context, txn domain.PartnerTransaction) error {
	m := mapping.ToModelPartnerTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	insertQuery := `
		INSERT INTO partner_transactions (` + partnerTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.PartnerID,
		m.MahajanID,
		m.Amount,
		m.PaymentMode,
		m.Notes,
		m.PaymentDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
			case "23503":
				return fmt.Errorf("%w: payment references a missing partner or mahajan", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to save payment %s: %w", m.TransactionID, err)
	}

	updateQuery := `
		UPDATE partners
		SET total_invested = total_invested + $2, last_updated_at = $3, last_updated_by = $4
		WHERE partner_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery, m.PartnerID, m.Amount, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update invested total for partner %s: %w", m.PartnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: partner %s", apperrors.ErrNotFound, m.PartnerID)
	}

	return r.Commit(ctx, tx)
}

// ListByPartnerID retrieves a partner's payments, newest first.
func (r *PgxPartnerTransactionRepository) ListByPartnerID(ctx context.Context, partnerID string) ([]domain.PartnerTransaction, error) {
	query := `SELECT ` + partnerTxnColumns + ` FROM partner_transactions WHERE partner_id = $1 ORDER BY payment_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for partner %s: %w", partnerID, err)
	}
	defer rows.Close()

	modelTxns := []models.PartnerTransaction{}
	for rows.Next() {
		var m models.PartnerTransaction
		err := rows.Scan(
			&m.TransactionID,
			&m.PartnerID,
			&m.MahajanID,
			&m.Amount,
			&m.PaymentMode,
			&m.Notes,
			&m.PaymentDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return mapping.ToDomainPartnerTransactionSlice(modelTxns), nil
}
