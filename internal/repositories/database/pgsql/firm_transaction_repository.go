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
	"github.com/firmbooks/firmbooks_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFirmTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxFirmTransactionRepository creates a new repository for firm transaction data.
func newPgxFirmTransactionRepository(pool *pgxpool.Pool) portsrepo.FirmTransactionRepositoryFacade {
	return &PgxFirmTransactionRepository{pool: pool}
}

var _ portsrepo.FirmTransactionRepositoryFacade = (*PgxFirmTransactionRepository)(nil)

const firmTxnColumns = `transaction_id, account_id, partner_id, type, amount, description, txn_date, created_at, created_by, last_updated_at, last_updated_by`

func scanFirmTxnRow(row pgx.Row) (models.FirmTransaction, error) {
	var m models.FirmTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.PartnerID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.TxnDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction persists a new firm transaction row.
func (r *PgxFirmTransactionRepository) SaveTransaction(ctx context.Context, txn domain.FirmTransaction) error {
	m := mapping.ToModelFirmTransaction(txn)

	query := `
		INSERT INTO firm_transactions (` + firmTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.PartnerID,
		m.Type,
		m.Amount,
		m.Description,
		m.TxnDate,
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
				return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
			case "23503":
				return fmt.Errorf("%w: transaction references a missing account or partner", apperrors.ErrValidation)
			}
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a single firm transaction.
func (r *PgxFirmTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.FirmTransaction, error) {
	query := `SELECT ` + firmTxnColumns + ` FROM firm_transactions WHERE transaction_id = $1;`

	m, err := scanFirmTxnRow(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainFirmTransaction(m)
	return &d, nil
}

// ListByAccountID retrieves a page of an account's transactions ordered by
// transaction date descending, creation time descending. The cursor token
// encodes the (txn_date, created_at) pair of the last row of the prior page.
func (r *PgxFirmTransactionRepository) ListByAccountID(ctx context.Context, accountID string, limit int, nextToken string) ([]domain.FirmTransaction, string, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + firmTxnColumns + ` FROM firm_transactions WHERE account_id = $1`
	args := []any{accountID}

	if nextToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: invalid page token", apperrors.ErrValidation)
		}
		query += ` AND (txn_date, created_at) < ($2, $3)`
		args = append(args, txnDate, createdAt)
	}
	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY txn_date DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	modelTxns := []models.FirmTransaction{}
	for rows.Next() {
		m, err := scanFirmTxnRow(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating transaction rows: %w", err)
	}

	newToken := ""
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		newToken = pagination.EncodeToken(last.TxnDate, last.CreatedAt)
	}

	return mapping.ToDomainFirmTransactionSlice(modelTxns), newToken, nil
}

// ListAllByAccountID retrieves every transaction of an account. Balance folds
// always consume the full set, so no pagination applies here.
func (r *PgxFirmTransactionRepository) ListAllByAccountID(ctx context.Context, accountID string) ([]domain.FirmTransaction, error) {
	query := `SELECT ` + firmTxnColumns + ` FROM firm_transactions WHERE account_id = $1 ORDER BY txn_date ASC, created_at ASC;`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query all transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	modelTxns := []models.FirmTransaction{}
	for rows.Next() {
		m, err := scanFirmTxnRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainFirmTransactionSlice(modelTxns), nil
}

// ListByPartnerID retrieves firm transactions tagged with a partner,
// newest first.
func (r *PgxFirmTransactionRepository) ListByPartnerID(ctx context.Context, partnerID string) ([]domain.FirmTransaction, error) {
	query := `SELECT ` + firmTxnColumns + ` FROM firm_transactions WHERE partner_id = $1 ORDER BY txn_date DESC, created_at DESC;`

	rows, err := r.pool.Query(ctx, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for partner %s: %w", partnerID, err)
	}
	defer rows.Close()

	modelTxns := []models.FirmTransaction{}
	for rows.Next() {
		m, err := scanFirmTxnRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainFirmTransactionSlice(modelTxns), nil
}

// UpdateTransaction rewrites the editable columns of a firm transaction.
func (r *PgxFirmTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.FirmTransaction) error {
	m := mapping.ToModelFirmTransaction(txn)

	query := `
		UPDATE firm_transactions
		SET partner_id = $2, type = $3, amount = $4, description = $5, txn_date = $6, last_updated_at = $7, last_updated_by = $8
		WHERE transaction_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.PartnerID,
		m.Type,
		m.Amount,
		m.Description,
		m.TxnDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a firm transaction row. The account balance needs
// no compensation here: it is refolded from the surviving rows on read.
func (r *PgxFirmTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM firm_transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
