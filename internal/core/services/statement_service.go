package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/firmbooks/firmbooks_backend/internal/core/domain"
	portsrepo "github.com/firmbooks/firmbooks_backend/internal/core/ports/repositories"
	"github.com/firmbooks/firmbooks_backend/internal/dto"
	"github.com/firmbooks/firmbooks_backend/internal/middleware"
	"github.com/firmbooks/firmbooks_backend/internal/utils/ledger"
)

// StatementService assembles the merged partner statement. Firm transactions
// tagged with the partner and the partner's own payments are normalized into
// one uniform shape and interleaved chronologically.
type StatementService struct {
	partnerRepo    portsrepo.PartnerReader
	partnerTxnRepo portsrepo.PartnerTransactionRepositoryFacade
	firmTxnRepo    portsrepo.FirmTransactionReader
	accountRepo    portsrepo.AccountReader
}

func NewStatementService(partnerRepo portsrepo.PartnerReader, partnerTxnRepo portsrepo.PartnerTransactionRepositoryFacade, firmTxnRepo portsrepo.FirmTransactionReader, accountRepo portsrepo.AccountReader) *StatementService {
	return &StatementService{
		partnerRepo:    partnerRepo,
		partnerTxnRepo: partnerTxnRepo,
		firmTxnRepo:    firmTxnRepo,
		accountRepo:    accountRepo,
	}
}

func (s *StatementService) GetPartnerStatement(ctx context.Context, partnerID string) (*dto.PartnerStatementResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	firmTxns, err := s.firmTxnRepo.ListByPartnerID(ctx, partnerID)
	if err != nil {
		logger.Error("Failed to load firm transactions for statement", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
		return nil, fmt.Errorf("failed to load firm transactions: %w", err)
	}

	partnerTxns, err := s.partnerTxnRepo.ListByPartnerID(ctx, partnerID)
	if err != nil {
		logger.Error("Failed to load partner payments for statement", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
		return nil, fmt.Errorf("failed to load partner payments: %w", err)
	}

	// Resolve account and mahajan names in bulk before normalizing.
	accountIDs := make([]string, 0, len(firmTxns))
	seenAccounts := make(map[string]struct{}, len(firmTxns))
	for _, txn := range firmTxns {
		if _, ok := seenAccounts[txn.AccountID]; !ok {
			seenAccounts[txn.AccountID] = struct{}{}
			accountIDs = append(accountIDs, txn.AccountID)
		}
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account names: %w", err)
	}

	mahajanIDs := make([]string, 0, len(partnerTxns))
	seenMahajans := make(map[string]struct{}, len(partnerTxns))
	for _, txn := range partnerTxns {
		if txn.MahajanID == nil {
			continue
		}
		if _, ok := seenMahajans[*txn.MahajanID]; !ok {
			seenMahajans[*txn.MahajanID] = struct{}{}
			mahajanIDs = append(mahajanIDs, *txn.MahajanID)
		}
	}
	mahajans, err := s.partnerRepo.FindMahajansByIDs(ctx, mahajanIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve mahajan names: %w", err)
	}

	entries := make([]dto.StatementEntryResponse, 0, len(firmTxns)+len(partnerTxns))
	normalized := ledger.MergeStatement(s.normalize(firmTxns, partnerTxns, accounts, mahajans, partner.Name))
	for _, e := range normalized {
		entries = append(entries, dto.ToStatementEntryResponse(e))
	}

	logger.Debug("Partner statement assembled",
		slog.String("partner_id", partnerID),
		slog.Int("firm_entries", len(firmTxns)),
		slog.Int("partner_entries", len(partnerTxns)),
	)

	return &dto.PartnerStatementResponse{
		Partner: dto.ToPartnerResponse(partner),
		Entries: entries,
	}, nil
}

// normalize flattens both transaction streams into statement entries with
// names resolved.
func (s *StatementService) normalize(firmTxns []domain.FirmTransaction, partnerTxns []domain.PartnerTransaction, accounts map[string]domain.Account, mahajans map[string]domain.Mahajan, partnerName string) []domain.StatementEntry {
	entries := make([]domain.StatementEntry, 0, len(firmTxns)+len(partnerTxns))
	for _, txn := range firmTxns {
		accountName := ""
		if acc, ok := accounts[txn.AccountID]; ok {
			accountName = acc.Name
		}
		entries = append(entries, ledger.NormalizeFirmTransaction(txn, accountName, partnerName))
	}
	for _, txn := range partnerTxns {
		mahajanName := ""
		if txn.MahajanID != nil {
			if m, ok := mahajans[*txn.MahajanID]; ok {
				mahajanName = m.Name
			}
		}
		entries = append(entries, ledger.NormalizePartnerTransaction(txn, mahajanName))
	}
	return entries
}
