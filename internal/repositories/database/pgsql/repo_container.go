package pgsql

import (
	portsrepo "github.com/firmbooks/firmbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:    newPgxAccountRepository(dbPool),
		FirmTxnRepo:    newPgxFirmTransactionRepository(dbPool),
		PartnerRepo:    newPgxPartnerRepository(dbPool),
		PartnerTxnRepo: newPgxPartnerTransactionRepository(dbPool),
		EnquiryRepo:    newPgxEnquiryRepository(dbPool),
		ReminderRepo:   newPgxReminderRepository(dbPool),
	}
}
