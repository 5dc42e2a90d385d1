package services

import (
	portsrepo "github.com/firmbooks/firmbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/firmbooks/firmbooks_backend/internal/core/ports/services"
	"github.com/firmbooks/firmbooks_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.AccountSvc = NewAccountService(repos.AccountRepo, repos.FirmTxnRepo)
	container.LedgerSvc = NewLedgerService(repos.FirmTxnRepo, repos.AccountRepo, repos.PartnerRepo, cfg.Capabilities)
	container.PartnerSvc = NewPartnerService(repos.PartnerRepo, repos.PartnerTxnRepo)
	container.StatementSvc = NewStatementService(repos.PartnerRepo, repos.PartnerTxnRepo, repos.FirmTxnRepo, repos.AccountRepo)
	container.EnquirySvc = NewEnquiryService(repos.EnquiryRepo)
	container.ReminderSvc = NewReminderService(repos.ReminderRepo)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.AccountSvcFacade   = (*AccountService)(nil)
	_ portssvc.LedgerSvcFacade    = (*LedgerService)(nil)
	_ portssvc.PartnerSvcFacade   = (*PartnerService)(nil)
	_ portssvc.StatementSvcFacade = (*StatementService)(nil)
	_ portssvc.EnquirySvcFacade   = (*EnquiryService)(nil)
	_ portssvc.ReminderSvcFacade  = (*ReminderService)(nil)
)
