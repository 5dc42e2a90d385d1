package ports

// ServiceContainer bundles every service facade for handler wiring.
type ServiceContainer struct {
	AccountSvc   AccountSvcFacade
	LedgerSvc    LedgerSvcFacade
	PartnerSvc   PartnerSvcFacade
	StatementSvc StatementSvcFacade
	EnquirySvc   EnquirySvcFacade
	ReminderSvc  ReminderSvcFacade
}
