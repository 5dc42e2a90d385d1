package repositories

// RepositoryProvider bundles every repository facade the service layer needs.
type RepositoryProvider struct {
	AccountRepo    AccountRepositoryFacade
	FirmTxnRepo    FirmTransactionRepositoryFacade
	PartnerRepo    PartnerRepositoryFacade
	PartnerTxnRepo PartnerTransactionRepositoryFacade
	EnquiryRepo    EnquiryRepositoryFacade
	ReminderRepo   ReminderRepositoryFacade
}
