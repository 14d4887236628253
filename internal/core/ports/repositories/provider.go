package repositories

// RepositoryProvider bundles all repositories for dependency injection.
type RepositoryProvider struct {
	UserRepo        UserRepository
	AccountRepo     AccountRepository
	CategoryRepo    CategoryRepository
	TransactionRepo TransactionRepository
	ClientRepo      ClientRepository
	InvoiceRepo     InvoiceRepository
	GoalRepo        GoalRepository
	ReportingRepo   ReportingRepository
}
