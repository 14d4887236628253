package services

import (
	portsrepo "github.com/fintrackhq/fintrack_backend/internal/core/ports/repositories"
	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, cfg.BaseCurrency)
	container.Client = NewClientService(repos.ClientRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo)
	container.Goal = NewGoalService(repos.GoalRepo, repos.ReportingRepo)
	container.Dashboard = NewDashboardService(repos.ReportingRepo, cfg.OverdraftLimit)
	container.ExchangeRate = NewExchangeRateService(cfg.FxAPIBaseURL, cfg.BaseCurrency)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile-time checks that each implementation satisfies its facade.
var (
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.CategorySvcFacade    = (*categoryService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ClientSvcFacade      = (*clientService)(nil)
	_ portssvc.InvoiceSvcFacade     = (*invoiceService)(nil)
	_ portssvc.GoalSvcFacade        = (*goalService)(nil)
	_ portssvc.DashboardSvcFacade   = (*dashboardService)(nil)
)
