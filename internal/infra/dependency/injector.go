// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/khata-ledger/backend/config"
	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
	"github.com/khata-ledger/backend/internal/application/usecase/analytics"
	"github.com/khata-ledger/backend/internal/application/usecase/auth"
	"github.com/khata-ledger/backend/internal/application/usecase/backup"
	"github.com/khata-ledger/backend/internal/application/usecase/customer"
	"github.com/khata-ledger/backend/internal/application/usecase/expense"
	"github.com/khata-ledger/backend/internal/application/usecase/portal"
	"github.com/khata-ledger/backend/internal/application/usecase/transaction"
	infradb "github.com/khata-ledger/backend/internal/infra/db"
	"github.com/khata-ledger/backend/internal/infra/server/router"
	"github.com/khata-ledger/backend/internal/integration/adapters"
	"github.com/khata-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/khata-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/khata-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// Hub carries change notifications; the purge sweeper and any future
	// live views subscribe to it.
	Hub *stream.Hub

	// PurgeSweep is run by the sweeper goroutine owned by main.
	PurgeSweep *customer.PurgeSweepUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, database *infradb.Database) *Injector {
	db := database.DB()

	// Create repositories
	customerRepo := persistence.NewCustomerRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	settingRepo := persistence.NewSettingRepository(db)
	backupRepo := persistence.NewBackupRepository(db)
	importRepo := persistence.NewImportRepository(db)

	// Create adapters/services
	pinService := adapters.NewPinService()
	tokenService := adapters.NewTokenService(cfg.Session.Secret, cfg.Session.TokenExpiry)
	clock := adapter.SystemClock{}

	// Change notification hub
	hub := stream.NewHub()

	retention := time.Duration(cfg.Retention.DeletedCustomerDays) * 24 * time.Hour

	// Create customer use cases
	createCustomerUseCase := customer.NewCreateCustomerUseCase(customerRepo, hub)
	updateCustomerUseCase := customer.NewUpdateCustomerUseCase(customerRepo, hub)
	listCustomersUseCase := customer.NewListCustomersUseCase(customerRepo)
	getCustomerUseCase := customer.NewGetCustomerUseCase(customerRepo, transactionRepo)
	deleteCustomerUseCase := customer.NewDeleteCustomerUseCase(customerRepo, clock, hub)
	restoreCustomerUseCase := customer.NewRestoreCustomerUseCase(customerRepo, hub)
	listDeletedUseCase := customer.NewListDeletedCustomersUseCase(customerRepo, retention)
	purgeSweepUseCase := customer.NewPurgeSweepUseCase(customerRepo, clock, retention)

	// Create transaction use cases
	recordTransactionUseCase := transaction.NewRecordTransactionUseCase(transactionRepo, customerRepo, hub)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, hub)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, hub)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, hub)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, hub)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, hub)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)

	// Create analytics use cases
	overviewUseCase := analytics.NewOverviewUseCase(transactionRepo, expenseRepo, clock)
	cropAnalysisUseCase := analytics.NewCropAnalysisUseCase(transactionRepo, clock)
	recentActivityUseCase := analytics.NewRecentActivityUseCase(transactionRepo, expenseRepo)

	// Create backup use cases
	exportBackupUseCase := backup.NewExportBackupUseCase(backupRepo, clock)
	importBackupUseCase := backup.NewImportBackupUseCase(backupRepo, importRepo, hub, cfg.Backup.MaxImportBytes)

	// Create portal and auth use cases
	getStatementUseCase := portal.NewGetStatementUseCase(customerRepo, transactionRepo)
	unlockUseCase := auth.NewUnlockUseCase(settingRepo, pinService, tokenService)
	setPinUseCase := auth.NewSetPinUseCase(settingRepo, pinService)
	pinStatusUseCase := auth.NewPinStatusUseCase(settingRepo)

	// Create controllers
	healthController := controller.NewHealthController(database)
	authController := controller.NewAuthController(unlockUseCase, setPinUseCase, pinStatusUseCase)
	customerController := controller.NewCustomerController(
		createCustomerUseCase,
		updateCustomerUseCase,
		listCustomersUseCase,
		getCustomerUseCase,
		deleteCustomerUseCase,
		restoreCustomerUseCase,
		listDeletedUseCase,
	)
	transactionController := controller.NewTransactionController(
		recordTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
	)
	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		listExpensesUseCase,
	)
	analyticsController := controller.NewAnalyticsController(
		overviewUseCase,
		cropAnalysisUseCase,
		recentActivityUseCase,
	)
	backupController := controller.NewBackupController(exportBackupUseCase, importBackupUseCase)
	portalController := controller.NewPortalController(getStatementUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	redisClient := newRedisClient(cfg)
	var publicRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		publicRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, time.Minute)
	} else {
		publicRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		customerController,
		transactionController,
		expenseController,
		analyticsController,
		backupController,
		portalController,
		publicRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:     cfg,
		DB:         db,
		Router:     r,
		Hub:        hub,
		PurgeSweep: purgeSweepUseCase,
	}
}

// newRedisClient builds the redis client for the rate limiter, or nil when
// no address is configured.
func newRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
