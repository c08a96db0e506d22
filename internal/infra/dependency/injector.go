// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-tracker/gateway/config"
	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/application/usecase/auth"
	"github.com/expense-tracker/gateway/internal/application/usecase/budget"
	"github.com/expense-tracker/gateway/internal/application/usecase/category"
	"github.com/expense-tracker/gateway/internal/application/usecase/dashboard"
	"github.com/expense-tracker/gateway/internal/application/usecase/expense"
	"github.com/expense-tracker/gateway/internal/application/usecase/snapshot"
	"github.com/expense-tracker/gateway/internal/application/usecase/user"
	"github.com/expense-tracker/gateway/internal/infra/server/router"
	"github.com/expense-tracker/gateway/internal/integration/adapters"
	"github.com/expense-tracker/gateway/internal/integration/cache"
	"github.com/expense-tracker/gateway/internal/integration/email"
	"github.com/expense-tracker/gateway/internal/integration/email/templates"
	"github.com/expense-tracker/gateway/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/gateway/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/gateway/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/gateway/internal/integration/export"
	"github.com/expense-tracker/gateway/internal/integration/format"
	"github.com/expense-tracker/gateway/internal/integration/persistence"
	"github.com/expense-tracker/gateway/internal/integration/remote"
)

// Options carries the optional collaborators opened by the caller.
type Options struct {
	// DB is the expense service database. Required when the data source is
	// the database; otherwise it only backs the email queue.
	DB *gorm.DB

	// Redis enables the snapshot cache and the shared alert ledger.
	Redis *redis.Client

	// EmailSender replaces the Resend client (for testing).
	EmailSender adapter.EmailSender

	// Now replaces the wall clock (for testing).
	Now func() time.Time
}

// ErrUnverifiedTokens is returned when the gateway would serve data keyed by
// the token's user id without checking the token signature.
var ErrUnverifiedTokens = errors.New("JWT_VERIFY=true and JWT_SECRET are required when reading from the database or caching snapshots")

// Injector holds all application dependencies.
type Injector struct {
	Config           *config.Config
	Router           *router.Router
	EmailWorker      *email.Worker // Nil when budget alerts are disabled
	LoginRateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, opts Options) (*Injector, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	// Only the remote service checks tokens it receives. The database and the
	// snapshot cache are keyed by the token's user id and never see the token.
	if (cfg.DataSource.UsesDatabase() || opts.Redis != nil) && !cfg.JWT.Verifies() {
		return nil, ErrUnverifiedTokens
	}

	formatter, err := format.NewFormatter(cfg.Display.Currency, cfg.Display.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to create money formatter: %w", err)
	}

	// Create data source ports
	remoteClient := remote.NewClient(remote.Config{
		BaseURL: cfg.Remote.BaseURL,
		Timeout: cfg.Remote.Timeout,
	})
	accountService := remote.NewAccountService(remoteClient)

	var (
		expenseRepo  adapter.ExpenseRepository
		categoryRepo adapter.CategoryRepository
		budgetRepo   adapter.BudgetRepository
		upstream     controller.HealthChecker
	)
	if cfg.DataSource.UsesDatabase() {
		if opts.DB == nil {
			return nil, fmt.Errorf("data source %q requires a database connection", cfg.DataSource.Mode)
		}
		expenseRepo = persistence.NewExpenseRepository(opts.DB)
		categoryRepo = persistence.NewCategoryRepository(opts.DB)
		budgetRepo = persistence.NewBudgetRepository(opts.DB)
		upstream = func(ctx context.Context) bool {
			sqlDB, err := opts.DB.DB()
			if err != nil {
				return false
			}
			return sqlDB.PingContext(ctx) == nil
		}
	} else {
		expenseRepo = remote.NewExpenseRepository(remoteClient)
		categoryRepo = remote.NewCategoryRepository(remoteClient)
		budgetRepo = remote.NewBudgetRepository(remoteClient)
		upstream = func(ctx context.Context) bool {
			return remoteClient.Ping(ctx) == nil
		}
	}

	// Create caches
	var (
		snapshotCache adapter.SnapshotCache
		alertLedger   adapter.AlertLedger
		cacheCheck    controller.HealthChecker
	)
	if opts.Redis != nil {
		snapshotCache = cache.NewRedisSnapshotCache(opts.Redis, cfg.Redis.CacheTTL)
		alertLedger = cache.NewRedisAlertLedger(opts.Redis)
		cacheCheck = func(ctx context.Context) bool {
			return opts.Redis.Ping(ctx).Err() == nil
		}
	} else {
		alertLedger = cache.NewMemoryAlertLedger()
	}

	snapshots := snapshot.NewLoadSnapshotUseCase(expenseRepo, categoryRepo, budgetRepo, snapshotCache).WithClock(now)

	// Create budget alerts
	var (
		notifier    *budget.AlertNotifier
		emailWorker *email.Worker
	)
	if cfg.Email.CanSendAlerts() || (cfg.Email.AlertsEnabled && opts.EmailSender != nil) {
		var queue adapter.EmailQueueRepository
		if opts.DB != nil {
			queue = persistence.NewEmailQueueRepository(opts.DB)
		} else {
			queue = email.NewMemoryQueue(cfg.Email.QueueCapacity)
		}

		notifier = budget.NewAlertNotifier(email.NewService(queue, cfg.Email.AppBaseURL), alertLedger, formatter)

		if cfg.Email.WorkerEnabled {
			renderer, err := templates.NewRenderer()
			if err != nil {
				return nil, fmt.Errorf("failed to load email templates: %w", err)
			}
			sender := opts.EmailSender
			if sender == nil {
				sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			}
			workerConfig := email.DefaultWorkerConfig()
			workerConfig.PollInterval = cfg.Email.PollInterval
			workerConfig.BatchSize = cfg.Email.BatchSize
			emailWorker = email.NewWorker(queue, sender, renderer, workerConfig)
		}
	} else if cfg.Email.AlertsEnabled {
		slog.Warn("Budget alerts enabled but RESEND_API_KEY is empty, alerts disabled")
	}

	// Create auth and profile use cases
	registerUseCase := auth.NewRegisterUserUseCase(accountService)
	loginUseCase := auth.NewLoginUserUseCase(accountService)
	getProfileUseCase := user.NewGetProfileUseCase(accountService)
	updateProfileUseCase := user.NewUpdateProfileUseCase(accountService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(snapshots)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, snapshots)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, snapshots)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, snapshots)
	exportExpensesUseCase := expense.NewExportExpensesUseCase(snapshots, export.NewXLSXExporter())

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(snapshots, notifier).WithClock(now)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, snapshots)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, snapshots)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, snapshots)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(snapshots).WithClock(now)
	getCategoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(snapshots)
	getMonthlyTrendsUseCase := dashboard.NewGetMonthlyTrendsUseCase(snapshots)
	getDataRangeUseCase := dashboard.NewGetDataRangeUseCase(snapshots)

	// Create controllers
	presenter := dto.NewPresenter(formatter)

	healthController := controller.NewHealthController(cfg.DataSource.Mode, upstream, cacheCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	userController := controller.NewUserController(getProfileUseCase, updateProfileUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		exportExpensesUseCase,
		presenter,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		presenter,
	)
	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getCategoryBreakdownUseCase,
		getMonthlyTrendsUseCase,
		getDataRangeUseCase,
		presenter,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Verifies()))

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		expenseController,
		budgetController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
		cfg.CORS.AllowedOrigins,
	)

	return &Injector{
		Config:           cfg,
		Router:           r,
		EmailWorker:      emailWorker,
		LoginRateLimiter: loginRateLimiter,
	}, nil
}
