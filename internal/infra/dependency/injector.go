// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simrs-budget/backend/config"
	"github.com/simrs-budget/backend/internal/application/adapter"
	"github.com/simrs-budget/backend/internal/application/usecase/auth"
	"github.com/simrs-budget/backend/internal/application/usecase/dataset"
	"github.com/simrs-budget/backend/internal/application/usecase/problemdoc"
	"github.com/simrs-budget/backend/internal/application/usecase/report"
	"github.com/simrs-budget/backend/internal/domain/valueobject"
	"github.com/simrs-budget/backend/internal/infra/server/router"
	"github.com/simrs-budget/backend/internal/integration/adapters"
	"github.com/simrs-budget/backend/internal/integration/entrypoint/controller"
	"github.com/simrs-budget/backend/internal/integration/entrypoint/middleware"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Holder      *dataset.Holder
	LoadUseCase *dataset.LoadDatasetUseCase
	Router      *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The infrastructure collaborators (record store, spreadsheet source, cache,
// email sender) are constructed by the caller; cache and sender may be nil.
func NewInjector(
	cfg *config.Config,
	store adapter.ProblemDocumentStore,
	source adapter.SpreadsheetSource,
	cache adapter.SnapshotCache,
	sender adapter.EmailSender,
) *Injector {
	controllers := valueobject.DefaultControllerMap()
	if len(cfg.Controllers.Names) > 0 {
		controllers = valueobject.NewControllerMap(cfg.Controllers.Names)
	}

	// Create adapters/services
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	credentialService := adapters.NewCredentialService(cfg.Auth.Users)

	// Create dataset lifecycle
	holder := dataset.NewHolder()
	var alerter *dataset.OverBudgetAlerter
	if sender != nil && cfg.Alerts.Enabled && len(cfg.Alerts.Recipients) > 0 {
		alerter = dataset.NewOverBudgetAlerter(
			sender,
			cfg.Alerts.Recipients,
			decimal.NewFromInt(int64(cfg.Alerts.ThresholdPercent)),
		)
	}
	loadUseCase := dataset.NewLoadDatasetUseCase(source, cache, controllers, holder, alerter)
	uploadUseCase := dataset.NewUploadDatasetUseCase(controllers, holder)

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(credentialService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)

	// Create report use cases
	listTransactionsUseCase := report.NewListTransactionsUseCase()
	realizationDetailUseCase := report.NewRealizationDetailUseCase()

	// Create problem-document use cases
	createProblemDocUseCase := problemdoc.NewCreateProblemDocumentUseCase(store)
	updateStatusUseCase := problemdoc.NewUpdateStatusUseCase(store)
	deleteProblemDocUseCase := problemdoc.NewDeleteProblemDocumentUseCase(store)
	listProblemDocsUseCase := problemdoc.NewListProblemDocumentsUseCase(store)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return store.Healthy(ctx)
		},
		func() bool {
			_, err := holder.Current()
			return err == nil
		},
	)
	authController := controller.NewAuthController(loginUseCase, refreshTokenUseCase)
	realizationController := controller.NewRealizationController(holder, realizationDetailUseCase)
	transactionController := controller.NewTransactionController(holder, listTransactionsUseCase)
	problemDocumentController := controller.NewProblemDocumentController(
		createProblemDocUseCase,
		updateStatusUseCase,
		deleteProblemDocUseCase,
		listProblemDocsUseCase,
	)
	datasetController := controller.NewDatasetController(holder, loadUseCase, uploadUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter(cfg.Server.LoginRateLimit, cfg.Server.LoginRateWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		realizationController,
		transactionController,
		problemDocumentController,
		datasetController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		Holder:      holder,
		LoadUseCase: loadUseCase,
		Router:      r,
	}
}
