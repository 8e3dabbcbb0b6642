// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/wallet-tracker/backend/config"
	"github.com/wallet-tracker/backend/internal/application/usecase/auth"
	"github.com/wallet-tracker/backend/internal/application/usecase/ledger"
	"github.com/wallet-tracker/backend/internal/application/usecase/statistics"
	"github.com/wallet-tracker/backend/internal/application/usecase/transaction"
	"github.com/wallet-tracker/backend/internal/application/usecase/user"
	"github.com/wallet-tracker/backend/internal/application/usecase/wallet"
	"github.com/wallet-tracker/backend/internal/infra/server/router"
	"github.com/wallet-tracker/backend/internal/integration/adapters"
	"github.com/wallet-tracker/backend/internal/integration/cache"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/wallet-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/wallet-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	walletRepo := persistence.NewWalletRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	statisticsRepo := persistence.NewStatisticsRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	imageService := adapters.NewCloudinaryService(cfg.Cloudinary.CloudName, cfg.Cloudinary.UploadPreset)
	statsCache := cache.NewStatisticsCache(redisClient, cfg.Statistics.CacheTTL)

	// The ledger engine owns every wallet balance movement
	ledgerEngine := ledger.NewEngine(walletRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create wallet use cases
	createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo, imageService)
	listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo)
	getWalletUseCase := wallet.NewGetWalletUseCase(walletRepo)
	updateWalletUseCase := wallet.NewUpdateWalletUseCase(walletRepo, imageService)
	deleteWalletUseCase := wallet.NewDeleteWalletUseCase(walletRepo, transactionRepo, statsCache)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, walletRepo, ledgerEngine, imageService, statsCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, walletRepo, ledgerEngine, imageService, statsCache)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, ledgerEngine, statsCache)

	// Create statistics use cases
	summarizeUseCase := statistics.NewSummarizeUseCase(statisticsRepo, statsCache)
	categoryBreakdownUseCase := statistics.NewCategoryBreakdownUseCase(statisticsRepo)
	walletBreakdownUseCase := statistics.NewWalletBreakdownUseCase(statisticsRepo)

	// Create user use cases
	getProfileUseCase := user.NewGetProfileUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo, imageService)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	walletController := controller.NewWalletController(
		createWalletUseCase,
		listWalletsUseCase,
		getWalletUseCase,
		updateWalletUseCase,
		deleteWalletUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	statisticsController := controller.NewStatisticsController(
		summarizeUseCase,
		categoryBreakdownUseCase,
		walletBreakdownUseCase,
	)

	userController := controller.NewUserController(
		getProfileUseCase,
		updateProfileUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		walletController,
		transactionController,
		statisticsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
