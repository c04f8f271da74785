package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	identityport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/identity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
	authUseCase "github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/auth"
	ledgerUseCase "github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/session"
	userUseCase "github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/i18n"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/storage"
	timeProvider "github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load and validate configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction() || cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Service:    cfg.Logger.Service,
	})
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider(time.Local)

	// Open the key-value store behind every collection and session
	kv, closeStore, err := openStore(cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to open storage", map[string]any{
			"driver": cfg.Storage.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer closeStore()

	collections := repository.NewCollections(kv, appLogger)
	hasher := identity.NewBcryptHasher(cfg.Auth.BcryptCost)

	accounts, err := buildAccounts(cfg.Auth.Accounts, hasher)
	if err != nil {
		appLogger.Error("Failed to prepare operator accounts", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	mode, err := session.ParseMode(cfg.Session.Mode)
	if err != nil {
		appLogger.Error("Invalid session mode", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Tokens only exist in verified mode
	var issuer identityport.TokenIssuer
	var verifier identityport.Verifier
	if mode == session.ModeVerified {
		issuer = identity.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL, tp)
		verifier = identity.NewHTTPVerifier(verifyBaseURL(cfg), cfg.Session.VerifyTimeout)
	}

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(collections.Users(), collections.Logs(), hasher, tp, appLogger).
		WithDemoData(cfg.Seed.DemoData)
	ledgerUseCaseImpl := ledgerUseCase.NewService(
		collections.Users(),
		collections.Logs(),
		collections.Ledger(),
		cfg.Products,
		tp,
		appLogger,
	)
	authUseCaseImpl := authUseCase.NewService(accounts, collections.Users(), hasher, issuer, appLogger)
	resolvers := session.NewResolverFactory(mode, verifier, appLogger)

	if cfg.Seed.Enabled {
		if err := userUseCaseImpl.SeedDefaultUsers(context.Background()); err != nil {
			appLogger.Error("Failed to create default users", map[string]any{
				"error": err.Error(),
			})
		}
	}

	lang, err := i18n.ParseLanguage(cfg.I18n.DefaultLanguage)
	if err != nil {
		lang = i18n.English
	}
	preferences := i18n.NewPreferences(lang)

	loginLimiter, err := middleware.NewLimiter(cfg.Auth.LoginRateLimit)
	if err != nil {
		appLogger.Error("Invalid login rate limit", map[string]any{
			"rate":  cfg.Auth.LoginRateLimit,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Purge the state of sessions whose cookie has expired
	var sessions *storage.SessionJanitor
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	if cfg.Session.CookieMaxAge > 0 {
		sessions = storage.NewSessionJanitor(kv, cfg.Session.CookieMaxAge, tp, appLogger)
		if cfg.Session.SweepInterval > 0 {
			go sessions.Run(sweepCtx, cfg.Session.SweepInterval)
		}
	}

	// Initialize Gin router
	router := gin.New()

	routes.SetupMiddlewares(router, appLogger, routes.MiddlewareOptions{
		Cookie: middleware.SessionCookie{
			Name:   cfg.Session.CookieName,
			MaxAge: cfg.Session.CookieMaxAge,
			Secure: cfg.Session.SecureCookie,
		},
		SharedStore:  kv,
		Sessions:     sessions,
		Preferences:  preferences,
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	routes.SetupRoutes(router, routes.Handlers{
		Auth:        handler.NewAuthHandler(authUseCaseImpl, appLogger),
		Dashboard:   handler.NewDashboardHandler(ledgerUseCaseImpl, userUseCaseImpl, appLogger),
		User:        handler.NewUserHandler(userUseCaseImpl, appLogger),
		Transaction: handler.NewTransactionHandler(ledgerUseCaseImpl, userUseCaseImpl, appLogger),
		Log:         handler.NewLogHandler(ledgerUseCaseImpl, appLogger),
		Language:    handler.NewLanguageHandler(preferences, appLogger),
		Navigation:  handler.NewNavigationHandler(resolvers, appLogger),
	}, resolvers, loginLimiter, appLogger)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":         server.Addr,
			"env":          cfg.Environment,
			"storage":      cfg.Storage.Driver,
			"session_mode": string(mode),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// openStore selects the configured key-value store. The returned func releases it.
func openStore(cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (persistence.ScannableStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return storage.NewMemoryStore(), func() {}, nil

	case config.DriverFile:
		store, err := storage.OpenFileStore(cfg.Storage.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				appLogger.Error("Failed to close file store", map[string]any{"error": err.Error()})
			}
		}, nil

	case config.DriverPostgres:
		manager := database.NewManager(cfg.Database, appLogger, tp)
		if _, err := manager.Connect(context.Background()); err != nil {
			return nil, nil, err
		}
		return manager.Store(), func() {
			if err := manager.Close(); err != nil {
				appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
			}
		}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// buildAccounts hashes plain configured passwords so only hashes stay in memory
func buildAccounts(configured []config.AccountConfig, hasher identityport.PasswordHasher) ([]authUseCase.Account, error) {
	accounts := make([]authUseCase.Account, 0, len(configured))
	for _, a := range configured {
		hash := a.PasswordHash
		if hash == "" {
			var err error
			if hash, err = hasher.Hash(a.Password); err != nil {
				return nil, fmt.Errorf("account %q: %w", a.Username, err)
			}
		}
		name := a.Name
		if name == "" {
			name = a.Username
		}
		accounts = append(accounts, authUseCase.Account{
			ID:           a.ID,
			Username:     a.Username,
			Name:         name,
			Role:         entity.ParseRole(a.Role),
			PasswordHash: hash,
		})
	}
	return accounts, nil
}

// verifyBaseURL defaults to this server itself
func verifyBaseURL(cfg *config.Config) string {
	if cfg.Session.VerifyBaseURL != "" {
		return cfg.Session.VerifyBaseURL
	}
	host := cfg.Server.Host
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(cfg.Server.Port))
}
