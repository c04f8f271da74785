package routes

import (
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/i18n"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/storage"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// Handlers groups every HTTP handler of the service
type Handlers struct {
	Auth        *handler.AuthHandler
	Dashboard   *handler.DashboardHandler
	User        *handler.UserHandler
	Transaction *handler.TransactionHandler
	Log         *handler.LogHandler
	Language    *handler.LanguageHandler
	Navigation  *handler.NavigationHandler
}

// MiddlewareOptions configures the global middleware chain
type MiddlewareOptions struct {
	Cookie       middleware.SessionCookie
	SharedStore  persistence.KeyValueStore
	Sessions     *storage.SessionJanitor
	Preferences  *i18n.Preferences
	AllowOrigins []string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	resolvers usecase.SessionResolverFactory,
	loginLimiter *limiter.Limiter,
	logger coreport.Logger,
) {
	guarded := func(access middleware.Access) gin.HandlerFunc {
		return middleware.Guard(resolvers, access)
	}
	admin := guarded(middleware.Roles(entity.RoleAdmin))

	router.GET("/", handlers.Navigation.Index)
	router.GET("/healthz", handlers.Navigation.Healthz)
	router.GET("/api/verify", handlers.Auth.Verify)
	router.PUT("/language", handlers.Language.SetLanguage)

	login := router.Group(entity.LoginPath, guarded(middleware.Public))
	{
		login.GET("", handlers.Auth.LoginPage)
		login.POST("", middleware.RateLimit(loginLimiter, logger), handlers.Auth.Login)
	}

	router.POST("/logout", guarded(middleware.Authenticated), handlers.Auth.Logout)

	router.GET(entity.DashboardPath, admin, handlers.Dashboard.Dashboard)
	router.GET(entity.StudentDashboardPath, guarded(middleware.Roles(entity.RoleStudent)), handlers.Dashboard.StudentDashboard)
	router.GET(entity.LogsPath, guarded(middleware.Authenticated), handlers.Log.ListLogs)

	users := router.Group("/users", admin)
	{
		users.GET("", handlers.User.ListUsers)
		users.POST("", handlers.User.CreateUser)
		users.GET("/:id", handlers.User.GetUser)
	}

	transactions := router.Group("/transactions", admin)
	{
		transactions.GET("", handlers.Transaction.TransactionsPage)
		transactions.POST("", handlers.Transaction.ApplyTransaction)
		transactions.POST("/purchase", handlers.Transaction.PurchaseProduct)
	}

	router.NoRoute(guarded(middleware.Authenticated), handlers.Navigation.NotFound)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, opts MiddlewareOptions) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(opts.AllowOrigins))
	router.Use(middleware.Session(opts.Cookie, opts.SharedStore, opts.Sessions, logger))
	router.Use(middleware.Locale(opts.Preferences))
}
