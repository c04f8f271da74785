package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardpay-admin/internal/domain/error"
	identityport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/identity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/auth"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/session"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/i18n"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/storage"
	timeprovider "github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/time"
)

const cookieName = "cpa_sid"

type app struct {
	router *gin.Engine
	kv     *storage.MemoryStore
}

func newApp(t *testing.T, mode session.Mode) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider(time.UTC)
	kv := storage.NewMemoryStore()
	collections := repository.NewCollections(kv, log)
	hasher := identity.NewBcryptHasher(bcrypt.MinCost)

	users := user.NewUserUseCase(collections.Users(), collections.Logs(), hasher, tp, log).WithDemoData(true)
	require.NoError(t, users.SeedDefaultUsers(context.Background()))

	adminHash, err := hasher.Hash("admin")
	require.NoError(t, err)
	auditorHash, err := hasher.Hash("auditor")
	require.NoError(t, err)
	accounts := []auth.Account{
		{ID: 1, Username: "admin", Name: "Administrator", Role: entity.RoleAdmin, PasswordHash: adminHash},
		{ID: 2, Username: "auditor", Name: "Auditor", Role: entity.RoleUser, PasswordHash: auditorHash},
	}

	a := &app{router: gin.New(), kv: kv}

	var issuer identityport.TokenIssuer
	var verifier identityport.Verifier
	if mode == session.ModeVerified {
		issuer = identity.NewJWTIssuer("test-secret", "cardpay-test", time.Hour, tp)
		server := httptest.NewServer(a.router)
		t.Cleanup(server.Close)
		verifier = identity.NewHTTPVerifier(server.URL, 2*time.Second)
	}

	products := []entity.Product{{ID: "coffee", Name: "Coffee", Price: 150}}
	authService := auth.NewService(accounts, collections.Users(), hasher, issuer, log)
	ledgerService := ledger.NewService(collections.Users(), collections.Logs(), collections.Ledger(), products, tp, log)
	resolvers := session.NewResolverFactory(mode, verifier, log)
	prefs := i18n.NewPreferences(i18n.English)

	loginLimiter, err := middleware.NewLimiter("5-M")
	require.NoError(t, err)

	SetupMiddlewares(a.router, log, MiddlewareOptions{
		Cookie:      middleware.SessionCookie{Name: cookieName, MaxAge: time.Hour},
		SharedStore: kv,
		Preferences: prefs,
	})
	SetupRoutes(a.router, Handlers{
		Auth:        handler.NewAuthHandler(authService, log),
		Dashboard:   handler.NewDashboardHandler(ledgerService, users, log),
		User:        handler.NewUserHandler(users, log),
		Transaction: handler.NewTransactionHandler(ledgerService, users, log),
		Log:         handler.NewLogHandler(ledgerService, log),
		Language:    handler.NewLanguageHandler(prefs, log),
		Navigation:  handler.NewNavigationHandler(resolvers, log),
	}, resolvers, loginLimiter, log)

	return a
}

// browser keeps the session cookie between requests
type browser struct {
	app *app
	sid string
}

func (a *app) browser() *browser {
	return &browser{app: a}
}

func (b *browser) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.10:40000"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if b.sid != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: b.sid})
	}

	rec := httptest.NewRecorder()
	b.app.router.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == cookieName {
			b.sid = cookie.Value
		}
	}
	return rec
}

func (b *browser) login(t *testing.T, username, password string) dto.LoginResponse {
	t.Helper()
	rec := b.do(t, http.MethodPost, "/login", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestGuardRedirects(t *testing.T) {
	a := newApp(t, session.ModeLocal)

	t.Run("Signed out visitor is sent to login", func(t *testing.T) {
		b := a.browser()

		rec := b.do(t, http.MethodGet, "/dashboard", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login?from=%2Fdashboard", rec.Header().Get("Location"))

		rec = b.do(t, http.MethodGet, "/", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		rec = b.do(t, http.MethodGet, "/no-such-page", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login?from=%2Fno-such-page", rec.Header().Get("Location"))
	})

	t.Run("Login page renders for signed out visitor", func(t *testing.T) {
		rec := a.browser().do(t, http.MethodGet, "/login?from=%2Fusers", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		page := decode[dto.LoginView](t, rec)
		assert.Equal(t, "en", page.Locale)
		assert.Equal(t, "ltr", page.Direction)
		assert.Equal(t, "Login", page.Title)
		assert.Equal(t, "/users", page.From)
	})

	t.Run("Admin is kept away from login and student pages", func(t *testing.T) {
		b := a.browser()
		resp := b.login(t, "admin", "admin")
		assert.Equal(t, entity.DashboardPath, resp.Redirect)
		assert.Equal(t, entity.RoleAdmin, resp.Session.Role)

		for path, want := range map[string]string{
			"/":                  "/dashboard",
			"/login":             "/dashboard",
			"/student-dashboard": "/dashboard",
		} {
			rec := b.do(t, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusFound, rec.Code, path)
			assert.Equal(t, want, rec.Header().Get("Location"), path)
		}

		rec := b.do(t, http.MethodGet, "/no-such-page", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errs.CodeNotFound, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Student is sent to their own dashboard", func(t *testing.T) {
		b := a.browser()
		resp := b.login(t, "MAT123456", "MAT123456")
		assert.Equal(t, entity.StudentDashboardPath, resp.Redirect)

		for _, path := range []string{"/dashboard", "/users", "/transactions"} {
			rec := b.do(t, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusFound, rec.Code, path)
			assert.Equal(t, "/student-dashboard", rec.Header().Get("Location"), path)
		}

		rec := b.do(t, http.MethodGet, "/student-dashboard", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[dto.StudentDashboardView](t, rec)
		assert.Equal(t, "John Doe", page.User.Name)
		assert.Equal(t, "SYP 2,500", page.User.Balance.Formatted)
		require.Len(t, page.Logs.Entries, 1)
		assert.Equal(t, "MAT123456", page.Logs.Entries[0].MatricNumber)
	})

	t.Run("Generic user lands on logs", func(t *testing.T) {
		b := a.browser()
		resp := b.login(t, "auditor", "auditor")
		assert.Equal(t, entity.LogsPath, resp.Redirect)

		rec := b.do(t, http.MethodGet, "/dashboard", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/logs", rec.Header().Get("Location"))

		rec = b.do(t, http.MethodGet, "/logs", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[dto.LogsView](t, rec)
		assert.Equal(t, 5, page.Logs.TotalEntries)
		assert.Len(t, page.Logs.Entries, 5)
	})

	t.Run("Malformed session is treated as signed out", func(t *testing.T) {
		b := a.browser()
		b.do(t, http.MethodGet, "/healthz", nil)
		require.NotEmpty(t, b.sid)

		scoped := storage.Scoped(a.kv, b.sid)
		require.NoError(t, scoped.Set(context.Background(), entity.KeyCurrentUser, []byte("{broken")))

		rec := b.do(t, http.MethodGet, "/dashboard", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login?from=%2Fdashboard", rec.Header().Get("Location"))
	})

	t.Run("Logout ends the session", func(t *testing.T) {
		b := a.browser()
		b.login(t, "admin", "admin")

		rec := b.do(t, http.MethodPost, "/logout", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))

		rec = b.do(t, http.MethodGet, "/dashboard", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
	})
}

func TestLoginFailures(t *testing.T) {
	a := newApp(t, session.ModeLocal)
	b := a.browser()

	rec := b.do(t, http.MethodPost, "/login", dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	resp := decode[dto.ErrorResponse](t, rec)
	assert.Equal(t, errs.CodeAuthFailure, resp.Code)
	assert.Equal(t, "Invalid username or password", resp.Message)

	rec = b.do(t, http.MethodPost, "/login", dto.LoginRequest{Username: "", Password: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errs.CodeMissingField, decode[dto.ErrorResponse](t, rec).Code)

	for i := 0; i < 3; i++ {
		b.do(t, http.MethodPost, "/login", dto.LoginRequest{Username: "nobody", Password: "x"})
	}

	rec = b.do(t, http.MethodPost, "/login", dto.LoginRequest{Username: "admin", Password: "admin"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, errs.CodeRateLimited, decode[dto.ErrorResponse](t, rec).Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestTransactions(t *testing.T) {
	a := newApp(t, session.ModeLocal)
	b := a.browser()
	b.login(t, "admin", "admin")

	t.Run("Form lists users and products", func(t *testing.T) {
		rec := b.do(t, http.MethodGet, "/transactions", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		page := decode[dto.TransactionsView](t, rec)
		assert.Len(t, page.Users, 5)
		require.Len(t, page.Products, 1)
		assert.Equal(t, "SYP 150", page.Products[0].Price.Formatted)
	})

	t.Run("Credit then debit", func(t *testing.T) {
		rec := b.do(t, http.MethodPost, "/transactions", map[string]any{"userId": 1, "type": "credit", "amount": "500"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode[dto.TransactionResponse](t, rec)
		assert.Equal(t, int64(3000), resp.User.Balance.Amount)
		assert.Equal(t, int64(2500), resp.Entry.PreviousBalance.Amount)
		assert.Equal(t, "Success", resp.Message)

		rec = b.do(t, http.MethodPost, "/transactions", map[string]any{"userId": 1, "type": "debit", "amount": 1000})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, int64(2000), decode[dto.TransactionResponse](t, rec).User.Balance.Amount)
	})

	t.Run("Rejections", func(t *testing.T) {
		tests := []struct {
			name   string
			body   map[string]any
			status int
			code   int
		}{
			{"Insufficient balance", map[string]any{"userId": 4, "type": "debit", "amount": 5000}, http.StatusBadRequest, errs.CodeInsufficientBalance},
			{"Zero amount", map[string]any{"userId": 1, "type": "credit", "amount": 0}, http.StatusBadRequest, errs.CodeAmountNotPositive},
			{"Fractional amount", map[string]any{"userId": 1, "type": "credit", "amount": "12.5"}, http.StatusBadRequest, errs.CodeInvalidAmount},
			{"No user selected", map[string]any{"userId": 0, "type": "credit", "amount": 10}, http.StatusBadRequest, errs.CodeNoUserSelected},
			{"Unknown type", map[string]any{"userId": 1, "type": "refund", "amount": 10}, http.StatusBadRequest, errs.CodeInvalidTransactionType},
			{"Unknown user", map[string]any{"userId": 99, "type": "credit", "amount": 10}, http.StatusNotFound, errs.CodeUserNotFound},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := b.do(t, http.MethodPost, "/transactions", tt.body)
				assert.Equal(t, tt.status, rec.Code, rec.Body.String())
				assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, rec).Code)
			})
		}

		rec := b.do(t, http.MethodGet, "/users/4", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(950), decode[dto.UserResponse](t, rec).User.Balance.Amount)
	})

	t.Run("Purchase", func(t *testing.T) {
		rec := b.do(t, http.MethodPost, "/transactions/purchase", dto.PurchaseRequest{UserID: 2, ProductID: "coffee"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode[dto.TransactionResponse](t, rec)
		assert.Equal(t, int64(1650), resp.User.Balance.Amount)
		assert.Equal(t, entity.TypeDebit, resp.Entry.Type)
		assert.Equal(t, "coffee", resp.Entry.ProductID)

		rec = b.do(t, http.MethodPost, "/transactions/purchase", dto.PurchaseRequest{UserID: 2, ProductID: "caviar"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errs.CodeProductNotFound, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Logs show the new entries first", func(t *testing.T) {
		rec := b.do(t, http.MethodGet, "/logs?search=john%20doe", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		page := decode[dto.LogsView](t, rec)
		require.Len(t, page.Logs.Entries, 3)
		assert.Equal(t, entity.TypeDebit, page.Logs.Entries[0].Type)
		assert.Equal(t, entity.TypeCredit, page.Logs.Entries[1].Type)
		assert.Equal(t, int64(500), page.Logs.Entries[2].Amount.Amount)

		rec = b.do(t, http.MethodGet, "/logs?search=nobody", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page = decode[dto.LogsView](t, rec)
		assert.Empty(t, page.Logs.Entries)
		assert.Equal(t, "No transactions match your search", page.Logs.EmptyMessage)

		rec = b.do(t, http.MethodGet, "/logs?page=abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Dashboard reflects the ledger", func(t *testing.T) {
		rec := b.do(t, http.MethodGet, "/dashboard", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		page := decode[dto.DashboardView](t, rec)
		assert.Equal(t, "Dashboard", page.Title)
		assert.Equal(t, 5, page.Stats.TotalUsers)
		assert.Equal(t, 8, page.Stats.TotalTransactions)
		assert.Equal(t, 3, page.Stats.TransactionsToday)
		assert.Len(t, page.Recent, 5)
		assert.Len(t, page.Weekly, 7)
	})
}

func TestUsers(t *testing.T) {
	a := newApp(t, session.ModeLocal)
	b := a.browser()
	b.login(t, "admin", "admin")

	rec := b.do(t, http.MethodPost, "/users", map[string]any{
		"name":           "Sara Ali",
		"matricNumber":   "MAT111222",
		"cardNumber":     "0xFEEDBEEF",
		"initialBalance": 700,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dto.UserResponse](t, rec)
	assert.Equal(t, uint64(6), created.User.ID)
	assert.Equal(t, "User created successfully", created.Message)
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec = b.do(t, http.MethodPost, "/users", map[string]any{
		"name":         "Someone Else",
		"matricNumber": "mat111222",
		"cardNumber":   "0x0",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, errs.CodeDuplicateUser, decode[dto.ErrorResponse](t, rec).Code)

	rec = b.do(t, http.MethodPost, "/users", map[string]any{"name": "No Matric"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please fill in all required fields", decode[dto.ErrorResponse](t, rec).Message)

	rec = b.do(t, http.MethodGet, "/users?search=sara", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[dto.UsersView](t, rec)
	require.Len(t, list.Users, 1)
	assert.Equal(t, "MAT111222", list.Users[0].MatricNumber)

	rec = b.do(t, http.MethodGet, "/users?search=zzz", nil)
	assert.Equal(t, "No users match your search", decode[dto.UsersView](t, rec).EmptyMessage)

	rec = b.do(t, http.MethodGet, "/users/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = b.do(t, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errs.CodeInvalidUserID, decode[dto.ErrorResponse](t, rec).Code)

	student := a.browser()
	student.login(t, "MAT111222", "MAT111222")
	rec = student.do(t, http.MethodGet, "/student-dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SYP 700", decode[dto.StudentDashboardView](t, rec).User.Balance.Formatted)
}

func TestLanguage(t *testing.T) {
	a := newApp(t, session.ModeLocal)
	b := a.browser()

	rec := b.do(t, http.MethodPut, "/language", dto.LanguageRequest{Language: "ar"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rtl", decode[dto.LanguageResponse](t, rec).Direction)

	rec = b.do(t, http.MethodGet, "/login", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[dto.LoginView](t, rec)
	assert.Equal(t, "ar", page.Locale)
	assert.Equal(t, "rtl", page.Direction)
	assert.Equal(t, "تسجيل الدخول", page.Title)
	assert.Equal(t, "ar", rec.Header().Get("Content-Language"))

	rec = b.do(t, http.MethodPut, "/language", dto.LanguageRequest{Language: "fr"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errs.CodeInvalidLanguage, decode[dto.ErrorResponse](t, rec).Code)

	fresh := a.browser()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Header.Set("Accept-Language", "ar-SY,ar;q=0.9,en;q=0.5")
	rec = httptest.NewRecorder()
	fresh.app.router.ServeHTTP(rec, req)
	assert.Equal(t, "ar", decode[dto.LoginView](t, rec).Locale)
}

func TestVerifiedSessions(t *testing.T) {
	a := newApp(t, session.ModeVerified)
	ctx := context.Background()

	t.Run("Token is stored and confirmed on every navigation", func(t *testing.T) {
		b := a.browser()
		b.login(t, "admin", "admin")

		token, err := storage.Scoped(a.kv, b.sid).Get(ctx, entity.KeyToken)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		rec := b.do(t, http.MethodGet, "/dashboard", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/verify", nil)
		req.Header.Set(identity.TokenHeader, string(token))
		rec = httptest.NewRecorder()
		a.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		verified := decode[dto.VerifyResponse](t, rec)
		assert.True(t, verified.Auth)
		assert.Equal(t, entity.RoleAdmin, verified.User.Role)
	})

	t.Run("Server identity overrides a tampered cache", func(t *testing.T) {
		b := a.browser()
		b.login(t, "MAT654321", "MAT654321")

		scoped := storage.Scoped(a.kv, b.sid)
		forged, err := (&entity.Session{IsAuthenticated: true, Role: entity.RoleAdmin, ID: 2, Name: "Jane Smith", Username: "MAT654321"}).Encode()
		require.NoError(t, err)
		require.NoError(t, scoped.Set(ctx, entity.KeyCurrentUser, forged))

		rec := b.do(t, http.MethodGet, "/dashboard", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/student-dashboard", rec.Header().Get("Location"))

		raw, err := scoped.Get(ctx, entity.KeyCurrentUser)
		require.NoError(t, err)
		cached, err := entity.DecodeSession(raw)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleStudent, cached.Role)
	})

	t.Run("Rejected token clears the session", func(t *testing.T) {
		b := a.browser()
		b.login(t, "admin", "admin")

		scoped := storage.Scoped(a.kv, b.sid)
		require.NoError(t, scoped.Set(ctx, entity.KeyToken, []byte("not-a-token")))

		rec := b.do(t, http.MethodGet, "/dashboard", nil)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login?from=%2Fdashboard", rec.Header().Get("Location"))

		_, err := scoped.Get(ctx, entity.KeyCurrentUser)
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
		_, err = scoped.Get(ctx, entity.KeyToken)
		assert.ErrorIs(t, err, errs.ErrKeyNotFound)
	})

	t.Run("Verify endpoint rejects missing token", func(t *testing.T) {
		rec := a.browser().do(t, http.MethodGet, "/api/verify", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, decode[dto.VerifyResponse](t, rec).Auth)
	})
}

func TestHealthz(t *testing.T) {
	a := newApp(t, session.ModeLocal)

	rec := a.browser().do(t, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}
