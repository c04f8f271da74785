package database

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

// TestDBManager connects tests to a disposable postgres database
type TestDBManager struct {
	Manager *Manager
	Config  Config
}

// NewTestDBManager builds a manager from CPA_TEST_DB_* variables and skips
// the test when CPA_TEST_DB_HOST is unset
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host := os.Getenv("CPA_TEST_DB_HOST")
	if host == "" {
		t.Skip("CPA_TEST_DB_HOST not set, skipping postgres tests")
	}

	config := DefaultConfig()
	config.Host = host
	config.Port = getEnvIntOrDefault("CPA_TEST_DB_PORT", 5432)
	config.Username = getEnvOrDefault("CPA_TEST_DB_USERNAME", "postgres")
	config.Password = getEnvOrDefault("CPA_TEST_DB_PASSWORD", "postgres")
	config.Database = getEnvOrDefault("CPA_TEST_DB_NAME", "cardpay_admin_test")
	config.LogLevel = "silent"
	config.QueryTimeout = 5 * time.Second

	return &TestDBManager{
		Manager: NewManager(config, logger, timeprovider.NewRealTimeProvider(time.UTC)),
		Config:  config,
	}
}

// Connect connects and migrates, failing the test on error
func (m *TestDBManager) Connect(t *testing.T) {
	t.Helper()

	if _, err := m.Manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
}

// Truncate empties the key-value table
func (m *TestDBManager) Truncate(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.KVEntry{}).Error; err != nil {
		t.Fatalf("Failed to truncate kv_entries: %v", err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
