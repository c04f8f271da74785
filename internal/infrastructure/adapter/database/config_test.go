package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.Host = "localhost"
	valid.Username = "postgres"
	valid.Database = "cardpay"

	assert.NoError(t, valid.Validate())
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=cardpay sslmode=disable", valid.DSN())

	testCases := []struct {
		name   string
		modify func(c *Config)
	}{
		{"Missing host", func(c *Config) { c.Host = "" }},
		{"Bad port", func(c *Config) { c.Port = 70000 }},
		{"Missing username", func(c *Config) { c.Username = "" }},
		{"Missing database", func(c *Config) { c.Database = "" }},
		{"Bad SSL mode", func(c *Config) { c.SSLMode = "sometimes" }},
		{"No connections", func(c *Config) { c.MaxOpenConns = 0 }},
		{"No timeout", func(c *Config) { c.QueryTimeout = 0 }},
		{"Bad log level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}
