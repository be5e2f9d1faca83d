package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
featured_path: "config/featured.json"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 120
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
redis:
  addr: "localhost:6379"
  password: "secret"
  db: 2
marketplace:
  api_url: "https://market.example/api/v1"
  api_key: "mk-key"
  request_timeout: "20s"
  requests_per_second: 8
  burst: 16
identity:
  verifier_url: "https://id.example/api"
  request_timeout: "5s"
auth:
  api_keys:
    - "key-one"
    - "key-two"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "config/featured.json", cfg.FeaturedPath)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
				assert.Equal(t, 2, cfg.Redis.DB)
				assert.Equal(t, "https://market.example/api/v1", cfg.Marketplace.APIURL)
				assert.Equal(t, "mk-key", cfg.Marketplace.APIKey)
				assert.Equal(t, 20*time.Second, cfg.Marketplace.RequestTimeout)
				assert.Equal(t, 8, cfg.Marketplace.RequestsPerSecond)
				assert.Equal(t, 16, cfg.Marketplace.Burst)
				assert.Equal(t, "https://id.example/api", cfg.Identity.VerifierURL)
				assert.Equal(t, 5*time.Second, cfg.Identity.RequestTimeout)
				assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
marketplace:
  api_url: "https://market.example/api/v1"
identity:
  verifier_url: "https://id.example/api"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 15, cfg.Server.ReadTimeout)
				assert.Equal(t, 60, cfg.Server.IdleTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 30*time.Second, cfg.Marketplace.RequestTimeout)
				assert.Equal(t, 4, cfg.Marketplace.RequestsPerSecond)
				assert.Equal(t, 10*time.Second, cfg.Identity.RequestTimeout)
				assert.Empty(t, cfg.Redis.Addr)
				assert.Empty(t, cfg.Auth.APIKeys)
			},
		},
		{
			name: "missing database host",
			configFile: `
marketplace:
  api_url: "https://market.example/api/v1"
identity:
  verifier_url: "https://id.example/api"
`,
			expectError: true,
		},
		{
			name: "missing marketplace api_url",
			configFile: `
database:
  host: localhost
identity:
  verifier_url: "https://id.example/api"
`,
			expectError: true,
		},
		{
			name: "missing identity verifier_url",
			configFile: `
database:
  host: localhost
marketplace:
  api_url: "https://market.example/api/v1"
`,
			expectError: true,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadAPIConfig(configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example",
		Port:     5433,
		User:     "app",
		Password: "pw",
		DBName:   "artfolio",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=db.example")
	assert.Contains(t, dsn, "port=5433")
	assert.Contains(t, dsn, "user=app")
	assert.Contains(t, dsn, "dbname=artfolio")
	assert.Contains(t, dsn, "sslmode=require")
}

func TestDatabaseConfig_ReadReplica(t *testing.T) {
	cfg := DatabaseConfig{
		Host:   "primary.example",
		Port:   5432,
		User:   "app",
		DBName: "artfolio",
	}
	assert.False(t, cfg.HasReadReplica())

	cfg.ReadHost = "replica.example"
	assert.True(t, cfg.HasReadReplica())

	readDSN := cfg.ReadDSN()
	assert.Contains(t, readDSN, "host=replica.example")
	// Replica port falls back to the primary port when unset
	assert.Contains(t, readDSN, "port=5432")
}
