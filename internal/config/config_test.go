package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmitterConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EmitterConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
chain:
  websocket_url: "ws://localhost:8545"
  name: "monad-testnet"
  start_block: 1000
  cursor_save_freq: 50
  cursor_save_delay: "10s"
token:
  addresses:
    - "0x5d876d73f4441d5f2438b1a3e2a51771b337f27a"
  factory_address: "0x92bca8b4d1a1f156cf4b60b2e0b6b521386bdef4"
  default_name: "Test Coin"
  default_symbol: "TEST"
  default_decimals: 18
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EmitterConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "testpass", cfg.Database.Password)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "ws://localhost:8545", cfg.Chain.WebSocketURL)
				assert.Equal(t, "monad-testnet", cfg.Chain.Name)
				assert.Equal(t, uint64(1000), cfg.Chain.StartBlock)
				assert.Equal(t, uint64(50), cfg.Chain.CursorSaveFreq)
				assert.Equal(t, 10*time.Second, cfg.Chain.CursorSaveDelay)
				assert.Equal(t, []string{"0x5d876d73f4441d5f2438b1a3e2a51771b337f27a"}, cfg.Token.Addresses)
				assert.Equal(t, "0x92bca8b4d1a1f156cf4b60b2e0b6b521386bdef4", cfg.Token.FactoryAddress)
				assert.Equal(t, "Test Coin", cfg.Token.DefaultName)
				assert.Equal(t, "TEST", cfg.Token.DefaultSymbol)
				assert.Equal(t, uint8(18), cfg.Token.DefaultDecimals)
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
nats:
  url: "nats://localhost:4222"
chain:
  websocket_url: "ws://localhost:8545"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EmitterConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "TOKEN_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "event-emitter", cfg.NATS.ConnectionName)
				assert.Equal(t, "monad", cfg.Chain.Name)
				assert.Equal(t, uint64(100), cfg.Chain.CursorSaveFreq)
				assert.Equal(t, 30*time.Second, cfg.Chain.CursorSaveDelay)
				assert.Equal(t, "USD Coin", cfg.Token.DefaultName)
				assert.Equal(t, "USDC", cfg.Token.DefaultSymbol)
				assert.Equal(t, uint8(6), cfg.Token.DefaultDecimals)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadEmitterConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadIndexerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *IndexerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  consumer_name: "test-consumer"
  ack_wait: "60s"
  max_deliver: 3
token:
  addresses:
    - "0x5d876d73f4441d5f2438b1a3e2a51771b337f27a"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *IndexerConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "test-consumer", cfg.NATS.ConsumerName)
				assert.Equal(t, 60*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 3, cfg.NATS.MaxDeliver)
				assert.Len(t, cfg.Token.Addresses, 1)
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
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *IndexerConfig) {
				// Check defaults
				assert.Equal(t, "TOKEN_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "usdc-indexer", cfg.NATS.ConsumerName)
				assert.Equal(t, "indexer", cfg.NATS.ConnectionName)
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, -1, cfg.NATS.MaxDeliver)
				assert.Equal(t, "monad", cfg.Chain.Name)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadIndexerConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses USDC_INDEXER_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `USDC_INDEXER_DEBUG=true
USDC_INDEXER_DATABASE_HOST=env-host
USDC_INDEXER_DATABASE_PORT=3306
USDC_INDEXER_DATABASE_USER=env-user
USDC_INDEXER_DATABASE_PASSWORD=env-pass
USDC_INDEXER_DATABASE_DBNAME=env-db
USDC_INDEXER_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadIndexerConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Environment variables from the .env file override config file values:
	// godotenv.Overload sets real environment variables, and viper's
	// AutomaticEnv picks them up with the USDC_INDEXER_ prefix
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "env-pass", cfg.Database.Password)
	assert.Equal(t, "env-db", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}
