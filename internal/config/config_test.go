package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			CORS:        CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
			RateLimit:   RateLimitConfig{Limit: 30, Window: time.Minute},
			OwnerHeader: "X-Owner-Id",
		},
		Database: DatabaseConfig{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     3306,
			Database: "cardstudy",
			Username: "user",
		},
		NATS:   NATSConfig{Subject: "cardstudy.reviews"},
		OpenAI: OpenAIConfig{Model: "gpt-4o-mini"},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "custom values",
			configContent: `server:
  port: 9090
  rate_limit:
    limit: 5
    window: 30s
database:
  driver: postgres
  host: db.example.com
  port: 5432
  database: study
  username: admin
study:
  owner_id: learner-1
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 9090
				cfg.Server.RateLimit = RateLimitConfig{Limit: 5, Window: 30 * time.Second}
				cfg.Database = DatabaseConfig{
					Driver:   "postgres",
					Host:     "db.example.com",
					Port:     5432,
					Database: "study",
					Username: "admin",
				}
				cfg.Study.OwnerID = "learner-1"
				return cfg
			},
		},
		{
			name: "sqlite driver with a path",
			configContent: `database:
  driver: sqlite
  path: data/cardstudy.db
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Driver = "sqlite"
				cfg.Database.Path = "data/cardstudy.db"
				return cfg
			},
		},
		{
			name: "secrets are read from the environment",
			env: map[string]string{
				"DB_PASSWORD":        "secret",
				"OPENAI_API_KEY":     "sk-test",
				"NATS_URL":           "nats://localhost:4222",
				"CARDSTUDY_OWNER_ID": "env-owner",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Database.Password = "secret"
				cfg.OpenAI.APIKey = "sk-test"
				cfg.NATS.URL = "nats://localhost:4222"
				cfg.Study.OwnerID = "env-owner"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  port: 9090
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown driver is rejected",
			configContent: `database:
  driver: oracle
`,
			wantErrorContains: []string{"invalid configuration", "driver must be one of [mysql postgres sqlite]"},
		},
		{
			name: "sqlite without a path is rejected",
			configContent: `database:
  driver: sqlite
`,
			wantErrorContains: []string{"invalid configuration", "path is a required field"},
		},
		{
			name: "zero rate limit is rejected",
			configContent: `server:
  rate_limit:
    limit: 0
`,
			wantErrorContains: []string{"invalid configuration", "limit must be 1 or greater"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"DB_PASSWORD", "OPENAI_API_KEY", "OPENAI_MODEL", "NATS_URL", "CARDSTUDY_OWNER_ID"} {
				t.Setenv(key, tt.env[key])
				if _, ok := tt.env[key]; !ok {
					require.NoError(t, os.Unsetenv(key))
				}
			}

			tempDir := t.TempDir()
			configPath := ""
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "cardstudy.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				t.Chdir(tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		err := LoadDotEnv(filepath.Join(t.TempDir(), ".env"))
		assert.NoError(t, err)
	})

	t.Run("variables are loaded without overriding the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CARDSTUDY_TEST_A=from-file\nCARDSTUDY_TEST_B=from-file\n"), 0644))
		t.Setenv("CARDSTUDY_TEST_A", "from-env")
		t.Setenv("CARDSTUDY_TEST_B", "")
		require.NoError(t, os.Unsetenv("CARDSTUDY_TEST_B"))

		require.NoError(t, LoadDotEnv(path))
		t.Cleanup(func() { _ = os.Unsetenv("CARDSTUDY_TEST_B") })

		assert.Equal(t, "from-env", os.Getenv("CARDSTUDY_TEST_A"))
		assert.Equal(t, "from-file", os.Getenv("CARDSTUDY_TEST_B"))
	})
}
