package config

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "stock_brokerage", cfg.Database)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 30*time.Second, cfg.OperationTimeout)
	assert.Equal(t, "insert", cfg.SeedMode)
	assert.False(t, cfg.UpdateValidators)
	assert.Empty(t, cfg.RunLogCollection)
	assert.Empty(t, cfg.AdminEmail)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb+srv://cluster0.example.net")
	t.Setenv("MONGO_DATABASE", "brokerage_test")
	t.Setenv("OPERATION_TIMEOUT", "5s")
	t.Setenv("SEED_MODE", "skip-existing")
	t.Setenv("UPDATE_VALIDATORS", "true")
	t.Setenv("RUN_LOG_COLLECTION", "bootstrapLogs")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "s3cret!")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb+srv://cluster0.example.net", cfg.MongoURI)
	assert.Equal(t, "brokerage_test", cfg.Database)
	assert.Equal(t, 5*time.Second, cfg.OperationTimeout)
	assert.Equal(t, "skip-existing", cfg.SeedMode)
	assert.True(t, cfg.UpdateValidators)
	assert.Equal(t, "bootstrapLogs", cfg.RunLogCollection)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoad_ViperOverridesEnvironment(t *testing.T) {
	t.Setenv("MONGO_DATABASE", "from_env")

	v := viper.New()
	v.Set("MONGO_DATABASE", "from_flag")

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "from_flag", cfg.Database)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown seed mode", env: map[string]string{"SEED_MODE": "sometimes"}},
		{name: "not a mongodb uri", env: map[string]string{"MONGO_URI": "postgres://localhost"}},
		{name: "zero timeout", env: map[string]string{"OPERATION_TIMEOUT": "0s"}},
		{name: "unparsable timeout", env: map[string]string{"CONNECT_TIMEOUT": "soon"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "verbose"}},
		{name: "bad admin email", env: map[string]string{"ADMIN_EMAIL": "admin", "ADMIN_PASSWORD": "s3cret!"}},
		{name: "admin without password", env: map[string]string{"ADMIN_EMAIL": "admin@example.com"}},
		{name: "short admin password", env: map[string]string{"ADMIN_EMAIL": "admin@example.com", "ADMIN_PASSWORD": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestConfig_UsesDefaultJWTSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   bool
	}{
		{name: "unset", secret: "", want: true},
		{name: "placeholder", secret: DefaultJWTSecret, want: true},
		{name: "configured", secret: "rotated-secret", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{JWTSecret: tt.secret}
			assert.Equal(t, tt.want, cfg.UsesDefaultJWTSecret())
		})
	}
}
