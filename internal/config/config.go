package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mehrbod2002/brokerdb/internal/schema"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultJWTSecret is the placeholder used when JWT_SECRET is unset.
const DefaultJWTSecret = "default_jwt_secret"

type Config struct {
	MongoURI         string        `mapstructure:"MONGO_URI" validate:"required,startswith=mongodb"`
	Database         string        `mapstructure:"MONGO_DATABASE" validate:"required,max=63"`
	ConnectTimeout   time.Duration `mapstructure:"CONNECT_TIMEOUT" validate:"gt=0"`
	OperationTimeout time.Duration `mapstructure:"OPERATION_TIMEOUT" validate:"gt=0"`
	SeedMode         string        `mapstructure:"SEED_MODE" validate:"oneof=insert skip-existing none"`
	UpdateValidators bool          `mapstructure:"UPDATE_VALIDATORS"`
	RunLogCollection string        `mapstructure:"RUN_LOG_COLLECTION"`
	AdminEmail       string        `mapstructure:"ADMIN_EMAIL" validate:"omitempty,email"`
	AdminPassword    string        `mapstructure:"ADMIN_PASSWORD" validate:"required_with=AdminEmail,omitempty,min=6"`
	AdminFirstName   string        `mapstructure:"ADMIN_FIRST_NAME" validate:"max=50"`
	AdminLastName    string        `mapstructure:"ADMIN_LAST_NAME" validate:"max=50"`
	Address          string        `mapstructure:"ADDRESS"`
	Port             int           `mapstructure:"PORT" validate:"min=1,max=65535"`
	JWTSecret        string        `mapstructure:"JWT_SECRET"`
	LogLevel         string        `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile          string        `mapstructure:"LOG_FILE"`
}

var defaults = map[string]interface{}{
	"MONGO_URI":          "mongodb://localhost:27017",
	"MONGO_DATABASE":     schema.DefaultDatabase,
	"CONNECT_TIMEOUT":    "10s",
	"OPERATION_TIMEOUT":  "30s",
	"SEED_MODE":          "insert",
	"UPDATE_VALIDATORS":  false,
	"RUN_LOG_COLLECTION": "",
	"ADMIN_EMAIL":        "",
	"ADMIN_PASSWORD":     "",
	"ADMIN_FIRST_NAME":   "Admin",
	"ADMIN_LAST_NAME":    "User",
	"ADDRESS":            "0.0.0.0",
	"PORT":               7000,
	"JWT_SECRET":         DefaultJWTSecret,
	"LOG_LEVEL":          "info",
	"LOG_FILE":           "",
}

// Load reads .env, then the environment, then defaults.
func Load() (*Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom resolves configuration through v, so callers can bind command
// line flags to the same keys before loading.
func LoadFrom(v *viper.Viper) (*Config, error) {
	_ = godotenv.Load()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// UsesDefaultJWTSecret reports whether admin tokens would be signed with the
// published placeholder secret.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret
}
