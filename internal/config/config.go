// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded from a
// `.env` file), loads them into structured Go types, and validates that
// required values are present so they can be reused across the application
// runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config.
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (observability).
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before anything reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"required"` tags are enforced by go-playground/validator.
//
// Observability is a pointer because it is optional; defaults are injected
// at load time if it is missing.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	NumVerify     NumVerifyConfig      `koanf:"numverify" validate:"required"`
	Email         EmailConfig          `koanf:"email"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as integer seconds in env and converted when the
// http.Server is built.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// PrettyJSON switches successful responses to indented JSON.
	// Useful against a browser or curl, wasteful behind a frontend.
	PrettyJSON bool `koanf:"pretty_json"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// NumVerifyConfig holds credentials and endpoint settings for the external
// phone validation service.
//
// CountryCode is the default country used to interpret national-format
// numbers; the barbershop serves Brazilian customers, so it defaults to BR.
type NumVerifyConfig struct {
	APIKey      string `koanf:"api_key" validate:"required"`
	BaseURL     string `koanf:"base_url" validate:"required"`
	CountryCode string `koanf:"country_code"`
}

// EmailConfig holds settings for the transactional email provider.
//
// An empty APIKey disables outbound email; appointment confirmations are
// then skipped with a log line instead of failing the booking.
type EmailConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	FromName     string `koanf:"from_name"`
	FromAddress  string `koanf:"from_address"`
}

// Load reads configuration from environment variables, unmarshals it into
// Config, validates it, applies defaults, and returns the resulting config.
//
// Env vars use the BARBERSHOP_ prefix and "." as the nesting delimiter:
//
//	BARBERSHOP_SERVER.PORT -> server.port -> Config.Server.Port
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("BARBERSHOP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BARBERSHOP_"))
	}), nil)
	if err != nil {
		return nil, err
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, err
	}

	// Inject default observability config if not provided.
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Force service name and environment so tracing/logging sees consistent
	// naming regardless of what was configured.
	mainConfig.Observability.ServiceName = "barbershop-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, err
	}

	if mainConfig.NumVerify.CountryCode == "" {
		mainConfig.NumVerify.CountryCode = "BR"
	}

	if mainConfig.Email.FromName == "" {
		mainConfig.Email.FromName = "Barbershop"
	}
	if mainConfig.Email.FromAddress == "" {
		mainConfig.Email.FromAddress = "bookings@resend.dev"
	}

	return mainConfig, nil
}
