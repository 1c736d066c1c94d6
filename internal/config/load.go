package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by the loader,
// e.g. TASKNEST_AUTH_JWT_SECRET maps to auth.jwt_secret.
const envPrefix = "TASKNEST"

// Load reads configuration from the environment and an optional config.yaml
// in the working directory. Environment variables take precedence over file
// values. A .env file, if present, is loaded into the process environment
// first as a development convenience.
// Returns a validated Config or an error describing what is missing.
func Load() (*Config, error) {
	// Ignore a missing .env; it only exists in development setups.
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; the environment carries everything.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_origin", "")
	v.SetDefault("auth.token_lifetime_minutes", 1440) // 1 day
	v.SetDefault("auth.bcrypt_cost", 0)               // 0 means bcrypt.DefaultCost
	v.SetDefault("auth.cookie_name", "token")
	v.SetDefault("auth.cookie_secure", false)

	// Viper only honors AutomaticEnv for keys it knows about, so required
	// settings without defaults still need to be registered.
	v.SetDefault("database.url", "")
	v.SetDefault("auth.jwt_secret", "")
}

// validate runs struct validation over the loaded config and converts
// field-level failures into a readable error.
func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
	}

	return fmt.Errorf("config validation failed: %w", err)
}
