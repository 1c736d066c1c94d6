package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// CORSOrigin is the single origin allowed to make credentialed
	// cross-origin requests. Empty disables CORS handling entirely.
	CORSOrigin string `mapstructure:"cors_origin" validate:"omitempty,url"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains authentication settings. The JWT secret is supplied
// out-of-band via the environment and must never be logged or echoed back
// to clients.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"omitempty,gte=4,lte=31"`

	// CookieName is the cookie the signed token travels in.
	CookieName string `mapstructure:"cookie_name" validate:"required"`

	// CookieSecure marks the session cookie Secure; enable everywhere TLS
	// terminates in front of the server.
	CookieSecure bool `mapstructure:"cookie_secure"`
}
