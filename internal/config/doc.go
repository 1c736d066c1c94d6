// Package config loads and validates the application configuration from
// environment variables and an optional config file. All settings are
// injected into components at construction; nothing reads configuration
// ambiently after startup.
package config
