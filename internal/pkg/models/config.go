package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
	Tracking TrackingConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `validate:"required"`
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int `validate:"gt=0,lte=65535"`
	ReadTimeout     int `validate:"gte=0"`
	WriteTimeout    int `validate:"gte=0"`
	ShutdownTimeout int `validate:"gte=0"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int `validate:"gte=0,lte=65535"`
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int `validate:"gte=0"`
	IdleConns int `validate:"gte=0"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int `validate:"gte=0,lte=65535"`
	Password string
	DB       int `validate:"gte=0"`
	PoolSize int `validate:"gte=0"`
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string `validate:"required"`
}

// JWTConfig contains the secret used to verify operator scope tokens
type JWTConfig struct {
	Secret     string `validate:"required"`
	Expiration int    // in minutes
	Issuer     string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey   string
	AppName      string
	Enabled      bool
	LogsEnabled  bool
	LogsEndpoint string
	LogsAPIKey   string
	ForwardLogs  bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string `validate:"omitempty,oneof=debug info warn error"`
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
	Type       string
}

// TrackingConfig contains route planning and live tracking settings
type TrackingConfig struct {
	StopPointCatalogPath string
	HistoryTTL           time.Duration `validate:"gte=0"`
	FrameWidth           int           `validate:"gt=0"`
	FrameHeight          int           `validate:"gt=0"`
	FramePadding         int           `validate:"gte=0"`
	MaxZoom              int           `validate:"gte=0,lte=22"`
}
