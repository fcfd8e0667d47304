package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	LLM        LLMConfig        `yaml:"llm"`
	Enrichment EnrichmentConfig `yaml:"enrichment"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Request-Id,X-Total-Count"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"curator"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"curator"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LLMConfig selects and configures the language model provider. An empty
// key is allowed: enrichment then silently leaves fields absent.
type LLMConfig struct {
	Provider        string        `yaml:"provider"          env:"LLM_PROVIDER"          env-default:"groq"`
	APIKey          string        `yaml:"api_key"           env:"GROQ_API_KEY"`
	AnthropicAPIKey string        `yaml:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	BaseURL         string        `yaml:"base_url"          env:"LLM_BASE_URL"`
	Model           string        `yaml:"model"             env:"LLM_MODEL"`
	MaxTokens       int           `yaml:"max_tokens"        env:"LLM_MAX_TOKENS"        env-default:"256"`
	Timeout         time.Duration `yaml:"timeout"           env:"LLM_TIMEOUT"           env-default:"30s"`
	Breaker         BreakerConfig `yaml:"breaker"`
}

// BreakerConfig controls the optional circuit breaker around the provider.
type BreakerConfig struct {
	Enabled          bool          `yaml:"enabled"           env:"LLM_BREAKER_ENABLED"           env-default:"false"`
	FailureThreshold uint32        `yaml:"failure_threshold" env:"LLM_BREAKER_FAILURE_THRESHOLD" env-default:"5"`
	OpenTimeout      time.Duration `yaml:"open_timeout"      env:"LLM_BREAKER_OPEN_TIMEOUT"      env-default:"30s"`
}

// ProviderKey returns the API key for the selected provider.
func (c LLMConfig) ProviderKey() string {
	if c.Provider == ProviderAnthropic {
		return c.AnthropicAPIKey
	}
	return c.APIKey
}

// Supported LLM providers.
const (
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
)

// EnrichmentConfig holds the enrichment policy settings.
type EnrichmentConfig struct {
	// ReadMode is "lazy" (fill missing fields on read) or "strict" (never write on read).
	ReadMode string `yaml:"read_mode" env:"ENRICHMENT_READ_MODE" env-default:"lazy"`
	// BackfillBatch is the default limit of the enrich-missing command.
	BackfillBatch int `yaml:"backfill_batch" env:"ENRICHMENT_BACKFILL_BATCH" env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits the free-text analysis endpoint per client address.
type RateLimitConfig struct {
	AnalyzePerMinute int `yaml:"analyze_per_minute" env:"RATE_LIMIT_ANALYZE_PER_MINUTE" env-default:"20"`
	AnalyzeBurst     int `yaml:"analyze_burst"      env:"RATE_LIMIT_ANALYZE_BURST"      env-default:"5"`
}
