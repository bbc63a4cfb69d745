package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	LLM        LLMConfig        `yaml:"llm"`
	Generation GenerationConfig `yaml:"generation"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
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
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`

	ConnectTimeout    time.Duration `yaml:"connect_timeout"     env:"DATABASE_CONNECT_TIMEOUT"     env-default:"5s"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period" env:"DATABASE_HEALTH_CHECK_PERIOD" env-default:"1m"`
}

// AuthConfig holds settings for verifying access tokens issued by the
// identity provider. Tokens are HS256-signed with JWTSecret.
type AuthConfig struct {
	JWTSecret   string `yaml:"jwt_secret"   env:"AUTH_JWT_SECRET"   env-required:"true"`
	JWTIssuer   string `yaml:"jwt_issuer"   env:"AUTH_JWT_ISSUER"`
	JWTAudience string `yaml:"jwt_audience" env:"AUTH_JWT_AUDIENCE" env-default:"authenticated"`
}

// LLMConfig holds settings of the chat-completion endpoint and its retry policy.
type LLMConfig struct {
	APIKey       string        `yaml:"api_key"       env:"LLM_API_KEY"`
	BaseURL      string        `yaml:"base_url"      env:"LLM_BASE_URL"      env-default:"https://openrouter.ai/api/v1"`
	Model        string        `yaml:"model"         env:"LLM_MODEL"         env-default:"openai/gpt-4o-mini"`
	Timeout      time.Duration `yaml:"timeout"       env:"LLM_TIMEOUT"       env-default:"60s"`
	MaxRetries   int           `yaml:"max_retries"   env:"LLM_MAX_RETRIES"   env-default:"3"`
	InitialDelay time.Duration `yaml:"initial_delay" env:"LLM_INITIAL_DELAY" env-default:"1s"`
	MaxDelay     time.Duration `yaml:"max_delay"     env:"LLM_MAX_DELAY"     env-default:"10s"`

	Temperature      float64 `yaml:"temperature"       env:"LLM_TEMPERATURE"       env-default:"0.7"`
	TopP             float64 `yaml:"top_p"             env:"LLM_TOP_P"             env-default:"1.0"`
	MaxTokens        int     `yaml:"max_tokens"        env:"LLM_MAX_TOKENS"        env-default:"2000"`
	FrequencyPenalty float64 `yaml:"frequency_penalty" env:"LLM_FREQUENCY_PENALTY" env-default:"0"`
	PresencePenalty  float64 `yaml:"presence_penalty"  env:"LLM_PRESENCE_PENALTY"  env-default:"0"`
}

// GenerationConfig holds flashcard generation settings.
type GenerationConfig struct {
	// PromptPath points to a YAML prompt file. Empty means the embedded default.
	PromptPath     string `yaml:"prompt_path"      env:"GENERATION_PROMPT_PATH"`
	MinTextLength  int    `yaml:"min_text_length"  env:"GENERATION_MIN_TEXT_LENGTH"  env-default:"1000"`
	MaxTextLength  int    `yaml:"max_text_length"  env:"GENERATION_MAX_TEXT_LENGTH"  env-default:"10000"`
	MaxBulkApprove int    `yaml:"max_bulk_approve" env:"GENERATION_MAX_BULK_APPROVE" env-default:"100"`

	// RateLimitPerMinute caps generate and regenerate calls per user. Zero disables the limit.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"GENERATION_RATE_LIMIT_PER_MINUTE" env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
