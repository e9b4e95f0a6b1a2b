package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Storage    StorageConfig    `yaml:"storage"`
	Processing ProcessingConfig `yaml:"processing"`
	Search     SearchConfig     `yaml:"search"`
	AI         AIConfig         `yaml:"ai"`
	Redis      RedisConfig      `yaml:"redis"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
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
}

// AuthConfig holds session settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"smartstudy"`
	SessionTTL       time.Duration `yaml:"session_ttl"        env:"AUTH_SESSION_TTL"        env-default:"168h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	CookieName       string        `yaml:"cookie_name"        env:"AUTH_COOKIE_NAME"        env-default:"session"`
	CookieSecure     bool          `yaml:"cookie_secure"      env:"AUTH_COOKIE_SECURE"      env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StorageConfig holds uploaded-file storage settings.
type StorageConfig struct {
	UploadDir      string `yaml:"upload_dir"       env:"STORAGE_UPLOAD_DIR"       env-default:"./uploads"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" env-default:"104857600"`
}

// ProcessingConfig holds document extraction pipeline settings.
type ProcessingConfig struct {
	Workers         int           `yaml:"workers"           env:"PROCESSING_WORKERS"           env-default:"4"`
	QueueSize       int           `yaml:"queue_size"        env:"PROCESSING_QUEUE_SIZE"        env-default:"64"`
	ZipMaxEntries   int           `yaml:"zip_max_entries"   env:"PROCESSING_ZIP_MAX_ENTRIES"   env-default:"100"`
	ZipTimeout      time.Duration `yaml:"zip_timeout"       env:"PROCESSING_ZIP_TIMEOUT"       env-default:"30m"`
	ZipWarnBytes    int64         `yaml:"zip_warn_bytes"    env:"PROCESSING_ZIP_WARN_BYTES"    env-default:"52428800"`
	DocxChunkChars  int           `yaml:"docx_chunk_chars"  env:"PROCESSING_DOCX_CHUNK_CHARS"  env-default:"5000"`
	SummaryMaxChars int           `yaml:"summary_max_chars" env:"PROCESSING_SUMMARY_MAX_CHARS" env-default:"200"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	DefaultMaxResults int `yaml:"default_max_results" env:"SEARCH_DEFAULT_MAX_RESULTS" env-default:"20"`
	MaxSuggestions    int `yaml:"max_suggestions"     env:"SEARCH_MAX_SUGGESTIONS"     env-default:"10"`
	PageSize          int `yaml:"page_size"           env:"SEARCH_PAGE_SIZE"           env-default:"10"`
	SnippetChars      int `yaml:"snippet_chars"       env:"SEARCH_SNIPPET_CHARS"       env-default:"360"`
	ReindexWorkers    int `yaml:"reindex_workers"     env:"SEARCH_REINDEX_WORKERS"     env-default:"4"`
}

// AIConfig holds Gemini generation settings.
type AIConfig struct {
	APIKey          string        `yaml:"api_key"           env:"AI_GEMINI_API_KEY"`
	Model           string        `yaml:"model"             env:"AI_MODEL"             env-default:"gemini-2.0-flash"`
	Temperature     float32       `yaml:"temperature"       env:"AI_TEMPERATURE"       env-default:"0.7"`
	TopK            float32       `yaml:"top_k"             env:"AI_TOP_K"             env-default:"40"`
	TopP            float32       `yaml:"top_p"             env:"AI_TOP_P"             env-default:"0.95"`
	MaxOutputTokens int32         `yaml:"max_output_tokens" env:"AI_MAX_OUTPUT_TOKENS" env-default:"2048"`
	MaxRetries      int           `yaml:"max_retries"       env:"AI_MAX_RETRIES"       env-default:"3"`
	RetryBackoff    time.Duration `yaml:"retry_backoff"     env:"AI_RETRY_BACKOFF"     env-default:"2s"`
	RequestsPerSec  float64       `yaml:"requests_per_sec"  env:"AI_REQUESTS_PER_SEC"  env-default:"2"`
	Burst           int           `yaml:"burst"             env:"AI_BURST"             env-default:"4"`
	Timeout         time.Duration `yaml:"timeout"           env:"AI_TIMEOUT"           env-default:"90s"`
}

// RedisConfig holds the recent-quiz store connection.
type RedisConfig struct {
	Addr        string        `yaml:"addr"         env:"REDIS_ADDR"         env-default:"localhost:6379"`
	Password    string        `yaml:"password"     env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db"           env:"REDIS_DB"           env-default:"0"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	KeyPrefix   string        `yaml:"key_prefix"   env:"REDIS_KEY_PREFIX"   env-default:"smartstudy:recent_quizzes:"`
	RecentLimit int           `yaml:"recent_limit" env:"REDIS_RECENT_LIMIT" env-default:"10"`
}

// SchedulerConfig holds periodic maintenance job settings.
type SchedulerConfig struct {
	Enabled     bool          `yaml:"enabled"      env:"SCHEDULER_ENABLED"      env-default:"true"`
	ReindexSpec string        `yaml:"reindex_spec" env:"SCHEDULER_REINDEX_SPEC" env-default:"0 3 * * *"`
	CleanupSpec string        `yaml:"cleanup_spec" env:"SCHEDULER_CLEANUP_SPEC" env-default:"*/15 * * * *"`
	StaleAfter  time.Duration `yaml:"stale_after"  env:"SCHEDULER_STALE_AFTER"  env-default:"45m"`
	JobTimeout  time.Duration `yaml:"job_timeout"  env:"SCHEDULER_JOB_TIMEOUT"  env-default:"30m"`
}

// RateLimitConfig holds per-client request limits for expensive routes.
type RateLimitConfig struct {
	UploadPerMinute int           `yaml:"upload_per_minute" env:"RATE_LIMIT_UPLOAD_PER_MINUTE" env-default:"30"`
	AIPerMinute     int           `yaml:"ai_per_minute"     env:"RATE_LIMIT_AI_PER_MINUTE"     env-default:"60"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
