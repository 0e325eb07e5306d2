package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	GDELT      GDELTConfig
	Pipeline   PipelineConfig
	Database   DatabaseConfig
	ClickHouse ClickHouseConfig
	Redis      RedisConfig
	OpenAI     OpenAIConfig
	Telegram   TelegramConfig
	Extract    ExtractConfig
	Logging    LoggingConfig
}

// GDELTConfig holds the upstream DOC API parameters and the query facets.
// Each facet becomes one independent query vector so a single request
// stays within GDELT's query complexity limits.
type GDELTConfig struct {
	BaseURL    string        `envconfig:"GDELT_BASE_URL" default:"https://api.gdeltproject.org/api/v2/doc/doc"`
	MaxRecords int           `envconfig:"GDELT_MAX_RECORDS" default:"100"`
	Timeout    time.Duration `envconfig:"GDELT_TIMEOUT" default:"15s"`
	RateEvery  time.Duration `envconfig:"GDELT_RATE_EVERY" default:"6s"`

	AssetsQuery      string `envconfig:"GDELT_ASSETS_QUERY" default:"(bitcoin OR crypto OR solana OR ethereum OR NFT OR DeFi) (domain:reuters.com OR domain:bloomberg.com OR domain:wsj.com OR domain:cnbc.com OR domain:coindesk.com) (theme:FINANCE OR theme:ECON_STOCKMARKET OR theme:SEC_FINANCIAL_ASSETS)"`
	RegulatoryQuery  string `envconfig:"GDELT_REGULATORY_QUERY" default:"(regulation OR sanctions OR SEC OR \"federal reserve\" OR legislation OR CBDC) (domain:reuters.com OR domain:politico.com OR domain:ft.com OR domain:wsj.com) (theme:GOV_REGULATION OR theme:ECON_CENTRALBANK)"`
	GeopoliticsQuery string `envconfig:"GDELT_GEOPOLITICS_QUERY" default:"(geopolitics OR conflict OR tariffs) (domain:reuters.com OR domain:bloomberg.com OR domain:ft.com) (theme:FINANCE)"`
}

// PipelineConfig represents run scheduling and ranking parameters
type PipelineConfig struct {
	TopN      int    `envconfig:"PIPELINE_TOP_N" default:"3"`
	Schedule  string `envconfig:"PIPELINE_SCHEDULE" default:"0 7 * * *"`
	RunOnBoot bool   `envconfig:"PIPELINE_RUN_ON_BOOT" default:"true"`
	ExportDir string `envconfig:"PIPELINE_EXPORT_DIR" default:""`
}

// DatabaseConfig represents Postgres connection parameters
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"daybreak"`
	User     string `envconfig:"DB_USER" default:"daybreak"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// ClickHouseConfig represents the optional run-metrics sink
type ClickHouseConfig struct {
	Enabled bool   `envconfig:"CLICKHOUSE_ENABLED" default:"false"`
	DSN     string `envconfig:"CLICKHOUSE_DSN" default:"clickhouse://localhost:9000/daybreak"`
}

// RedisConfig represents the optional run-lock backend
type RedisConfig struct {
	Enabled bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Host    string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port    int           `envconfig:"REDIS_PORT" default:"6379"`
	LockTTL time.Duration `envconfig:"REDIS_LOCK_TTL" default:"10m"`
}

// OpenAIConfig represents the brief summarizer backend
type OpenAIConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY" required:"false"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	Enabled bool   `envconfig:"OPENAI_ENABLED" default:"false"`
}

// TelegramConfig represents brief delivery parameters
type TelegramConfig struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"false"`
	ChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" required:"false"`
}

// ExtractConfig represents the article text extraction parameters
type ExtractConfig struct {
	Timeout   time.Duration `envconfig:"EXTRACT_TIMEOUT" default:"10s"`
	UserAgent string        `envconfig:"EXTRACT_USER_AGENT" default:"daybreak-brief/1.0"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" default:""`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.GDELT.MaxRecords <= 0 || c.GDELT.MaxRecords > 250 {
		return fmt.Errorf("GDELT_MAX_RECORDS must be between 1 and 250, got %d", c.GDELT.MaxRecords)
	}

	if c.Pipeline.TopN <= 0 {
		return fmt.Errorf("PIPELINE_TOP_N must be positive, got %d", c.Pipeline.TopN)
	}

	if c.OpenAI.Enabled && c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when OPENAI_ENABLED is set")
	}

	if c.Telegram.BotToken != "" && c.Telegram.ChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when a bot token is configured")
	}

	return nil
}
