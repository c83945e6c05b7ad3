package config

import "time"

// Config is the service configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Redis    RedisConfig    `mapstructure:"redis"`
	LLM      LLMConfig      `mapstructure:"llm"`
	OCR      OCRConfig      `mapstructure:"ocr"`
	Retry    RetryConfig    `mapstructure:"retry"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StoreConfig selects the deal repository backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
}

type DynamoDBConfig struct {
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
	Table    string `mapstructure:"table"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

// LLMConfig selects the extraction model. Credentials live under the
// provider's own section so both can be configured at once.
type LLMConfig struct {
	Provider  string          `mapstructure:"provider"`
	Model     string          `mapstructure:"model"`
	Timeout   time.Duration   `mapstructure:"timeout"`
	Replicate ReplicateConfig `mapstructure:"replicate"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
}

type ReplicateConfig struct {
	APIToken string `mapstructure:"api_token"`
	BaseURL  string `mapstructure:"base_url"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type OCRConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Endpoint string `mapstructure:"endpoint"`
}

type RetryConfig struct {
	MaxRetries        int           `mapstructure:"max_retries"`
	InitialDelay      time.Duration `mapstructure:"initial_delay"`
	BackoffMultiplier float64       `mapstructure:"backoff_multiplier"`
}

type AnalysisConfig struct {
	DeltaWarningPercent float64 `mapstructure:"delta_warning_percent"`
}

// ExtractionConfigured reports whether the selected provider has a credential.
func (c LLMConfig) ExtractionConfigured() bool {
	switch c.Provider {
	case ProviderGemini:
		return c.Gemini.APIKey != ""
	default:
		return c.Replicate.APIToken != ""
	}
}

const (
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"

	ProviderReplicate = "replicate"
	ProviderGemini    = "gemini"
)
