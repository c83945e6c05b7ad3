package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads .env (when present), an optional config.yaml and the process
// environment. SERVER_PORT overrides server.port, and so on.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	bindLegacyEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("store.backend", BackendDynamoDB)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.table", "deals")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key", "dealdesk:deals")
	v.SetDefault("llm.provider", ProviderReplicate)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.timeout", 90*time.Second)
	v.SetDefault("llm.replicate.api_token", "")
	v.SetDefault("llm.replicate.base_url", "https://api.replicate.com/v1")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("ocr.api_key", "")
	v.SetDefault("ocr.endpoint", "https://api.ocr.space/parse/image")
	v.SetDefault("retry.max_retries", 3)
	v.SetDefault("retry.initial_delay", 2*time.Second)
	v.SetDefault("retry.backoff_multiplier", 2.0)
	v.SetDefault("analysis.delta_warning_percent", 30.0)
}

// bindLegacyEnv accepts the variable names the web app used.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("dynamodb.table", "DYNAMODB_TABLE", "DEALS_TABLE")
	_ = v.BindEnv("dynamodb.region", "DYNAMODB_REGION", "AWS_REGION")
	_ = v.BindEnv("dynamodb.endpoint", "DYNAMODB_ENDPOINT", "AWS_ENDPOINT_URL_DYNAMODB")
	_ = v.BindEnv("llm.replicate.api_token", "LLM_REPLICATE_API_TOKEN", "REPLICATE_API_TOKEN")
	_ = v.BindEnv("llm.gemini.api_key", "LLM_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("ocr.api_key", "OCR_API_KEY", "OCR_SPACE_API_KEY")
}

func applyDefaults(cfg *Config) {
	if cfg.LLM.Model == "" {
		switch cfg.LLM.Provider {
		case ProviderGemini:
			cfg.LLM.Model = "gemini-2.5-flash"
		default:
			cfg.LLM.Model = "google/gemini-2.5-flash"
		}
	}
	if cfg.Retry.BackoffMultiplier < 1 {
		cfg.Retry.BackoffMultiplier = 1
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", cfg.Server.Mode)
	}

	switch cfg.Store.Backend {
	case BackendDynamoDB:
		if cfg.DynamoDB.Table == "" {
			return fmt.Errorf("dynamodb.table is required")
		}
	case BackendRedis:
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis.address is required")
		}
		if cfg.Redis.Key == "" {
			return fmt.Errorf("redis.key is required")
		}
	default:
		return fmt.Errorf("store.backend must be %q or %q, got %q", BackendDynamoDB, BackendRedis, cfg.Store.Backend)
	}

	switch cfg.LLM.Provider {
	case ProviderReplicate, ProviderGemini:
	default:
		return fmt.Errorf("llm.provider must be %q or %q, got %q", ProviderReplicate, ProviderGemini, cfg.LLM.Provider)
	}

	if cfg.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative")
	}
	if cfg.Analysis.DeltaWarningPercent < 0 {
		return fmt.Errorf("analysis.delta_warning_percent must not be negative")
	}
	return nil
}
