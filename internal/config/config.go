package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	DataFile    string `mapstructure:"DATA_FILE"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	AIProvider       string        `mapstructure:"AI_PROVIDER"`
	AIAPIKey         string        `mapstructure:"AI_API_KEY"`
	AIModel          string        `mapstructure:"AI_MODEL"`
	AIBaseURL        string        `mapstructure:"AI_BASE_URL"`
	AIMaxAttempts    int           `mapstructure:"AI_MAX_ATTEMPTS"`
	AIRetryDelay     time.Duration `mapstructure:"AI_RETRY_DELAY"`
	AIAttemptTimeout time.Duration `mapstructure:"AI_ATTEMPT_TIMEOUT"`
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REQUEST_TIMEOUT", "60s")
	v.SetDefault("DATA_FILE", "submissions.json")
	v.SetDefault("AI_PROVIDER", ProviderGemini)
	v.SetDefault("AI_MODEL", "gemini-1.5-flash")
	v.SetDefault("AI_MAX_ATTEMPTS", 2)
	v.SetDefault("AI_RETRY_DELAY", "1s")
	v.SetDefault("AI_ATTEMPT_TIMEOUT", "20s")

	// Keys without a default are invisible to Unmarshal unless bound.
	_ = v.BindEnv("DATABASE_URL")
	_ = v.BindEnv("AI_BASE_URL")
	_ = v.BindEnv("AI_API_KEY", "AI_API_KEY", "GEMINI_API_KEY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.AIMaxAttempts < 1 {
		cfg.AIMaxAttempts = 1
	}
	return cfg, nil
}
