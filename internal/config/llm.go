package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type LLMConfig struct {
	Provider    string // "openrouter" or "gemini"
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	TopP        float32
	MaxTokens   int
	Timeout     time.Duration
}

var (
	llmConfig *LLMConfig
	llmOnce   sync.Once
)

func LoadLLMConfig() *LLMConfig {
	llmOnce.Do(func() {
		llmConfig = &LLMConfig{
			Provider:    getEnv("LLM_PROVIDER", "openrouter"),
			APIKey:      os.Getenv("LLM_API_KEY"),
			BaseURL:     getEnv("LLM_BASE_URL", "https://api.deepseek.com/v1"),
			Model:       getEnv("LLM_MODEL", "deepseek-chat"),
			Temperature: float32(getEnvFloat("LLM_TEMPERATURE", 0.3)),
			TopP:        float32(getEnvFloat("LLM_TOP_P", 0.9)),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1000),
			Timeout:     getEnvDuration("LLM_TIMEOUT", 30*time.Second),
		}
	})
	return llmConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
