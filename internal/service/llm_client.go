package service

import (
	"context"
	"fmt"

	"github.com/studentmatch/backend/internal/config"
	"go.uber.org/zap"
)

// LLMClient wraps one network call to a chat-completion style endpoint.
// Complete either returns the textual completion or a definite error; it
// never returns a partial result. Callers do not know which vendor answers.
type LLMClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// NewLLMClient builds the configured provider. The rest of the pipeline only
// sees the LLMClient interface.
func NewLLMClient(ctx context.Context, cfg *config.LLMConfig, logger *zap.Logger) (LLMClient, error) {
	switch cfg.Provider {
	case "openrouter", "openai", "deepseek":
		return NewOpenRouterService(cfg, logger), nil
	case "gemini":
		return NewGeminiService(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
