package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/util"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// OpenRouterService talks to any OpenAI-compatible chat-completion endpoint
// (OpenRouter, DeepSeek, OpenAI). Sampling parameters are fixed at
// construction: low temperature, forced JSON object responses, no streaming.
type OpenRouterService struct {
	client *resty.Client
	cfg    *config.LLMConfig
	logger *zap.Logger
}

func NewOpenRouterService(cfg *config.LLMConfig, logger *zap.Logger) *OpenRouterService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.APIKey)

	return &OpenRouterService{client: client, cfg: cfg, logger: logger}
}

func (s *OpenRouterService) Complete(ctx context.Context, system, user string) (string, error) {
	payload := map[string]any{
		"model": s.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature":       s.cfg.Temperature,
		"max_tokens":        s.cfg.MaxTokens,
		"top_p":             s.cfg.TopP,
		"frequency_penalty": 0.0,
		"presence_penalty":  0.0,
		"stream":            false,
		"response_format":   map[string]string{"type": "json_object"},
	}

	s.logger.Debug("chat completion request",
		zap.String("model", s.cfg.Model),
		zap.String("user_preview", util.TruncateForLog(user, 200)),
	)

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion returned %d: %s", resp.StatusCode(), util.TruncateForLog(resp.String(), 200))
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return "", fmt.Errorf("chat completion returned no content")
	}

	s.logger.Debug("chat completion response",
		zap.String("content_preview", util.TruncateForLog(content, 200)),
	)
	return content, nil
}
