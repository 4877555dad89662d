package service

import (
	"context"
	"fmt"

	"github.com/studentmatch/backend/internal/config"
	"github.com/studentmatch/backend/internal/util"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiService is the Gemini-backed implementation of LLMClient. Same
// contract as the OpenAI-compatible client: one bounded, non-streaming call
// with a forced-JSON response, no retries.
type GeminiService struct {
	client *genai.Client
	cfg    *config.LLMConfig
	logger *zap.Logger
}

func NewGeminiService(ctx context.Context, cfg *config.LLMConfig, logger *zap.Logger) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{client: client, cfg: cfg, logger: logger}, nil
}

func (s *GeminiService) Complete(ctx context.Context, system, user string) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(s.cfg.Temperature),
		TopP:              genai.Ptr(s.cfg.TopP),
		MaxOutputTokens:   int32(s.cfg.MaxTokens),
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	s.logger.Debug("gemini generate content request",
		zap.String("model", s.cfg.Model),
		zap.String("user_preview", util.TruncateForLog(user, 200)),
	)

	result, err := s.client.Models.GenerateContent(
		timeoutCtx,
		s.cfg.Model,
		genai.Text(user),
		genConfig,
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generate content returned no candidates")
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("generate content returned empty text")
	}

	s.logger.Debug("gemini generate content response",
		zap.String("content_preview", util.TruncateForLog(text, 200)),
	)
	return text, nil
}
