package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/portfolio-gen/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService is the alternate TextEnhancer, for deployments without a
// Gemini key. Single attempt per call; the assembler handles degradation.
type OpenRouterService struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		client: resty.New().SetTimeout(60 * time.Second),
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (s *OpenRouterService) Enabled() bool {
	return s.apiKey != ""
}

func (s *OpenRouterService) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("openrouter api key not configured")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model":      s.model,
			"max_tokens": maxTokens,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterEndpoint)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter error: status %d", resp.StatusCode())
	}

	text := strings.TrimSpace(gjson.Get(resp.String(), "choices.0.message.content").String())
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
