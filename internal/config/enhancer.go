package config

import (
	"os"
	"sync"
)

type EnhancerConfig struct {
	Provider string // "gemini", "openrouter" or "off"
}

var (
	enhancerConfig *EnhancerConfig
	enhancerOnce   sync.Once
)

func LoadEnhancerConfig() *EnhancerConfig {
	enhancerOnce.Do(func() {
		provider := os.Getenv("ENHANCER_PROVIDER")
		if provider == "" {
			provider = "gemini"
		}
		enhancerConfig = &EnhancerConfig{
			Provider: provider,
		}
	})
	return enhancerConfig
}
