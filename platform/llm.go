package platform

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// NewLLMClient builds the model provider client. The client is passed to the
// generation service explicitly so tests can substitute a fake provider.
func NewLLMClient(cfg *Config) *openai.Client {
	return openai.NewClient(
		option.WithBaseURL(cfg.LLMBaseURL),
		option.WithAPIKey(cfg.LLMAPIKey),
	)
}
