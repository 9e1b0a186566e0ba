package counselor

import (
	"context"
	"fmt"
)

// NewCompleter builds the Completer for the named provider ("gemini" or "openai").
func NewCompleter(ctx context.Context, provider, apiKey, model, baseURL string) (Completer, error) {
	switch provider {
	case "gemini":
		c, err := NewGeminiClient(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "openai":
		c, err := NewOpenAIClient(apiKey, baseURL, model, nil)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", provider)
	}
}
