// Package counselor turns student profiles and questions into prompts for an
// external language model and returns the model's text unchanged.
package counselor

import (
	"context"
	"fmt"

	"github.com/careerpath/careerpath-go/internal/model"
)

// Completer sends one system + user prompt pair to a language model and
// returns the generated text.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Counselor formats career-guidance prompts and forwards them to a Completer.
// Every call is a single-turn exchange; nothing is retried.
type Counselor struct {
	llm Completer
}

// New creates a Counselor backed by llm.
func New(llm Completer) *Counselor {
	return &Counselor{llm: llm}
}

// Analyze asks the model for career recommendations for the given profile.
func (c *Counselor) Analyze(ctx context.Context, profile model.Profile) (string, error) {
	text, err := c.llm.Complete(ctx, Persona, AnalysisPrompt(profile))
	if err != nil {
		return "", fmt.Errorf("analyze profile: %w", err)
	}
	return text, nil
}

// Converse answers a student's question. When profile is non-nil a short
// context block describing the student is prepended to the question.
func (c *Counselor) Converse(ctx context.Context, userName string, profile *model.Profile, message string) (string, error) {
	text, err := c.llm.Complete(ctx, Persona, ChatPrompt(userName, profile, message))
	if err != nil {
		return "", fmt.Errorf("converse: %w", err)
	}
	return text, nil
}
