package service

import "context"

// TextEnhancer generates prose (bios, summaries, project blurbs) from a
// prompt. Enabled reports whether the provider is configured; callers must
// check it and fall back to deterministic text when false, and must treat
// Generate failures the same way. At most one attempt per call site — retry
// policy, if any, lives inside the provider.
type TextEnhancer interface {
	Enabled() bool
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// DisabledEnhancer is the detectable "no provider configured" state.
type DisabledEnhancer struct{}

func NewDisabledEnhancer() *DisabledEnhancer {
	return &DisabledEnhancer{}
}

func (e *DisabledEnhancer) Enabled() bool {
	return false
}

func (e *DisabledEnhancer) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return "", nil
}
