package llm

import (
	"context"
)

// Turn is one prior message in the conversation sent to the model.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

// Options bound a single model call.
type Options struct {
	Temperature float32
	MaxTokens   int32
}

// Fixed per-call-type generation settings.
var (
	ChatOptions       = Options{Temperature: 0.7, MaxTokens: 1024}
	AnalysisOptions   = Options{Temperature: 0.2, MaxTokens: 1024}
	EvaluationOptions = Options{Temperature: 0.3, MaxTokens: 2048}
)

// TokenStream yields incremental text fragments of one model response.
// Recv returns io.EOF on normal end-of-stream; any other error means the
// turn did not happen and nothing should be persisted.
type TokenStream interface {
	Recv() (string, error)
	Close()
}

// Provider is the interface implemented by LLM backends.
type Provider interface {
	// Complete performs a single non-streaming call and returns the full
	// response text.
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
	// StreamChat starts a streamed conversational call with a system
	// prompt and the accumulated turns.
	StreamChat(ctx context.Context, systemPrompt string, turns []Turn, opts Options) (TokenStream, error)
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes
// For current and future use across different providers
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeTimeout      = "timeout"
)
