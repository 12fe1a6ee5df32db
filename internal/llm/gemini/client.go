package gemini

import (
	"context"
	"io"
	"iter"

	"google.golang.org/genai"

	"interviewsim/internal/llm"
)

// Client represents a Gemini LLM client

type Client struct {
	client *genai.Client
	config *Config
}

func NewClient(config *Config) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{
		client: client,
		config: config,
	}, nil
}

// Complete performs a single non-streaming generation call.
func (c *Client) Complete(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(prompt),
		generationConfig(opts, ""),
	)
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate content",
			Err:      err,
		}
	}
	if result == nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidInput,
			Message:  "Empty response generated",
		}
	}
	return text, nil
}

// StreamChat starts a streamed conversational call. The returned stream
// yields text fragments in provider order and io.EOF at end-of-stream.
func (c *Client) StreamChat(ctx context.Context, systemPrompt string, turns []llm.Turn, opts llm.Options) (llm.TokenStream, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		role := "user"
		if turn.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}

	seq := c.client.Models.GenerateContentStream(
		ctx,
		c.config.Model,
		contents,
		generationConfig(opts, systemPrompt),
	)

	next, stop := iter.Pull2(seq)
	return &tokenStream{next: next, stop: stop}, nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}

func generationConfig(opts llm.Options, systemPrompt string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		MaxOutputTokens: genai.Ptr(opts.MaxTokens),
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}
	return cfg
}

// tokenStream adapts the SDK's push iterator to the pull-style
// llm.TokenStream contract.
type tokenStream struct {
	next func() (*genai.GenerateContentResponse, error, bool)
	stop func()
}

func (s *tokenStream) Recv() (string, error) {
	chunk, err, ok := s.next()
	if !ok {
		return "", io.EOF
	}
	if err != nil {
		return "", &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Stream interrupted",
			Err:      err,
		}
	}
	if chunk == nil {
		return "", nil
	}
	// Chunks without text parts (finish metadata) come through as empty
	// fragments and are skipped by the relay.
	text, textErr := chunk.Text()
	if textErr != nil {
		return "", nil
	}
	return text, nil
}

func (s *tokenStream) Close() {
	s.stop()
}
