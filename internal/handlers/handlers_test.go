package handlers

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"interviewsim/internal/llm"
	"interviewsim/internal/models"
	"interviewsim/internal/prompts"
	"interviewsim/internal/store"
)

// mockProvider implements llm.Provider for handler tests.
type mockProvider struct {
	completeFn func(ctx context.Context, prompt string, opts llm.Options) (string, error)
	streamFn   func(ctx context.Context, systemPrompt string, turns []llm.Turn, opts llm.Options) (llm.TokenStream, error)
}

func (m *mockProvider) Complete(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	if m.completeFn == nil {
		return "", nil
	}
	return m.completeFn(ctx, prompt, opts)
}

func (m *mockProvider) StreamChat(ctx context.Context, systemPrompt string, turns []llm.Turn, opts llm.Options) (llm.TokenStream, error) {
	if m.streamFn == nil {
		return &sliceStream{}, nil
	}
	return m.streamFn(ctx, systemPrompt, turns, opts)
}

func (m *mockProvider) GetProviderName() string {
	return "mock"
}

// sliceStream replays fixed fragments as a token stream.
type sliceStream struct {
	fragments []string
	pos       int
}

func (s *sliceStream) Recv() (string, error) {
	if s.pos >= len(s.fragments) {
		return "", io.EOF
	}
	text := s.fragments[s.pos]
	s.pos++
	return text, nil
}

func (s *sliceStream) Close() {}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Interview{},
		&models.Message{},
		&models.CodeSubmission{},
		&models.InterviewResult{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store.New(db)
}

func newTestBuilder(t *testing.T) *prompts.Builder {
	t.Helper()
	builder, err := prompts.NewBuilder()
	if err != nil {
		t.Fatalf("failed to load prompt templates: %v", err)
	}
	return builder
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func createTestInterview(t *testing.T, s *store.Store) *models.Interview {
	t.Helper()
	interview, err := s.CreateInterview(&models.CreateInterviewRequest{
		Difficulty:      "junior",
		Type:            "algorithms",
		Language:        "en",
		DurationMinutes: 30,
	})
	if err != nil {
		t.Fatalf("failed to create interview: %v", err)
	}
	return interview
}
