package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"interviewsim/internal/llm"
	"interviewsim/internal/metrics"
	"interviewsim/internal/models"
)

// doneSentinel is the terminal event that tells the client the stream
// finished; everything before it is an incremental fragment.
const doneSentinel = "data: [DONE]\n\n"

// MessageSink persists the accumulated assistant message at the end of
// a successful stream.
type MessageSink interface {
	AppendMessage(interviewID, role, content string) (*models.Message, error)
}

// fragment is the wire shape of one streamed increment.
type fragment struct {
	Content string `json:"content"`
}

// Relay forwards a provider token stream to the client over a text
// event stream, accumulating the full text and recording it durably on
// completion. Exactly one relay runs per interview turn; the caller
// must not start a second turn before the first finishes.
type Relay struct {
	sink   MessageSink
	logger *zap.Logger
}

func New(sink MessageSink, logger *zap.Logger) *Relay {
	return &Relay{sink: sink, logger: logger}
}

// Run drives one turn to completion. On a provider or persistence error
// the connection is dropped without the terminal sentinel, so the client
// treats the turn as not having happened; no partial message is saved.
func (r *Relay) Run(w http.ResponseWriter, stream llm.TokenStream, interviewID string) error {
	defer stream.Close()

	flusher, ok := w.(http.Flusher)
	if !ok {
		return errors.New("response writer does not support streaming")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var accumulated strings.Builder
	for {
		text, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			r.logger.Error("provider stream failed",
				zap.Error(err),
				zap.String("interview_id", interviewID))
			return err
		}
		if text == "" {
			continue
		}

		accumulated.WriteString(text)
		payload, err := json.Marshal(fragment{Content: text})
		if err != nil {
			return fmt.Errorf("failed to encode fragment: %w", err)
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return fmt.Errorf("client write failed: %w", err)
		}
		flusher.Flush()
		metrics.CountFragment()
	}

	// zero fragments means nothing to persist
	full := accumulated.String()
	if interviewID != "" && full != "" {
		if _, err := r.sink.AppendMessage(interviewID, "assistant", full); err != nil {
			r.logger.Error("failed to persist assistant message",
				zap.Error(err),
				zap.String("interview_id", interviewID))
			return err
		}
	}

	if _, err := io.WriteString(w, doneSentinel); err != nil {
		return fmt.Errorf("client write failed: %w", err)
	}
	flusher.Flush()
	return nil
}
