package eval

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"interviewsim/internal/llm"
	"interviewsim/internal/metrics"
	"interviewsim/internal/models"
	"interviewsim/internal/prompts"
)

// ResultSink atomically persists the report and closes the session.
type ResultSink interface {
	Complete(interviewID string, report models.EvaluationReport) error
}

// Synthesizer turns a finished conversation into a scored report via a
// single non-streaming model call.
type Synthesizer struct {
	provider llm.Provider
	builder  *prompts.Builder
	sink     ResultSink
	logger   *zap.Logger
}

func NewSynthesizer(provider llm.Provider, builder *prompts.Builder, sink ResultSink, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{
		provider: provider,
		builder:  builder,
		sink:     sink,
		logger:   logger,
	}
}

// FallbackReport is the fixed neutral report substituted when the model
// output cannot be parsed, so the session can still complete.
func FallbackReport() models.EvaluationReport {
	return models.EvaluationReport{
		OverallScore:        50,
		CommunicationScore:  50,
		TechnicalScore:      50,
		ProblemSolvingScore: 50,
		Strengths:           []string{"Participated in the interview"},
		Improvements:        []string{"Keep practicing"},
		TimeManagement:      "Not evaluated",
		NextTopics:          []string{"Basic algorithms"},
	}
}

// Evaluate scores the transcript and, when the request names a session,
// persists the report and advances the session to completed. A provider
// failure is an error; an unparseable response is not, it degrades to
// the fallback report.
func (s *Synthesizer) Evaluate(ctx context.Context, req *models.EvaluateRequest) (models.EvaluationReport, error) {
	history := prompts.FormatTranscript(req.Messages)
	code := prompts.FormatSubmissions(req.CodeSubmissions)
	prompt := s.builder.EvaluationPrompt(req.Settings, history, code)

	start := time.Now()
	response, err := s.provider.Complete(ctx, prompt, llm.EvaluationOptions)
	if err != nil {
		metrics.ObserveLLMCall("evaluation", "error", time.Since(start))
		return models.EvaluationReport{}, fmt.Errorf("evaluation call failed: %w", err)
	}
	metrics.ObserveLLMCall("evaluation", "ok", time.Since(start))

	report, parsed := s.parseReport(response)
	if !parsed {
		// extraction failures are tracked separately from provider
		// outages so the two can be told apart in dashboards
		metrics.CountEvaluationFallback()
		s.logger.Warn("evaluation output not parseable, using fallback report",
			zap.String("interview_id", req.InterviewID))
		report = FallbackReport()
	}

	if req.InterviewID != "" {
		if err := s.sink.Complete(req.InterviewID, report); err != nil {
			return models.EvaluationReport{}, fmt.Errorf("failed to record result: %w", err)
		}
	}
	return report, nil
}

// parseReport extracts and decodes the JSON report. Scores pass through
// exactly as the model emitted them, unclamped.
func (s *Synthesizer) parseReport(response string) (models.EvaluationReport, bool) {
	raw, err := ExtractJSON(response)
	if err != nil {
		return models.EvaluationReport{}, false
	}
	var report models.EvaluationReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return models.EvaluationReport{}, false
	}
	return report, true
}
