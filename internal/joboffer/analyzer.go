package joboffer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"interviewsim/internal/eval"
	"interviewsim/internal/llm"
	"interviewsim/internal/metrics"
	"interviewsim/internal/models"
	"interviewsim/internal/prompts"
)

// Analyzer extracts structured data from pasted job offers with a
// single low-temperature model call. Unlike the evaluation synthesizer
// there is no fallback: an unparseable response is an error, because a
// made-up job profile would silently poison the whole session.
type Analyzer struct {
	provider llm.Provider
	builder  *prompts.Builder
	logger   *zap.Logger
}

func NewAnalyzer(provider llm.Provider, builder *prompts.Builder, logger *zap.Logger) *Analyzer {
	return &Analyzer{provider: provider, builder: builder, logger: logger}
}

// Analyze expects the handler to have already enforced the minimum
// offer length; no provider call happens for invalid input.
func (a *Analyzer) Analyze(ctx context.Context, jobOfferText string) (models.JobAnalysis, error) {
	prompt := a.builder.JobAnalysisPrompt(jobOfferText)

	start := time.Now()
	response, err := a.provider.Complete(ctx, prompt, llm.AnalysisOptions)
	if err != nil {
		metrics.ObserveLLMCall("job_analysis", "error", time.Since(start))
		return models.JobAnalysis{}, fmt.Errorf("job analysis call failed: %w", err)
	}
	metrics.ObserveLLMCall("job_analysis", "ok", time.Since(start))

	raw, err := eval.ExtractJSON(response)
	if err != nil {
		a.logger.Warn("job analysis output not parseable", zap.Error(err))
		return models.JobAnalysis{}, fmt.Errorf("failed to parse job analysis: %w", err)
	}

	var analysis models.JobAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		a.logger.Warn("job analysis JSON malformed", zap.Error(err))
		return models.JobAnalysis{}, fmt.Errorf("failed to parse job analysis: %w", err)
	}
	return analysis, nil
}
