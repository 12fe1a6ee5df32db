package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"interviewsim/internal/joboffer"
	"interviewsim/internal/middleware"
	"interviewsim/internal/models"
	"interviewsim/internal/utils"
)

type JobOfferHandler struct {
	analyzer *joboffer.Analyzer
	logger   *zap.Logger
}

func NewJobOfferHandler(analyzer *joboffer.Analyzer, logger *zap.Logger) *JobOfferHandler {
	return &JobOfferHandler{analyzer: analyzer, logger: logger}
}

// AnalyzeHandler extracts company, title and skills from a pasted job
// offer. There is no degraded answer here: if the extraction fails the
// client is told so and keeps manual configuration.
func (h *JobOfferHandler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.AnalyzeJobRequest](r)

	analysis, err := h.analyzer.Analyze(r.Context(), req.JobOfferText)
	if err != nil {
		h.logger.Error("Job offer analysis failed", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "analysis_error",
			Message: "Failed to analyze job offer",
		})
		return
	}
	utils.JSON(w, http.StatusOK, analysis)
}
