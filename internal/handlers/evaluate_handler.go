package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"interviewsim/internal/eval"
	"interviewsim/internal/middleware"
	"interviewsim/internal/models"
	"interviewsim/internal/store"
	"interviewsim/internal/utils"
)

type EvaluateHandler struct {
	synthesizer *eval.Synthesizer
	logger      *zap.Logger
}

func NewEvaluateHandler(synthesizer *eval.Synthesizer, logger *zap.Logger) *EvaluateHandler {
	return &EvaluateHandler{synthesizer: synthesizer, logger: logger}
}

func (h *EvaluateHandler) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.EvaluateRequest](r)

	report, err := h.synthesizer.Evaluate(r.Context(), req)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "not_found",
			Message: "Interview not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("Evaluation failed", zap.Error(err), zap.String("interview_id", req.InterviewID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "evaluation_error",
			Message: "Failed to generate evaluation report",
		})
		return
	}
	utils.JSON(w, http.StatusOK, report)
}
