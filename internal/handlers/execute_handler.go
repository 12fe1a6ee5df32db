package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"interviewsim/internal/middleware"
	"interviewsim/internal/models"
	"interviewsim/internal/sandbox"
	"interviewsim/internal/store"
	"interviewsim/internal/utils"
)

type ExecuteHandler struct {
	sandbox *sandbox.Client
	store   *store.Store
	logger  *zap.Logger
}

func NewExecuteHandler(sandbox *sandbox.Client, store *store.Store, logger *zap.Logger) *ExecuteHandler {
	return &ExecuteHandler{sandbox: sandbox, store: store, logger: logger}
}

// ExecuteHandler relays code to the sandbox. Execution failures are not
// HTTP errors: the outcome comes back with success=false so the client
// can show the candidate their own runtime error.
func (h *ExecuteHandler) ExecuteHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ExecuteRequest](r)

	result := h.sandbox.Execute(r.Context(), req.Code, req.Language, req.Stdin)

	if req.InterviewID != "" {
		h.recordSubmission(req, result)
	}
	utils.JSON(w, http.StatusOK, result)
}

// recordSubmission best-effort persists the run; the candidate still
// gets their output when the write fails.
func (h *ExecuteHandler) recordSubmission(req *models.ExecuteRequest, result models.ExecutionResult) {
	encoded, err := json.Marshal(result)
	if err != nil {
		h.logger.Error("Failed to encode execution result", zap.Error(err))
		return
	}
	submission := &models.CodeSubmission{
		InterviewID:   req.InterviewID,
		Language:      req.Language,
		Code:          req.Code,
		TestResults:   string(encoded),
		ExecutionTime: result.ExecutionTime,
	}
	if err := h.store.AppendSubmission(submission); err != nil {
		h.logger.Error("Failed to save code submission",
			zap.Error(err),
			zap.String("interview_id", req.InterviewID))
	}
}

func (h *ExecuteHandler) RuntimesHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, models.RuntimesResponse{
		Languages: h.sandbox.Runtimes(r.Context()),
	})
}
