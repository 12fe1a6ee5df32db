package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interviewsim/internal/middleware"
	"interviewsim/internal/models"
	"interviewsim/internal/store"
	"interviewsim/internal/utils"
)

type InterviewHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewInterviewHandler(store *store.Store, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{store: store, logger: logger}
}

func (h *InterviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	// Get the validated request from middleware
	req := middleware.GetValidatedRequest[*models.CreateInterviewRequest](r)

	interview, err := h.store.CreateInterview(req)
	if err != nil {
		h.logger.Error("Failed to create interview", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to create interview",
		})
		return
	}

	h.logger.Info("Interview created",
		zap.String("interview_id", interview.ID),
		zap.String("type", interview.Type),
		zap.String("difficulty", interview.Difficulty))

	utils.JSON(w, http.StatusCreated, models.CreateInterviewResponse{ID: interview.ID})
}

func (h *InterviewHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	interview, err := h.store.GetInterview(id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "not_found",
			Message: "Interview not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("Failed to load interview", zap.Error(err), zap.String("interview_id", id))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to load interview",
		})
		return
	}

	detail := models.InterviewDetail{
		Interview: *interview,
		Skills:    interview.Skills(),
	}
	if interview.Result != nil {
		report := interview.Result.Report()
		detail.Report = &report
	}
	utils.JSON(w, http.StatusOK, detail)
}

func (h *InterviewHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	interviews, err := h.store.ListInterviews()
	if err != nil {
		h.logger.Error("Failed to list interviews", zap.Error(err))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to list interviews",
		})
		return
	}
	utils.JSON(w, http.StatusOK, interviews)
}

func (h *InterviewHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	req := middleware.GetValidatedRequest[*models.UpdateInterviewRequest](r)

	var endTime *time.Time
	if req.EndTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "invalid_end_time",
				Message: "endTime must be an RFC 3339 timestamp",
			})
			return
		}
		endTime = &parsed
	}

	err := h.store.UpdateStatus(id, req.Status, endTime)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "not_found",
			Message: "Interview not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("Failed to update interview", zap.Error(err), zap.String("interview_id", id))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to update interview",
		})
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
