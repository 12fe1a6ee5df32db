package handlers

import (
	"net/http"

	"interviewsim/internal/interviewers"
	"interviewsim/internal/utils"
)

type InterviewersHandler struct{}

func NewInterviewersHandler() *InterviewersHandler {
	return &InterviewersHandler{}
}

func (h *InterviewersHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"interviewers": interviewers.List(),
	})
}
