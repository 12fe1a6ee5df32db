package handlers

import (
	"net/http"

	"interviewsim/internal/llm"
	"interviewsim/internal/prompts"
	"interviewsim/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"`  // "ready" | "not_ready"
	Service string                    `json:"service"` // Service name
	Checks  map[string]ReadinessCheck `json:"checks"`  // Individual check results
}

// Pinger is the slice of the store the readiness probe needs.
type Pinger interface {
	Ping() error
}

type HealthHandler struct {
	provider llm.Provider
	builder  *prompts.Builder
	db       Pinger
}

func NewHealthHandler(provider llm.Provider, builder *prompts.Builder, db Pinger) *HealthHandler {
	return &HealthHandler{
		provider: provider,
		builder:  builder,
		db:       db,
	}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "interviewsim",
		"version": "1.0.0",
	})
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	// verify AI provider is initialized
	if handler.provider == nil {
		checks["provider"] = ReadinessCheck{
			Status:  "failed",
			Message: "AI provider not initialized",
		}
		allChecksPass = false
	} else {
		checks["provider"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify prompt templates are loaded
	if handler.builder == nil {
		checks["prompts"] = ReadinessCheck{
			Status:  "failed",
			Message: "Prompt builder not initialized",
		}
		allChecksPass = false
	} else {
		checks["prompts"] = ReadinessCheck{
			Status: "ok",
		}
	}

	// verify the database answers
	if handler.db == nil {
		checks["database"] = ReadinessCheck{
			Status:  "failed",
			Message: "Database not initialized",
		}
		allChecksPass = false
	} else if err := handler.db.Ping(); err != nil {
		checks["database"] = ReadinessCheck{
			Status:  "failed",
			Message: err.Error(),
		}
		allChecksPass = false
	} else {
		checks["database"] = ReadinessCheck{
			Status: "ok",
		}
	}

	response := ReadinessResponse{
		Service: "interviewsim",
		Checks:  checks,
	}

	if allChecksPass {
		response.Status = "ready"
		utils.JSON(writer, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(writer, http.StatusServiceUnavailable, response)
	}
}
