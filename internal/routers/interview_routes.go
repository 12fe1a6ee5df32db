package routers

import (
	"interviewsim/internal/handlers"
	"interviewsim/internal/middleware"
	"interviewsim/internal/models"

	"github.com/go-chi/chi/v5"
)

func InterviewRoutes(router *chi.Mux, h *handlers.InterviewHandler) {
	router.Route("/api/v1/interviews", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.CreateInterviewRequest]()).Post("/", h.CreateHandler)
		r.Get("/", h.ListHandler)
		r.Get("/{id}", h.GetHandler)
		r.With(middleware.ValidateRequest[*models.UpdateInterviewRequest]()).Patch("/{id}", h.UpdateHandler)
	})
}

func ChatRoutes(router *chi.Mux, h *handlers.ChatHandler) {
	router.Route("/api/v1/chat", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.ChatRequest]()).Post("/", h.StreamHandler)
		r.With(middleware.ValidateRequest[*models.SaveMessageRequest]()).Put("/message", h.SaveMessageHandler)
	})
}

func EvaluateRoutes(router *chi.Mux, h *handlers.EvaluateHandler) {
	router.With(middleware.ValidateRequest[*models.EvaluateRequest]()).Post("/api/v1/evaluate", h.EvaluateHandler)
}

func ExecuteRoutes(router *chi.Mux, h *handlers.ExecuteHandler) {
	router.Route("/api/v1/execute", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.ExecuteRequest]()).Post("/", h.ExecuteHandler)
		r.Get("/runtimes", h.RuntimesHandler)
	})
}

func JobOfferRoutes(router *chi.Mux, h *handlers.JobOfferHandler) {
	router.With(middleware.ValidateRequest[*models.AnalyzeJobRequest]()).Post("/api/v1/analyze-job", h.AnalyzeHandler)
}

func TTSRoutes(router *chi.Mux, h *handlers.TTSHandler) {
	router.Route("/api/v1/tts", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.TTSRequest]()).Post("/", h.SynthesizeHandler)
		r.Get("/voices", h.VoicesHandler)
	})
}

func InterviewerRoutes(router *chi.Mux, h *handlers.InterviewersHandler) {
	router.Get("/api/v1/interviewers", h.ListHandler)
}
