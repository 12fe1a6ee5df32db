package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"interviewsim/internal/handlers"
	"interviewsim/internal/relay"
	"interviewsim/internal/sandbox"
	"interviewsim/internal/tts"
)

func TestHealthRoutes(t *testing.T) {
	router := chi.NewRouter()
	handler := handlers.NewHealthHandler(nil, nil, nil)

	HealthRoutes(router, handler)

	req, _ := http.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("/healthz route not registered correctly, got status %d", rec.Code)
	}
}

func TestRoutesRegisterEndpoints(t *testing.T) {
	router := chi.NewRouter()
	logger := zap.NewNop()

	InterviewRoutes(router, handlers.NewInterviewHandler(nil, logger))
	ChatRoutes(router, handlers.NewChatHandler(nil, nil, relay.New(nil, logger), nil, logger))
	EvaluateRoutes(router, handlers.NewEvaluateHandler(nil, logger))
	ExecuteRoutes(router, handlers.NewExecuteHandler(sandbox.NewClient("", nil), nil, logger))
	JobOfferRoutes(router, handlers.NewJobOfferHandler(nil, logger))
	TTSRoutes(router, handlers.NewTTSHandler(tts.NewClient(""), logger))
	InterviewerRoutes(router, handlers.NewInterviewersHandler())

	paths := map[string]bool{}
	if err := chi.Walk(router, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		paths[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("failed walking routes: %v", err)
	}

	expected := []string{
		"POST /api/v1/interviews/",
		"GET /api/v1/interviews/",
		"GET /api/v1/interviews/{id}",
		"PATCH /api/v1/interviews/{id}",
		"POST /api/v1/chat/",
		"PUT /api/v1/chat/message",
		"POST /api/v1/evaluate",
		"POST /api/v1/execute/",
		"GET /api/v1/execute/runtimes",
		"POST /api/v1/analyze-job",
		"POST /api/v1/tts/",
		"GET /api/v1/tts/voices",
		"GET /api/v1/interviewers",
	}

	for _, route := range expected {
		if !paths[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}
