package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"interviewsim/internal/interviewers"
	"interviewsim/internal/llm"
	"interviewsim/internal/middleware"
	"interviewsim/internal/models"
	"interviewsim/internal/prompts"
	"interviewsim/internal/relay"
	"interviewsim/internal/store"
	"interviewsim/internal/utils"
)

// ChatHandler drives streamed interviewer turns and records the
// conversation as it happens.
type ChatHandler struct {
	provider llm.Provider
	builder  *prompts.Builder
	relay    *relay.Relay
	store    *store.Store
	logger   *zap.Logger
}

func NewChatHandler(provider llm.Provider, builder *prompts.Builder, relay *relay.Relay, store *store.Store, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		provider: provider,
		builder:  builder,
		relay:    relay,
		store:    store,
		logger:   logger,
	}
}

// StreamHandler runs one conversational turn. The response is a text
// event stream; errors after the first fragment surface as a dropped
// connection without the terminal sentinel.
func (h *ChatHandler) StreamHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.ChatRequest](r)

	persona := ""
	if req.Settings.VideoMode && req.Settings.InterviewerID != "" {
		if interviewer, ok := interviewers.ByID(req.Settings.InterviewerID); ok {
			persona = interviewers.PersonaPrompt(interviewer)
		}
	}
	systemPrompt := h.builder.InterviewerPrompt(req.Settings, persona)

	turns := make([]llm.Turn, 0, len(req.Messages))
	for _, m := range req.Messages {
		turns = append(turns, llm.Turn{Role: m.Role, Content: m.Content})
	}

	stream, err := h.provider.StreamChat(r.Context(), systemPrompt, turns, llm.ChatOptions)
	if err != nil {
		h.logger.Error("AI provider error", zap.Error(err), zap.String("interview_id", req.InterviewID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "ai_error",
			Message: "Failed to start interviewer response",
		})
		return
	}

	if err := h.relay.Run(w, stream, req.InterviewID); err != nil {
		// Headers are already sent; the relay dropped the connection
		// without the sentinel and the client retries the turn.
		h.logger.Warn("chat stream aborted", zap.Error(err), zap.String("interview_id", req.InterviewID))
	}
}

// SaveMessageHandler persists a user-authored turn outside the stream.
func (h *ChatHandler) SaveMessageHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SaveMessageRequest](r)

	message, err := h.store.AppendMessage(req.InterviewID, "user", req.Content)
	if err != nil {
		h.logger.Error("Failed to save message", zap.Error(err), zap.String("interview_id", req.InterviewID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "storage_error",
			Message: "Failed to save message",
		})
		return
	}
	utils.JSON(w, http.StatusOK, message)
}
