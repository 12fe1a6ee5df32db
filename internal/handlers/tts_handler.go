package handlers

import (
	"encoding/base64"
	"net/http"

	"go.uber.org/zap"

	"interviewsim/internal/middleware"
	"interviewsim/internal/models"
	"interviewsim/internal/tts"
	"interviewsim/internal/utils"
)

type TTSHandler struct {
	client *tts.Client
	logger *zap.Logger
}

func NewTTSHandler(client *tts.Client, logger *zap.Logger) *TTSHandler {
	return &TTSHandler{client: client, logger: logger}
}

func (h *TTSHandler) SynthesizeHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.TTSRequest](r)

	// Long fragments are cut rather than rejected so playback always
	// starts with the beginning of the interviewer's answer.
	text := utils.Truncate(req.Text, models.MaxTTSLength)

	audio, err := h.client.Synthesize(r.Context(), text, req.VoiceID)
	if err != nil {
		h.logger.Error("Speech synthesis failed", zap.Error(err), zap.String("voice_id", req.VoiceID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "tts_error",
			Message: "Speech synthesis failed",
		})
		return
	}

	utils.JSON(w, http.StatusOK, models.TTSResponse{
		Audio:  base64.StdEncoding.EncodeToString(audio),
		Format: "mp3",
	})
}

func (h *TTSHandler) VoicesHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, models.VoicesResponse{Voices: tts.Voices()})
}
