package handlers

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"interviewsim/internal/middleware"
	"interviewsim/internal/models"
	"interviewsim/internal/tts"
)

func speechFrame(header string, payload []byte) []byte {
	out := make([]byte, 2+len(header)+len(payload))
	binary.BigEndian.PutUint16(out[:2], uint16(len(header)))
	copy(out[2:], header)
	copy(out[2+len(header):], payload)
	return out
}

func newFakeSpeechEndpoint(t *testing.T) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		for i := 0; i < 2; i++ {
			if _, _, err := conn.ReadMessage(); err != nil {
				t.Errorf("read failed: %v", err)
				return
			}
		}
		conn.WriteMessage(websocket.BinaryMessage, speechFrame("Path:audio\r\n", []byte("mp3!")))
		conn.WriteMessage(websocket.TextMessage, []byte("Path:turn.end\r\n"))
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestSynthesizeHandlerReturnsBase64Audio(t *testing.T) {
	handler := NewTTSHandler(tts.NewClient(newFakeSpeechEndpoint(t)), testLogger())

	wrapped := middleware.ValidateRequest[*models.TTSRequest]()(http.HandlerFunc(handler.SynthesizeHandler))
	rec := performJSON(wrapped, http.MethodPost, "/api/v1/tts", `{"text":"Bonjour"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp models.TTSResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Format != "mp3" {
		t.Errorf("expected mp3 format, got %s", resp.Format)
	}
	decoded, err := base64.StdEncoding.DecodeString(resp.Audio)
	if err != nil {
		t.Fatalf("audio is not valid base64: %v", err)
	}
	if string(decoded) != "mp3!" {
		t.Errorf("unexpected audio bytes: %q", decoded)
	}
}

func TestSynthesizeHandlerRejectsEmptyText(t *testing.T) {
	handler := NewTTSHandler(tts.NewClient(""), testLogger())

	wrapped := middleware.ValidateRequest[*models.TTSRequest]()(http.HandlerFunc(handler.SynthesizeHandler))
	rec := performJSON(wrapped, http.MethodPost, "/api/v1/tts", `{"text":""}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSynthesizeHandlerUpstreamFailure(t *testing.T) {
	handler := NewTTSHandler(tts.NewClient("ws://127.0.0.1:1"), testLogger())

	wrapped := middleware.ValidateRequest[*models.TTSRequest]()(http.HandlerFunc(handler.SynthesizeHandler))
	rec := performJSON(wrapped, http.MethodPost, "/api/v1/tts", `{"text":"Bonjour"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestVoicesHandlerListsCatalog(t *testing.T) {
	handler := NewTTSHandler(tts.NewClient(""), testLogger())

	rec := httptest.NewRecorder()
	handler.VoicesHandler(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tts/voices", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp models.VoicesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Voices) != 8 {
		t.Errorf("expected 8 voices, got %d", len(resp.Voices))
	}
}
