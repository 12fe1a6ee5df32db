package tts

import (
	"context"
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"interviewsim/internal/models"
)

// DefaultEndpoint is the public Edge read-aloud websocket endpoint.
const DefaultEndpoint = "wss://speech.platform.bing.com/consumer/speech/synthesize/readaloud/edge/v1?TrustedClientToken=6A5AA1D4EAFF4E9FB37E23D68491D6F4"

const outputFormat = "audio-24khz-48kbitrate-mono-mp3"

// DefaultVoice is used when the caller does not pick one.
const DefaultVoice = "fr-FR-DeniseNeural"

// voices mirrors the fixed catalog exposed for discovery.
var voices = []models.Voice{
	{ID: "fr-FR-DeniseNeural", Name: "Denise (Femme)", Language: "fr-FR"},
	{ID: "fr-FR-HenriNeural", Name: "Henri (Homme)", Language: "fr-FR"},
	{ID: "fr-FR-EloiseNeural", Name: "Eloise (Femme)", Language: "fr-FR"},
	{ID: "fr-CA-SylvieNeural", Name: "Sylvie (Femme, Québec)", Language: "fr-CA"},
	{ID: "fr-CA-JeanNeural", Name: "Jean (Homme, Québec)", Language: "fr-CA"},
	{ID: "en-US-JennyNeural", Name: "Jenny (Female, US)", Language: "en-US"},
	{ID: "en-US-GuyNeural", Name: "Guy (Male, US)", Language: "en-US"},
	{ID: "en-GB-SoniaNeural", Name: "Sonia (Female, UK)", Language: "en-GB"},
}

// Voices returns the available voice catalog.
func Voices() []models.Voice {
	out := make([]models.Voice, len(voices))
	copy(out, voices)
	return out
}

// Client speaks the Edge TTS websocket wire protocol: a speech.config
// message, one SSML message per request, then binary frames carrying
// mp3 data until a turn.end marker.
type Client struct {
	endpoint string
	dialer   *websocket.Dialer
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

// Synthesize converts text to mp3 bytes using the given voice.
func (c *Client) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if voiceID == "" {
		voiceID = DefaultVoice
	}

	conn, _, err := c.dialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to speech service: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetReadDeadline(deadline)
		conn.SetWriteDeadline(deadline)
	}

	timestamp := time.Now().UTC().Format(time.RFC1123)
	configMsg := "X-Timestamp: " + timestamp + "\r\n" +
		"Content-Type: application/json; charset=utf-8\r\n" +
		"Path: speech.config\r\n\r\n" +
		`{"context":{"synthesis":{"audio":{"metadataoptions":{"sentenceBoundaryEnabled":"false","wordBoundaryEnabled":"false"},"outputFormat":"` + outputFormat + `"}}}}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(configMsg)); err != nil {
		return nil, fmt.Errorf("failed to send speech config: %w", err)
	}

	requestID := strings.ReplaceAll(uuid.New().String(), "-", "")
	ssmlMsg := "X-RequestId: " + requestID + "\r\n" +
		"Content-Type: application/ssml+xml\r\n" +
		"X-Timestamp: " + timestamp + "\r\n" +
		"Path: ssml\r\n\r\n" +
		buildSSML(text, voiceID)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(ssmlMsg)); err != nil {
		return nil, fmt.Errorf("failed to send synthesis request: %w", err)
	}

	var audio []byte
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("speech stream failed: %w", err)
		}
		switch messageType {
		case websocket.TextMessage:
			if strings.Contains(string(data), "Path:turn.end") {
				return audio, nil
			}
		case websocket.BinaryMessage:
			chunk, ok := audioPayload(data)
			if ok {
				audio = append(audio, chunk...)
			}
		}
	}
}

// buildSSML wraps escaped text in the minimal SSML envelope the
// service expects.
func buildSSML(text, voiceID string) string {
	var escaped strings.Builder
	xml.EscapeText(&escaped, []byte(text))
	return "<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='en-US'>" +
		"<voice name='" + voiceID + "'>" + escaped.String() + "</voice></speak>"
}

// audioPayload splits a binary frame into header and payload. The
// first two bytes carry the header length; only frames whose header
// declares Path:audio contain mp3 data.
func audioPayload(data []byte) ([]byte, bool) {
	if len(data) < 2 {
		return nil, false
	}
	headerLen := int(binary.BigEndian.Uint16(data[:2]))
	if len(data) < 2+headerLen {
		return nil, false
	}
	header := string(data[2 : 2+headerLen])
	if !strings.Contains(header, "Path:audio") {
		return nil, false
	}
	return data[2+headerLen:], true
}
