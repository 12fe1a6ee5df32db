package prompts

import (
	"fmt"
	"strings"

	"interviewsim/internal/models"
)

// FormatTranscript renders ordered turns as "ROLE: content" blocks,
// preserving conversational order.
func FormatTranscript(turns []models.ChatTurn) string {
	blocks := make([]string, 0, len(turns))
	for _, turn := range turns {
		blocks = append(blocks, strings.ToUpper(turn.Role)+": "+turn.Content)
	}
	return strings.Join(blocks, "\n\n")
}

// FormatSubmissions renders code attempts labeled by index and language.
func FormatSubmissions(submissions []models.CodeSubmissionInput) string {
	if len(submissions) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(submissions))
	for i, submission := range submissions {
		blocks = append(blocks, fmt.Sprintf("Submission %d (%s):\n%s", i+1, submission.Language, submission.Code))
	}
	return strings.Join(blocks, "\n\n---\n\n")
}
