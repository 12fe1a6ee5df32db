package models

import (
	"strings"
)

// InterviewSettings is the per-session configuration echoed by the client
// on chat and evaluation calls.
type InterviewSettings struct {
	Difficulty      string   `json:"difficulty"`
	Type            string   `json:"type"`
	Language        string   `json:"language"`
	DurationMinutes int      `json:"durationMinutes"`
	JobOfferText    string   `json:"jobOfferText,omitempty"`
	CompanyName     string   `json:"companyName,omitempty"`
	JobTitle        string   `json:"jobTitle,omitempty"`
	ExtractedSkills []string `json:"extractedSkills,omitempty"`
	VideoMode       bool     `json:"videoMode,omitempty"`
	InterviewerID   string   `json:"interviewerId,omitempty"`
}

func (s *InterviewSettings) validate() error {
	s.Difficulty = strings.ToLower(strings.TrimSpace(s.Difficulty))
	s.Type = strings.ToLower(strings.TrimSpace(s.Type))
	s.Language = strings.ToLower(strings.TrimSpace(s.Language))

	if !ValidDifficulties[s.Difficulty] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "Difficulty must be one of: junior, intermediate, senior",
		}
	}
	if !ValidInterviewTypes[s.Type] {
		return &ErrorResponse{
			Code:    "invalid_type",
			Message: "Type must be one of: algorithms, system_design, behavioral, job_based",
		}
	}
	if !ValidLanguages[s.Language] {
		return &ErrorResponse{
			Code:    "invalid_language",
			Message: "Language must be one of: fr, en",
		}
	}
	if s.DurationMinutes <= 0 {
		return &ErrorResponse{
			Code:    "invalid_duration",
			Message: "Duration must be a positive number of minutes",
		}
	}
	return nil
}

// ChatTurn is one prior turn resubmitted by the client on each call.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CreateInterviewRequest starts a new session.
type CreateInterviewRequest struct {
	Difficulty      string   `json:"difficulty"`
	Type            string   `json:"type"`
	Language        string   `json:"language"`
	DurationMinutes int      `json:"durationMinutes"`
	JobOfferText    string   `json:"jobOfferText,omitempty"`
	CompanyName     string   `json:"companyName,omitempty"`
	JobTitle        string   `json:"jobTitle,omitempty"`
	ExtractedSkills []string `json:"extractedSkills,omitempty"`
}

func (r *CreateInterviewRequest) Validate() error {
	settings := InterviewSettings{
		Difficulty:      r.Difficulty,
		Type:            r.Type,
		Language:        r.Language,
		DurationMinutes: r.DurationMinutes,
	}
	if err := settings.validate(); err != nil {
		return err
	}
	r.Difficulty = settings.Difficulty
	r.Type = settings.Type
	r.Language = settings.Language
	return nil
}

// UpdateInterviewRequest mutates status and end time of a session.
type UpdateInterviewRequest struct {
	Status  string `json:"status"`
	EndTime string `json:"endTime,omitempty"`
}

func (r *UpdateInterviewRequest) Validate() error {
	if r.Status != StatusInProgress && r.Status != StatusCompleted {
		return &ErrorResponse{
			Code:    "invalid_status",
			Message: "Status must be in_progress or completed",
		}
	}
	return nil
}

// ChatRequest drives one streamed conversational turn.
type ChatRequest struct {
	InterviewID string            `json:"interviewId"`
	Messages    []ChatTurn        `json:"messages"`
	Settings    InterviewSettings `json:"settings"`
}

func (r *ChatRequest) Validate() error {
	if err := r.Settings.validate(); err != nil {
		return err
	}
	for _, turn := range r.Messages {
		if !ValidRoles[turn.Role] {
			return &ErrorResponse{
				Code:    "invalid_role",
				Message: "Message role must be user or assistant",
			}
		}
	}
	return nil
}

// SaveMessageRequest persists a user-authored turn.
type SaveMessageRequest struct {
	InterviewID string `json:"interviewId"`
	Content     string `json:"content"`
}

func (r *SaveMessageRequest) Validate() error {
	if strings.TrimSpace(r.InterviewID) == "" {
		return &ErrorResponse{Code: "missing_interview_id", Message: "interviewId is required"}
	}
	if r.Content == "" {
		return &ErrorResponse{Code: "missing_content", Message: "content is required"}
	}
	return nil
}

// CodeSubmissionInput is a code attempt included with an evaluation call.
type CodeSubmissionInput struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// EvaluateRequest closes a session and requests the scored report.
type EvaluateRequest struct {
	InterviewID     string                `json:"interviewId"`
	Settings        InterviewSettings     `json:"settings"`
	Messages        []ChatTurn            `json:"messages"`
	CodeSubmissions []CodeSubmissionInput `json:"codeSubmissions,omitempty"`
}

func (r *EvaluateRequest) Validate() error {
	return r.Settings.validate()
}

// ExecuteRequest runs code in the external sandbox.
type ExecuteRequest struct {
	Code        string `json:"code"`
	Language    string `json:"language"`
	Stdin       string `json:"stdin,omitempty"`
	InterviewID string `json:"interviewId,omitempty"`
}

func (r *ExecuteRequest) Validate() error {
	if r.Code == "" {
		return &ErrorResponse{Code: "missing_code", Message: "Code and language are required"}
	}
	if r.Language == "" {
		return &ErrorResponse{Code: "missing_language", Message: "Code and language are required"}
	}
	return nil
}

// AnalyzeJobRequest extracts structure from a pasted job offer.
type AnalyzeJobRequest struct {
	JobOfferText string `json:"jobOfferText"`
}

func (r *AnalyzeJobRequest) Validate() error {
	if len(strings.TrimSpace(r.JobOfferText)) < MinJobOfferLength {
		return &ErrorResponse{
			Code:    "job_offer_too_short",
			Message: "Please provide a valid job offer (minimum 50 characters)",
		}
	}
	return nil
}

// TTSRequest synthesizes speech for a fragment of interviewer output.
type TTSRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId,omitempty"`
}

func (r *TTSRequest) Validate() error {
	if r.Text == "" {
		return &ErrorResponse{Code: "missing_text", Message: "No text provided"}
	}
	return nil
}
