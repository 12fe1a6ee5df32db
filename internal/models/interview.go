package models

import (
	"encoding/json"
	"time"
)

// Interview lifecycle states
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Interview is the persistent record of one interview session.
// Configuration fields are immutable after creation; only Status and
// EndTime change, exactly once, when the session completes.
type Interview struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	Difficulty      string     `gorm:"not null" json:"difficulty"`
	Type            string     `gorm:"not null" json:"type"`
	Language        string     `gorm:"not null" json:"language"`
	DurationMinutes int        `gorm:"not null" json:"durationMinutes"`
	JobOfferText    *string    `gorm:"type:text" json:"jobOfferText,omitempty"`
	CompanyName     *string    `json:"companyName,omitempty"`
	JobTitle        *string    `json:"jobTitle,omitempty"`
	ExtractedSkills *string    `gorm:"type:text" json:"-"`
	Status          string     `gorm:"not null;default:in_progress;index" json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	EndTime         *time.Time `json:"endTime,omitempty"`

	Messages        []Message        `gorm:"constraint:OnDelete:CASCADE" json:"messages,omitempty"`
	Result          *InterviewResult `gorm:"constraint:OnDelete:CASCADE" json:"result,omitempty"`
	CodeSubmissions []CodeSubmission `gorm:"constraint:OnDelete:CASCADE" json:"codeSubmissions,omitempty"`
}

// Message is one conversational turn. Append-only: rows are created per
// turn and never mutated, retrieval is by ascending timestamp.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	InterviewID string    `gorm:"not null;index" json:"interviewId"`
	Role        string    `gorm:"not null" json:"role"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Timestamp   time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

// CodeSubmission records one code run made during an interview.
type CodeSubmission struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	InterviewID   string    `gorm:"not null;index" json:"interviewId"`
	Language      string    `gorm:"not null" json:"language"`
	Code          string    `gorm:"type:text;not null" json:"code"`
	TestResults   string    `gorm:"type:text" json:"testResults"`
	ExecutionTime int       `json:"executionTime"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InterviewResult is the scored evaluation report, created exactly once
// at session end. List fields are stored as JSON-serialized text.
type InterviewResult struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	InterviewID         string    `gorm:"not null;uniqueIndex" json:"interviewId"`
	OverallScore        int       `gorm:"not null" json:"overallScore"`
	CommunicationScore  int       `gorm:"not null" json:"communicationScore"`
	TechnicalScore      int       `gorm:"not null" json:"technicalScore"`
	ProblemSolvingScore int       `gorm:"not null" json:"problemSolvingScore"`
	Strengths           string    `gorm:"type:text" json:"-"`
	Improvements        string    `gorm:"type:text" json:"-"`
	TimeManagement      string    `gorm:"type:text" json:"timeManagement"`
	NextTopics          string    `gorm:"type:text" json:"-"`
	CreatedAt           time.Time `json:"createdAt"`
}

// Report converts the stored row back into the wire-level report shape.
func (r *InterviewResult) Report() EvaluationReport {
	report := EvaluationReport{
		OverallScore:        r.OverallScore,
		CommunicationScore:  r.CommunicationScore,
		TechnicalScore:      r.TechnicalScore,
		ProblemSolvingScore: r.ProblemSolvingScore,
		TimeManagement:      r.TimeManagement,
	}
	report.Strengths = decodeStringList(r.Strengths)
	report.Improvements = decodeStringList(r.Improvements)
	report.NextTopics = decodeStringList(r.NextTopics)
	return report
}

// NewInterviewResult builds a storable row from a report.
func NewInterviewResult(interviewID string, report EvaluationReport) *InterviewResult {
	return &InterviewResult{
		InterviewID:         interviewID,
		OverallScore:        report.OverallScore,
		CommunicationScore:  report.CommunicationScore,
		TechnicalScore:      report.TechnicalScore,
		ProblemSolvingScore: report.ProblemSolvingScore,
		Strengths:           encodeStringList(report.Strengths),
		Improvements:        encodeStringList(report.Improvements),
		TimeManagement:      report.TimeManagement,
		NextTopics:          encodeStringList(report.NextTopics),
	}
}

// Skills decodes the JSON-serialized extracted skill list.
func (i *Interview) Skills() []string {
	if i.ExtractedSkills == nil {
		return nil
	}
	return decodeStringList(*i.ExtractedSkills)
}

func encodeStringList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeStringList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
