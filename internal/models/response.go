package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// Error implements the error interface so validation methods can return
// an ErrorResponse directly.
func (e *ErrorResponse) Error() string {
	return e.Message
}

// CreateInterviewResponse is returned on session creation.
type CreateInterviewResponse struct {
	ID string `json:"id"`
}

// EvaluationReport is the structured evaluation produced at session end.
// Scores are whole numbers in [0,100] as emitted by the model; they are
// passed through unclamped.
type EvaluationReport struct {
	OverallScore        int      `json:"overallScore"`
	CommunicationScore  int      `json:"communicationScore"`
	TechnicalScore      int      `json:"technicalScore"`
	ProblemSolvingScore int      `json:"problemSolvingScore"`
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
	TimeManagement      string   `json:"timeManagement"`
	NextTopics          []string `json:"nextTopics"`
}

// JobAnalysis is the structured extraction from a pasted job offer.
type JobAnalysis struct {
	CompanyName          string   `json:"companyName"`
	JobTitle             string   `json:"jobTitle"`
	Skills               []string `json:"skills"`
	ExperienceLevel      string   `json:"experienceLevel"`
	MainResponsibilities []string `json:"mainResponsibilities"`
}

// ExecutionResult is the outcome of one sandboxed code run. Success means
// a zero exit code and no stderr output.
type ExecutionResult struct {
	Success       bool   `json:"success"`
	Output        string `json:"output"`
	Error         string `json:"error,omitempty"`
	ExecutionTime int    `json:"executionTime,omitempty"`
}

// TTSResponse carries synthesized speech as base64-encoded mp3 bytes.
type TTSResponse struct {
	Audio  string `json:"audio"`
	Format string `json:"format"`
}

// Voice describes one available text-to-speech voice.
type Voice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// VoicesResponse lists the available voices for discovery.
type VoicesResponse struct {
	Voices []Voice `json:"voices"`
}

// RuntimesResponse lists languages the execution sandbox accepts.
type RuntimesResponse struct {
	Languages []string `json:"languages"`
}

// InterviewDetail is the full fetch-by-id payload: configuration plus
// ordered messages, the result if evaluated, and code submissions.
type InterviewDetail struct {
	Interview
	Skills []string          `json:"extractedSkills,omitempty"`
	Report *EvaluationReport `json:"report,omitempty"`
}
