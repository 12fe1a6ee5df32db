package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"interviewsim/internal/metrics"
	"interviewsim/internal/models"
	"interviewsim/internal/utils"
)

// runTimeoutMS is the wall-clock limit enforced by the sandbox itself.
const runTimeoutMS = 10000

type runtimeSpec struct {
	Language string
	Version  string
}

// languageMap maps our language identifiers to sandbox runtime pairs.
// Unrecognized languages are rejected before any call goes out.
var languageMap = map[string]runtimeSpec{
	"python":     {Language: "python", Version: "3.10"},
	"javascript": {Language: "javascript", Version: "18.15"},
	"java":       {Language: "java", Version: "15.0"},
	"cpp":        {Language: "cpp", Version: "10.2"},
	"typescript": {Language: "typescript", Version: "5.0"},
}

// Client is a pass-through to the Piston code execution API. Execution
// always yields an ExecutionResult; sandbox and transport failures are
// reported inside it, not as Go errors, so one submission can never
// take the session down.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// SupportedLanguages lists the accepted language identifiers.
func SupportedLanguages() []string {
	languages := make([]string, 0, len(languageMap))
	for language := range languageMap {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages
}

type executePayload struct {
	Language   string        `json:"language"`
	Version    string        `json:"version"`
	Files      []executeFile `json:"files"`
	Stdin      string        `json:"stdin"`
	RunTimeout int           `json:"run_timeout"`
}

type executeFile struct {
	Content string `json:"content"`
}

type phaseResult struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Code   int    `json:"code"`
}

type executeResponse struct {
	Run     *phaseResult `json:"run"`
	Compile *phaseResult `json:"compile"`
}

// Execute submits code to the sandbox and measures the wall-clock
// duration of the round trip. Success means a zero exit code and no
// stderr output.
func (c *Client) Execute(ctx context.Context, code, language, stdin string) models.ExecutionResult {
	normalized := utils.NormalizeLanguage(language)
	spec, supported := languageMap[normalized]
	if !supported {
		return models.ExecutionResult{
			Success: false,
			Error: fmt.Sprintf("Language '%s' not supported. Available: %s",
				language, strings.Join(SupportedLanguages(), ", ")),
		}
	}

	payload, err := json.Marshal(executePayload{
		Language:   spec.Language,
		Version:    spec.Version,
		Files:      []executeFile{{Content: code}},
		Stdin:      stdin,
		RunTimeout: runTimeoutMS,
	})
	if err != nil {
		return models.ExecutionResult{Success: false, Error: "Failed to encode execution request"}
	}

	start := time.Now()
	result := c.post(ctx, payload)
	result.ExecutionTime = int(time.Since(start).Milliseconds())
	metrics.CountSandboxRun(normalized, result.Success)
	return result
}

func (c *Client) post(ctx context.Context, payload []byte) models.ExecutionResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/execute", bytes.NewReader(payload))
	if err != nil {
		return models.ExecutionResult{Success: false, Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ExecutionResult{Success: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.ExecutionResult{
			Success: false,
			Error:   fmt.Sprintf("Piston API error: %d", resp.StatusCode),
		}
	}

	var decoded executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return models.ExecutionResult{Success: false, Error: "Invalid response from code execution service"}
	}

	if decoded.Run != nil {
		hasError := decoded.Run.Stderr != ""
		return models.ExecutionResult{
			Success: !hasError && decoded.Run.Code == 0,
			Output:  decoded.Run.Stdout,
			Error:   decoded.Run.Stderr,
		}
	}

	if decoded.Compile != nil && decoded.Compile.Code != 0 {
		compileErr := decoded.Compile.Stderr
		if compileErr == "" {
			compileErr = "Compilation error"
		}
		return models.ExecutionResult{Success: false, Error: compileErr}
	}

	return models.ExecutionResult{Success: false, Error: "Unexpected response from code execution service"}
}

type runtimeInfo struct {
	Language string `json:"language"`
}

// Runtimes lists languages available on the sandbox, falling back to
// the static map when the sandbox cannot be reached.
func (c *Client) Runtimes(ctx context.Context) []string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/runtimes", nil)
	if err != nil {
		return SupportedLanguages()
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return SupportedLanguages()
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return SupportedLanguages()
	}

	var runtimes []runtimeInfo
	if err := json.NewDecoder(resp.Body).Decode(&runtimes); err != nil {
		return SupportedLanguages()
	}
	languages := make([]string, 0, len(runtimes))
	for _, rt := range runtimes {
		languages = append(languages, rt.Language)
	}
	return languages
}
