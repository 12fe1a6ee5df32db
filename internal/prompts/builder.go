package prompts

import (
	"embed"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"interviewsim/internal/models"
)

// embeds all .yaml files in the templates folder into the binary at
// compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// companies used for the random pick when the session supplies none
var companies = []string{
	"Google", "Meta", "Amazon", "Microsoft", "Apple",
	"Netflix", "Spotify", "Shopify", "Stripe", "Airbnb",
	"Ubisoft", "Element AI", "Lightspeed", "Coveo", "Unity",
}

// Builder assembles the system prompt for the interviewer, the
// evaluation prompt and the job analysis prompt from embedded templates.
// It is pure except for the company pick, which is injectable.
type Builder struct {
	interviewer map[string]string // interview type -> template
	evaluation  string
	jobAnalysis string
	pickCompany func() string
}

type Option func(*Builder)

// WithCompanyPicker overrides the random company pick, mainly for tests.
func WithCompanyPicker(pick func() string) Option {
	return func(b *Builder) {
		b.pickCompany = pick
	}
}

type interviewerFile struct {
	Templates map[string]string `yaml:"templates"`
}

type singleTemplateFile struct {
	Template string `yaml:"template"`
}

// NewBuilder loads the embedded templates.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		pickCompany: func() string {
			return companies[rand.Intn(len(companies))]
		},
	}

	var interviewer interviewerFile
	if err := loadTemplate("templates/interviewer.yaml", &interviewer); err != nil {
		return nil, err
	}
	b.interviewer = interviewer.Templates

	var evaluation singleTemplateFile
	if err := loadTemplate("templates/evaluation.yaml", &evaluation); err != nil {
		return nil, err
	}
	b.evaluation = evaluation.Template

	var jobAnalysis singleTemplateFile
	if err := loadTemplate("templates/job_analysis.yaml", &jobAnalysis); err != nil {
		return nil, err
	}
	b.jobAnalysis = jobAnalysis.Template

	for _, required := range []string{"algorithms", "system_design", "behavioral", "job_based", "default"} {
		if b.interviewer[required] == "" {
			return nil, fmt.Errorf("interviewer template missing for type: %s", required)
		}
	}

	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func loadTemplate(path string, out interface{}) error {
	data, err := templateFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse template file %s: %w", path, err)
	}
	return nil
}

// InterviewerPrompt builds the opening system prompt for a session.
// persona is the optional interviewer personality block (video mode).
func (b *Builder) InterviewerPrompt(settings models.InterviewSettings, persona string) string {
	company := settings.CompanyName
	if company == "" {
		company = b.pickCompany()
	}

	templateName := settings.Type
	// job_based without an actual offer falls back to the generic template
	if templateName == "job_based" && settings.JobOfferText == "" {
		templateName = "default"
	}
	template, exists := b.interviewer[templateName]
	if !exists {
		template = b.interviewer["default"]
	}

	personaBlock := ""
	if persona != "" {
		personaBlock = "\n\nINTERVIEWER PERSONALITY:\n" + persona + "\n"
	}

	jobTitle := settings.JobTitle
	if jobTitle == "" {
		jobTitle = "Developer"
	}
	skills := strings.Join(settings.ExtractedSkills, ", ")
	if skills == "" {
		skills = "According to the offer"
	}

	result := strings.ReplaceAll(template, "{{.Company}}", company)
	result = strings.ReplaceAll(result, "{{.Difficulty}}", difficultyDescriptor(settings.Difficulty, settings.Language))
	result = strings.ReplaceAll(result, "{{.LangRules}}", languageRules(settings.Language))
	result = strings.ReplaceAll(result, "{{.Persona}}", personaBlock)
	result = strings.ReplaceAll(result, "{{.JobOffer}}", settings.JobOfferText)
	result = strings.ReplaceAll(result, "{{.Skills}}", skills)
	result = strings.ReplaceAll(result, "{{.JobTitle}}", jobTitle)
	return result
}

// EvaluationPrompt assembles the final evaluation prompt from the
// formatted conversation history and optional code submissions.
func (b *Builder) EvaluationPrompt(settings models.InterviewSettings, history, code string) string {
	codeBlock := ""
	if code != "" {
		codeBlock = "SUBMITTED CODE:\n" + code
	}

	langRules := "Generate the report in English."
	if settings.Language == "fr" {
		langRules = "Génère le rapport en français."
	}

	result := strings.ReplaceAll(b.evaluation, "{{.LangRules}}", langRules)
	result = strings.ReplaceAll(result, "{{.Type}}", settings.Type)
	result = strings.ReplaceAll(result, "{{.Difficulty}}", settings.Difficulty)
	result = strings.ReplaceAll(result, "{{.Duration}}", strconv.Itoa(settings.DurationMinutes))
	result = strings.ReplaceAll(result, "{{.History}}", history)
	result = strings.ReplaceAll(result, "{{.Code}}", codeBlock)
	return result
}

// JobAnalysisPrompt wraps a pasted job offer for structured extraction.
func (b *Builder) JobAnalysisPrompt(jobOfferText string) string {
	return strings.ReplaceAll(b.jobAnalysis, "{{.JobOffer}}", jobOfferText)
}

func languageRules(language string) string {
	if language == "fr" {
		return "Tu dois répondre UNIQUEMENT en français."
	}
	return "You must respond ONLY in English."
}

func difficultyDescriptor(difficulty, language string) string {
	fr := language == "fr"
	switch difficulty {
	case "junior":
		if fr {
			return "junior (stage/nouveau diplômé)"
		}
		return "junior (intern/new grad)"
	case "intermediate":
		if fr {
			return "intermédiaire (1-3 ans d'expérience)"
		}
		return "intermediate (1-3 years experience)"
	case "senior":
		if fr {
			return "senior (5+ ans d'expérience)"
		}
		return "senior (5+ years experience)"
	}
	return difficulty
}
