package interviewers

// Interviewer is one selectable persona for video-mode sessions. The
// catalog is fixed; personas only shape the system prompt and the voice
// used for speech synthesis.
type Interviewer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Personality string `json:"personality"`
	VoiceID     string `json:"voiceId"`
	Style       string `json:"style"` // friendly | strict | neutral | quirky
}

var catalog = []Interviewer{
	{
		ID:          "alex-tech",
		Name:        "Alex Chen",
		Role:        "Staff Engineer",
		Company:     "Google",
		Personality: "Direct and technical, asks pointed questions about algorithmic complexity. Appreciates elegant solutions.",
		VoiceID:     "fr-FR-HenriNeural",
		Style:       "strict",
	},
	{
		ID:          "sarah-pm",
		Name:        "Sarah Martinez",
		Role:        "Engineering Manager",
		Company:     "Meta",
		Personality: "Warm and encouraging, as interested in the thought process as in the final solution.",
		VoiceID:     "fr-FR-DeniseNeural",
		Style:       "friendly",
	},
	{
		ID:          "mike-startup",
		Name:        "Mike O'Brien",
		Role:        "CTO",
		Company:     "Startup YC",
		Personality: "Laid back but incisive, looks for people who adapt fast and think out of the box.",
		VoiceID:     "fr-FR-HenriNeural",
		Style:       "quirky",
	},
	{
		ID:          "emma-senior",
		Name:        "Emma Dubois",
		Role:        "Principal Engineer",
		Company:     "Microsoft",
		Personality: "Methodical and patient, likes clear explanations and discussions about trade-offs.",
		VoiceID:     "fr-FR-DeniseNeural",
		Style:       "neutral",
	},
	{
		ID:          "james-faang",
		Name:        "James Wilson",
		Role:        "Senior SDE",
		Company:     "Amazon",
		Personality: "Focused on leadership principles, expects structured answers with concrete examples.",
		VoiceID:     "fr-FR-HenriNeural",
		Style:       "strict",
	},
}

// List returns the persona catalog.
func List() []Interviewer {
	out := make([]Interviewer, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks a persona up; the second return is false when unknown.
func ByID(id string) (Interviewer, bool) {
	for _, interviewer := range catalog {
		if interviewer.ID == id {
			return interviewer, true
		}
	}
	return Interviewer{}, false
}

// PersonaPrompt renders the personality block injected into the system
// prompt when the session runs in video mode.
func PersonaPrompt(interviewer Interviewer) string {
	style := "Professional and balanced"
	switch interviewer.Style {
	case "friendly":
		style = "Encouraging and supportive"
	case "strict":
		style = "Demanding and rigorous"
	case "quirky":
		style = "Relaxed but perceptive"
	}
	return "You are " + interviewer.Name + ", " + interviewer.Role + " at " + interviewer.Company + ".\n" +
		"Personality: " + interviewer.Personality + "\n" +
		"Interview style: " + style + ".\n" +
		"Stay in character for the whole interview."
}
