package models

// contains all valid interview difficulties (in lowercase)
var ValidDifficulties = map[string]bool{
	"junior":       true,
	"intermediate": true,
	"senior":       true,
}

// contains all valid interview types (in lowercase)
var ValidInterviewTypes = map[string]bool{
	"algorithms":    true,
	"system_design": true,
	"behavioral":    true,
	"job_based":     true,
}

// contains all valid response languages (in lowercase)
var ValidLanguages = map[string]bool{
	"fr": true,
	"en": true,
}

// contains all valid message roles
var ValidRoles = map[string]bool{
	"user":      true,
	"assistant": true,
}

// MinJobOfferLength is the minimum length of a job offer text accepted
// by the analyzer, measured after trimming whitespace.
const MinJobOfferLength = 50

// MaxTTSLength is the maximum text length sent to the speech provider;
// longer inputs are truncated, not rejected.
const MaxTTSLength = 2000

func ValidDifficultiesList() []string {
	return []string{"junior", "intermediate", "senior"}
}

func ValidInterviewTypesList() []string {
	return []string{"algorithms", "system_design", "behavioral", "job_based"}
}
