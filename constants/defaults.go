package constants

// Defaults applied by the field reconciler when the model omits or mangles a key.
const (
	DefaultName           = "Unknown"
	DefaultEmail          = "N/A"
	DefaultExperience     = 0
	DefaultSkillsScore    = 50
	DefaultEducationScore = 50
	PlaceholderSummary    = "Unable to generate summary"
)

// MinSummaryLength is the shortest summary accepted without a repair pass.
const MinSummaryLength = 100

// Weighted score composition.
const (
	SkillsWeight     = 0.7
	ExperienceWeight = 0.2
	EducationWeight  = 0.1

	// ExperienceCapYears caps the experience contribution; 10+ years all
	// score the same as exactly 10.
	ExperienceCapYears = 10
)
