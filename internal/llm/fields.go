package llm

import (
	"unicode/utf8"

	"github.com/devlabs-ai/resume-screener/constants"
)

// ReconcileFields fills a possibly empty/partial parsed object into a fully
// populated CandidateFields. Present keys are trusted where possible; missing
// keys, JSON type mismatches, empty strings, and negative numerics take the
// per-field default, and sub-scores above 100 clamp to 100 so every reconciled
// value satisfies the candidates table constraints. The returned slice names
// the defaulted keys, for diagnostics.
func ReconcileFields(m map[string]any) (CandidateFields, []string) {
	var defaulted []string

	f := CandidateFields{
		Name:             stringField(m, "name", constants.DefaultName, &defaulted),
		Email:            stringField(m, "email", constants.DefaultEmail, &defaulted),
		ExperienceYears:  intField(m, "experience_years", constants.DefaultExperience, &defaulted),
		SkillsMatchScore: scoreField(m, "skills_match_score", constants.DefaultSkillsScore, &defaulted),
		EducationScore:   scoreField(m, "education_score", constants.DefaultEducationScore, &defaulted),
		Summary:          stringField(m, "summary", constants.PlaceholderSummary, &defaulted),
	}
	return f, defaulted
}

// SummaryNeedsRepair reports whether the reconciled summary warrants the
// second-pass repair call: still the placeholder, or too short to be useful.
// Length is counted in characters, not bytes.
func SummaryNeedsRepair(summary string) bool {
	return summary == constants.PlaceholderSummary ||
		utf8.RuneCountInString(summary) < constants.MinSummaryLength
}

func stringField(m map[string]any, key, def string, defaulted *[]string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	*defaulted = append(*defaulted, key)
	return def
}

// intField accepts the numeric shape JSON decoding yields (float64) and
// truncates to int. Anything else, including negatives, takes the default.
func intField(m map[string]any, key string, def int, defaulted *[]string) int {
	if v, ok := m[key].(float64); ok && v >= 0 {
		return int(v)
	}
	*defaulted = append(*defaulted, key)
	return def
}

// scoreField is intField bounded to the storable 0..100 sub-score range:
// values above it clamp to 100 instead of failing at insert.
func scoreField(m map[string]any, key string, def int, defaulted *[]string) int {
	if v, ok := m[key].(float64); ok && v >= 0 {
		if v > 100 {
			return 100
		}
		return int(v)
	}
	*defaulted = append(*defaulted, key)
	return def
}
