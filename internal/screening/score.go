package screening

import (
	"github.com/devlabs-ai/resume-screener/constants"
	"github.com/devlabs-ai/resume-screener/internal/llm"
)

// WeightedScore combines the three sub-scores into the 0-100 decision value:
// skills 70%, experience 20% (capped at 10 years' worth), education 10%,
// truncated to an integer. A nil fields pointer scores 0; reconciliation makes
// that unreachable in the pipeline, but the calculator never assumes it.
func WeightedScore(f *llm.CandidateFields) int {
	if f == nil {
		return 0
	}

	exp := f.ExperienceYears * 10
	if exp > constants.ExperienceCapYears*10 {
		exp = constants.ExperienceCapYears * 10
	}

	score := int(float64(f.SkillsMatchScore)*constants.SkillsWeight +
		float64(exp)*constants.ExperienceWeight +
		float64(f.EducationScore)*constants.EducationWeight)

	// Sub-scores are trusted as-is from the model, so hold the bound here.
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
