package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devlabs-ai/resume-screener/constants"
	"github.com/devlabs-ai/resume-screener/internal/llm"
)

func fields(skills, years, education int) *llm.CandidateFields {
	return &llm.CandidateFields{
		SkillsMatchScore: skills,
		ExperienceYears:  years,
		EducationScore:   education,
	}
}

func TestWeightedScore(t *testing.T) {
	tests := []struct {
		name       string
		skills     int
		years      int
		education  int
		want       int
		wantStatus constants.ScreeningStatus
	}{
		{"strong candidate", 90, 3, 80, 77, constants.StatusShortlisted},
		{"all defaults", 50, 0, 50, 40, constants.StatusRejected},
		{"exactly at threshold", 100, 0, 0, 70, constants.StatusShortlisted},
		{"just under threshold", 99, 0, 0, 69, constants.StatusRejected},
		{"zero everything", 0, 0, 0, 0, constants.StatusRejected},
		{"perfect candidate", 100, 10, 100, 100, constants.StatusShortlisted},
		{"fractional truncated", 85, 4, 60, 73, constants.StatusShortlisted},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WeightedScore(fields(tc.skills, tc.years, tc.education))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantStatus, constants.StatusFor(got))
		})
	}
}

func TestWeightedScoreExperienceCap(t *testing.T) {
	// Ten years saturates the experience component; more adds nothing.
	at := WeightedScore(fields(80, 10, 60))
	above := WeightedScore(fields(80, 25, 60))
	assert.Equal(t, at, above)

	below := WeightedScore(fields(80, 9, 60))
	assert.Less(t, below, at)
}

func TestWeightedScoreMonotonicInSkills(t *testing.T) {
	prev := -1
	for skills := 0; skills <= 100; skills += 10 {
		got := WeightedScore(fields(skills, 5, 50))
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestWeightedScoreNilFields(t *testing.T) {
	assert.Equal(t, 0, WeightedScore(nil))
}

func TestWeightedScoreClampsOutOfRange(t *testing.T) {
	// The model can return sub-scores outside 0-100; the result stays bounded.
	assert.Equal(t, 100, WeightedScore(fields(150, 10, 120)))
	assert.Equal(t, 0, WeightedScore(fields(-50, 0, -10)))
}
