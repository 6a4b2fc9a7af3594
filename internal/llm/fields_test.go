package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlabs-ai/resume-screener/constants"
)

func completeObject() map[string]any {
	return map[string]any{
		"name":               "Jane Doe",
		"email":              "jane@example.com",
		"experience_years":   float64(6),
		"skills_match_score": float64(85),
		"education_score":    float64(70),
		"summary":            strings.Repeat("Strong candidate. ", 10),
	}
}

func TestReconcileFieldsCompleteObjectUnaltered(t *testing.T) {
	m := completeObject()
	f, defaulted := ReconcileFields(m)

	assert.Empty(t, defaulted)
	assert.Equal(t, "Jane Doe", f.Name)
	assert.Equal(t, "jane@example.com", f.Email)
	assert.Equal(t, 6, f.ExperienceYears)
	assert.Equal(t, 85, f.SkillsMatchScore)
	assert.Equal(t, 70, f.EducationScore)
	assert.Equal(t, m["summary"], f.Summary)
}

func TestReconcileFieldsEmptyObject(t *testing.T) {
	f, defaulted := ReconcileFields(map[string]any{})

	assert.ElementsMatch(t, []string{
		"name", "email", "experience_years", "skills_match_score", "education_score", "summary",
	}, defaulted)
	assert.Equal(t, constants.DefaultName, f.Name)
	assert.Equal(t, constants.DefaultEmail, f.Email)
	assert.Equal(t, constants.DefaultExperience, f.ExperienceYears)
	assert.Equal(t, constants.DefaultSkillsScore, f.SkillsMatchScore)
	assert.Equal(t, constants.DefaultEducationScore, f.EducationScore)
	assert.Equal(t, constants.PlaceholderSummary, f.Summary)
}

func TestReconcileFieldsPartial(t *testing.T) {
	m := completeObject()
	delete(m, "summary")
	delete(m, "email")

	f, defaulted := ReconcileFields(m)
	assert.ElementsMatch(t, []string{"email", "summary"}, defaulted)
	assert.Equal(t, constants.DefaultEmail, f.Email)
	assert.Equal(t, constants.PlaceholderSummary, f.Summary)
	assert.Equal(t, "Jane Doe", f.Name)
}

func TestReconcileFieldsBadTypes(t *testing.T) {
	m := map[string]any{
		"name":               42,
		"email":              "",
		"experience_years":   "six",
		"skills_match_score": float64(-5),
		"education_score":    nil,
		"summary":            []any{"not", "a", "string"},
	}
	f, defaulted := ReconcileFields(m)

	assert.Len(t, defaulted, 6)
	assert.Equal(t, constants.DefaultName, f.Name)
	assert.Equal(t, constants.DefaultEmail, f.Email)
	assert.Equal(t, constants.DefaultExperience, f.ExperienceYears)
	assert.Equal(t, constants.DefaultSkillsScore, f.SkillsMatchScore)
	assert.Equal(t, constants.DefaultEducationScore, f.EducationScore)
	assert.Equal(t, constants.PlaceholderSummary, f.Summary)
}

func TestReconcileFieldsClampsExcessScores(t *testing.T) {
	m := completeObject()
	m["skills_match_score"] = float64(150)
	m["education_score"] = float64(1000)

	f, defaulted := ReconcileFields(m)
	assert.Empty(t, defaulted, "clamping is a coercion, not a default")
	assert.Equal(t, 100, f.SkillsMatchScore)
	assert.Equal(t, 100, f.EducationScore)
}

func TestReconcileFieldsTruncatesFractional(t *testing.T) {
	f, defaulted := ReconcileFields(map[string]any{"experience_years": 4.9})
	require.NotContains(t, defaulted, "experience_years")
	assert.Equal(t, 4, f.ExperienceYears)
}

func TestReconcileFieldsIdempotent(t *testing.T) {
	// Running the reconciled values back through changes nothing further.
	f1, _ := ReconcileFields(map[string]any{"name": "Jane Doe"})
	f2, _ := ReconcileFields(map[string]any{
		"name":               f1.Name,
		"email":              f1.Email,
		"experience_years":   float64(f1.ExperienceYears),
		"skills_match_score": float64(f1.SkillsMatchScore),
		"education_score":    float64(f1.EducationScore),
		"summary":            f1.Summary,
	})
	assert.Equal(t, f1, f2)
}

func TestSummaryNeedsRepair(t *testing.T) {
	long := strings.Repeat("Seasoned engineer with cloud experience. ", 5)
	require.GreaterOrEqual(t, len(long), constants.MinSummaryLength)

	assert.True(t, SummaryNeedsRepair(constants.PlaceholderSummary))
	assert.True(t, SummaryNeedsRepair("Too short."))
	assert.True(t, SummaryNeedsRepair(""))
	assert.False(t, SummaryNeedsRepair(long))
}

func TestSummaryNeedsRepairCountsCharacters(t *testing.T) {
	// 60 characters but well over 100 bytes.
	short := strings.Repeat("優", 60)
	require.Greater(t, len(short), constants.MinSummaryLength)
	assert.True(t, SummaryNeedsRepair(short))

	assert.False(t, SummaryNeedsRepair(strings.Repeat("優", constants.MinSummaryLength)))
}
