package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	p := BuildSystemPrompt()
	assert.Contains(t, p, "recruitment assistant")
	assert.Contains(t, p, "ONLY valid JSON")
}

func TestBuildAnalysisPrompt(t *testing.T) {
	p := BuildAnalysisPrompt("Senior Go engineer, 5+ years", "Jane Doe jane@example.com Go Kubernetes")

	assert.Contains(t, p, "Job Description: Senior Go engineer, 5+ years")
	assert.Contains(t, p, "Resume Text: Jane Doe jane@example.com Go Kubernetes")
	for _, field := range []string{
		`"name"`, `"email"`, `"experience_years"`, `"skills_match_score"`, `"education_score"`, `"summary"`,
	} {
		assert.Contains(t, p, field)
	}
	assert.Contains(t, p, "0-100")
	assert.Contains(t, p, "valid JSON")
}

func TestBuildSummaryPrompt(t *testing.T) {
	p := BuildSummaryPrompt("Platform team lead", "Jane Doe, 8 years infrastructure")

	assert.Contains(t, p, "Job Description: Platform team lead")
	assert.Contains(t, p, "Resume Text: Jane Doe, 8 years infrastructure")
	assert.Contains(t, p, "4-6 sentences")
	assert.Contains(t, p, "just the summary")
	assert.NotContains(t, p, "JSON")
}
