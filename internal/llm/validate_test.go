package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAnalysisObject() map[string]any {
	return map[string]any{
		"name":               "Jane Doe",
		"email":              "jane@example.com",
		"experience_years":   6,
		"skills_match_score": 85,
		"education_score":    70,
		"summary":            "Strong match for the role.",
	}
}

func TestValidateAgainstSchemaValid(t *testing.T) {
	err := ValidateAgainstSchema(BuildAnalysisJSONSchema(), validAnalysisObject())
	require.NoError(t, err)
}

func TestValidateAgainstSchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{"missing required key", func(m map[string]any) { delete(m, "summary") }},
		{"score above range", func(m map[string]any) { m["skills_match_score"] = 120 }},
		{"negative experience", func(m map[string]any) { m["experience_years"] = -1 }},
		{"wrong type", func(m map[string]any) { m["name"] = 42 }},
		{"unexpected key", func(m map[string]any) { m["hobby"] = "chess" }},
		{"empty string", func(m map[string]any) { m["email"] = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := validAnalysisObject()
			tc.mutate(m)
			assert.Error(t, ValidateAgainstSchema(BuildAnalysisJSONSchema(), m))
		})
	}
}

func TestValidateAgainstSchemaEmptyObject(t *testing.T) {
	assert.Error(t, ValidateAgainstSchema(BuildAnalysisJSONSchema(), map[string]any{}))
}
