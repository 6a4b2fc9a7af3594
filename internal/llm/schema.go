package llm

// BuildAnalysisJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the shape the analysis call must produce. Used as a
// soft check on parsed output: violations become diagnostics, not failures.
func BuildAnalysisJSONSchema() map[string]any {
	props := map[string]any{
		"name":               map[string]any{"type": "string", "minLength": 1},
		"email":              map[string]any{"type": "string", "minLength": 1},
		"experience_years":   map[string]any{"type": "integer", "minimum": 0},
		"skills_match_score": scoreProp(),
		"education_score":    scoreProp(),
		"summary":            map[string]any{"type": "string", "minLength": 1},
	}
	required := []string{"name", "email", "experience_years", "skills_match_score", "education_score", "summary"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func scoreProp() map[string]any {
	return map[string]any{
		"type":    "integer",
		"minimum": 0,
		"maximum": 100,
	}
}
