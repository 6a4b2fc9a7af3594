package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObjectDirect(t *testing.T) {
	obj, strategy := ExtractObject(`{"name": "Jane Doe", "experience_years": 5}`)
	assert.Equal(t, "direct", strategy)
	assert.Equal(t, "Jane Doe", obj["name"])
	assert.Equal(t, float64(5), obj["experience_years"])
}

func TestExtractObjectFencedJSON(t *testing.T) {
	raw := "Sure! Here is the analysis:\n```json\n{\"name\":\"Jane\"}\n```\nLet me know if you need anything else."
	obj, strategy := ExtractObject(raw)
	assert.Equal(t, "fenced-json", strategy)
	assert.Equal(t, "Jane", obj["name"])
}

func TestExtractObjectFencedEqualsUnfenced(t *testing.T) {
	payload := `{"name":"Jane","email":"jane@example.com","skills_match_score":80}`
	fenced, fs := ExtractObject("```json\n" + payload + "\n```")
	plain, ps := ExtractObject(payload)
	assert.Equal(t, "fenced-json", fs)
	assert.Equal(t, "direct", ps)
	assert.Equal(t, plain, fenced)
}

func TestExtractObjectBeforeUntaggedFence(t *testing.T) {
	raw := "{\"name\":\"Jane\"}\n```\nsome stray code block\n```"
	obj, strategy := ExtractObject(raw)
	assert.Equal(t, "fence-prefix", strategy)
	assert.Equal(t, "Jane", obj["name"])
}

func TestExtractObjectBraceSpanWithProse(t *testing.T) {
	raw := "The candidate looks strong. {\"name\":\"Jane\",\"education_score\":70} Hope this helps!"
	obj, strategy := ExtractObject(raw)
	assert.Equal(t, "brace-span", strategy)
	assert.Equal(t, "Jane", obj["name"])
	assert.Equal(t, float64(70), obj["education_score"])
}

func TestExtractObjectBraceSpanMultiline(t *testing.T) {
	raw := "Analysis below.\n{\n  \"name\": \"Jane\",\n  \"summary\": \"Solid profile\"\n}\nDone."
	obj, strategy := ExtractObject(raw)
	assert.Equal(t, "brace-span", strategy)
	assert.Equal(t, "Solid profile", obj["summary"])
}

func TestExtractObjectUnrecoverable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty input", ""},
		{"prose only", "I could not process this resume."},
		{"broken json everywhere", "```json\n{\"name\": \n```"},
		{"json array not object", `[1, 2, 3]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obj, strategy := ExtractObject(tc.raw)
			assert.Empty(t, strategy)
			require.NotNil(t, obj)
			assert.Empty(t, obj)
		})
	}
}

func TestExtractObjectFencePrefersTaggedBlock(t *testing.T) {
	// A ```json tag wins even when parseable text precedes the fence.
	raw := "{\"name\":\"Wrong\"}\n```json\n{\"name\":\"Right\"}\n```"
	obj, strategy := ExtractObject(raw)
	assert.Equal(t, "fenced-json", strategy)
	assert.Equal(t, "Right", obj["name"])
}
