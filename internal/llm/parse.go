package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Models wrap JSON in markdown fences or surround it with prose. Recovery is an
// ordered list of extraction strategies; the first candidate that parses as a
// JSON object wins, and exhaustion yields an empty object, never an error.

var reBraceSpan = regexp.MustCompile(`(?s)\{.*\}`)

type extractStrategy struct {
	name      string
	candidate func(raw string) (string, bool)
}

var extractStrategies = []extractStrategy{
	{"fenced-json", fencedJSONBlock},
	{"fence-prefix", beforeFirstFence},
	{"direct", func(raw string) (string, bool) { return strings.TrimSpace(raw), true }},
	{"brace-span", firstBraceSpan},
}

// ExtractObject recovers a single JSON object from raw model output. It returns
// the parsed object and the name of the strategy that produced it; when nothing
// parses, it returns an empty object and "".
func ExtractObject(raw string) (map[string]any, string) {
	for _, s := range extractStrategies {
		candidate, ok := s.candidate(raw)
		if !ok {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(candidate), &m); err == nil && m != nil {
			return m, s.name
		}
	}
	return map[string]any{}, ""
}

// fencedJSONBlock extracts the content of the first ```json fence pair.
func fencedJSONBlock(raw string) (string, bool) {
	_, after, found := strings.Cut(raw, "```json")
	if !found {
		return "", false
	}
	content, _, _ := strings.Cut(after, "```")
	return strings.TrimSpace(content), true
}

// beforeFirstFence handles untagged fences: the usable text is whatever
// precedes the first fence marker. Skipped when a ```json tag is present.
func beforeFirstFence(raw string) (string, bool) {
	if strings.Contains(raw, "```json") || !strings.Contains(raw, "```") {
		return "", false
	}
	before, _, _ := strings.Cut(raw, "```")
	return strings.TrimSpace(before), true
}

// firstBraceSpan falls back to the first greedy brace-delimited span, matching
// across newlines.
func firstBraceSpan(raw string) (string, bool) {
	m := reBraceSpan.FindString(raw)
	if m == "" {
		return "", false
	}
	return m, true
}
