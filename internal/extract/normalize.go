package extract

import (
	"regexp"
	"strings"

	"github.com/devlabs-ai/resume-screener/internal/common"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Normalize collapses all whitespace runs (spaces, tabs, newlines) to a single
// space and trims the result. An empty result returns
// common.ErrNoExtractableText: the document had no selectable text and must not
// be sent to the model.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
	if s == "" {
		return "", common.ErrNoExtractableText
	}
	return s, nil
}
