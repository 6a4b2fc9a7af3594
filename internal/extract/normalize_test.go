package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlabs-ai/resume-screener/internal/common"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "Jane Doe", "Jane Doe"},
		{"collapses spaces", "Jane    Doe", "Jane Doe"},
		{"collapses tabs and newlines", "Jane\t\tDoe\n\nSenior\tEngineer", "Jane Doe Senior Engineer"},
		{"trims leading and trailing", "  \n Jane Doe \t ", "Jane Doe"},
		{"mixed whitespace runs", "a \r\n b\t\t c", "a b c"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t\r\n "} {
		got, err := Normalize(in)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrNoExtractableText)
		assert.Empty(t, got)
	}
}
