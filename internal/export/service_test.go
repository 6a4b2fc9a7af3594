package export

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/devlabs-ai/resume-screener/internal/entity"
)

func TestBuildWorkbook(t *testing.T) {
	recs := []*entity.Candidate{
		{
			Name:            "Jane Doe",
			Email:           "jane@example.com",
			ExperienceYears: 8,
			SkillsScore:     90,
			EducationScore:  80,
			WeightedScore:   87,
			Status:          "Shortlisted",
			Summary:         "Strong backend engineer.",
			SourceFile:      "resumes/jane.pdf",
		},
		{
			Name:          "John Roe",
			Email:         "john@example.com",
			WeightedScore: 40,
			Status:        "Rejected",
			SourceFile:    "resumes/john.pdf",
		},
	}

	out, err := buildWorkbook(recs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Candidates")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Rank", rows[0][0])
	assert.Equal(t, "Weighted Score", rows[0][6])
	assert.Equal(t, "Source File", rows[0][9])

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Jane Doe", rows[1][1])
	assert.Equal(t, "87", rows[1][6])
	assert.Equal(t, "Shortlisted", rows[1][7])
	assert.Equal(t, "resumes/jane.pdf", rows[1][9])

	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "John Roe", rows[2][1])
	assert.Equal(t, "Rejected", rows[2][7])
}

func TestBuildWorkbookEmpty(t *testing.T) {
	out, err := buildWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Candidates")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "", truncate("", 10))

	long := strings.Repeat("a", 600)
	got := truncate(long, 500)
	assert.Len(t, []rune(got), 500)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestTruncateMultibyte(t *testing.T) {
	long := strings.Repeat("候補者は優秀です。", 80)
	got := truncate(long, 500)

	assert.True(t, utf8.ValidString(got), "cut must land on a rune boundary")
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Len(t, []rune(got), 500)
}
