package screening

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlabs-ai/resume-screener/constants"
	"github.com/devlabs-ai/resume-screener/internal/llm"
)

// fakeCompleter replays scripted replies (or errors) in order and records
// every request it sees.
type fakeCompleter struct {
	replies []string
	errs    []error
	calls   []llm.Request
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, req)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "", errors.New("unexpected call")
}

func (f *fakeCompleter) Name() string { return "fake" }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const goodSummary = "Jane is a seasoned backend engineer with eight years of Go and Kubernetes experience. She has led platform migrations and mentors junior engineers."

func goodAnalysisReply() string {
	return `{"name":"Jane Doe","email":"jane@example.com","experience_years":8,"skills_match_score":90,"education_score":80,"summary":"` + goodSummary + `"}`
}

func TestAnalyzeWellFormedResponse(t *testing.T) {
	fc := &fakeCompleter{replies: []string{goodAnalysisReply()}}
	a := NewAnalyzer(fc, discardLogger())

	res := a.Analyze(context.Background(), "resume text", "job description")

	require.Len(t, fc.calls, 1, "no repair call expected")
	assert.Equal(t, "Jane Doe", res.Fields.Name)
	assert.Equal(t, "jane@example.com", res.Fields.Email)
	assert.Equal(t, 8, res.Fields.ExperienceYears)
	assert.Equal(t, goodSummary, res.Fields.Summary)
	assert.Equal(t, 87, res.WeightedScore)
	assert.Equal(t, constants.StatusShortlisted, res.Status)
	assert.Equal(t, "fake", res.Backend)
	assert.Empty(t, res.Defaulted)
	assert.Empty(t, res.Warnings)
	assert.False(t, res.RepairApplied)
}

func TestAnalyzeRequestShape(t *testing.T) {
	fc := &fakeCompleter{replies: []string{goodAnalysisReply()}}
	a := NewAnalyzer(fc, discardLogger())

	a.Analyze(context.Background(), "resume text", "job description")

	require.Len(t, fc.calls, 1)
	req := fc.calls[0]
	require.Len(t, req.Messages, 2)
	assert.Equal(t, llm.RoleSystem, req.Messages[0].Role)
	assert.Equal(t, llm.RoleUser, req.Messages[1].Role)
	assert.Contains(t, req.Messages[1].Content, "job description")
	assert.Contains(t, req.Messages[1].Content, "resume text")
	assert.InDelta(t, llm.AnalysisTemperature, req.Temperature, 1e-9)
	assert.Equal(t, llm.AnalysisMaxTokens, req.MaxTokens)
	assert.True(t, req.JSONMode)
}

func TestAnalyzeMissingSummaryTriggersRepair(t *testing.T) {
	noSummary := `{"name":"Jane Doe","email":"jane@example.com","experience_years":8,"skills_match_score":90,"education_score":80}`
	fc := &fakeCompleter{replies: []string{noSummary, "  " + goodSummary + "\n"}}
	a := NewAnalyzer(fc, discardLogger())

	res := a.Analyze(context.Background(), "resume text", "job description")

	require.Len(t, fc.calls, 2)
	repair := fc.calls[1]
	require.Len(t, repair.Messages, 1)
	assert.Equal(t, llm.RoleUser, repair.Messages[0].Role)
	assert.InDelta(t, llm.RepairTemperature, repair.Temperature, 1e-9)
	assert.Equal(t, llm.RepairMaxTokens, repair.MaxTokens)
	assert.False(t, repair.JSONMode)

	assert.True(t, res.RepairApplied)
	assert.Equal(t, goodSummary, res.Fields.Summary)
	assert.Contains(t, res.Defaulted, "summary")
	// Scores are untouched by the repair pass.
	assert.Equal(t, 87, res.WeightedScore)
}

func TestAnalyzeShortSummaryTriggersRepair(t *testing.T) {
	short := `{"name":"Jane Doe","email":"jane@example.com","experience_years":8,"skills_match_score":90,"education_score":80,"summary":"Good fit."}`
	fc := &fakeCompleter{replies: []string{short, goodSummary}}
	a := NewAnalyzer(fc, discardLogger())

	res := a.Analyze(context.Background(), "resume text", "job description")

	require.Len(t, fc.calls, 2)
	assert.True(t, res.RepairApplied)
	assert.Equal(t, goodSummary, res.Fields.Summary)
	assert.NotContains(t, res.Defaulted, "summary")
}

func TestAnalyzeRepairFailureKeepsPriorSummary(t *testing.T) {
	short := `{"name":"Jane Doe","email":"jane@example.com","experience_years":8,"skills_match_score":90,"education_score":80,"summary":"Good fit."}`
	fc := &fakeCompleter{
		replies: []string{short, ""},
		errs:    []error{nil, errors.New("model unavailable")},
	}
	a := NewAnalyzer(fc, discardLogger())

	res := a.Analyze(context.Background(), "resume text", "job description")

	require.Len(t, fc.calls, 2)
	assert.False(t, res.RepairApplied)
	assert.Equal(t, "Good fit.", res.Fields.Summary)
}

func TestAnalyzeRepairEmptyReplyKeepsPriorSummary(t *testing.T) {
	short := `{"name":"Jane Doe","email":"jane@example.com","experience_years":8,"skills_match_score":90,"education_score":80,"summary":"Good fit."}`
	fc := &fakeCompleter{replies: []string{short, "   \n"}}
	a := NewAnalyzer(fc, discardLogger())

	res := a.Analyze(context.Background(), "resume text", "job description")

	assert.False(t, res.RepairApplied)
	assert.Equal(t, "Good fit.", res.Fields.Summary)
}

func TestAnalyzeBackendErrorDegradesToDefaults(t *testing.T) {
	fc := &fakeCompleter{
		errs:    []error{errors.New("connection refused")},
		replies: []string{"", goodSummary},
	}
	a := NewAnalyzer(fc, discardLogger())

	res := a.Analyze(context.Background(), "resume text", "job description")

	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "backend fake unavailable")
	assert.Equal(t, constants.DefaultName, res.Fields.Name)
	assert.Equal(t, constants.DefaultSkillsScore, res.Fields.SkillsMatchScore)
	// Empty-object content still reconciles, scores, and classifies.
	assert.Equal(t, 40, res.WeightedScore)
	assert.Equal(t, constants.StatusRejected, res.Status)
}

func TestAnalyzeFencedOutputRecovered(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"Here you go:\n```json\n" + goodAnalysisReply() + "\n```"}}
	a := NewAnalyzer(fc, discardLogger())

	res := a.Analyze(context.Background(), "resume text", "job description")

	assert.Equal(t, "Jane Doe", res.Fields.Name)
	assert.Equal(t, 87, res.WeightedScore)
	assert.Empty(t, res.Warnings)
}

func TestAnalyzeUnparseableOutputWarnsAndDefaults(t *testing.T) {
	fc := &fakeCompleter{replies: []string{"I cannot analyze this resume.", goodSummary}}
	a := NewAnalyzer(fc, discardLogger())

	res := a.Analyze(context.Background(), "resume text", "job description")

	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, strings.Join(res.Warnings, " "), "no recoverable JSON")
	assert.Equal(t, constants.DefaultName, res.Fields.Name)
	assert.True(t, res.RepairApplied)
	assert.Equal(t, goodSummary, res.Fields.Summary)
}
