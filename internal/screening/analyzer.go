package screening

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devlabs-ai/resume-screener/constants"
	"github.com/devlabs-ai/resume-screener/internal/llm"
)

// Analysis is the fully reconciled result of one screening pass. Every
// LLM-sourced field is populated after reconciliation; Warnings carries the
// soft diagnostics the caller may surface per resume.
type Analysis struct {
	Fields        llm.CandidateFields
	WeightedScore int
	Status        constants.ScreeningStatus
	Backend       string
	Defaulted     []string
	Warnings      []string
	RepairApplied bool
}

// Analyzer runs the resume-vs-job analysis pipeline: one analysis call, layered
// JSON recovery, field reconciliation, and at most one summary-repair call.
// It holds no state across resumes.
type Analyzer struct {
	completer llm.Completer
	logger    *slog.Logger
}

func NewAnalyzer(completer llm.Completer, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{completer: completer, logger: logger}
}

// Analyze screens one resume against a job description. Preconditions:
// resumeText is already normalized and non-empty. Every failure inside is
// absorbed into a degraded-but-valid result; Analyze itself never fails.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) Analysis {
	rid := uuid.New().String()
	start := time.Now()

	a.logger.Info("llm.analyze.start",
		"req_id", rid,
		"backend", a.completer.Name(),
		"resume_chars", len(resumeText),
		"jd_chars", len(jobDescription),
	)

	var warnings []string

	content, err := a.completer.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: llm.BuildSystemPrompt()},
			{Role: llm.RoleUser, Content: llm.BuildAnalysisPrompt(jobDescription, resumeText)},
		},
		Temperature: llm.AnalysisTemperature,
		MaxTokens:   llm.AnalysisMaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		// Degrade-to-defaults: a dead backend yields an empty object so the
		// reconciler can still produce a ranked (low-confidence) result.
		a.logger.Warn("llm.analyze.backend_error", "req_id", rid, "backend", a.completer.Name(), "error", err)
		warnings = append(warnings, fmt.Sprintf("backend %s unavailable: %v", a.completer.Name(), err))
		content = "{}"
	}

	obj, strategy := llm.ExtractObject(content)
	if strategy == "" {
		a.logger.Warn("llm.analyze.parse_failure", "req_id", rid, "content_len", len(content))
		warnings = append(warnings, "model output contained no recoverable JSON object")
	} else {
		a.logger.Debug("llm.analyze.parsed", "req_id", rid, "strategy", strategy, "keys", len(obj))
	}

	if verr := llm.ValidateAgainstSchema(llm.BuildAnalysisJSONSchema(), obj); verr != nil && strategy != "" {
		a.logger.Warn("llm.analyze.schema_mismatch", "req_id", rid, "error", verr)
	}

	fields, defaulted := llm.ReconcileFields(obj)
	if len(defaulted) > 0 {
		a.logger.Warn("llm.analyze.defaults_applied", "req_id", rid, "fields", defaulted)
	}

	repaired := false
	if llm.SummaryNeedsRepair(fields.Summary) {
		fields.Summary, repaired = a.repairSummary(ctx, rid, resumeText, jobDescription, fields.Summary)
	}

	weighted := WeightedScore(&fields)
	status := constants.StatusFor(weighted)

	a.logger.Info("llm.analyze.ok",
		"req_id", rid,
		"backend", a.completer.Name(),
		"name", fields.Name,
		"weighted_score", weighted,
		"status", string(status),
		"defaulted", len(defaulted),
		"repaired", repaired,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return Analysis{
		Fields:        fields,
		WeightedScore: weighted,
		Status:        status,
		Backend:       a.completer.Name(),
		Defaulted:     defaulted,
		Warnings:      warnings,
		RepairApplied: repaired,
	}
}

// repairSummary runs the best-effort second pass. Any failure keeps the prior
// summary; this step never affects the overall result beyond the summary text.
func (a *Analyzer) repairSummary(ctx context.Context, rid, resumeText, jobDescription, prior string) (string, bool) {
	a.logger.Info("llm.analyze.repair_start", "req_id", rid, "summary_len", len(prior))

	reply, err := a.completer.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: llm.BuildSummaryPrompt(jobDescription, resumeText)},
		},
		Temperature: llm.RepairTemperature,
		MaxTokens:   llm.RepairMaxTokens,
	})
	if err != nil {
		a.logger.Warn("llm.analyze.repair_error", "req_id", rid, "error", err)
		return prior, false
	}

	replacement := strings.TrimSpace(reply)
	if replacement == "" {
		a.logger.Warn("llm.analyze.repair_empty", "req_id", rid)
		return prior, false
	}
	return replacement, true
}
