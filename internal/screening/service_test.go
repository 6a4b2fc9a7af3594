package screening

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlabs-ai/resume-screener/internal/common"
	"github.com/devlabs-ai/resume-screener/internal/entity"
	"github.com/devlabs-ai/resume-screener/internal/extract"
	"github.com/devlabs-ai/resume-screener/internal/repository"
)

// fakeExtractor maps file base names to canned text or errors.
type fakeExtractor struct {
	texts map[string]string
	errs  map[string]error
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	base := filepath.Base(path)
	if err, ok := f.errs[base]; ok {
		return extract.TextExtractionResult{}, err
	}
	return extract.TextExtractionResult{Text: f.texts[base], Pages: 1, Method: "pdf-text"}, nil
}

type memJobs struct {
	jobs map[string]*entity.Job
}

func (m *memJobs) Create(_ context.Context, id, title, description string) (*entity.Job, error) {
	j := &entity.Job{ID: id, Title: title, Description: description}
	m.jobs[id] = j
	return j, nil
}

func (m *memJobs) Get(_ context.Context, id string) (*entity.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	return j, nil
}

func (m *memJobs) List(_ context.Context) ([]*entity.Job, error) { return nil, nil }

func (m *memJobs) UpdateDescription(_ context.Context, id, description string) (*entity.Job, error) {
	j, err := m.Get(context.Background(), id)
	if err != nil {
		return nil, err
	}
	j.Description = description
	return j, nil
}

type memCandidates struct {
	inserted  []*entity.Candidate
	insertErr error
}

func (m *memCandidates) Insert(_ context.Context, c *entity.Candidate) (*entity.Candidate, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	m.inserted = append(m.inserted, c)
	return c, nil
}

func (m *memCandidates) ListRanked(_ context.Context, _ string) ([]*entity.Candidate, error) {
	return m.inserted, nil
}

func (m *memCandidates) StatsForJob(_ context.Context, _ string) (repository.JobStats, error) {
	return repository.JobStats{}, nil
}

func newTestScreener(ex *fakeExtractor, jobs *memJobs, cands *memCandidates, replies []string) *Screener {
	fc := &fakeCompleter{replies: replies}
	return NewScreener(discardLogger(), ex, NewAnalyzer(fc, discardLogger()), jobs, cands)
}

func TestScreenFile(t *testing.T) {
	ex := &fakeExtractor{texts: map[string]string{"jane.pdf": "Jane Doe\n\nGo engineer,\t8 years"}}
	jobs := &memJobs{jobs: map[string]*entity.Job{}}
	cands := &memCandidates{}
	s := newTestScreener(ex, jobs, cands, []string{goodAnalysisReply()})

	job := &entity.Job{ID: "backend-2026", Description: "Senior Go engineer"}
	cand, warnings, err := s.ScreenFile(context.Background(), job, "/resumes/jane.pdf")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "Jane Doe", cand.Name)
	assert.Equal(t, "backend-2026", cand.JobID)
	assert.Equal(t, 87, cand.WeightedScore)
	assert.Equal(t, "Shortlisted", cand.Status)
	assert.Equal(t, "jane.pdf", cand.SourceFile)
	require.Len(t, cands.inserted, 1)
}

func TestScreenFileStoresClampedScores(t *testing.T) {
	// Out-of-range sub-scores from the model must not fail the insert; they
	// clamp during reconciliation and the resume is stored.
	reply := `{"name":"Jane Doe","email":"jane@example.com","experience_years":8,"skills_match_score":150,"education_score":80,"summary":"` + goodSummary + `"}`
	ex := &fakeExtractor{texts: map[string]string{"jane.pdf": "Jane Doe, Go engineer"}}
	jobs := &memJobs{jobs: map[string]*entity.Job{}}
	cands := &memCandidates{}
	s := newTestScreener(ex, jobs, cands, []string{reply})

	job := &entity.Job{ID: "backend-2026", Description: "Senior Go engineer"}
	cand, _, err := s.ScreenFile(context.Background(), job, "/resumes/jane.pdf")
	require.NoError(t, err)

	assert.Equal(t, 100, cand.SkillsScore)
	assert.Equal(t, 94, cand.WeightedScore)
	require.Len(t, cands.inserted, 1)
}

func TestScreenFileNoText(t *testing.T) {
	ex := &fakeExtractor{texts: map[string]string{"scan.pdf": "   \n\t "}}
	jobs := &memJobs{jobs: map[string]*entity.Job{}}
	cands := &memCandidates{}
	s := newTestScreener(ex, jobs, cands, nil)

	job := &entity.Job{ID: "backend-2026", Description: "Senior Go engineer"}
	_, _, err := s.ScreenFile(context.Background(), job, "/resumes/scan.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoExtractableText)
	assert.Empty(t, cands.inserted, "no model call or insert for empty documents")
}

func TestScreenFilePersistError(t *testing.T) {
	ex := &fakeExtractor{texts: map[string]string{"jane.pdf": "Jane Doe, Go engineer"}}
	jobs := &memJobs{jobs: map[string]*entity.Job{}}
	cands := &memCandidates{insertErr: errors.New("disk full")}
	s := newTestScreener(ex, jobs, cands, []string{goodAnalysisReply()})

	job := &entity.Job{ID: "backend-2026", Description: "Senior Go engineer"}
	_, _, err := s.ScreenFile(context.Background(), job, "/resumes/jane.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist candidate")
}

func TestScreenDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.PDF", "scan.pdf", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	ex := &fakeExtractor{
		texts: map[string]string{
			"a.pdf":    "Jane Doe, Go engineer, 8 years",
			"b.PDF":    "John Roe, Java engineer, 3 years",
			"scan.pdf": "",
		},
	}
	jobs := &memJobs{jobs: map[string]*entity.Job{
		"backend-2026": {ID: "backend-2026", Description: "Senior Go engineer"},
	}}
	cands := &memCandidates{}
	// Two screened resumes, one analysis reply each.
	s := newTestScreener(ex, jobs, cands, []string{goodAnalysisReply(), goodAnalysisReply()})

	summary, err := s.ScreenDirectory(context.Background(), "backend-2026", dir)
	require.NoError(t, err)

	assert.Equal(t, "backend-2026", summary.JobID)
	assert.Len(t, summary.Screened, 2)
	require.Len(t, summary.Skipped, 1)
	assert.Contains(t, summary.Skipped["scan.pdf"], "no extractable text")
	assert.Len(t, cands.inserted, 2)
}

func TestScreenDirectoryUnknownJob(t *testing.T) {
	jobs := &memJobs{jobs: map[string]*entity.Job{}}
	s := newTestScreener(&fakeExtractor{}, jobs, &memCandidates{}, nil)

	_, err := s.ScreenDirectory(context.Background(), "missing", t.TempDir())
	require.Error(t, err)
}

func TestScreenDirectoryExtractErrorRecorded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("x"), 0o644))

	ex := &fakeExtractor{errs: map[string]error{"broken.pdf": errors.New("malformed xref table")}}
	jobs := &memJobs{jobs: map[string]*entity.Job{
		"backend-2026": {ID: "backend-2026", Description: "Senior Go engineer"},
	}}
	cands := &memCandidates{}
	s := newTestScreener(ex, jobs, cands, nil)

	summary, err := s.ScreenDirectory(context.Background(), "backend-2026", dir)
	require.NoError(t, err)
	assert.Empty(t, summary.Screened)
	require.Len(t, summary.Skipped, 1)
	assert.Contains(t, summary.Skipped["broken.pdf"], "malformed xref table")
}
