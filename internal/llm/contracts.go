package llm

import "context"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries one chat-completion call. The model identifier lives in the
// backend's Config (set at construction), not on the request.
type Request struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
	// JSONMode asks the hosted backend for strict JSON output mode. The local
	// backend ignores it.
	JSONMode bool
}

// Completer is the interface the screening pipeline depends on. Implementations
// return the text content of the model's first response choice.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	// Name identifies the backend for diagnostics ("groq", "ollama").
	Name() string
}

// CandidateFields is the normalized shape we want from the LLM.
type CandidateFields struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	ExperienceYears  int    `json:"experience_years"`
	SkillsMatchScore int    `json:"skills_match_score"`
	EducationScore   int    `json:"education_score"`
	Summary          string `json:"summary"`
}

// Sampling parameters per call purpose.
const (
	AnalysisTemperature float32 = 0.2
	AnalysisMaxTokens           = 1024
	RepairTemperature   float32 = 0.4
	RepairMaxTokens             = 512
)
