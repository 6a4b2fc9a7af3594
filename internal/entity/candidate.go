package entity

import (
	"time"

	"github.com/google/uuid"
)

// Candidate represents one screened resume for data transfer between layers.
type Candidate struct {
	ID              uuid.UUID `json:"id"`
	JobID           string    `json:"job_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ExperienceYears int       `json:"experience_years"`
	SkillsScore     int       `json:"skills_match_score"`
	EducationScore  int       `json:"education_score"`
	Summary         string    `json:"summary"`
	WeightedScore   int       `json:"weighted_score"`
	Status          string    `json:"status"`
	SourceFile      string    `json:"source_file,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
