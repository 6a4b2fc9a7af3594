package constants

// ScreeningStatus is the canonical decision for rows in candidates.
type ScreeningStatus string

// Stable values (store these exact strings in DB).
const (
	StatusShortlisted ScreeningStatus = "Shortlisted"
	StatusRejected    ScreeningStatus = "Rejected"
)

// ShortlistThreshold is the minimum weighted score for a shortlist decision.
const ShortlistThreshold = 70

// StatusFor derives the screening decision from a weighted score.
func StatusFor(weightedScore int) ScreeningStatus {
	if weightedScore >= ShortlistThreshold {
		return StatusShortlisted
	}
	return StatusRejected
}
