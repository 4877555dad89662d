package model

// Requirement is the structured extraction of one free-text student
// utterance. It lives only for the duration of a single chat request and is
// never persisted.
type Requirement struct {
	Fields   []string `json:"fields"`
	Keywords []string `json:"keywords"`
	Features []string `json:"features"`
	Skills   []string `json:"skills"`
}

// IsEmpty reports whether the extraction carried no signal at all.
func (r *Requirement) IsEmpty() bool {
	if r == nil {
		return true
	}
	return len(r.Fields) == 0 && len(r.Keywords) == 0 && len(r.Features) == 0 && len(r.Skills) == 0
}

// HasRankingSignal reports whether the requirement is enough to run the
// scoring call. Features alone only count when featuresTrigger is set.
func (r *Requirement) HasRankingSignal(featuresTrigger bool) bool {
	if r == nil {
		return false
	}
	if len(r.Fields) > 0 || len(r.Keywords) > 0 || len(r.Skills) > 0 {
		return true
	}
	return featuresTrigger && len(r.Features) > 0
}

// ScoredProject pairs a project id with the 0-10 score and rationale the
// ranker reported for it. Ephemeral, produced for one matching call only.
type ScoredProject struct {
	ID        uint    `json:"id"`
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}
