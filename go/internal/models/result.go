package models

// Result is one competitor's row from the results sheet.
type Result struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Score is nil when the upstream cell does not hold an integer.
	Score *int `json:"score,omitempty"`
}

// HasScore reports whether the result carries a parsed score.
func (r Result) HasScore() bool {
	return r.Score != nil
}
