package domain

// Faculty is a master record for the class teacher in charge of one
// (branch, section) pair. The pair is the grouping key for the daily
// digest; the email doubles as the approver identity for display names.
type Faculty struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Branch  string `json:"branch"`
	Section string `json:"section"`
}
