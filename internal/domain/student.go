package domain

// Student is a master record keyed by registration number. ODLeaveCount
// is the cumulative number of on-duty days granted to the student; it is
// mutated only by leave accrual and never decreases.
type Student struct {
	RegNo        string `json:"reg_no"`
	Name         string `json:"name"`
	AcademicYear int    `json:"academic_year"`
	Branch       string `json:"branch"`
	Section      string `json:"section"`
	Department   string `json:"department"`
	ODLeaveCount int    `json:"od_leave_count"`
}
