package domain

import "time"

type RequestStatus string

const (
	StatusSubmitted              RequestStatus = "SUBMITTED"
	StatusPendingWelfareApproval RequestStatus = "PENDING_WELFARE_APPROVAL"
	StatusPendingHODApproval     RequestStatus = "PENDING_HOD_APPROVAL"
	StatusApproved               RequestStatus = "APPROVED"
	StatusRejected               RequestStatus = "REJECTED"
)

// IsTerminal reports whether no further transitions are possible.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Description returns the dashboard label for a status.
func (s RequestStatus) Description() string {
	switch s {
	case StatusSubmitted:
		return "Pending Faculty Coordinator Approval (Step 1 of 3)"
	case StatusPendingWelfareApproval:
		return "Pending Student Welfare Approval (Step 2 of 3)"
	case StatusPendingHODApproval:
		return "Pending HOD Approval (Step 3 of 3)"
	case StatusApproved:
		return "Fully Approved"
	case StatusRejected:
		return "Rejected"
	}
	return "Unknown"
}

// NextApprover returns the display name of the role whose approval a
// request in this status is waiting on.
func (s RequestStatus) NextApprover() string {
	switch s {
	case StatusSubmitted:
		return "Faculty Coordinator"
	case StatusPendingWelfareApproval:
		return "Student Welfare"
	case StatusPendingHODApproval:
		return "Head of Department"
	}
	return "None"
}

// Stage returns the workflow stage number (1-3), 4 for approved and 0
// for rejected.
func (s RequestStatus) Stage() int {
	switch s {
	case StatusSubmitted:
		return 1
	case StatusPendingWelfareApproval:
		return 2
	case StatusPendingHODApproval:
		return 3
	case StatusApproved:
		return 4
	}
	return 0
}

type AuditAction string

const (
	ActionApproved AuditAction = "APPROVED"
	ActionRejected AuditAction = "REJECTED"
)

// EventRequest is an on-duty leave request for an event. Participants are
// owned by the request; History is append-only in chronological order.
type EventRequest struct {
	ID              int64         `json:"id"`
	EventName       string        `json:"event_name"`
	OrganizerEmail  string        `json:"organizer_email,omitempty"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	FromTime        string        `json:"from_time"`
	ToTime          string        `json:"to_time"`
	Status          RequestStatus `json:"status"`
	ApprovedDate    *time.Time    `json:"approved_date,omitempty"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	Hidden          bool          `json:"hidden"`
	Participants    []Participant `json:"participants"`
	History         []AuditEntry  `json:"history,omitempty"`
	CreatedOn       time.Time     `json:"created_on"`
	UpdatedOn       time.Time     `json:"updated_on"`
}

// DurationDays is the inclusive day span of the event. A request from
// March 1st to March 3rd spans 3 days; startDate == endDate spans 1.
func (r *EventRequest) DurationDays() int {
	start := r.StartDate.Truncate(24 * time.Hour)
	end := r.EndDate.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}

// Participant is a student named on a request. It holds a non-owning
// back-reference to its request; its lifecycle is bound to the request.
type Participant struct {
	ID           int64  `json:"id"`
	RequestID    int64  `json:"request_id"`
	RegNo        string `json:"reg_no"`
	Name         string `json:"name"`
	AcademicYear int    `json:"academic_year"`
	Branch       string `json:"branch"`
	Section      string `json:"section"`
	Department   string `json:"department"`
}

// AuditEntry records one workflow transition. Entries are created once
// per transition and never mutated or deleted.
type AuditEntry struct {
	ID         int64         `json:"id"`
	RequestID  int64         `json:"request_id"`
	ActorRole  Role          `json:"actor_role"`
	ActorEmail string        `json:"actor_email"`
	ActorName  string        `json:"actor_name"`
	FromStatus RequestStatus `json:"from_status"`
	ToStatus   RequestStatus `json:"to_status"`
	Action     AuditAction   `json:"action"`
	Comment    string        `json:"comment,omitempty"`
	CreatedOn  time.Time     `json:"created_on"`
}

// LeaveAccrual is one participant's share of an approved request: the
// student's OD-day counter is incremented by Days.
type LeaveAccrual struct {
	RegNo string
	Days  int
}

// Transition is the atomic unit a request transition commits as: the
// guarded status change, the audit entry, and any accrual increments.
// Either all of it is persisted or none of it is.
type Transition struct {
	RequestID       int64
	From            RequestStatus
	To              RequestStatus
	ApprovedDate    *time.Time
	RejectionReason string
	Entry           AuditEntry
	Accruals        []LeaveAccrual
}
