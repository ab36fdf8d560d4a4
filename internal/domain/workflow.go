package domain

// Approval workflow sequence:
//
//	SUBMITTED                 → Faculty Coordinator approves → PENDING_WELFARE_APPROVAL
//	PENDING_WELFARE_APPROVAL  → Student Welfare approves     → PENDING_HOD_APPROVAL
//	PENDING_HOD_APPROVAL      → HOD approves                 → APPROVED
//
// REJECTED is reachable from any of the three pending statuses; each role
// may only reject at its own stage, except Admin who may reject at any
// non-terminal stage. APPROVED and REJECTED are terminal.

// approvalStage maps an approver role to the status its approval acts on
// and the status it advances to.
var approvalStage = map[Role]struct {
	requires RequestStatus
	next     RequestStatus
}{
	RoleEventCoordinator: {StatusSubmitted, StatusPendingWelfareApproval},
	RoleStudentWelfare:   {StatusPendingWelfareApproval, StatusPendingHODApproval},
	RoleHOD:              {StatusPendingHODApproval, StatusApproved},
}

// NextApprovalStatus validates that role may approve a request currently
// in status current and returns the resulting status. Roles outside the
// approval table get ErrPermissionDenied; a stage mismatch (including a
// terminal status) gets ErrInvalidStageTransition.
func NextApprovalStatus(role Role, current RequestStatus) (RequestStatus, error) {
	stage, ok := approvalStage[role]
	if !ok {
		return "", ErrPermissionDenied
	}
	if current != stage.requires {
		return "", ErrInvalidStageTransition
	}
	return stage.next, nil
}

// CanReject validates that role may reject a request currently in status
// current. Each approver may only reject at its own stage; Admin may
// reject at any non-terminal stage.
func CanReject(role Role, current RequestStatus) error {
	if current.IsTerminal() {
		return ErrInvalidStageTransition
	}
	if role == RoleAdmin {
		return nil
	}
	stage, ok := approvalStage[role]
	if !ok {
		return ErrPermissionDenied
	}
	if current != stage.requires {
		return ErrInvalidStageTransition
	}
	return nil
}
