package service

import "odms-backend/internal/domain"

// AccrualEntries computes the OD-day increments a fully approved request
// grants: every participant accrues the inclusive day span of the event.
// A non-positive span yields no entries; accrual is a no-op rather than
// an error.
func AccrualEntries(req *domain.EventRequest) []domain.LeaveAccrual {
	days := req.DurationDays()
	if days <= 0 {
		return nil
	}

	entries := make([]domain.LeaveAccrual, 0, len(req.Participants))
	for _, p := range req.Participants {
		entries = append(entries, domain.LeaveAccrual{RegNo: p.RegNo, Days: days})
	}
	return entries
}
