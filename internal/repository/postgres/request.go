package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"odms-backend/internal/domain"
	"odms-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const requestColumns = `id, event_name, organizer_email, start_date, end_date, from_time, to_time, status, approved_date, rejection_reason, hidden, created_on, updated_on`

func (r *requestRepository) Create(ctx context.Context, req *domain.EventRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query := `INSERT INTO event_requests (event_name, organizer_email, start_date, end_date, from_time, to_time, status, approved_date, rejection_reason, hidden, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		req.EventName, req.OrganizerEmail, req.StartDate, req.EndDate, req.FromTime, req.ToTime,
		req.Status, req.ApprovedDate, req.RejectionReason, req.Hidden, now, now,
	).Scan(&req.ID)
	if err != nil {
		return err
	}

	for i := range req.Participants {
		p := &req.Participants[i]
		p.RequestID = req.ID
		err = tx.QueryRowContext(ctx,
			`INSERT INTO participants (request_id, reg_no, name, academic_year, branch, section, department)
			 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`,
			p.RequestID, p.RegNo, p.Name, p.AcademicYear, p.Branch, p.Section, p.Department,
		).Scan(&p.ID)
		if err != nil {
			return err
		}
	}

	req.CreatedOn = now
	req.UpdatedOn = now
	return tx.Commit()
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.EventRequest, error) {
	req := &domain.EventRequest{}
	query := `SELECT ` + requestColumns + ` FROM event_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.EventName, &req.OrganizerEmail, &req.StartDate, &req.EndDate, &req.FromTime, &req.ToTime,
		&req.Status, &req.ApprovedDate, &req.RejectionReason, &req.Hidden, &req.CreatedOn, &req.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRequestNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Participants, err = r.loadParticipants(ctx, id); err != nil {
		return nil, err
	}
	if req.History, err = r.loadHistory(ctx, id); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) loadParticipants(ctx context.Context, requestID int64) ([]domain.Participant, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, request_id, reg_no, name, academic_year, branch, section, department
		 FROM participants WHERE request_id = $1 ORDER BY id`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.ID, &p.RequestID, &p.RegNo, &p.Name, &p.AcademicYear, &p.Branch, &p.Section, &p.Department); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *requestRepository) loadHistory(ctx context.Context, requestID int64) ([]domain.AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, request_id, actor_role, actor_email, actor_name, from_status, to_status, action, comment, created_on
		 FROM approval_history WHERE request_id = $1 ORDER BY created_on, id`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.RequestID, &e.ActorRole, &e.ActorEmail, &e.ActorName, &e.FromStatus, &e.ToStatus, &e.Action, &e.Comment, &e.CreatedOn); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

func (r *requestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.EventRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM event_requests WHERE status = $1 AND hidden = false ORDER BY created_on, id`
	return r.list(ctx, query, status)
}

func (r *requestRepository) ListApprovedOn(ctx context.Context, day time.Time) ([]domain.EventRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM event_requests WHERE status = $1 AND hidden = false AND approved_date = $2 ORDER BY created_on, id`
	return r.list(ctx, query, domain.StatusApproved, day.Truncate(24*time.Hour))
}

func (r *requestRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.EventRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.EventRequest
	for rows.Next() {
		var req domain.EventRequest
		if err := rows.Scan(&req.ID, &req.EventName, &req.OrganizerEmail, &req.StartDate, &req.EndDate, &req.FromTime, &req.ToTime,
			&req.Status, &req.ApprovedDate, &req.RejectionReason, &req.Hidden, &req.CreatedOn, &req.UpdatedOn); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range requests {
		if requests[i].Participants, err = r.loadParticipants(ctx, requests[i].ID); err != nil {
			return nil, err
		}
	}
	return requests, nil
}

// Transition commits the status change, the audit entry and the accrual
// increments as one transaction. The status update is guarded by the
// expected current status, so two concurrent approvers cannot both move
// the same request out of the same source state: the loser matches no
// row and the whole transaction rolls back.
func (r *requestRepository) Transition(ctx context.Context, t *domain.Transition) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE event_requests SET status = $1, approved_date = COALESCE($2, approved_date), rejection_reason = $3, updated_on = $4
		 WHERE id = $5 AND status = $6`,
		t.To, t.ApprovedDate, t.RejectionReason, time.Now(), t.RequestID, t.From)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvalidStageTransition
	}

	e := &t.Entry
	_, err = tx.ExecContext(ctx,
		`INSERT INTO approval_history (request_id, actor_role, actor_email, actor_name, from_status, to_status, action, comment, created_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.RequestID, e.ActorRole, e.ActorEmail, e.ActorName, e.FromStatus, e.ToStatus, e.Action, e.Comment, e.CreatedOn)
	if err != nil {
		return err
	}

	// Accrual is best effort per participant: a reg-no with no master
	// record matches no row and is skipped without failing the transition.
	for _, a := range t.Accruals {
		_, err = tx.ExecContext(ctx,
			`UPDATE student_master SET od_leave_count = od_leave_count + $1 WHERE registration_number = $2`,
			a.Days, a.RegNo)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
