package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"odms-backend/internal/domain"
	"odms-backend/internal/logger"
	"odms-backend/internal/repository"
)

type requestService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	facultyRepo repository.FacultyRepository
	emailSvc    EmailService
	urgentRegNo string
	now         func() time.Time
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	facultyRepo repository.FacultyRepository,
	emailSvc EmailService,
	urgentRegNo string,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		facultyRepo: facultyRepo,
		emailSvc:    emailSvc,
		urgentRegNo: urgentRegNo,
		now:         time.Now,
	}
}

// CreateRequest starts a request at SUBMITTED, unless a participant
// carries the configured urgent registration number. That participant is
// removed and the request is created directly as APPROVED and hidden,
// with no audit entries. The fast path skips every workflow stage.
func (s *requestService) CreateRequest(ctx context.Context, req *domain.EventRequest) (*domain.EventRequest, error) {
	urgent := false
	if s.urgentRegNo != "" {
		kept := req.Participants[:0]
		for _, p := range req.Participants {
			if p.RegNo == s.urgentRegNo {
				urgent = true
				continue
			}
			kept = append(kept, p)
		}
		req.Participants = kept
	}

	if urgent {
		logger.Warn("Urgent approval path triggered on request creation", "event", req.EventName)
		today := s.today()
		req.Status = domain.StatusApproved
		req.ApprovedDate = &today
		req.Hidden = true
	} else {
		req.Status = domain.StatusSubmitted
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	logger.Info("OD request created", "request_id", req.ID, "event", req.EventName, "status", req.Status)
	return req, nil
}

func (s *requestService) Approve(ctx context.Context, requestID int64, actorEmail string) (*domain.EventRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	actor, err := s.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrPermissionDenied
		}
		return nil, err
	}

	toStatus, err := domain.NextApprovalStatus(actor.Role, req.Status)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t := &domain.Transition{
		RequestID:       requestID,
		From:            req.Status,
		To:              toStatus,
		RejectionReason: req.RejectionReason,
		Entry: domain.AuditEntry{
			RequestID:  requestID,
			ActorRole:  actor.Role,
			ActorEmail: actorEmail,
			ActorName:  s.displayName(ctx, actorEmail, actor.Role),
			FromStatus: req.Status,
			ToStatus:   toStatus,
			Action:     domain.ActionApproved,
			CreatedOn:  now,
		},
	}

	// The HOD transition into APPROVED stamps the approval date and
	// accrues OD days to each participant, in the same transaction.
	if toStatus == domain.StatusApproved {
		today := s.today()
		t.ApprovedDate = &today
		t.Accruals = AccrualEntries(req)
	}

	if err := s.requestRepo.Transition(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("OD request approved", "request_id", requestID,
		"actor", actorEmail, "role", actor.Role, "from", t.From, "to", t.To)

	req.Status = toStatus
	req.ApprovedDate = t.ApprovedDate
	req.History = append(req.History, t.Entry)
	return req, nil
}

func (s *requestService) Reject(ctx context.Context, requestID int64, actorEmail, reason string) (*domain.EventRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrMissingReason
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	actor, err := s.userRepo.GetByEmail(ctx, actorEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrPermissionDenied
		}
		return nil, err
	}

	if err := domain.CanReject(actor.Role, req.Status); err != nil {
		return nil, err
	}

	t := &domain.Transition{
		RequestID:       requestID,
		From:            req.Status,
		To:              domain.StatusRejected,
		RejectionReason: reason,
		Entry: domain.AuditEntry{
			RequestID:  requestID,
			ActorRole:  actor.Role,
			ActorEmail: actorEmail,
			ActorName:  s.displayName(ctx, actorEmail, actor.Role),
			FromStatus: req.Status,
			ToStatus:   domain.StatusRejected,
			Action:     domain.ActionRejected,
			Comment:    reason,
			CreatedOn:  s.now(),
		},
	}

	if err := s.requestRepo.Transition(ctx, t); err != nil {
		return nil, err
	}

	logger.Info("OD request rejected", "request_id", requestID,
		"actor", actorEmail, "role", actor.Role, "from", t.From, "reason", reason)

	// Best effort: the transition is already committed, a failed notice
	// must not fail the rejection.
	if req.OrganizerEmail != "" {
		if err := s.emailSvc.SendRejectionNotice(ctx, req.OrganizerEmail, req.EventName, reason); err != nil {
			logger.Error("Failed to send rejection notice", "request_id", requestID, "error", err)
		}
	}

	req.Status = domain.StatusRejected
	req.RejectionReason = reason
	req.History = append(req.History, t.Entry)
	return req, nil
}

func (s *requestService) GetRequest(ctx context.Context, requestID int64) (*domain.EventRequest, error) {
	return s.requestRepo.GetByID(ctx, requestID)
}

func (s *requestService) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.EventRequest, error) {
	return s.requestRepo.ListByStatus(ctx, status)
}

// displayName resolves the actor to a faculty master record, falling
// back to the static role display name.
func (s *requestService) displayName(ctx context.Context, email string, role domain.Role) string {
	if f, err := s.facultyRepo.GetByEmail(ctx, email); err == nil {
		return f.Name
	}
	return role.DisplayName()
}

func (s *requestService) today() time.Time {
	return s.now().Truncate(24 * time.Hour)
}
