package service

import (
	"context"
	"io"
	"time"

	"odms-backend/internal/domain"
)

type RequestService interface {
	// CreateRequest validates and persists a new OD request. A request
	// naming the configured urgent registration number takes the
	// pre-authorized fast path.
	CreateRequest(ctx context.Context, req *domain.EventRequest) (*domain.EventRequest, error)
	// Approve advances a request one workflow stage on behalf of the actor.
	Approve(ctx context.Context, requestID int64, actorEmail string) (*domain.EventRequest, error)
	// Reject moves a request to REJECTED with a mandatory reason.
	Reject(ctx context.Context, requestID int64, actorEmail, reason string) (*domain.EventRequest, error)
	GetRequest(ctx context.Context, requestID int64) (*domain.EventRequest, error)
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.EventRequest, error)
}

type DigestService interface {
	// SendDailyDigest emails each class faculty the list of their students
	// approved for on-duty leave on the given day.
	SendDailyDigest(ctx context.Context, day time.Time) (*DigestReport, error)
}

// DigestReport summarizes one digest run for operators. Unmapped counts
// participants whose (branch, section) resolved to no faculty record and
// were silently dropped from the digest.
type DigestReport struct {
	Requests int
	Sent     int
	Failed   int
	Unmapped int
}

// DigestGroup is one event's students within a faculty's digest.
type DigestGroup struct {
	EventName string
	Students  []domain.Participant
}

type AuthService interface {
	// RequestOTP issues a fresh one-time password and emails it to the user.
	RequestOTP(ctx context.Context, email string) error
	// VerifyOTP checks the code, invalidates it, and returns a signed
	// access token for the user.
	VerifyOTP(ctx context.Context, email, code string) (string, *domain.User, error)
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUserRole(ctx context.Context, userID int64, role string) error
}

type ImportService interface {
	ImportStudents(ctx context.Context, r io.Reader) (int, error)
	ImportFaculty(ctx context.Context, r io.Reader) (int, error)
	ClearStudents(ctx context.Context) error
	ClearFaculty(ctx context.Context) error
}

type EmailService interface {
	SendOTP(ctx context.Context, email, code string) error
	SendDailyDigest(ctx context.Context, faculty *domain.Faculty, groups []DigestGroup) error
	// SendRejectionNotice tells the organizer their request was rejected
	// and why. Best-effort; callers log failures and carry on.
	SendRejectionNotice(ctx context.Context, email, eventName, reason string) error
}
