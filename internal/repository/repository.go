package repository

import (
	"context"
	"time"

	"odms-backend/internal/domain"
)

type RequestRepository interface {
	// Create persists a request together with its participants.
	Create(ctx context.Context, req *domain.EventRequest) error
	// GetByID loads a request with its participants and full history.
	GetByID(ctx context.Context, id int64) (*domain.EventRequest, error)
	// ListByStatus returns non-hidden requests in the given status, with
	// participants, oldest first.
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.EventRequest, error)
	// ListApprovedOn returns non-hidden APPROVED requests whose approved
	// date falls on the given day, with participants.
	ListApprovedOn(ctx context.Context, day time.Time) ([]domain.EventRequest, error)
	// Transition atomically applies a workflow transition: the status
	// update guarded by the expected current status, the audit entry, and
	// any accrual increments. When the guard matches no row the whole
	// transition rolls back with domain.ErrInvalidStageTransition.
	Transition(ctx context.Context, t *domain.Transition) error
}

type StudentRepository interface {
	GetByRegNo(ctx context.Context, regNo string) (*domain.Student, error)
	BulkInsert(ctx context.Context, students []domain.Student) error
	List(ctx context.Context) ([]domain.Student, error)
	DeleteAll(ctx context.Context) error
}

type FacultyRepository interface {
	GetByBranchSection(ctx context.Context, branch, section string) (*domain.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*domain.Faculty, error)
	BulkInsert(ctx context.Context, faculty []domain.Faculty) error
	List(ctx context.Context) ([]domain.Faculty, error)
	DeleteAll(ctx context.Context) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) error
	// SetOTP stores the bcrypt hash of a freshly issued one-time password.
	SetOTP(ctx context.Context, id int64, otpHash string, requestedAt time.Time) error
	// ClearOTP invalidates the stored one-time password after use.
	ClearOTP(ctx context.Context, id int64) error
}
