package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"odms-backend/internal/domain"
	"odms-backend/internal/security"
	"odms-backend/internal/service"
)

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.EventRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.EventRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventRequest), args.Error(1)
}
func (m *MockRequestRepo) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.EventRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventRequest), args.Error(1)
}
func (m *MockRequestRepo) ListApprovedOn(ctx context.Context, day time.Time) ([]domain.EventRequest, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventRequest), args.Error(1)
}
func (m *MockRequestRepo) Transition(ctx context.Context, t *domain.Transition) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateRole(ctx context.Context, id int64, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}
func (m *MockUserRepo) SetOTP(ctx context.Context, id int64, otpHash string, requestedAt time.Time) error {
	args := m.Called(ctx, id, otpHash, requestedAt)
	return args.Error(0)
}
func (m *MockUserRepo) ClearOTP(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFacultyRepo
type MockFacultyRepo struct {
	mock.Mock
}

func (m *MockFacultyRepo) GetByBranchSection(ctx context.Context, branch, section string) (*domain.Faculty, error) {
	args := m.Called(ctx, branch, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Faculty), args.Error(1)
}
func (m *MockFacultyRepo) GetByEmail(ctx context.Context, email string) (*domain.Faculty, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Faculty), args.Error(1)
}
func (m *MockFacultyRepo) BulkInsert(ctx context.Context, faculty []domain.Faculty) error {
	args := m.Called(ctx, faculty)
	return args.Error(0)
}
func (m *MockFacultyRepo) List(ctx context.Context) ([]domain.Faculty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Faculty), args.Error(1)
}
func (m *MockFacultyRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockStudentRepo
type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) GetByRegNo(ctx context.Context, regNo string) (*domain.Student, error) {
	args := m.Called(ctx, regNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockStudentRepo) BulkInsert(ctx context.Context, students []domain.Student) error {
	args := m.Called(ctx, students)
	return args.Error(0)
}
func (m *MockStudentRepo) List(ctx context.Context) ([]domain.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}
func (m *MockStudentRepo) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOTP(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}
func (m *MockEmailService) SendDailyDigest(ctx context.Context, faculty *domain.Faculty, groups []service.DigestGroup) error {
	args := m.Called(ctx, faculty, groups)
	return args.Error(0)
}
func (m *MockEmailService) SendRejectionNotice(ctx context.Context, email, eventName, reason string) error {
	args := m.Called(ctx, email, eventName, reason)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Generate(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) Validate(tokenString string) (*security.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Claims), args.Error(1)
}
