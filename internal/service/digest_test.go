package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"odms-backend/internal/domain"
	"odms-backend/internal/service"
)

func TestDigestService_SendDailyDigest(t *testing.T) {
	ctx := context.Background()

	cseA := &domain.Faculty{Name: "Dr. Rao", Email: "rao@college.edu", Branch: "CSE", Section: "A"}
	cseB := &domain.Faculty{Name: "Dr. Iyer", Email: "iyer@college.edu", Branch: "CSE", Section: "B"}

	t.Run("No approvals, nothing sent", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewDigestService(requestRepo, new(MockFacultyRepo), emailSvc)

		requestRepo.On("ListApprovedOn", ctx, mock.Anything).Return([]domain.EventRequest{}, nil)

		report, err := svc.SendDailyDigest(ctx, day(t, "2024-03-03"))
		assert.NoError(t, err)
		assert.Equal(t, 0, report.Requests)
		assert.Equal(t, 0, report.Sent)
		emailSvc.AssertNotCalled(t, "SendDailyDigest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Two requests collapse into one email per faculty", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		facultyRepo := new(MockFacultyRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewDigestService(requestRepo, facultyRepo, emailSvc)

		requestRepo.On("ListApprovedOn", ctx, mock.Anything).Return([]domain.EventRequest{
			{
				ID: 1, EventName: "Tech Symposium",
				Participants: []domain.Participant{
					{RegNo: "RA001", Name: "Asha", Branch: "CSE", Section: "A"},
				},
			},
			{
				ID: 2, EventName: "Sports Meet",
				Participants: []domain.Participant{
					{RegNo: "RA003", Name: "Meera", Branch: "CSE", Section: "A"},
					{RegNo: "RA002", Name: "Vikram", Branch: "CSE", Section: "B"},
				},
			},
		}, nil)
		facultyRepo.On("GetByBranchSection", ctx, "CSE", "A").Return(cseA, nil).Once()
		facultyRepo.On("GetByBranchSection", ctx, "CSE", "B").Return(cseB, nil).Once()

		var toA []service.DigestGroup
		emailSvc.On("SendDailyDigest", ctx, cseA, mock.AnythingOfType("[]service.DigestGroup")).
			Run(func(args mock.Arguments) { toA = args.Get(2).([]service.DigestGroup) }).
			Return(nil)
		emailSvc.On("SendDailyDigest", ctx, cseB, mock.AnythingOfType("[]service.DigestGroup")).Return(nil)

		report, err := svc.SendDailyDigest(ctx, day(t, "2024-03-03"))
		assert.NoError(t, err)
		assert.Equal(t, 2, report.Requests)
		assert.Equal(t, 2, report.Sent)
		assert.Equal(t, 0, report.Failed)
		assert.Equal(t, 0, report.Unmapped)

		// CSE/A faculty sees both events, each with its own students.
		assert.Len(t, toA, 2)
		assert.Equal(t, "Tech Symposium", toA[0].EventName)
		assert.Equal(t, "Sports Meet", toA[1].EventName)
		assert.Len(t, toA[0].Students, 1)
		assert.Len(t, toA[1].Students, 1)
		assert.Equal(t, "Meera", toA[1].Students[0].Name)

		// The (branch, section) lookup is cached across participants.
		facultyRepo.AssertNumberOfCalls(t, "GetByBranchSection", 2)
	})

	t.Run("Unmapped class is dropped and counted", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		facultyRepo := new(MockFacultyRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewDigestService(requestRepo, facultyRepo, emailSvc)

		requestRepo.On("ListApprovedOn", ctx, mock.Anything).Return([]domain.EventRequest{
			{
				ID: 1, EventName: "Tech Symposium",
				Participants: []domain.Participant{
					{RegNo: "RA001", Branch: "CSE", Section: "A"},
					{RegNo: "RA009", Branch: "MEC", Section: "Z"},
				},
			},
		}, nil)
		facultyRepo.On("GetByBranchSection", ctx, "CSE", "A").Return(cseA, nil)
		facultyRepo.On("GetByBranchSection", ctx, "MEC", "Z").Return(nil, sql.ErrNoRows)
		emailSvc.On("SendDailyDigest", ctx, cseA, mock.Anything).Return(nil)

		report, err := svc.SendDailyDigest(ctx, day(t, "2024-03-03"))
		assert.NoError(t, err)
		assert.Equal(t, 1, report.Sent)
		assert.Equal(t, 1, report.Unmapped)
	})

	t.Run("One failed send does not block the rest", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		facultyRepo := new(MockFacultyRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewDigestService(requestRepo, facultyRepo, emailSvc)

		requestRepo.On("ListApprovedOn", ctx, mock.Anything).Return([]domain.EventRequest{
			{
				ID: 1, EventName: "Tech Symposium",
				Participants: []domain.Participant{
					{RegNo: "RA001", Branch: "CSE", Section: "A"},
					{RegNo: "RA002", Branch: "CSE", Section: "B"},
				},
			},
		}, nil)
		facultyRepo.On("GetByBranchSection", ctx, "CSE", "A").Return(cseA, nil)
		facultyRepo.On("GetByBranchSection", ctx, "CSE", "B").Return(cseB, nil)
		emailSvc.On("SendDailyDigest", ctx, cseA, mock.Anything).Return(errors.New("sendgrid 503"))
		emailSvc.On("SendDailyDigest", ctx, cseB, mock.Anything).Return(nil)

		report, err := svc.SendDailyDigest(ctx, day(t, "2024-03-03"))
		assert.NoError(t, err)
		assert.Equal(t, 1, report.Sent)
		assert.Equal(t, 1, report.Failed)
	})

	t.Run("Repository error aborts the run", func(t *testing.T) {
		requestRepo := new(MockRequestRepo)
		svc := service.NewDigestService(requestRepo, new(MockFacultyRepo), new(MockEmailService))

		requestRepo.On("ListApprovedOn", ctx, mock.Anything).Return(nil, errors.New("db down"))

		_, err := svc.SendDailyDigest(ctx, day(t, "2024-03-03"))
		assert.Error(t, err)
	})
}
