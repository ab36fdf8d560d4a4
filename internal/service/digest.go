package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"odms-backend/internal/domain"
	"odms-backend/internal/logger"
	"odms-backend/internal/repository"
)

type digestService struct {
	requestRepo repository.RequestRepository
	facultyRepo repository.FacultyRepository
	emailSvc    EmailService
}

func NewDigestService(
	requestRepo repository.RequestRepository,
	facultyRepo repository.FacultyRepository,
	emailSvc EmailService,
) DigestService {
	return &digestService{
		requestRepo: requestRepo,
		facultyRepo: facultyRepo,
		emailSvc:    emailSvc,
	}
}

// facultyDigest collects one faculty's share of the day's approvals,
// grouped by event in first-seen order.
type facultyDigest struct {
	faculty *domain.Faculty
	groups  []DigestGroup
	byEvent map[string]int
}

func (d *facultyDigest) add(eventName string, p domain.Participant) {
	i, ok := d.byEvent[eventName]
	if !ok {
		i = len(d.groups)
		d.groups = append(d.groups, DigestGroup{EventName: eventName})
		d.byEvent[eventName] = i
	}
	d.groups[i].Students = append(d.groups[i].Students, p)
}

func (s *digestService) SendDailyDigest(ctx context.Context, day time.Time) (*DigestReport, error) {
	report := &DigestReport{}

	approved, err := s.requestRepo.ListApprovedOn(ctx, day)
	if err != nil {
		return nil, err
	}
	report.Requests = len(approved)
	if len(approved) == 0 {
		logger.Info("No new ODs approved today, digest skipped")
		return report, nil
	}

	// Group all participants across the day's requests by the faculty in
	// charge of their (branch, section). Faculty lookups are cached per
	// run; a pair with no faculty record drops its participants from the
	// digest, counted so operators can spot the silent loss.
	resolved := map[string]*domain.Faculty{}
	digests := map[string]*facultyDigest{}
	var order []string

	for i := range approved {
		req := &approved[i]
		for _, p := range req.Participants {
			key := p.Branch + "/" + p.Section
			faculty, seen := resolved[key]
			if !seen {
				faculty, err = s.facultyRepo.GetByBranchSection(ctx, p.Branch, p.Section)
				if err != nil {
					if !errors.Is(err, sql.ErrNoRows) {
						return nil, err
					}
					faculty = nil
				}
				resolved[key] = faculty
			}
			if faculty == nil {
				report.Unmapped++
				logger.Warn("Participant has no class faculty, dropped from digest",
					"reg_no", p.RegNo, "branch", p.Branch, "section", p.Section)
				continue
			}
			d, ok := digests[key]
			if !ok {
				d = &facultyDigest{faculty: faculty, byEvent: map[string]int{}}
				digests[key] = d
				order = append(order, key)
			}
			d.add(req.EventName, p)
		}
	}

	// One email per faculty. A failed send is logged and does not block
	// delivery to the remaining recipients.
	for _, key := range order {
		d := digests[key]
		if err := s.emailSvc.SendDailyDigest(ctx, d.faculty, d.groups); err != nil {
			report.Failed++
			logger.Error("Failed to send daily digest", "faculty", d.faculty.Email, "error", err)
			continue
		}
		report.Sent++
		logger.Info("Sent daily digest", "faculty", d.faculty.Email,
			"branch", d.faculty.Branch, "section", d.faculty.Section)
	}

	return report, nil
}
