package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"odms-backend/internal/domain"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(toEmail, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmailPlainText(from, subject, to, body)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendOTP(ctx context.Context, email, code string) error {
	body := fmt.Sprintf("Your One-Time Password is: %s\nIt is valid for 10 minutes.", code)
	return s.send(email, "", "Your OD Request System Login OTP", body)
}

func (s *emailService) SendRejectionNotice(ctx context.Context, email, eventName, reason string) error {
	body := fmt.Sprintf("Dear Organizer,\n\nYour On-Duty request for the event '%s' has been rejected.\nReason: %s\n\nThank you,\nOD Request System", eventName, reason)
	return s.send(email, "", fmt.Sprintf("OD Request Rejected: %s", eventName), body)
}

func (s *emailService) SendDailyDigest(ctx context.Context, faculty *domain.Faculty, groups []DigestGroup) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", faculty.Name)
	fmt.Fprintf(&b, "This is your daily digest. The following students from your class (%s - %s) have been approved for On-Duty leave today:\n\n",
		faculty.Branch, faculty.Section)

	for _, g := range groups {
		fmt.Fprintf(&b, "Event: '%s'\n", g.EventName)
		for _, student := range g.Students {
			fmt.Fprintf(&b, "- %s (%s)\n", student.Name, student.RegNo)
		}
		b.WriteString("\n")
	}

	b.WriteString("Thank you,\nOD Request System")
	return s.send(faculty.Email, faculty.Name, "Daily On-Duty Student Digest", b.String())
}
