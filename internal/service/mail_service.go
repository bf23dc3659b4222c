package service

import (
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/myjobsapp/myjobs-api/internal/config"
)

type MailServiceInterface interface {
	SendWelcomeEmail(email, firstName string) error
	SendAdminNotification(email, firstName, lastName string) error
}

// MailService posts transactional mail through an HTTP mail API. Failures are
// logged by callers and never block the request that triggered the mail.
type MailService struct {
	client *resty.Client
	cfg    *config.MailConfig
}

func NewMailService() *MailService {
	cfg := config.LoadMailConfig()
	return &MailService{
		client: resty.New().SetBaseURL(cfg.APIURL),
		cfg:    cfg,
	}
}

func (s *MailService) send(to, subject, body string) error {
	if s.cfg.APIURL == "" {
		log.Printf("mail disabled, skipping %q to %s", subject, to)
		return nil
	}
	resp, err := s.client.R().
		SetHeader("Authorization", "Bearer "+s.cfg.APIKey).
		SetBody(map[string]any{
			"from":    s.cfg.FromEmail,
			"to":      to,
			"subject": subject,
			"text":    body,
		}).
		Post("/send")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("mail API returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func (s *MailService) SendWelcomeEmail(email, firstName string) error {
	name := firstName
	if name == "" {
		name = "there"
	}
	body := fmt.Sprintf("Hi %s,\n\nWelcome aboard! Your account is ready. Sign in to complete your profile and start exploring open positions.\n", name)
	return s.send(email, "Welcome to MyJobs", body)
}

func (s *MailService) SendAdminNotification(email, firstName, lastName string) error {
	if s.cfg.AdminEmail == "" {
		return nil
	}
	body := fmt.Sprintf("New registration: %s %s <%s>\n", firstName, lastName, email)
	return s.send(s.cfg.AdminEmail, "New user registered", body)
}
