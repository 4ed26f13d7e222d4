package email

import (
	"fmt"

	"stayhub_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through SMTP using gomail.
type SMTPProvider struct {
	cfg       *config.Config
	templates *TemplateManager
}

func NewSMTPProvider(cfg *config.Config) (*SMTPProvider, error) {
	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	provider := &SMTPProvider{
		cfg:       cfg,
		templates: tm,
	}

	if err := provider.Validate(); err != nil {
		return nil, err
	}

	return provider, nil
}

func (p *SMTPProvider) Validate() error {
	if p.cfg.Email.SMTPHost == "" {
		return fmt.Errorf("smtp host is not configured")
	}
	if p.cfg.Email.SMTPPort == 0 {
		return fmt.Errorf("smtp port is not configured")
	}
	if p.cfg.Email.FromEmail == "" {
		return fmt.Errorf("from email is not configured")
	}
	return nil
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.cfg.Email.FromEmail
	}
	if p.cfg.Email.FromName != "" {
		m.SetAddressHeader("From", from, p.cfg.Email.FromName)
	} else {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
	} else {
		m.SetBody("text/plain", email.Body)
	}

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendBookingConfirmation(data BookingConfirmationData) error {
	htmlBody, err := p.templates.Render("booking_confirmation", data)
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       []string{data.Email},
		Subject:  "Booking Confirmation",
		HTMLBody: htmlBody,
	})
}
