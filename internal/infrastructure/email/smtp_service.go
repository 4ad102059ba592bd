package email

import (
	"context"
	"fmt"
	"net/smtp"

	"blogsite-backend/internal/config"
	"blogsite-backend/pkg/logger"
)

// NewPostEmailData is the payload for a single new-post notification email.
type NewPostEmailData struct {
	PostTitle       string
	PostDescription string
	PostURL         string
	PostImage       string
	UnsubscribeURL  string
}

type EmailService interface {
	SendNewPostEmail(ctx context.Context, to string, data NewPostEmailData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
	auth     smtp.Auth
}

func NewSMTPEmailService(cfg config.EmailConfig) EmailService {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}

	return &smtpEmailService{
		smtpAddr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		smtpFrom: cfg.From,
		auth:     auth,
	}
}

func (s *smtpEmailService) SendNewPostEmail(ctx context.Context, to string, data NewPostEmailData) error {
	body, err := renderNewPostEmail(data)
	if err != nil {
		return fmt.Errorf("render new post email: %w", err)
	}

	subject := "New Post: " + data.PostTitle
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.smtpFrom, to, subject, body))

	if err := smtp.SendMail(s.smtpAddr, s.auth, s.smtpFrom, []string{to}, msg); err != nil {
		logger.Warn("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        to,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
