package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/resend/resend-go/v3"

	"ignite-backend/internal/config"
)

type EmailService interface {
	SendPasswordResetOTP(ctx context.Context, toEmail, name, otp string) error
}

type emailService struct {
	client       *resend.Client
	config       *config.Config
	templatePath string
}

func NewEmailService(cfg *config.Config) EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	templatePath := "internal/service/templates/email"
	return &emailService{
		client:       client,
		config:       cfg,
		templatePath: templatePath,
	}
}

func (s *emailService) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	tmpl, err := template.ParseFiles(
		filepath.Join(s.templatePath, "layout.html"),
		filepath.Join(s.templatePath, templateName),
	)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Ignite <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *emailService) SendPasswordResetOTP(ctx context.Context, toEmail, name, otp string) error {
	data := struct {
		Title string
		Name  string
		OTP   string
	}{
		Title: "Password Reset OTP",
		Name:  name,
		OTP:   otp,
	}
	return s.sendEmail(toEmail, "Password Reset OTP", "reset_otp.html", data)
}
