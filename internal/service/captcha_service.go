package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ignite-backend/internal/config"
)

var ErrCaptchaFailed = errors.New("captcha verification failed")

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// CaptchaService verifies a reCAPTCHA token collected at signup. It is the
// only throttle on bot registrations; there is no general rate limiting.
type CaptchaService interface {
	Verify(ctx context.Context, token string) error
}

type captchaService struct {
	secret     string
	httpClient *http.Client
}

func NewCaptchaService(cfg *config.Config) CaptchaService {
	return &captchaService{
		secret:     cfg.RecaptchaSecret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *captchaService) Verify(ctx context.Context, token string) error {
	// Verification is skipped when no secret is configured (local development).
	if s.secret == "" {
		return nil
	}

	form := url.Values{}
	form.Set("secret", s.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, recaptchaVerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	if !result.Success {
		return ErrCaptchaFailed
	}
	return nil
}
