package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/config"

	"go.uber.org/zap"
)

// Message is one outbound email. HTML is the primary body, Text the
// plain-text alternative.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type Service interface {
	Send(ctx context.Context, msg Message) error
}

type relayService struct {
	apiKey    string
	fromEmail string
	baseURL   string
	client    *http.Client
}

// NewRelayService builds the authenticated relay transport. It fails when no
// API key is configured; callers are expected to fall back to NewLogService.
func NewRelayService(cfg config.MailConfig) (Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("email relay API key is not configured")
	}

	from := strings.TrimSpace(cfg.FromEmail)
	if from == "" {
		from = "onboarding@resend.dev"
	}

	return &relayService{
		apiKey:    cfg.APIKey,
		fromEmail: from,
		baseURL:   strings.TrimRight(cfg.RelayURL, "/"),
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (s *relayService) Send(ctx context.Context, msg Message) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{msg.To},
		"subject": msg.Subject,
		"html":    msg.HTML,
	}
	if msg.Text != "" {
		payload["text"] = msg.Text
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		detail := strings.TrimSpace(string(respBody))
		if len(detail) > 500 {
			detail = detail[:500]
		}
		if detail == "" {
			return fmt.Errorf("email relay returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("email relay returned status %d: %s", resp.StatusCode, detail)
	}

	return nil
}

// NewLogService returns a transport that only logs the would-be email. Used
// when relay credentials are absent so submissions still succeed.
func NewLogService(logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &logService{logger: logger.Named("email.log")}
}

type logService struct {
	logger *zap.Logger
}

func (s *logService) Send(_ context.Context, msg Message) error {
	s.logger.Info("email relay not configured, logging instead of sending",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
