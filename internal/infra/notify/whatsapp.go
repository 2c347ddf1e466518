// Package notify delivers text messages through a WhatsApp-compatible HTTP
// gateway. Gateway address and credentials come from the clinic's stored
// notification settings, so one client serves every configuration.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	ErrGatewayUnconfigured = errs.New("notification gateway is not configured")
	ErrGatewayRejected     = errs.New("notification gateway rejected the message")
)

const sendTextPath = "/send-text"

type sendTextRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type WhatsAppGateway struct {
	http *http.Client
}

func NewWhatsAppGateway(timeout time.Duration) *WhatsAppGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WhatsAppGateway{
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// SendText posts one message. phone must already be normalised digits.
func (g *WhatsAppGateway) SendText(ctx context.Context, settings shared.NotificationSettings, phone, message string) error {
	if !settings.Configured() {
		return ErrGatewayUnconfigured
	}

	raw, err := json.Marshal(sendTextRequest{Phone: phone, Message: message})
	if err != nil {
		return errs.Wrap(err, "encode send-text payload")
	}

	url := strings.TrimRight(strings.TrimSpace(settings.GatewayURL), "/") + sendTextPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return errs.Wrap(err, "build send-text request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Client-Token", settings.GatewayToken)

	resp, err := g.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "send-text request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Mark(
			fmt.Errorf("gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
			ErrGatewayRejected,
		)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
