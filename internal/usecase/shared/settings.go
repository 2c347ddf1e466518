package shared

import (
	"context"
	"strings"
)

// NotificationSettings is the clinic's messaging configuration as stored at
// the moment a request started. It is loaded once and passed explicitly to
// whatever needs it.
type NotificationSettings struct {
	Enabled          bool
	GatewayURL       string
	GatewayToken     string
	StaffPhone       string
	BookingTemplate  string
	ReminderTemplate string
}

func (s NotificationSettings) Configured() bool {
	return strings.TrimSpace(s.GatewayURL) != "" && strings.TrimSpace(s.GatewayToken) != ""
}

// SkipReason returns why nothing should be sent, or "" when sending is allowed.
func (s NotificationSettings) SkipReason() string {
	switch {
	case !s.Enabled:
		return "disabled"
	case !s.Configured():
		return "unconfigured"
	default:
		return ""
	}
}

type SettingsReader interface {
	// Load returns the zero value without error when nothing is stored.
	Load(ctx context.Context) (NotificationSettings, error)
}

type NotificationGateway interface {
	SendText(ctx context.Context, settings NotificationSettings, phone, message string) error
}

// Contact is what outbound messages need to know about a client or partner.
type Contact struct {
	Name  string
	Phone string
}
