package memstore

import (
	"context"
	"sync"

	"clinic-booking/internal/usecase/shared"
)

type SentMessage struct {
	Phone   string
	Message string
}

// Gateway records outbound messages. FailFor makes sends to the listed
// phones fail with the given error.
type Gateway struct {
	mu      sync.Mutex
	sent    []SentMessage
	FailFor map[string]error
}

func NewGateway() *Gateway {
	return &Gateway{FailFor: map[string]error{}}
}

func (g *Gateway) SendText(_ context.Context, _ shared.NotificationSettings, phone, message string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err, ok := g.FailFor[phone]; ok {
		return err
	}
	g.sent = append(g.sent, SentMessage{Phone: phone, Message: message})
	return nil
}

func (g *Gateway) Fail(phone string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.FailFor[phone] = err
}

func (g *Gateway) Heal(phone string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.FailFor, phone)
}

func (g *Gateway) Sent() []SentMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]SentMessage(nil), g.sent...)
}
