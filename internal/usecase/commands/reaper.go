package commands

import (
	"context"
	"log/slog"

	"clinic-booking/internal/usecase/shared"
)

type ReapResult struct {
	Expired int64
}

type ReaperCommands interface {
	Reap(ctx context.Context) (*ReapResult, error)
}

type reaperCommandsImpl struct {
	reaper shared.Reaper
}

func NewReaperCommands(reaper shared.Reaper) ReaperCommands {
	return &reaperCommandsImpl{reaper: reaper}
}

func (c *reaperCommandsImpl) Reap(ctx context.Context) (*ReapResult, error) {
	n, err := c.reaper.ReapStale(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		slog.Info("expired stale pending reservations", "count", n)
	}
	return &ReapResult{Expired: n}, nil
}
