package orchid

import (
	"context"
	"errors"
	"log/slog"

	"github.com/edup2p/orchid/types"
)

// bestEffort logs and drops a datagram error, gameplay traffic is never retried.
func bestEffort(l *slog.Logger, err error, what string) {
	if err == nil {
		return
	}

	l.Log(context.Background(), types.LevelTrace, "dropped "+what, "err", err)
}

// countdown advances a cooldown timer, it is ready once it is below zero.
func countdown(t, dt float32) float32 {
	return max(t-dt, cooldownFloor)
}

func isNoData(err error) bool {
	return errors.Is(err, ErrNoDataAvailable)
}
