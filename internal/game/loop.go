package game

import (
	"context"
	"time"
)

// Run steps the session once per tick until ctx is done.
func (s *Session) Run(ctx context.Context) {
	ticker := time.NewTicker(s.TickDuration())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
		}
	}
}
