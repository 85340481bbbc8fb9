package send

import (
	"context"
	"time"
)

// StartGasFeePolling starts the repeating gas-fee fetch loop: fetch,
// commit via SetGasFee, wait one interval, repeat. Errors are logged and
// swallowed; the next iteration proceeds on schedule regardless. If a
// loop is already running it is cancelled first, so at most one loop
// feeds the session at a time.
func (s *Session) StartGasFeePolling(ctx context.Context) {
	s.mu.Lock()
	if s.pollCancel != nil {
		s.pollCancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.pollCancel = cancel
	interval := s.pollInterval
	s.mu.Unlock()

	go s.pollGasFee(ctx, interval)
}

// StopGasFeePolling cancels the poll loop. An in-flight fetch is not
// aborted, but its result is discarded and no further iteration runs.
// Safe to call when no loop is running.
func (s *Session) StopGasFeePolling() {
	s.mu.Lock()
	cancel := s.pollCancel
	s.pollCancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (s *Session) pollGasFee(ctx context.Context, interval time.Duration) {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return
		}
		tiers, err := s.oracle.FetchGasFee(ctx)
		switch {
		case err != nil:
			s.logger.Warn("gas fee fetch failed", "error", err)
		case ctx.Err() != nil:
			// Cancelled while the fetch was in flight; the stale
			// result must not be committed.
			return
		default:
			s.SetGasFee(tiers)
		}

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			timer.Reset(interval)
		}
	}
}
