package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Sami-Mannila/webscraper/domain"
)

// PollUntil evaluates pred every interval until it holds, the timeout
// elapses, or ctx is cancelled. A timeout yields domain.ErrRenderTimeout; a
// predicate error propagates as-is.
func PollUntil(ctx context.Context, interval, timeout time.Duration, pred func() (bool, error)) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ok, err := pred()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if !time.Now().Before(deadline) {
			return fmt.Errorf("condition not met within %s: %w", timeout, domain.ErrRenderTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
