package auth

import (
	"context"
	"time"
)

// Await waits out the pending transition's delay and fires it. It reports
// whether the flow moved. Without a pending transition it returns at once.
func Await(ctx context.Context, f *Flow) (bool, error) {
	t, ok := f.Pending()
	if !ok {
		return false, nil
	}
	timer := time.NewTimer(t.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-timer.C:
		return f.Fire(t.Token), nil
	}
}
