// Package waiter polls a condition until it holds or a deadline passes.
package waiter

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/util/wait"

	"web_controls/domain/entities"
)

// DefaultInterval is used when a caller passes a non-positive interval
const DefaultInterval = 100 * time.Millisecond

// Condition reports whether the awaited state holds. A non-nil error stops polling.
type Condition func(ctx context.Context) (bool, error)

// Until checks cond immediately and then every interval until it returns true,
// returns an error, or timeout elapses. Running out of time yields an error
// wrapping entities.ErrTimeout; cancellation of ctx is returned as ctx.Err().
func Until(ctx context.Context, interval, timeout time.Duration, cond Condition) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	err := wait.PollUntilContextTimeout(ctx, interval, timeout, true, wait.ConditionWithContextFunc(cond))
	if err == nil {
		return nil
	}
	if wait.Interrupted(err) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrapf(entities.ErrTimeout, "condition not met after %s", timeout)
	}
	return err
}
