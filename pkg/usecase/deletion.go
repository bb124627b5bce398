package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/culler/pkg/domain/interfaces"
	"github.com/secmon-lab/culler/pkg/domain/model"
	"github.com/secmon-lab/culler/pkg/domain/types"
)

const (
	maxRetries     = 3
	defaultBackoff = 1 * time.Second
	maxBackoff     = 10 * time.Second
)

// DeletionEngine drives one account's deletion to a terminal outcome. A
// delete that fails with a role conflict triggers a compensating role
// downgrade followed by another delete, bounded by maxRetries; every other
// failure is terminal on the first classification.
//
// One account's attempt sequence never interleaves with another operation
// on that account: the compensating update mutates remote state the next
// delete depends on.
type DeletionEngine struct {
	client      interfaces.SCIMClient
	maxRetries  int
	baseBackoff time.Duration
	maxBackoff  time.Duration
}

// EngineOption configures a DeletionEngine
type EngineOption func(*DeletionEngine)

// WithBackoff overrides the retry backoff schedule. Tests use a zero base
// to run the retry loop without delay.
func WithBackoff(base, cap time.Duration) EngineOption {
	return func(e *DeletionEngine) {
		e.baseBackoff = base
		e.maxBackoff = cap
	}
}

// NewDeletionEngine creates a new deletion engine
func NewDeletionEngine(client interfaces.SCIMClient, opts ...EngineOption) *DeletionEngine {
	e := &DeletionEngine{
		client:      client,
		maxRetries:  maxRetries,
		baseBackoff: defaultBackoff,
		maxBackoff:  maxBackoff,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Delete runs the deletion state machine for one account. All failures are
// downgraded to an error outcome for this account; the run itself never
// aborts here.
func (e *DeletionEngine) Delete(ctx context.Context, id types.AccountID) model.DeletionOutcome {
	logger := ctxlog.From(ctx)
	accountURL := e.client.UserURL(id)

	terminal := func(status types.OutcomeStatus, message string, attempts int) model.DeletionOutcome {
		return model.DeletionOutcome{
			AccountID:  id,
			AccountURL: accountURL,
			Status:     status,
			Message:    message,
			Attempts:   attempts,
		}
	}

	attempts := 0
	for {
		attempts++
		result, err := e.client.DeleteUser(ctx, id)
		if err != nil {
			logger.Error("Delete request failed",
				"accountID", id,
				"attempt", attempts,
				"error", err)
			return terminal(types.OutcomeError, err.Error(), attempts)
		}

		class := model.Classify(result)
		logger.Debug("Classified delete response",
			"accountID", id,
			"attempt", attempts,
			"status", result.StatusCode,
			"class", class.String())

		switch class {
		case types.Deleted:
			logger.Info("Deleted user",
				"accountID", id,
				"attempts", attempts)
			return terminal(types.OutcomeSuccess, "deleted", attempts)

		case types.RoleConflict:
			if attempts > e.maxRetries {
				logger.Warn("Max retries reached, aborting deletion",
					"accountID", id,
					"attempts", attempts)
				return terminal(types.OutcomeError, "max retries reached", attempts)
			}
			if err := e.compensate(ctx, id, attempts); err != nil {
				if errors.Is(err, model.ErrUserNotFound) {
					logger.Warn("Account disappeared during role downgrade",
						"accountID", id)
					return terminal(types.OutcomeError, "account disappeared during role downgrade", attempts)
				}
				return terminal(types.OutcomeError, err.Error(), attempts)
			}

		default:
			reason := result.Reason(class)
			logger.Warn("Deletion failed",
				"accountID", id,
				"class", class.String(),
				"reason", reason)
			return terminal(types.OutcomeError, reason, attempts)
		}
	}
}

// compensate downgrades the account to Registered so the next delete
// attempt can succeed. The downgrade is re-issued unconditionally on every
// cycle; the current role is not re-checked first. A vanished account (404)
// aborts the sequence; any other update failure is logged and the next
// delete attempt is still made, since it will re-surface the real error.
func (e *DeletionEngine) compensate(ctx context.Context, id types.AccountID, attempt int) error {
	logger := ctxlog.From(ctx)

	delay := e.backoff(attempt)
	logger.Info("Role conflict: downgrading role to Registered before retrying delete",
		"accountID", id,
		"attempt", attempt,
		"delay", delay)
	if err := sleep(ctx, delay); err != nil {
		return err
	}

	update := model.UserUpdate{UserType: types.RoleRegistered}
	if err := e.client.UpdateUser(ctx, id, update); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return err
		}
		logger.Warn("Role downgrade failed, retrying delete anyway",
			"accountID", id,
			"error", err)
	}
	return nil
}

// backoff returns the delay before the attempt'th compensating cycle:
// exponential from the base, capped.
func (e *DeletionEngine) backoff(attempt int) time.Duration {
	d := e.baseBackoff << (attempt - 1)
	if d > e.maxBackoff {
		d = e.maxBackoff
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
