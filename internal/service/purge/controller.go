// Package purge deletes seeded data by scope. Every scope is guarded by
// literal confirmations, and no scope removes admin users.
package purge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/pkg/logger"
	"github.com/jwalitptl/healthbridge-seeder/pkg/metrics"
)

type State string

const (
	StateIdle          State = "idle"
	StateScopeSelected State = "scope_selected"
	StateConfirmed     State = "confirmed"
	StateExecuted      State = "executed"
	StateCancelled     State = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid purge state transition")

// ConfirmFunc decides whether a selected scope may run.
type ConfirmFunc func(scope Scope) bool

// Challenger asks one question and returns the raw answer.
type Challenger interface {
	Ask(question string) string
}

// Challenges returns a ConfirmFunc asking each of the scope's challenges in
// order. It stops at the first answer that does not match.
func Challenges(c Challenger) ConfirmFunc {
	return func(scope Scope) bool {
		if len(scope.Challenges) == 0 {
			return false
		}
		for _, ch := range scope.Challenges {
			answer := strings.TrimSpace(c.Ask(ch.Question))
			if ch.Fold && !strings.EqualFold(answer, ch.Expect) {
				return false
			}
			if !ch.Fold && answer != ch.Expect {
				return false
			}
		}
		return true
	}
}

// Outcome reports what one action did. Deleted is keyed by collection.
type Outcome struct {
	Scope     Scope
	Cancelled bool
	Deleted   map[string]int64
}

func (o Outcome) Total() int64 {
	var n int64
	for _, d := range o.Deleted {
		n += d
	}
	return n
}

// Controller runs one scope at a time: Idle, ScopeSelected, Confirmed, then
// Executed or Cancelled, and back to Idle.
type Controller struct {
	store   repository.Store
	confirm ConfirmFunc
	logger  *logger.Logger
	metrics *metrics.Metrics

	state    State
	selected Scope
}

func NewController(store repository.Store, confirm ConfirmFunc, log *logger.Logger, m *metrics.Metrics) *Controller {
	return &Controller{
		store:   store,
		confirm: confirm,
		logger:  log,
		metrics: m,
		state:   StateIdle,
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Select(scope Scope) error {
	if c.state != StateIdle {
		return fmt.Errorf("%w: select from %s", ErrInvalidTransition, c.state)
	}
	c.selected = scope
	c.state = StateScopeSelected
	return nil
}

// Confirm runs the confirmation of the selected scope and reports whether it passed.
func (c *Controller) Confirm() (bool, error) {
	if c.state != StateScopeSelected {
		return false, fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, c.state)
	}
	if c.confirm(c.selected) {
		c.state = StateConfirmed
		return true, nil
	}
	c.state = StateCancelled
	return false, nil
}

// Execute deletes the confirmed scope's targets, stopping at the first error.
func (c *Controller) Execute(ctx context.Context) (map[string]int64, error) {
	if c.state != StateConfirmed {
		return nil, fmt.Errorf("%w: execute from %s", ErrInvalidTransition, c.state)
	}

	deleted := make(map[string]int64, len(c.selected.Targets))
	for _, t := range c.selected.Targets {
		n, err := c.store.Raw(t.Collection).DeleteMany(ctx, t.Filter)
		if err != nil {
			return deleted, fmt.Errorf("failed to delete from %s: %w", t.Collection, err)
		}
		deleted[t.Collection] += n
		if c.metrics != nil {
			c.metrics.DocumentsDeleted.WithLabelValues(t.Collection).Add(float64(n))
		}
		if n > 0 {
			c.logger.Info("deleted documents", "collection", t.Collection, "deleted", n)
		}
	}
	c.state = StateExecuted
	return deleted, nil
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.selected = Scope{}
}

// Run takes one scope through the whole machine and leaves the controller idle.
func (c *Controller) Run(ctx context.Context, scope Scope) (Outcome, error) {
	defer c.reset()

	out := Outcome{Scope: scope}
	if err := c.Select(scope); err != nil {
		return out, err
	}
	ok, err := c.Confirm()
	if err != nil {
		return out, err
	}
	if !ok {
		c.logger.Info("deletion cancelled", "scope", scope.Label)
		out.Cancelled = true
		return out, nil
	}

	out.Deleted, err = c.Execute(ctx)
	if err != nil {
		return out, err
	}
	c.logger.Info("deletion complete", "scope", scope.Label, "deleted", out.Total())
	return out, nil
}
