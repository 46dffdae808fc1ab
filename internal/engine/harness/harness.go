// Package harness executes registered items over one session context
// with uniform isolation: conditions gate execution, panics become
// errors, and no item's failure touches another's outcome.
package harness

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/zerr"

	"github.com/claudeye/claudeye/internal/core/domain"
)

// Outcome is the uniform result of attempting one item. Exactly one of
// Skipped, Err, or Value is meaningful.
type Outcome struct {
	Name     string
	Value    any
	Err      error
	Skipped  bool
	Duration time.Duration
}

// Run executes all items sequentially against the session context. A
// global condition that returns false or fails skips the whole batch
// with zero durations.
func Run(ctx context.Context, session map[string]any, global domain.ConditionFunc, items []domain.RegisteredItem) []Outcome {
	outcomes := make([]Outcome, 0, len(items))

	if global != nil {
		if pass, err := evalCondition(global, session); err != nil || !pass {
			for _, item := range items {
				outcomes = append(outcomes, Outcome{Name: item.Name, Skipped: true})
			}
			return outcomes
		}
	}

	for _, item := range items {
		outcomes = append(outcomes, RunOne(ctx, session, item))
	}
	return outcomes
}

// RunOne executes a single item, applying its own condition but not
// any global one.
func RunOne(ctx context.Context, session map[string]any, item domain.RegisteredItem) Outcome {
	if item.Condition != nil {
		pass, err := evalCondition(item.Condition, session)
		if err != nil {
			return Outcome{
				Name: item.Name,
				Err:  zerr.With(zerr.Wrap(domain.ErrConditionFailed, err.Error()), "item", item.Name),
			}
		}
		if !pass {
			return Outcome{Name: item.Name, Skipped: true}
		}
	}

	start := time.Now()
	value, err := callItem(ctx, session, item)
	out := Outcome{Name: item.Name, Duration: time.Since(start)}
	if err != nil {
		out.Err = err
		return out
	}
	out.Value = value
	return out
}

// callItem invokes the item function, converting panics into errors.
func callItem(ctx context.Context, session map[string]any, item domain.RegisteredItem) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(zerr.Wrap(domain.ErrItemPanicked, fmt.Sprint(r)), "item", item.Name)
		}
	}()
	return item.Fn(ctx, session)
}

// evalCondition invokes a condition function, converting panics into
// errors.
func evalCondition(cond domain.ConditionFunc, session map[string]any) (pass bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			pass = false
			err = zerr.Wrap(domain.ErrConditionFailed, fmt.Sprint(r))
		}
	}()
	return cond(session)
}
