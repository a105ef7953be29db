// Package sim runs werewolf games: one at a time with a structured event
// log, or in parallel batches that aggregate win statistics and metrics.
package sim

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/werewolf/engine"
)

// Outcome is the result of one run.
type Outcome struct {
	RunID  uuid.UUID
	Seed   uint64
	Result engine.Result
}

// OnGameEndFunc is called after every finished run.
type OnGameEndFunc func(o Outcome)

// Runner plays games under fixed rules. It is safe for concurrent use as
// long as its fields are not modified while running.
type Runner struct {
	Rules engine.Rules

	// Logger receives one entry per game event. Nil disables event logging.
	Logger logrus.FieldLogger
	// Metrics records finished runs. Nil disables metrics.
	Metrics *Metrics
	// OnGameEnd, if set, is called with every outcome.
	OnGameEnd OnGameEndFunc
}

// NewRunner returns a runner for rules with no logger or metrics.
func NewRunner(rules engine.Rules) *Runner {
	return &Runner{Rules: rules}
}

// RunOne plays a single game to completion with the given seed.
func (r *Runner) RunOne(ctx context.Context, seed uint64) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	id := uuid.New()
	opts := engine.Options{Seed: seed}
	if r.Logger != nil {
		opts.Observer = NewLogObserver(r.Logger, id.String())
	}

	g, err := engine.NewGame(r.Rules, opts)
	if err != nil {
		return Outcome{}, fmt.Errorf("run %s: %w", id, err)
	}
	res, err := g.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("run %s: %w", id, err)
	}

	o := Outcome{RunID: id, Seed: seed, Result: res}
	if r.Metrics != nil {
		r.Metrics.Observe(o)
	}
	if r.OnGameEnd != nil {
		r.OnGameEnd(o)
	}
	return o, nil
}
