package sim

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/werewolf/engine"
)

// NewLogger builds a logrus logger writing to w at the given level and
// format ("text" or "json").
func NewLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	switch strings.ToLower(format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return l, nil
}

// LogObserver writes every game event as one structured log entry tagged
// with the run id.
type LogObserver struct {
	entry *logrus.Entry
}

// NewLogObserver returns an observer logging to l under run id runID.
func NewLogObserver(l logrus.FieldLogger, runID string) *LogObserver {
	return &LogObserver{entry: l.WithField("run", runID)}
}

// Observe implements engine.Observer.
func (o *LogObserver) Observe(ev engine.Event) {
	fields := logrus.Fields{
		"day":   ev.Day,
		"phase": Phase(ev.Type),
	}
	if ev.Actor != engine.NoAgent {
		fields["actor"] = ev.Actor
	}
	if ev.Target != engine.NoAgent {
		fields["target"] = ev.Target
	}
	if ev.HasRole() {
		fields["role"] = ev.Role.String()
	}

	switch ev.Type {
	case engine.EventDeath:
		fields["cause"] = ev.Cause.String()
	case engine.EventVote:
		fields["weight"] = ev.Weight
	case engine.EventVoteTally:
		fields["tally"] = formatTally(ev.Tally)
	case engine.EventExecution:
		fields["survived"] = ev.Survived
	case engine.EventGameOver:
		fields["winner"] = ev.Winner.String()
	}

	e := o.entry.WithFields(fields)
	if ev.Type == engine.EventContradiction {
		e.Warn(string(ev.Type))
		return
	}
	e.Info(string(ev.Type))
}

// Phase names the part of the game an event belongs to.
func Phase(t engine.EventType) string {
	switch t {
	case engine.EventGameStart, engine.EventRoleAssigned:
		return "setup"
	case engine.EventNightStart, engine.EventWolfVote, engine.EventWolfKill,
		engine.EventSeerCheck, engine.EventWitchSave, engine.EventWitchPoison:
		return "night"
	case engine.EventGameOver:
		return "end"
	default:
		return "day"
	}
}

// formatTally renders a vote tally as "id=weight" pairs in id order.
func formatTally(tally map[int]float64) string {
	ids := make([]int, 0, len(tally))
	for id := range tally {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d=%g", id, tally[id])
	}
	return strings.Join(parts, " ")
}
