package engine

import (
	"math"
	"slices"
	"testing"

	"github.com/jason-s-yu/werewolf/engine/belief"
	"github.com/jason-s-yu/werewolf/engine/role"
)

const (
	W = role.Werewolf
	V = role.Villager
	S = role.Seer
	X = role.Witch
	H = role.Hunter
	I = role.Idiot
)

// tenAgents is the four-werewolf ten-agent roster: wolves 0-3, villagers 4-7,
// the seer at 8 and the witch at 9.
var tenAgents = []role.Role{W, W, W, W, V, V, V, V, S, X}

// newTestGame builds a game with a fixed role assignment. Election is off
// unless election is true.
func newTestGame(t *testing.T, roles []role.Role, election bool) (*Game, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	rules := DefaultRules()
	rules.LeaderElection = election
	g, err := NewGame(rules, Options{Seed: 7, Observer: rec, Roles: roles})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g, rec
}

// suspect makes observer certain that target is a werewolf.
func suspect(g *Game, observer, target int) {
	g.Agent(observer).Beliefs.MarkCertain(target, role.Werewolf)
}

// checkBeliefs fails unless every belief of every agent is either normalized
// or carries no information.
func checkBeliefs(t *testing.T, g *Game) {
	t.Helper()
	for _, a := range g.Agents() {
		for _, id := range a.Beliefs.Targets() {
			d := a.Beliefs.Get(id)
			for _, v := range d {
				if v < 0 {
					t.Fatalf("agent %d about %d: negative entry in %s", a.ID, id, d)
				}
			}
			if d.Informative() && math.Abs(d.Sum()-1) > belief.Tolerance {
				t.Fatalf("agent %d about %d: sum = %v, want 1 (%s)", a.ID, id, d.Sum(), d)
			}
		}
	}
}

// mustRun runs one night and one day, failing on either error.
func mustRun(t *testing.T, g *Game) {
	t.Helper()
	if err := g.RunNight(); err != nil {
		t.Fatalf("RunNight failed: %v", err)
	}
	if err := g.RunDay(); err != nil {
		t.Fatalf("RunDay failed: %v", err)
	}
}

// eventIndex returns the position of the first recorded event matching
// typ, actor and target, or -1.
func eventIndex(rec *Recorder, typ EventType, actor, target int) int {
	for i, ev := range rec.Events {
		if ev.Type == typ && ev.Actor == actor && ev.Target == target {
			return i
		}
	}
	return -1
}

// firstByActor returns the position of the first recorded event of type typ
// emitted by actor, or -1.
func firstByActor(rec *Recorder, typ EventType, actor int) int {
	for i, ev := range rec.Events {
		if ev.Type == typ && ev.Actor == actor {
			return i
		}
	}
	return -1
}

func approx(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func ids(agents []*Agent) []int {
	out := make([]int, len(agents))
	for i, a := range agents {
		out[i] = a.ID
	}
	return out
}

func oneOf(got int, want ...int) bool { return slices.Contains(want, got) }
