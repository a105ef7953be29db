// Package engine implements a hidden-role werewolf simulation.
//
// A Game owns the roster, the leader slot and the day counter, and drives
// alternating night and day phases until a faction wins. Every agent keeps a
// belief.Map over the other agents' roles and delegates its decisions to a
// role-specific Policy that reads those beliefs. All randomness comes from a
// single seeded source per game, so a fixed seed reproduces a run exactly.
package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jason-s-yu/werewolf/engine/belief"
	"github.com/jason-s-yu/werewolf/engine/role"
)

// ErrGameOver is returned when a phase is run on a finished game.
var ErrGameOver = errors.New("game is already over")

// Options carries per-run inputs that are not part of the rules.
type Options struct {
	// Seed initializes the game's random source.
	Seed uint64
	// Observer receives every event. Nil discards them.
	Observer Observer
	// Roles fixes the role of agent i to Roles[i] instead of shuffling the
	// population. Its multiset replaces Rules.Population.
	Roles []role.Role
}

// Game holds the complete state of one simulation run.
type Game struct {
	rules    Rules
	pop      role.Population
	agents   []*Agent
	day      int
	leader   int
	night    NightRecord
	winner   role.Faction
	over     bool
	deaths   []Death
	rng      *rand.Rand
	observer Observer
}

// NewGame validates the rules, assigns roles and initializes every agent's
// beliefs. A malformed population is rejected before any state is built.
func NewGame(rules Rules, opts Options) (*Game, error) {
	if opts.Roles != nil {
		var pop role.Population
		for i, r := range opts.Roles {
			if !r.Valid() {
				return nil, fmt.Errorf("%w: agent %d has unknown role %d", role.ErrInvalidPopulation, i, r)
			}
			pop[r]++
		}
		rules.Population = pop
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		rules:    rules,
		pop:      rules.Population,
		leader:   NoAgent,
		night:    emptyNight(),
		rng:      rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		observer: opts.Observer,
	}
	if g.observer == nil {
		g.observer = nopObserver{}
	}

	roles := opts.Roles
	if roles == nil {
		roles = g.pop.Expand()
		g.rng.Shuffle(len(roles), func(i, j int) { roles[i], roles[j] = roles[j], roles[i] })
	} else {
		roles = append([]role.Role(nil), roles...)
	}

	g.agents = make([]*Agent, len(roles))
	for id, r := range roles {
		g.agents[id] = &Agent{
			ID:      id,
			Role:    r,
			Alive:   true,
			Beliefs: belief.Initialize(id, roles, g.pop),
			Policy:  NewPolicy(r),
		}
	}

	g.emit(Event{Type: EventGameStart, Actor: NoAgent, Target: NoAgent})
	for _, a := range g.agents {
		g.emit(Event{Type: EventRoleAssigned, Actor: a.ID, Target: NoAgent, Role: a.Role})
	}
	return g, nil
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules { return g.rules }

// Population returns the role multiset in play.
func (g *Game) Population() role.Population { return g.pop }

// Day returns the day counter. It is incremented at the start of each night.
func (g *Game) Day() int { return g.day }

// Night returns the record of the most recent night.
func (g *Game) Night() NightRecord { return g.night }

// Leader returns the current leader id, or NoAgent.
func (g *Game) Leader() int { return g.leader }

// Winner returns the winning faction, or role.NoFaction while undecided.
func (g *Game) Winner() role.Faction { return g.winner }

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool { return g.over }

// Deaths returns every death so far, in order.
func (g *Game) Deaths() []Death { return append([]Death(nil), g.deaths...) }

// Rand returns the game's random source. Policies use it for tie-breaks so a
// fixed seed reproduces the whole run.
func (g *Game) Rand() *rand.Rand { return g.rng }

// Agent returns the agent with the given id, or nil.
func (g *Game) Agent(id int) *Agent {
	if id < 0 || id >= len(g.agents) {
		return nil
	}
	return g.agents[id]
}

// Agents returns the full roster in id order, dead agents included.
func (g *Game) Agents() []*Agent { return g.agents }

// Alive returns the living agents in ascending id order.
func (g *Game) Alive() []*Agent {
	out := make([]*Agent, 0, len(g.agents))
	for _, a := range g.agents {
		if a.Alive {
			out = append(out, a)
		}
	}
	return out
}

// isAlive reports whether id names a living agent.
func (g *Game) isAlive(id int) bool {
	a := g.Agent(id)
	return a != nil && a.Alive
}

// BadgeFlowTarget returns the future-check commitment announced by the
// current leader, or NoAgent. Only a living leader's commitment counts.
func (g *Game) BadgeFlowTarget() int {
	l := g.Agent(g.leader)
	if l == nil || !l.Alive {
		return NoAgent
	}
	t := l.Policy.BadgeFlowTarget()
	if !g.isAlive(t) {
		return NoAgent
	}
	return t
}

// Result summarizes the game so far.
func (g *Game) Result() Result {
	res := Result{
		Winner: g.winner,
		Days:   g.day,
		Roles:  make([]role.Role, len(g.agents)),
		Deaths: g.Deaths(),
	}
	for i, a := range g.agents {
		res.Roles[i] = a.Role
		if a.Alive {
			res.Survivors = append(res.Survivors, a.ID)
		}
	}
	return res
}

// ---------------------------------------------------------------------------
// Game loop
// ---------------------------------------------------------------------------

// Run alternates nights and days until a faction wins or MaxDays is reached.
func (g *Game) Run() (Result, error) {
	for !g.over {
		if g.rules.MaxDays > 0 && g.day >= g.rules.MaxDays {
			g.finish(role.NoFaction)
			break
		}
		if err := g.RunNight(); err != nil {
			return g.Result(), err
		}
		if err := g.RunDay(); err != nil {
			return g.Result(), err
		}
	}
	return g.Result(), nil
}

// ---------------------------------------------------------------------------
// Shared mutations
// ---------------------------------------------------------------------------

func (g *Game) emit(ev Event) {
	ev.Day = g.day
	g.observer.Observe(ev)
}

// kill marks id dead and records the death. It does not run succession or
// death abilities; see processDeaths.
func (g *Game) kill(id int, cause Cause, by int) {
	a := g.agents[id]
	if !a.Alive {
		return
	}
	a.Alive = false
	if cause == CausePoison {
		a.Poisoned = true
	}
	g.deaths = append(g.deaths, Death{Agent: id, Role: a.Role, Cause: cause, Day: g.day, By: by})
	g.emit(Event{Type: EventDeath, Actor: by, Target: id, Role: a.Role, Cause: cause})
}

// setLeader moves the leader badge to id (NoAgent clears it).
func (g *Game) setLeader(id int) {
	if old := g.Agent(g.leader); old != nil {
		old.Leader = false
	}
	g.leader = NoAgent
	if a := g.Agent(id); a != nil && a.Alive {
		a.Leader = true
		g.leader = id
	}
}

// Reveal publishes a's true role: every agent marks it certain.
func (g *Game) Reveal(a *Agent) {
	a.Revealed = true
	for _, l := range g.agents {
		l.Beliefs.MarkCertain(a.ID, a.Role)
	}
	g.emit(Event{Type: EventReveal, Actor: a.ID, Target: a.ID, Role: a.Role})
}

// Accuse has speaker declare target a werewolf; every agent marks it certain.
func (g *Game) Accuse(speaker *Agent, target int) {
	for _, l := range g.agents {
		l.Beliefs.MarkCertain(target, role.Werewolf)
	}
	g.emit(Event{Type: EventAccuse, Actor: speaker.ID, Target: target})
}

// Vouch has speaker declare target not a werewolf; every agent rules the
// werewolf role out for target, which is marked publicly confirmed good.
func (g *Game) Vouch(speaker *Agent, target int) {
	if a := g.Agent(target); a != nil {
		a.ConfirmedGood = true
	}
	for _, l := range g.agents {
		g.ruleOut(l, target, role.Werewolf)
	}
	g.emit(Event{Type: EventVouch, Actor: speaker.ID, Target: target})
}

// ruleOut applies a rule-out to one observer and reports contradictions.
func (g *Game) ruleOut(observer *Agent, target int, r role.Role) {
	if observer.Beliefs.RuleOut(target, r) {
		g.emit(Event{Type: EventContradiction, Actor: observer.ID, Target: target, Role: r})
	}
}

// finish ends the game with the given winner.
func (g *Game) finish(winner role.Faction) {
	if g.over {
		return
	}
	g.over = true
	g.winner = winner
	g.emit(Event{Type: EventGameOver, Actor: NoAgent, Target: NoAgent, Winner: winner})
}
