package engine

import (
	"slices"

	"github.com/jason-s-yu/werewolf/engine/role"
)

// Candidate filtering and selection shared by the policies. Every selector
// returns NoAgent when its candidate set is empty, and breaks ties uniformly
// at random with the game's random source.

// candidates returns the living agents accepted by keep, in id order.
func (g *Game) candidates(keep func(a *Agent) bool) []*Agent {
	var out []*Agent
	for _, a := range g.agents {
		if a.Alive && (keep == nil || keep(a)) {
			out = append(out, a)
		}
	}
	return out
}

// othersAlive returns the living agents other than self.
func (g *Game) othersAlive(self *Agent) []*Agent {
	return g.candidates(func(a *Agent) bool { return a.ID != self.ID })
}

// pickRandom returns a uniformly random candidate id.
func (g *Game) pickRandom(cands []*Agent) int {
	if len(cands) == 0 {
		return NoAgent
	}
	return cands[g.rng.IntN(len(cands))].ID
}

// pickMax returns the candidate with the highest score; co-maximal
// candidates are chosen among uniformly at random.
func (g *Game) pickMax(cands []*Agent, score func(a *Agent) float64) int {
	if len(cands) == 0 {
		return NoAgent
	}
	var best []*Agent
	bestScore := 0.0
	for _, a := range cands {
		s := score(a)
		switch {
		case len(best) == 0 || s > bestScore:
			best = append(best[:0], a)
			bestScore = s
		case s == bestScore:
			best = append(best, a)
		}
	}
	return g.pickRandom(best)
}

// pickMostSuspect returns the candidate observer believes most likely to be
// a werewolf.
func (g *Game) pickMostSuspect(observer *Agent, cands []*Agent) int {
	return g.pickMax(cands, func(a *Agent) float64 {
		return observer.Beliefs.Prob(a.ID, role.Werewolf)
	})
}

// withoutBadgeFlow drops the current badge-flow target from cands.
func (g *Game) withoutBadgeFlow(cands []*Agent) []*Agent {
	t := g.BadgeFlowTarget()
	if t == NoAgent {
		return cands
	}
	out := make([]*Agent, 0, len(cands))
	for _, a := range cands {
		if a.ID != t {
			out = append(out, a)
		}
	}
	return out
}

// anyInformative reports whether observer holds information on any candidate.
func anyInformative(observer *Agent, cands []*Agent) bool {
	for _, a := range cands {
		if observer.Beliefs.Informative(a.ID) {
			return true
		}
	}
	return false
}

// tallyMax returns the keys of tally holding the maximal value, in ascending
// order. Ballots and wolf proposals are tallied with it.
func tallyMax[V int | float64](tally map[int]V) []int {
	var (
		best  []int
		top   V
		found bool
	)
	for id, v := range tally {
		switch {
		case !found || v > top:
			best = append(best[:0], id)
			top = v
			found = true
		case v == top:
			best = append(best, id)
		}
	}
	slices.Sort(best)
	return best
}
