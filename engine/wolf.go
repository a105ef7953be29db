package engine

import "github.com/jason-s-yu/werewolf/engine/role"

type wolfPolicy struct {
	basePolicy
}

// ChooseNightTarget scores every living non-teammate with KillPriority and
// takes the best, ties random. The badge-flow target is spared unless it is
// the only candidate.
func (p *wolfPolicy) ChooseNightTarget(g *Game, self *Agent) int {
	cands := g.candidates(func(a *Agent) bool { return a.Role != role.Werewolf })
	if spared := g.withoutBadgeFlow(cands); len(spared) > 0 {
		cands = spared
	}
	return g.pickMax(cands, func(a *Agent) float64 { return KillPriority(self, a) })
}

// ChooseSuccessor passes the badge to a random living teammate.
func (p *wolfPolicy) ChooseSuccessor(g *Game, self *Agent) int {
	mates := g.candidates(func(a *Agent) bool { return a.ID != self.ID && a.Role == role.Werewolf })
	if len(mates) == 0 {
		return p.basePolicy.ChooseSuccessor(g, self)
	}
	return g.pickRandom(mates)
}
