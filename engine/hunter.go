package engine

import (
	"github.com/jason-s-yu/werewolf/engine/belief"
	"github.com/jason-s-yu/werewolf/engine/role"
)

type hunterPolicy struct {
	basePolicy
}

// OnDeath shoots the most suspected living agent, sparing the badge-flow
// target. A poisoned hunter cannot shoot.
func (p *hunterPolicy) OnDeath(g *Game, self *Agent) int {
	if self.Poisoned {
		return NoAgent
	}
	return g.pickMostSuspect(self, g.withoutBadgeFlow(g.othersAlive(self)))
}

// ShareInformation reveals the hunter once it is sure the seer is dead.
func (p *hunterPolicy) ShareInformation(g *Game, self *Agent) {
	if self.Revealed {
		return
	}
	for _, id := range self.Beliefs.Targets() {
		a := g.agents[id]
		if !a.Alive && self.Beliefs.Prob(id, role.Seer) >= belief.CertainThreshold {
			g.Reveal(self)
			return
		}
	}
}
