package engine

import "github.com/jason-s-yu/werewolf/engine/role"

// witchPolicy holds one antidote and one poison for the whole game. At most
// one of them is used per night.
type witchPolicy struct {
	basePolicy
	antidote  bool
	poison    bool
	protected []int // agents saved, in order
}

// ChooseSave always spends the antidote on tonight's victim while it lasts.
// The saved agent cannot be a werewolf in the witch's own eyes.
func (p *witchPolicy) ChooseSave(g *Game, self *Agent, victim int) bool {
	if !p.antidote || victim == NoAgent {
		return false
	}
	p.antidote = false
	p.protected = append(p.protected, victim)
	g.ruleOut(self, victim, role.Werewolf)
	return true
}

// ChoosePoisonTarget poisons the most suspected other agent once the
// suspicion exceeds PoisonConfidence.
func (p *witchPolicy) ChoosePoisonTarget(g *Game, self *Agent) int {
	if !p.poison {
		return NoAgent
	}
	t := g.pickMostSuspect(self, g.othersAlive(self))
	if t == NoAgent || self.Beliefs.Prob(t, role.Werewolf) <= PoisonConfidence {
		return NoAgent
	}
	p.poison = false
	return t
}

// ShareInformation publishes every agent the witch has saved. Doing so
// reveals the witch herself.
func (p *witchPolicy) ShareInformation(g *Game, self *Agent) {
	if len(p.protected) == 0 {
		return
	}
	if !self.Revealed {
		g.Reveal(self)
	}
	for _, t := range p.protected {
		if t != self.ID {
			g.Vouch(self, t)
		}
	}
}

// ChooseSuccessor prefers a living agent the witch has saved.
func (p *witchPolicy) ChooseSuccessor(g *Game, self *Agent) int {
	saved := g.candidates(func(a *Agent) bool {
		for _, t := range p.protected {
			if t == a.ID && a.ID != self.ID {
				return true
			}
		}
		return false
	})
	if len(saved) > 0 {
		return g.pickRandom(saved)
	}
	return p.basePolicy.ChooseSuccessor(g, self)
}
