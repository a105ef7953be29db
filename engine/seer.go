package engine

import "github.com/jason-s-yu/werewolf/engine/role"

// seerPolicy is the informed checker. It checks one agent per night, shares
// its verdicts by day, and as leader announces its next check in advance
// (badge flow).
type seerPolicy struct {
	basePolicy
	checked    []int        // in check order
	verdicts   map[int]bool // target -> is werewolf
	published  int          // prefix of checked already shared
	commitment int          // announced future check, NoAgent when none
	resolved   int          // last commitment that was checked, NoAgent when none
}

func (p *seerPolicy) Candidacy() float64 { return 1 }

func (p *seerPolicy) BadgeFlowTarget() int { return p.commitment }

func (p *seerPolicy) wasChecked(id int) bool {
	_, ok := p.verdicts[id]
	return ok
}

// ChooseCheckTarget honors an unresolved commitment first, then picks the
// most suspected living agent not yet checked.
func (p *seerPolicy) ChooseCheckTarget(g *Game, self *Agent) int {
	if p.commitment != NoAgent && g.isAlive(p.commitment) && !p.wasChecked(p.commitment) {
		return p.commitment
	}
	return g.pickMostSuspect(self, p.unchecked(g, self))
}

func (p *seerPolicy) unchecked(g *Game, self *Agent) []*Agent {
	return g.candidates(func(a *Agent) bool { return a.ID != self.ID && !p.wasChecked(a.ID) })
}

func (p *seerPolicy) OnCheckResult(_ *Game, _ *Agent, target int, f role.Faction) {
	if p.verdicts == nil {
		p.verdicts = make(map[int]bool)
	}
	if !p.wasChecked(target) {
		p.checked = append(p.checked, target)
	}
	p.verdicts[target] = f == role.Werewolves
	if target == p.commitment {
		p.commitment = NoAgent
		p.resolved = target
	}
}

// ShareInformation reveals the seer, then publishes every verdict not yet
// shared: werewolves are accused, everyone else is vouched for. As leader it
// then announces its next check target.
func (p *seerPolicy) ShareInformation(g *Game, self *Agent) {
	if !self.Revealed {
		g.Reveal(self)
	}
	p.publish(g, self)

	if !self.Leader {
		return
	}
	if p.commitment != NoAgent && g.isAlive(p.commitment) && !p.wasChecked(p.commitment) {
		return
	}
	p.commitment = g.pickMostSuspect(self, p.unchecked(g, self))
	if p.commitment != NoAgent {
		g.emit(Event{Type: EventBadgeFlow, Actor: self.ID, Target: p.commitment})
	}
}

// Vote is the suspicion vote without the badge-flow exclusion: the seer may
// vote for its own pending target.
func (p *seerPolicy) Vote(g *Game, self *Agent) int {
	return suspicionVote(g, self, false)
}

// publish accuses or vouches for every checked agent not yet shared.
func (p *seerPolicy) publish(g *Game, self *Agent) {
	for _, t := range p.checked[p.published:] {
		p.published++
		if p.verdicts[t] {
			g.Accuse(self, t)
			continue
		}
		g.Vouch(self, t)
	}
}

// ChooseSuccessor settles a pending commitment with a last check, then
// publishes every verdict not yet shared. The badge goes to the most recently
// resolved commitment when it is alive and good, else to a random agent the
// seer verified good, else to a random living agent not known to be a
// werewolf.
func (p *seerPolicy) ChooseSuccessor(g *Game, self *Agent) int {
	if t := p.commitment; t != NoAgent && g.isAlive(t) {
		p.OnCheckResult(g, self, t, g.agents[t].Role.Faction())
	}
	p.commitment = NoAgent
	p.publish(g, self)

	if t := p.resolved; t != NoAgent && g.isAlive(t) && !p.verdicts[t] {
		return t
	}
	good := g.candidates(func(a *Agent) bool {
		verdict, ok := p.verdicts[a.ID]
		return ok && !verdict
	})
	if len(good) > 0 {
		return g.pickRandom(good)
	}
	notWolf := g.candidates(func(a *Agent) bool { return a.ID != self.ID && !p.verdicts[a.ID] })
	if len(notWolf) > 0 {
		return g.pickRandom(notWolf)
	}
	return p.basePolicy.ChooseSuccessor(g, self)
}
