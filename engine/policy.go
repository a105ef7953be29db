package engine

import "github.com/jason-s-yu/werewolf/engine/role"

// Policy is the decision capability set of one role. Each agent gets its own
// instance at setup; it holds only role-private state (spent resources,
// check history, a pending commitment) and never game-wide state.
//
// Operations a role does not use fall back to basePolicy: no action for
// night abilities, the suspicion vote, a random successor.
type Policy interface {
	Role() role.Role

	// Candidacy is the propensity to run for leader; above 0.5 runs.
	Candidacy() float64

	// ChooseNightTarget proposes a werewolf kill target.
	ChooseNightTarget(g *Game, self *Agent) int
	// ChooseCheckTarget picks the agent the seer inspects tonight.
	ChooseCheckTarget(g *Game, self *Agent) int
	// OnCheckResult tells the seer the alignment of the agent it checked.
	OnCheckResult(g *Game, self *Agent, target int, f role.Faction)
	// ChooseSave decides whether to spend the antidote on victim.
	ChooseSave(g *Game, self *Agent, victim int) bool
	// ChoosePoisonTarget picks a poison target, spending the poison.
	ChoosePoisonTarget(g *Game, self *Agent) int

	// Vote casts the day ballot.
	Vote(g *Game, self *Agent) int
	// ChooseSuccessor hands the leader badge on when self dies as leader.
	ChooseSuccessor(g *Game, self *Agent) int
	// OnDeath runs when self dies and returns an agent to take along, or NoAgent.
	OnDeath(g *Game, self *Agent) int
	// ShareInformation publishes what self is willing to reveal.
	ShareInformation(g *Game, self *Agent)
	// HandleVoteExecution reports whether self dies from being voted out.
	HandleVoteExecution(g *Game, self *Agent) bool

	// BadgeFlowTarget returns the announced future-check target, or NoAgent.
	BadgeFlowTarget() int
}

// NewPolicy returns a fresh policy for r.
func NewPolicy(r role.Role) Policy {
	switch r {
	case role.Werewolf:
		return &wolfPolicy{basePolicy: basePolicy{role: r}}
	case role.Seer:
		return &seerPolicy{basePolicy: basePolicy{role: r}, commitment: NoAgent, resolved: NoAgent}
	case role.Witch:
		return &witchPolicy{basePolicy: basePolicy{role: r}, antidote: true, poison: true}
	case role.Hunter:
		return &hunterPolicy{basePolicy: basePolicy{role: r}}
	case role.Idiot:
		return &idiotPolicy{basePolicy: basePolicy{role: r}}
	default:
		return &basePolicy{role: r}
	}
}

// basePolicy carries the default behavior. Villagers use it unchanged.
type basePolicy struct {
	role role.Role
}

func (p *basePolicy) Role() role.Role { return p.role }

func (p *basePolicy) Candidacy() float64 { return 0 }

func (p *basePolicy) ChooseNightTarget(*Game, *Agent) int { return NoAgent }

func (p *basePolicy) ChooseCheckTarget(*Game, *Agent) int { return NoAgent }

func (p *basePolicy) OnCheckResult(*Game, *Agent, int, role.Faction) {}

func (p *basePolicy) ChooseSave(*Game, *Agent, int) bool { return false }

func (p *basePolicy) ChoosePoisonTarget(*Game, *Agent) int { return NoAgent }

// Vote picks the living agent with the highest believed werewolf
// probability. Non-werewolves skip the badge-flow target.
func (p *basePolicy) Vote(g *Game, self *Agent) int {
	return suspicionVote(g, self, p.role != role.Werewolf)
}

// ChooseSuccessor picks a uniformly random living agent.
func (p *basePolicy) ChooseSuccessor(g *Game, self *Agent) int {
	return g.pickRandom(g.othersAlive(self))
}

func (p *basePolicy) OnDeath(*Game, *Agent) int { return NoAgent }

func (p *basePolicy) ShareInformation(*Game, *Agent) {}

func (p *basePolicy) HandleVoteExecution(*Game, *Agent) bool { return true }

func (p *basePolicy) BadgeFlowTarget() int { return NoAgent }

// suspicionVote is the generic ballot: the most suspected other living agent,
// ties random, falling back to a random other living agent when self has no
// information on any candidate.
func suspicionVote(g *Game, self *Agent, skipBadgeFlow bool) int {
	others := g.othersAlive(self)
	cands := others
	if skipBadgeFlow {
		cands = g.withoutBadgeFlow(others)
	}
	if len(cands) == 0 || !anyInformative(self, cands) {
		return g.pickRandom(others)
	}
	return g.pickMostSuspect(self, cands)
}
