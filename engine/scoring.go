package engine

import "github.com/jason-s-yu/werewolf/engine/role"

// Night-kill priority weights. Role beliefs are scaled by their weight; the
// status bonuses are flat.
const (
	WeightSeer     = 100.0 // informed checker
	WeightWitch    = 50.0  // saver/poisoner
	WeightSpecial  = 25.0  // hunter, idiot
	BonusVouched   = 10.0  // publicly vouched good by the seer or the witch
	BonusProtected = 6.0   // saved by the witch last night
	BonusLeader    = 4.0   // currently holds the badge
)

const (
	// PoisonConfidence is the werewolf belief the witch must exceed to poison.
	PoisonConfidence = 0.25
	// CandidacyThreshold is the candidacy above which an agent runs for leader.
	CandidacyThreshold = 0.5
)

// KillPriority scores target from a werewolf's point of view.
func KillPriority(wolf, target *Agent) float64 {
	d := wolf.Beliefs.Get(target.ID)
	s := WeightSeer*d.P(role.Seer) +
		WeightWitch*d.P(role.Witch) +
		WeightSpecial*(d.P(role.Hunter)+d.P(role.Idiot))
	if target.ConfirmedGood {
		s += BonusVouched
	}
	if target.Saved {
		s += BonusProtected
	}
	if target.Leader {
		s += BonusLeader
	}
	return s
}

// ballotWeight returns how much voter's ballot counts.
func (g *Game) ballotWeight(voter *Agent) float64 {
	if voter.Leader {
		return g.rules.leaderWeight()
	}
	return 1
}
