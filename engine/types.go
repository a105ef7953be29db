package engine

import (
	"fmt"

	"github.com/jason-s-yu/werewolf/engine/belief"
	"github.com/jason-s-yu/werewolf/engine/role"
)

// NoAgent marks the absence of an agent: a declined decision, an empty
// night-record slot, or no current leader.
const NoAgent = -1

// Agent is one participant. Its role is fixed at setup; Beliefs and Policy are
// owned exclusively by the agent.
type Agent struct {
	ID   int
	Role role.Role

	Alive  bool
	Leader bool

	// Transient status.
	Poisoned      bool // killed by poison; disables the hunter's shot
	Saved         bool // protected by the witch during the most recent night
	ConfirmedGood bool // publicly vouched good by the seer or the witch
	Revealed      bool // has publicly revealed its own role

	Beliefs *belief.Map
	Policy  Policy
}

func (a *Agent) String() string {
	status := "alive"
	if !a.Alive {
		status = "dead"
	}
	leader := ""
	if a.Leader {
		leader = " [leader]"
	}
	return fmt.Sprintf("agent %d (%s) %s%s", a.ID, a.Role, status, leader)
}

// NightRecord holds the decisions made during one night. Nothing in it is
// applied to the roster until the following day resolves it.
type NightRecord struct {
	Kill    int // werewolf target
	Checker int // seer that checked
	Check   int // seer target
	Save    int // witch antidote target
	Poison  int // witch poison target
}

func emptyNight() NightRecord {
	return NightRecord{Kill: NoAgent, Checker: NoAgent, Check: NoAgent, Save: NoAgent, Poison: NoAgent}
}

// Cause is why an agent died.
type Cause uint8

const (
	CauseWolf   Cause = iota // 0: night kill
	CausePoison              // 1: witch poison
	CauseVote                // 2: day execution
	CauseShot                // 3: hunter retaliation
)

func (c Cause) String() string {
	switch c {
	case CauseWolf:
		return "wolf"
	case CausePoison:
		return "poison"
	case CauseVote:
		return "vote"
	case CauseShot:
		return "shot"
	default:
		return "unknown"
	}
}

// Death records one death in the order it happened.
type Death struct {
	Agent int
	Role  role.Role
	Cause Cause
	Day   int
	By    int // hunter for CauseShot, NoAgent otherwise
}

// Result summarizes a finished game.
type Result struct {
	Winner    role.Faction
	Days      int
	Roles     []role.Role
	Deaths    []Death
	Survivors []int
}
