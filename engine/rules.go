package engine

import (
	"fmt"
	"strings"

	"github.com/jason-s-yu/werewolf/engine/role"
)

// WinRule selects how the terminal condition is evaluated.
type WinRule uint8

const (
	// WinDominance: village wins when no werewolf lives; werewolves win when
	// living werewolves are at least as many as everyone else alive.
	WinDominance WinRule = iota
	// WinSlaughter: village wins when no werewolf lives; werewolves win when
	// every villager or every special role present at setup is dead.
	WinSlaughter
)

func (w WinRule) String() string {
	switch w {
	case WinDominance:
		return "dominance"
	case WinSlaughter:
		return "slaughter"
	default:
		return fmt.Sprintf("winrule(%d)", uint8(w))
	}
}

// ParseWinRule maps "dominance" or "slaughter" to a WinRule. The empty string
// is dominance.
func ParseWinRule(s string) (WinRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dominance":
		return WinDominance, nil
	case "slaughter":
		return WinSlaughter, nil
	default:
		return 0, fmt.Errorf("unknown win rule %q", s)
	}
}

// DefaultLeaderVoteWeight is the ballot weight of the leader.
const DefaultLeaderVoteWeight = 1.5

// Rules holds the game configuration. It is read once at setup.
type Rules struct {
	Population       role.Population
	LeaderElection   bool
	WinRule          WinRule
	LeaderVoteWeight float64 // 0 = DefaultLeaderVoteWeight
	MaxDays          int     // 0 = unlimited
}

// DefaultRules returns the standard twelve-agent game with election enabled.
func DefaultRules() Rules {
	return Rules{
		Population:       role.Default(),
		LeaderElection:   true,
		WinRule:          WinDominance,
		LeaderVoteWeight: DefaultLeaderVoteWeight,
		MaxDays:          0,
	}
}

// Validate rejects rules the engine cannot run.
func (r *Rules) Validate() error {
	if err := r.Population.Validate(); err != nil {
		return err
	}
	if r.WinRule > WinSlaughter {
		return fmt.Errorf("invalid win rule %d", r.WinRule)
	}
	if r.LeaderVoteWeight < 0 {
		return fmt.Errorf("leader vote weight must be non-negative, got %v", r.LeaderVoteWeight)
	}
	if r.MaxDays < 0 {
		return fmt.Errorf("max days must be non-negative, got %d", r.MaxDays)
	}
	return nil
}

func (r *Rules) leaderWeight() float64 {
	if r.LeaderVoteWeight == 0 {
		return DefaultLeaderVoteWeight
	}
	return r.LeaderVoteWeight
}
