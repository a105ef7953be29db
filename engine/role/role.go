// Package role defines the role and faction enums shared by the engine and
// the belief store, plus the population multiset drawn at setup.
package role

import (
	"fmt"
	"strings"
)

// Role is the hidden role type bound to an agent for the whole game.
type Role uint8

const (
	Werewolf Role = iota // 0: aggressive faction, kills at night
	Villager             // 1: uninformed majority, no ability
	Seer                 // 2: checks one agent's alignment per night
	Witch                // 3: one antidote, one poison
	Hunter               // 4: shoots on death unless poisoned
	Idiot                // 5: survives the first vote-out by revealing

	NumRoles = 6
)

// All lists every role in enum order.
var All = [NumRoles]Role{Werewolf, Villager, Seer, Witch, Hunter, Idiot}

var roleNames = [NumRoles]string{"werewolf", "villager", "seer", "witch", "hunter", "idiot"}

func (r Role) String() string {
	if int(r) < NumRoles {
		return roleNames[r]
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool { return int(r) < NumRoles }

// Faction returns the side the role wins with.
func (r Role) Faction() Faction {
	if r == Werewolf {
		return Werewolves
	}
	return Village
}

// IsSpecial reports whether the role is one of the informed or special
// village roles (everything except Werewolf and Villager).
func (r Role) IsSpecial() bool { return r != Werewolf && r != Villager && r.Valid() }

// Parse maps a role name (case-insensitive) to a Role.
func Parse(name string) (Role, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range roleNames {
		if s == n {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", name)
}

// Faction is a winning side.
type Faction uint8

const (
	NoFaction  Faction = iota // 0: undecided or draw
	Werewolves                // 1: aggressive faction
	Village                   // 2: majority faction
)

func (f Faction) String() string {
	switch f {
	case Werewolves:
		return "werewolves"
	case Village:
		return "village"
	default:
		return "none"
	}
}
