package belief

import (
	"sort"

	"github.com/jason-s-yu/werewolf/engine/role"
)

// Map holds one observer's beliefs about every agent in the game, keyed by
// agent id. The observer's belief about itself is fixed at construction to the
// degenerate distribution on its true role and is never updated afterward.
type Map struct {
	self     int
	selfRole role.Role
	beliefs  map[int]Distribution
}

// NewMap returns a map for observer self holding selfRole, with only the
// self-belief populated.
func NewMap(self int, selfRole role.Role) *Map {
	m := &Map{
		self:     self,
		selfRole: selfRole,
		beliefs:  make(map[int]Distribution),
	}
	m.beliefs[self] = Certain(selfRole)
	return m
}

// Initialize builds the starting beliefs for observer self.
//
// roles[i] is the true role of agent i; it is consulted only to let werewolves
// recognize their teammates. Werewolves hold {werewolf: 1} for teammates and
// a uniform-by-count distribution over the non-werewolf multiset for everyone
// else. Every other role holds a uniform-by-count distribution over the full
// population minus one instance of its own role.
func Initialize(self int, roles []role.Role, pop role.Population) *Map {
	selfRole := roles[self]
	m := NewMap(self, selfRole)

	var others Distribution
	if selfRole == role.Werewolf {
		others = FromCounts(pop.WithoutAll(role.Werewolf))
	} else {
		others = FromCounts(pop.Without(selfRole))
	}

	for id, r := range roles {
		if id == self {
			continue
		}
		if selfRole == role.Werewolf && r == role.Werewolf {
			m.beliefs[id] = Certain(role.Werewolf)
			continue
		}
		m.beliefs[id] = others
	}
	return m
}

// Self returns the observer id.
func (m *Map) Self() int { return m.self }

// Get returns the distribution held for target. Absent targets yield the zero
// distribution.
func (m *Map) Get(target int) Distribution { return m.beliefs[target] }

// Prob returns the probability that target holds r.
func (m *Map) Prob(target int, r role.Role) float64 { return m.beliefs[target].P(r) }

// Informative reports whether the observer has any information on target.
func (m *Map) Informative(target int) bool { return m.beliefs[target].Informative() }

// Set replaces the distribution held for target. Self-updates are ignored.
func (m *Map) Set(target int, d Distribution) {
	if target == m.self {
		return
	}
	m.beliefs[target] = d
}

// MarkCertain replaces target's distribution with {r: 1}. Later calls win,
// including contradictory ones.
func (m *Map) MarkCertain(target int, r role.Role) {
	m.Set(target, Certain(r))
}

// RuleOut removes r from target's distribution and renormalizes. It reports
// whether the removal hit the contradiction path (see Distribution.Without).
// Targets without information are left untouched.
func (m *Map) RuleOut(target int, r role.Role) (contradiction bool) {
	if target == m.self {
		return false
	}
	d, ok := m.beliefs[target]
	if !ok || !d.Informative() {
		return false
	}
	d, contradiction = d.Without(r)
	m.beliefs[target] = d
	return contradiction
}

// Known returns the role the observer holds for target at CertainThreshold or
// above, if any.
func (m *Map) Known(target int) (role.Role, bool) { return m.beliefs[target].Known() }

// Targets returns every agent id with an entry, in ascending order.
func (m *Map) Targets() []int {
	ids := make([]int, 0, len(m.beliefs))
	for id := range m.beliefs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
