package role

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidPopulation indicates a population that cannot start a game.
var ErrInvalidPopulation = errors.New("invalid population")

// Population is the role multiset: Population[r] is how many agents hold r.
type Population [NumRoles]int

// Total returns the number of agents in the population.
func (p Population) Total() int {
	n := 0
	for _, c := range p {
		n += c
	}
	return n
}

// Count returns the number of agents holding r.
func (p Population) Count(r Role) int {
	if !r.Valid() {
		return 0
	}
	return p[r]
}

// Without returns a copy with one instance of r removed (never below zero).
func (p Population) Without(r Role) Population {
	if r.Valid() && p[r] > 0 {
		p[r]--
	}
	return p
}

// WithoutAll returns a copy with every instance of r removed.
func (p Population) WithoutAll(r Role) Population {
	if r.Valid() {
		p[r] = 0
	}
	return p
}

// Expand lists one entry per agent in enum order, ready to be shuffled.
func (p Population) Expand() []Role {
	out := make([]Role, 0, p.Total())
	for _, r := range All {
		for i := 0; i < p[r]; i++ {
			out = append(out, r)
		}
	}
	return out
}

// Validate rejects populations that are empty, carry negative counts, or have
// no member of the majority side.
func (p Population) Validate() error {
	for _, r := range All {
		if p[r] < 0 {
			return fmt.Errorf("%w: negative count %d for %s", ErrInvalidPopulation, p[r], r)
		}
	}
	total := p.Total()
	if total == 0 {
		return fmt.Errorf("%w: counts sum to zero", ErrInvalidPopulation)
	}
	if total-p[Werewolf] == 0 {
		return fmt.Errorf("%w: no majority faction member", ErrInvalidPopulation)
	}
	return nil
}

// FromCounts builds a Population from role names, as found in config files.
func FromCounts(counts map[string]int) (Population, error) {
	var p Population
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r, err := Parse(name)
		if err != nil {
			return p, fmt.Errorf("%w: %v", ErrInvalidPopulation, err)
		}
		p[r] += counts[name]
	}
	return p, nil
}

// Counts is the inverse of FromCounts; roles with a zero count are omitted.
func (p Population) Counts() map[string]int {
	out := make(map[string]int, NumRoles)
	for _, r := range All {
		if p[r] != 0 {
			out[r.String()] = p[r]
		}
	}
	return out
}

// Default is the twelve-agent population: 4 werewolves, 4 villagers and one
// each of seer, witch, hunter and idiot.
func Default() Population {
	return Population{
		Werewolf: 4,
		Villager: 4,
		Seer:     1,
		Witch:    1,
		Hunter:   1,
		Idiot:    1,
	}
}
