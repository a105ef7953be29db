// Package belief implements the per-agent belief store: for every other
// agent, a probability distribution over the role that agent might hold.
package belief

import (
	"fmt"
	"strings"

	"github.com/jason-s-yu/werewolf/engine/role"
)

// Tolerance is the slack allowed when checking that a distribution sums to 1.
const Tolerance = 1e-9

// ContradictionMass is the removed mass at or above which RuleOut treats the
// update as a contradiction instead of renormalizing.
const ContradictionMass = 0.999

// CertainThreshold is the probability at which a belief counts as known.
const CertainThreshold = 0.99

// Distribution is a probability distribution over roles, indexed by role.Role.
// It is a value type: every operation returns a new distribution and leaves
// the receiver untouched. The zero value carries no information.
type Distribution [role.NumRoles]float64

// Certain returns the degenerate distribution {r: 1.0}.
func Certain(r role.Role) Distribution {
	var d Distribution
	if r.Valid() {
		d[r] = 1
	}
	return d
}

// FromCounts returns the uniform-by-count distribution over a role multiset:
// each role gets count/total. An empty multiset yields the zero distribution.
func FromCounts(p role.Population) Distribution {
	var d Distribution
	total := p.Total()
	if total <= 0 {
		return d
	}
	for _, r := range role.All {
		if p[r] > 0 {
			d[r] = float64(p[r]) / float64(total)
		}
	}
	return d
}

// P returns the probability assigned to r.
func (d Distribution) P(r role.Role) float64 {
	if !r.Valid() {
		return 0
	}
	return d[r]
}

// Sum returns the total mass.
func (d Distribution) Sum() float64 {
	s := 0.0
	for _, v := range d {
		s += v
	}
	return s
}

// Informative reports whether any entry is non-zero. A missing target and an
// all-zero distribution are the same thing: no information.
func (d Distribution) Informative() bool {
	for _, v := range d {
		if v != 0 {
			return true
		}
	}
	return false
}

// Normalized reports whether d is informative and sums to 1 within Tolerance.
func (d Distribution) Normalized() bool {
	if !d.Informative() {
		return false
	}
	s := d.Sum()
	return s > 1-Tolerance && s < 1+Tolerance
}

// Without removes r's mass and rescales the remaining entries by the
// pre-removal remaining total so they sum to 1 again.
//
// When r held ContradictionMass or more, the entry is zeroed and the rest is
// left as is; contradiction is then true. Nothing is re-derived from a prior.
func (d Distribution) Without(r role.Role) (out Distribution, contradiction bool) {
	out = d
	if !r.Valid() {
		return out, false
	}
	removed := d[r]
	if removed >= ContradictionMass {
		out[r] = 0
		return out, true
	}
	out[r] = 0
	rest := 1 - removed
	if sum := out.Sum(); sum > 0 {
		rest = sum
	}
	if rest <= 0 {
		return out, false
	}
	for i := range out {
		out[i] /= rest
	}
	return out, false
}

// Known returns the role held at CertainThreshold or above, if any.
func (d Distribution) Known() (role.Role, bool) {
	for _, r := range role.All {
		if d[r] >= CertainThreshold {
			return r, true
		}
	}
	return 0, false
}

func (d Distribution) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for _, r := range role.All {
		if d[r] == 0 {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s: %.3f", r, d[r])
	}
	b.WriteByte('}')
	return b.String()
}
