package engine

import (
	"fmt"

	"github.com/jason-s-yu/werewolf/engine/role"
)

// RunNight advances the day counter and collects the night decisions: the
// werewolf kill, the seer check and the witch's antidote or poison. Only the
// seer's own beliefs change; everything else waits in the night record until
// RunDay resolves it.
func (g *Game) RunNight() error {
	if g.over {
		return fmt.Errorf("run night: %w", ErrGameOver)
	}
	g.day++
	g.night = emptyNight()
	g.emit(Event{Type: EventNightStart, Actor: NoAgent, Target: NoAgent})

	g.nightKill()
	// Protection from the previous night only informs tonight's kill choice.
	for _, a := range g.agents {
		a.Saved = false
	}
	g.nightCheck()
	g.nightWitch()
	return nil
}

// nightKill tallies one proposal per living werewolf; the plurality target
// is marked for death, ties broken at random.
func (g *Game) nightKill() {
	proposals := make(map[int]int)
	for _, w := range g.candidates(func(a *Agent) bool { return a.Role == role.Werewolf }) {
		t := w.Policy.ChooseNightTarget(g, w)
		if t == NoAgent {
			continue
		}
		proposals[t]++
		g.emit(Event{Type: EventWolfVote, Actor: w.ID, Target: t})
	}
	top := tallyMax(proposals)
	if len(top) == 0 {
		return
	}
	g.night.Kill = top[g.rng.IntN(len(top))]
	g.emit(Event{Type: EventWolfKill, Actor: NoAgent, Target: g.night.Kill})
}

// nightCheck lets the first living seer inspect one agent. The result goes
// to the seer's own beliefs only.
func (g *Game) nightCheck() {
	for _, s := range g.candidates(func(a *Agent) bool { return a.Role == role.Seer }) {
		t := s.Policy.ChooseCheckTarget(g, s)
		if t == NoAgent || !g.isAlive(t) {
			continue
		}
		target := g.agents[t]
		if target.Role == role.Werewolf {
			s.Beliefs.MarkCertain(t, role.Werewolf)
		} else {
			g.ruleOut(s, t, role.Werewolf)
		}
		s.Policy.OnCheckResult(g, s, t, target.Role.Faction())
		g.night.Checker, g.night.Check = s.ID, t
		g.emit(Event{Type: EventSeerCheck, Actor: s.ID, Target: t, Role: target.Role})
		return
	}
}

// nightWitch offers the living witches the antidote for tonight's victim,
// then the poison. Save and poison never both happen on one night.
func (g *Game) nightWitch() {
	for _, w := range g.candidates(func(a *Agent) bool { return a.Role == role.Witch }) {
		if g.night.Save != NoAgent || g.night.Poison != NoAgent {
			return
		}
		if v := g.night.Kill; v != NoAgent && w.Policy.ChooseSave(g, w, v) {
			g.night.Save = v
			g.agents[v].Saved = true
			g.emit(Event{Type: EventWitchSave, Actor: w.ID, Target: v})
			continue
		}
		if t := w.Policy.ChoosePoisonTarget(g, w); t != NoAgent && g.isAlive(t) {
			g.night.Poison = t
			g.emit(Event{Type: EventWitchPoison, Actor: w.ID, Target: t})
		}
	}
}
