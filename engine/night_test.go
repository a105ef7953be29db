package engine

import (
	"testing"

	"github.com/jason-s-yu/werewolf/engine/belief"
	"github.com/jason-s-yu/werewolf/engine/role"
)

func TestNightRecordsWithoutKilling(t *testing.T) {
	g, rec := newTestGame(t, tenAgents, false)
	if err := g.RunNight(); err != nil {
		t.Fatalf("RunNight failed: %v", err)
	}

	if g.Day() != 1 {
		t.Errorf("Day: want 1, got %d", g.Day())
	}
	n := g.Night()
	if n.Kill == NoAgent {
		t.Fatal("expected a kill target")
	}
	if g.Agent(n.Kill).Role == role.Werewolf {
		t.Errorf("werewolves targeted teammate %d", n.Kill)
	}
	if got := len(g.Alive()); got != len(tenAgents) {
		t.Errorf("alive after night = %d, want %d", got, len(tenAgents))
	}
	if got := len(rec.OfType(EventWolfVote)); got != 4 {
		t.Errorf("wolf votes = %d, want 4", got)
	}
	if got := len(rec.OfType(EventWolfKill)); got != 1 {
		t.Errorf("wolf kills = %d, want 1", got)
	}
}

func TestWolvesFollowPlurality(t *testing.T) {
	g, _ := newTestGame(t, tenAgents, false)
	// Three of four wolves believe agent 9 is the seer.
	for _, w := range []int{0, 1, 2} {
		g.Agent(w).Beliefs.MarkCertain(9, role.Seer)
	}
	if err := g.RunNight(); err != nil {
		t.Fatalf("RunNight failed: %v", err)
	}
	if got := g.Night().Kill; got != 9 {
		t.Errorf("Kill: want 9, got %d", got)
	}
}

func TestSeerCheckUpdatesOnlyOwnBelief(t *testing.T) {
	g, rec := newTestGame(t, tenAgents, false)
	seer := g.Agent(8)
	seer.Beliefs.Set(2, belief.Distribution{role.Werewolf: 0.9, role.Villager: 0.1})

	if err := g.RunNight(); err != nil {
		t.Fatalf("RunNight failed: %v", err)
	}

	n := g.Night()
	if n.Checker != 8 || n.Check != 2 {
		t.Errorf("check: want 8 -> 2, got %d -> %d", n.Checker, n.Check)
	}
	if got := seer.Beliefs.Get(2); got != belief.Certain(role.Werewolf) {
		t.Errorf("seer about 2 = %s, want certain werewolf", got)
	}
	if got := g.Agent(4).Beliefs.Get(2); got == belief.Certain(role.Werewolf) {
		t.Error("a villager learned the seer's check")
	}

	checks := rec.OfType(EventSeerCheck)
	if len(checks) != 1 {
		t.Fatalf("seer checks = %d, want 1", len(checks))
	}
	if checks[0].Role != role.Werewolf {
		t.Errorf("checked role = %s, want werewolf", checks[0].Role)
	}
}

func TestSeerCheckGoodRulesOutWerewolf(t *testing.T) {
	g, _ := newTestGame(t, tenAgents, false)
	seer := g.Agent(8)
	seer.Beliefs.Set(5, belief.Distribution{role.Werewolf: 0.9, role.Villager: 0.1})

	if err := g.RunNight(); err != nil {
		t.Fatalf("RunNight failed: %v", err)
	}

	if g.Night().Check != 5 {
		t.Fatalf("Check: want 5, got %d", g.Night().Check)
	}
	d := seer.Beliefs.Get(5)
	if d.P(role.Werewolf) != 0 {
		t.Errorf("P(werewolf) = %v, want 0", d.P(role.Werewolf))
	}
	if !approx(d.P(role.Villager), 1) {
		t.Errorf("P(villager) = %v, want 1", d.P(role.Villager))
	}
}

func TestSeerNeverRechecks(t *testing.T) {
	g, _ := newTestGame(t, tenAgents, false)
	checked := map[int]bool{}
	for night := 0; night < 5; night++ {
		if err := g.RunNight(); err != nil {
			t.Fatalf("RunNight failed: %v", err)
		}
		c := g.Night().Check
		if c == NoAgent {
			t.Fatalf("night %d: no check", night+1)
		}
		if checked[c] {
			t.Errorf("agent %d checked twice", c)
		}
		checked[c] = true
	}
}

func TestWitchSavesThenCannotPoisonSameNight(t *testing.T) {
	g, rec := newTestGame(t, tenAgents, false)
	witch := g.Agent(9)
	// A poison-worthy suspicion exists, but the antidote comes first.
	suspect(g, 9, 3)

	if err := g.RunNight(); err != nil {
		t.Fatalf("RunNight failed: %v", err)
	}

	n := g.Night()
	if n.Save != n.Kill {
		t.Errorf("Save: want %d, got %d", n.Kill, n.Save)
	}
	if n.Poison != NoAgent {
		t.Errorf("Poison: want none, got %d", n.Poison)
	}
	if !g.Agent(n.Kill).Saved {
		t.Errorf("agent %d not marked saved", n.Kill)
	}
	if n.Kill != 9 && witch.Beliefs.Prob(n.Kill, role.Werewolf) != 0 {
		t.Errorf("saved agent %d is still a werewolf suspect to the witch", n.Kill)
	}
	if len(rec.OfType(EventWitchSave)) != 1 || len(rec.OfType(EventWitchPoison)) != 0 {
		t.Errorf("want one save and no poison, got %d and %d",
			len(rec.OfType(EventWitchSave)), len(rec.OfType(EventWitchPoison)))
	}

	// Second night: antidote spent, the poison goes to the suspect.
	if err := g.RunNight(); err != nil {
		t.Fatalf("RunNight failed: %v", err)
	}
	n = g.Night()
	if n.Save != NoAgent || n.Poison != 3 {
		t.Errorf("night 2: want no save and poison 3, got save %d poison %d", n.Save, n.Poison)
	}
	if g.Agent(n.Kill).Saved {
		t.Errorf("agent %d still marked saved", n.Kill)
	}

	// Third night: both resources spent.
	if err := g.RunNight(); err != nil {
		t.Fatalf("RunNight failed: %v", err)
	}
	n = g.Night()
	if n.Save != NoAgent || n.Poison != NoAgent {
		t.Errorf("night 3: want nothing, got save %d poison %d", n.Save, n.Poison)
	}
}

func TestWitchPoisonThreshold(t *testing.T) {
	g, _ := newTestGame(t, []role.Role{W, V, V, V, V, X}, false)
	witch := g.Agent(5)

	// Prior werewolf belief is 1/5, under the confidence threshold.
	if got := witch.Policy.ChoosePoisonTarget(g, witch); got != NoAgent {
		t.Errorf("poisoned %d on the prior", got)
	}

	witch.Beliefs.Set(2, belief.Distribution{role.Werewolf: 0.3, role.Villager: 0.7})
	if got := witch.Policy.ChoosePoisonTarget(g, witch); got != 2 {
		t.Errorf("poison target: want 2, got %d", got)
	}
	if got := witch.Policy.ChoosePoisonTarget(g, witch); got != NoAgent {
		t.Errorf("poison reused on %d", got)
	}
}

func TestWitchSaveIsSingleUse(t *testing.T) {
	g, _ := newTestGame(t, tenAgents, false)
	witch := g.Agent(9)
	if witch.Policy.ChooseSave(g, witch, NoAgent) {
		t.Error("saved nobody")
	}
	if !witch.Policy.ChooseSave(g, witch, 4) {
		t.Error("expected the first save")
	}
	if witch.Policy.ChooseSave(g, witch, 5) {
		t.Error("antidote reused")
	}
}

func TestNightSkipsMissingRoles(t *testing.T) {
	g, rec := newTestGame(t, []role.Role{W, V, V, V}, false)
	if err := g.RunNight(); err != nil {
		t.Fatalf("RunNight failed: %v", err)
	}
	n := g.Night()
	if n.Kill == NoAgent {
		t.Error("expected a kill target")
	}
	if n.Check != NoAgent || n.Save != NoAgent || n.Poison != NoAgent {
		t.Errorf("unexpected night actions: %+v", n)
	}
	if len(rec.OfType(EventSeerCheck)) != 0 || len(rec.OfType(EventWitchSave)) != 0 {
		t.Error("events emitted for absent roles")
	}
}

func TestWolvesSpareBadgeFlowTarget(t *testing.T) {
	g, _ := newTestGame(t, tenAgents, false)
	g.setLeader(8)
	g.Agent(8).Policy.(*seerPolicy).commitment = 9
	if got := g.BadgeFlowTarget(); got != 9 {
		t.Fatalf("BadgeFlowTarget: want 9, got %d", got)
	}

	wolf := g.Agent(0)
	wolf.Beliefs.MarkCertain(9, role.Seer)
	if got := wolf.Policy.ChooseNightTarget(g, wolf); got == 9 {
		t.Error("werewolf targeted the badge-flow target")
	}

	// The seer is the only other candidate left.
	for _, id := range []int{4, 5, 6, 7} {
		g.Agent(id).Alive = false
	}
	if got := wolf.Policy.ChooseNightTarget(g, wolf); got != 8 {
		t.Errorf("night target: want 8, got %d", got)
	}
}
