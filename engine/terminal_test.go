package engine

import (
	"testing"

	"github.com/jason-s-yu/werewolf/engine/role"
)

// roster builds agents from roles; dead lists the ids that are not alive.
func roster(roles []role.Role, dead ...int) []*Agent {
	out := make([]*Agent, len(roles))
	for i, r := range roles {
		out[i] = &Agent{ID: i, Role: r, Alive: true}
	}
	for _, id := range dead {
		out[id].Alive = false
	}
	return out
}

func popOf(roles []role.Role) role.Population {
	var p role.Population
	for _, r := range roles {
		p[r]++
	}
	return p
}

func TestEvaluateWinDominance(t *testing.T) {
	tests := []struct {
		name string
		dead []int
		want role.Faction
	}{
		{name: "start", want: role.NoFaction},
		{name: "all werewolves dead", dead: []int{0, 1, 2, 3}, want: role.Village},
		{name: "parity", dead: []int{4, 5}, want: role.Werewolves},
		{name: "majority", dead: []int{4, 5, 6, 7, 8, 9}, want: role.Werewolves},
		{name: "one short of parity", dead: []int{4}, want: role.NoFaction},
		{name: "seer dead is not a win", dead: []int{8}, want: role.NoFaction},
		{name: "werewolves thinned", dead: []int{0, 1, 4, 5, 6}, want: role.NoFaction},
		{name: "everyone dead", dead: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, want: role.Village},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateWin(WinDominance, popOf(tenAgents), roster(tenAgents, tt.dead...))
			if got != tt.want {
				t.Errorf("got = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEvaluateWinSlaughter(t *testing.T) {
	tests := []struct {
		name  string
		roles []role.Role
		dead  []int
		want  role.Faction
	}{
		{name: "start", roles: tenAgents, want: role.NoFaction},
		{name: "all werewolves dead", roles: tenAgents, dead: []int{0, 1, 2, 3}, want: role.Village},
		{name: "all villagers dead", roles: tenAgents, dead: []int{4, 5, 6, 7}, want: role.Werewolves},
		{name: "all specials dead", roles: tenAgents, dead: []int{8, 9}, want: role.Werewolves},
		{name: "parity alone is not a win", roles: tenAgents, dead: []int{4, 5, 8}, want: role.NoFaction},
		{name: "no specials at setup", roles: []role.Role{W, V, V}, dead: []int{1}, want: role.NoFaction},
		{name: "no villagers at setup", roles: []role.Role{W, S, X}, dead: []int{1}, want: role.NoFaction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateWin(WinSlaughter, popOf(tt.roles), roster(tt.roles, tt.dead...))
			if got != tt.want {
				t.Errorf("got = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCheckWinFinishesGame(t *testing.T) {
	g, rec := newTestGame(t, []role.Role{W, V, V}, false)
	if got := g.CheckWin(); got != role.NoFaction || g.IsOver() {
		t.Fatalf("fresh game: got %s over=%v", got, g.IsOver())
	}

	g.kill(0, CauseVote, NoAgent)
	if got := g.CheckWin(); got != role.Village {
		t.Errorf("CheckWin: want village, got %s", got)
	}
	if !g.IsOver() || g.Winner() != role.Village {
		t.Errorf("want village win recorded, got over=%v winner=%s", g.IsOver(), g.Winner())
	}

	over := rec.OfType(EventGameOver)
	if len(over) != 1 || over[0].Winner != role.Village {
		t.Fatalf("game_over events = %+v, want one village win", over)
	}
	// Repeated checks keep the decided winner and do not emit again.
	g.CheckWin()
	if got := len(rec.OfType(EventGameOver)); got != 1 {
		t.Errorf("game_over events = %d, want 1", got)
	}
}

func TestSlaughterRuleGame(t *testing.T) {
	rules := DefaultRules()
	rules.WinRule = WinSlaughter
	for seed := uint64(0); seed < 50; seed++ {
		g, err := NewGame(rules, Options{Seed: seed})
		if err != nil {
			t.Fatalf("NewGame failed: %v", err)
		}
		res, err := g.Run()
		if err != nil {
			t.Fatalf("seed %d: Run failed: %v", seed, err)
		}
		if res.Winner == role.NoFaction {
			t.Errorf("seed %d: no winner", seed)
		}
		if w := EvaluateWin(WinSlaughter, g.Population(), g.Agents()); w != res.Winner {
			t.Errorf("seed %d: Winner = %s, roster says %s", seed, res.Winner, w)
		}
	}
}
