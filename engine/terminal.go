package engine

import "github.com/jason-s-yu/werewolf/engine/role"

// EvaluateWin decides the game from the living roster.
//
// Under WinDominance the village wins once no werewolf is alive, and the
// werewolves win once they are at least as many as everyone else alive.
//
// Under WinSlaughter the village still wins by eliminating the werewolves;
// the werewolves win by killing every villager or every special role. A
// category absent from pop cannot be slaughtered.
func EvaluateWin(rule WinRule, pop role.Population, agents []*Agent) role.Faction {
	var wolves, villagers, specials, others int
	for _, a := range agents {
		if !a.Alive {
			continue
		}
		switch {
		case a.Role == role.Werewolf:
			wolves++
			continue
		case a.Role == role.Villager:
			villagers++
		case a.Role.IsSpecial():
			specials++
		}
		others++
	}

	if wolves == 0 {
		return role.Village
	}
	switch rule {
	case WinSlaughter:
		if pop.Count(role.Villager) > 0 && villagers == 0 {
			return role.Werewolves
		}
		if hasSpecials(pop) && specials == 0 {
			return role.Werewolves
		}
	default:
		if wolves >= others {
			return role.Werewolves
		}
	}
	return role.NoFaction
}

func hasSpecials(pop role.Population) bool {
	for _, r := range role.All {
		if r.IsSpecial() && pop.Count(r) > 0 {
			return true
		}
	}
	return false
}

// CheckWin evaluates the win condition and ends the game when a faction has
// won. It returns the winner, or role.NoFaction while the game goes on.
func (g *Game) CheckWin() role.Faction {
	if g.over {
		return g.winner
	}
	w := EvaluateWin(g.rules.WinRule, g.pop, g.agents)
	if w != role.NoFaction {
		g.finish(w)
	}
	return w
}
