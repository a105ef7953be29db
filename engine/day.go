package engine

import (
	"fmt"

	"github.com/jason-s-yu/werewolf/engine/role"
)

// RunDay resolves the previous night and plays one day: the first-day leader
// election, night deaths and their cascades, information sharing and the
// weighted execution vote. The win condition is checked after every step
// that can kill.
func (g *Game) RunDay() error {
	if g.over {
		return fmt.Errorf("run day: %w", ErrGameOver)
	}
	g.emit(Event{Type: EventDayStart, Actor: NoAgent, Target: NoAgent})

	if g.day == 1 && g.rules.LeaderElection && g.leader == NoAgent {
		g.electLeader()
	}

	g.processDeaths(g.resolveNight())
	if g.CheckWin() != role.NoFaction {
		return nil
	}

	for _, a := range g.Alive() {
		a.Policy.ShareInformation(g, a)
	}

	g.runVote()
	g.CheckWin()
	return nil
}

// electLeader runs the sheriff election. The seer wins whenever it stands;
// otherwise a random candidate does. Every candidate then speaks.
func (g *Game) electLeader() {
	cands := g.candidates(func(a *Agent) bool {
		return a.Policy.Candidacy() > CandidacyThreshold
	})
	if len(cands) == 0 {
		return
	}
	winner := NoAgent
	for _, c := range cands {
		g.emit(Event{Type: EventCandidate, Actor: c.ID, Target: NoAgent})
		if winner == NoAgent && c.Role == role.Seer {
			winner = c.ID
		}
	}
	if winner == NoAgent {
		winner = g.pickRandom(cands)
	}
	g.setLeader(winner)
	g.emit(Event{Type: EventLeaderElected, Actor: winner, Target: winner})

	for _, c := range cands {
		c.Policy.ShareInformation(g, c)
	}
}

// resolveNight applies the night record. The kill and the poison land at the
// same time; a saved victim survives the kill but never the poison.
func (g *Game) resolveNight() []int {
	var dead []int
	n := g.night
	if n.Kill != NoAgent && n.Kill != n.Save && n.Kill != n.Poison && g.isAlive(n.Kill) {
		g.kill(n.Kill, CauseWolf, NoAgent)
		dead = append(dead, n.Kill)
	}
	if n.Poison != NoAgent && g.isAlive(n.Poison) {
		g.kill(n.Poison, CausePoison, NoAgent)
		dead = append(dead, n.Poison)
	}
	if len(dead) == 0 {
		g.emit(Event{Type: EventPeacefulNight, Actor: NoAgent, Target: NoAgent})
	}
	return dead
}

// runVote collects one ballot from every living agent, weights the leader's
// ballot, and executes a maximal-tally agent chosen at random.
func (g *Game) runVote() {
	tally := make(map[int]float64)
	for _, a := range g.Alive() {
		t := a.Policy.Vote(g, a)
		if t == NoAgent || !g.isAlive(t) {
			continue
		}
		w := g.ballotWeight(a)
		tally[t] += w
		g.emit(Event{Type: EventVote, Actor: a.ID, Target: t, Weight: w})
	}
	g.emit(Event{Type: EventVoteTally, Actor: NoAgent, Target: NoAgent, Tally: tally})

	top := tallyMax(tally)
	if len(top) == 0 {
		return
	}
	target := g.agents[top[g.rng.IntN(len(top))]]
	died := target.Policy.HandleVoteExecution(g, target)
	g.emit(Event{Type: EventExecution, Actor: NoAgent, Target: target.ID, Survived: !died})
	if !died {
		return
	}
	g.kill(target.ID, CauseVote, NoAgent)
	g.processDeaths([]int{target.ID})
}
