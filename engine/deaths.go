package engine

// processDeaths runs succession and death abilities for agents that have
// just died, in order. A hunter's victim is pushed to the front of the queue
// so each cascade finishes before the next original death is handled.
func (g *Game) processDeaths(queue []int) {
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		a := g.agents[id]

		if a.Leader {
			g.succeed(a)
		}

		shot := a.Policy.OnDeath(g, a)
		if shot == NoAgent || !g.isAlive(shot) {
			continue
		}
		g.emit(Event{Type: EventHunterShot, Actor: a.ID, Target: shot})
		g.kill(shot, CauseShot, a.ID)
		queue = append([]int{shot}, queue...)
	}
}

// succeed asks the dead leader for a successor and moves the badge. A
// successor that is not alive leaves the game without a leader.
func (g *Game) succeed(dead *Agent) {
	next := dead.Policy.ChooseSuccessor(g, dead)
	if !g.isAlive(next) {
		next = NoAgent
	}
	g.setLeader(next)
	g.emit(Event{Type: EventLeaderTransfer, Actor: dead.ID, Target: next})
}
