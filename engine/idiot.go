package engine

type idiotPolicy struct {
	basePolicy
}

// HandleVoteExecution survives the first execution by revealing the idiot.
// Once revealed, the next execution kills it.
func (p *idiotPolicy) HandleVoteExecution(g *Game, self *Agent) bool {
	if self.Revealed {
		return true
	}
	g.Reveal(self)
	return false
}
