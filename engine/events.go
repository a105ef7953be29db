package engine

import "github.com/jason-s-yu/werewolf/engine/role"

// EventType identifies a game event delivered to an Observer.
type EventType string

const (
	EventGameStart      EventType = "game_start"
	EventRoleAssigned   EventType = "role_assigned"
	EventNightStart     EventType = "night_start"
	EventWolfVote       EventType = "wolf_vote"           // one werewolf's proposed target
	EventWolfKill       EventType = "wolf_kill"           // plurality result
	EventSeerCheck      EventType = "seer_check"          // Role holds the checked agent's true role
	EventWitchSave      EventType = "witch_save"
	EventWitchPoison    EventType = "witch_poison"
	EventDayStart       EventType = "day_start"
	EventCandidate      EventType = "leader_candidate"
	EventLeaderElected  EventType = "leader_elected"
	EventLeaderTransfer EventType = "leader_transfer"     // Actor is the dead leader, Target the successor or NoAgent
	EventPeacefulNight  EventType = "peaceful_night"
	EventDeath          EventType = "death"
	EventHunterShot     EventType = "hunter_shot"
	EventReveal         EventType = "reveal"              // Actor publicly reveals its own Role
	EventAccuse         EventType = "accuse"              // Actor declares Target a werewolf
	EventVouch          EventType = "vouch"               // Actor declares Target not a werewolf
	EventBadgeFlow      EventType = "badge_flow"
	EventVote           EventType = "vote"
	EventVoteTally      EventType = "vote_tally"
	EventExecution      EventType = "execution"
	EventContradiction  EventType = "belief_contradiction" // Actor's belief about Target lost a near-certain Role
	EventGameOver       EventType = "game_over"
)

// Event is a single observable decision or outcome. Fields that do not apply
// to a given Type are left at their zero value, with agent fields at NoAgent.
type Event struct {
	Type     EventType
	Day      int
	Actor    int
	Target   int
	Role     role.Role
	Cause    Cause
	Weight   float64
	Tally    map[int]float64
	Survived bool
	Winner   role.Faction
}

// HasRole reports whether ev.Role is meaningful for ev.Type.
func (ev Event) HasRole() bool {
	switch ev.Type {
	case EventRoleAssigned, EventSeerCheck, EventReveal, EventDeath, EventContradiction:
		return true
	}
	return false
}

// Observer receives every event a game emits, in order.
type Observer interface {
	Observe(ev Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev Event)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Event) { f(ev) }

type nopObserver struct{}

func (nopObserver) Observe(Event) {}

// Recorder is an Observer that keeps every event in memory.
type Recorder struct {
	Events []Event
}

// Observe appends ev.
func (r *Recorder) Observe(ev Event) { r.Events = append(r.Events, ev) }

// OfType returns the recorded events of type t, in order.
func (r *Recorder) OfType(t EventType) []Event {
	var out []Event
	for _, ev := range r.Events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
