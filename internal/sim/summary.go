package sim

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jason-s-yu/werewolf/engine"
	"github.com/jason-s-yu/werewolf/engine/role"
)

// Summary aggregates the outcomes of a batch.
type Summary struct {
	Runs      int
	Wins      map[role.Faction]int // role.NoFaction counts draws
	TotalDays int
	Deaths    map[engine.Cause]int
}

// NewSummary returns an empty summary.
func NewSummary() Summary {
	return Summary{
		Wins:   make(map[role.Faction]int),
		Deaths: make(map[engine.Cause]int),
	}
}

// Add folds one outcome into s.
func (s *Summary) Add(o Outcome) {
	s.Runs++
	s.Wins[o.Result.Winner]++
	s.TotalDays += o.Result.Days
	for _, d := range o.Result.Deaths {
		s.Deaths[d.Cause]++
	}
}

// Draws is the number of runs that ended without a winner.
func (s Summary) Draws() int { return s.Wins[role.NoFaction] }

// WinRate returns the percentage of runs won by f.
func (s Summary) WinRate(f role.Faction) float64 {
	if s.Runs == 0 {
		return 0
	}
	return 100 * float64(s.Wins[f]) / float64(s.Runs)
}

// AverageDays returns the mean game length in days.
func (s Summary) AverageDays() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.TotalDays) / float64(s.Runs)
}

var (
	colorWolf    = lipgloss.Color("#E74C3C")
	colorVillage = lipgloss.Color("#2CD7C7")
	colorMuted   = lipgloss.Color("#2C4A54")

	titleStyle   = lipgloss.NewStyle().Bold(true)
	wolfStyle    = lipgloss.NewStyle().Foreground(colorWolf).Bold(true)
	villageStyle = lipgloss.NewStyle().Foreground(colorVillage).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// RenderSummary formats s for the terminal. With styled false the output
// is plain text with no escape sequences.
func RenderSummary(s Summary, styled bool) string {
	paint := func(st lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return st.Render(text)
	}

	var b strings.Builder
	b.WriteString(paint(titleStyle, fmt.Sprintf("%d games", s.Runs)))
	b.WriteByte('\n')
	rows := []struct {
		label string
		style lipgloss.Style
		f     role.Faction
	}{
		{"werewolves", wolfStyle, role.Werewolves},
		{"village", villageStyle, role.Village},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %5d  %5.1f%%\n", paint(r.style, fmt.Sprintf("%-10s", r.label)), s.Wins[r.f], s.WinRate(r.f))
	}
	if d := s.Draws(); d > 0 {
		fmt.Fprintf(&b, "%s %5d  %5.1f%%\n", paint(mutedStyle, fmt.Sprintf("%-10s", "draws")), d, s.WinRate(role.NoFaction))
	}
	b.WriteString(paint(mutedStyle, fmt.Sprintf("average length %.2f days", s.AverageDays())))

	if !styled {
		return b.String() + "\n"
	}
	return boxStyle.Render(b.String()) + "\n"
}

// RenderOutcome formats a single run: winner, length and the deaths in
// order.
func RenderOutcome(o Outcome, styled bool) string {
	paint := func(st lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return st.Render(text)
	}
	winner := o.Result.Winner
	st := mutedStyle
	switch winner {
	case role.Werewolves:
		st = wolfStyle
	case role.Village:
		st = villageStyle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "run %s (seed %d)\n", o.RunID, o.Seed)
	fmt.Fprintf(&b, "winner: %s after %d days\n", paint(st, winner.String()), o.Result.Days)
	for _, d := range o.Result.Deaths {
		fmt.Fprintf(&b, "  day %d: agent %d (%s) %s\n", d.Day, d.Agent, d.Role, d.Cause)
	}
	fmt.Fprintf(&b, "survivors: %s\n", paint(mutedStyle, formatIDs(o.Result.Survivors)))
	return b.String()
}

func formatIDs(ids []int) string {
	if len(ids) == 0 {
		return "none"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, " ")
}
