// Package tui steps through a finished game one turn at a time.
package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/yahtzeebots/internal/game"
	"github.com/lox/yahtzeebots/internal/scoring"
)

// ReplayModel is the Bubble Tea model for a game replay. Turn 0 shows the
// empty scorecard; turn n shows the card after n committed turns.
type ReplayModel struct {
	result   game.Result
	turn     int
	quitting bool
}

// NewReplayModel creates a replay positioned before the first turn.
func NewReplayModel(result game.Result) *ReplayModel {
	return &ReplayModel{result: result}
}

// Turn returns how many turns are currently revealed.
func (m *ReplayModel) Turn() int { return m.turn }

func (m *ReplayModel) Init() tea.Cmd { return nil }

func (m *ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return m, tea.Quit
	case "right", "l", "enter", " ", "n":
		if m.turn < len(m.result.Turns) {
			m.turn++
		}
	case "left", "h", "p":
		if m.turn > 0 {
			m.turn--
		}
	case "home", "g":
		m.turn = 0
	case "end", "G":
		m.turn = len(m.result.Turns)
	}
	return m, nil
}

func (m *ReplayModel) View() string {
	if m.quitting {
		return ""
	}

	card := m.card()
	header := HeaderStyle.Render(fmt.Sprintf("%s  turn %d/%d  %d/%d filled",
		m.result.Strategy, m.turn, len(m.result.Turns), card.Filled().Len(), scoring.NumCategories))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		CardStyle.Render(card.String()),
		"  ",
		m.turnView(),
	)
	help := InfoStyle.Render("→/enter next  ← back  g/G first/last  q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
}

func (m *ReplayModel) card() *game.Scorecard {
	return m.result.CardAt(m.turn)
}

func (m *ReplayModel) turnView() string {
	if m.turn == 0 {
		return InfoStyle.Render("press → to roll")
	}
	t := m.result.Turns[m.turn-1]

	var b strings.Builder
	fmt.Fprintf(&b, "roll     %s\n", DiceStyle.Render(t.Initial.String()))
	for i, held := range t.Holds {
		fmt.Fprintf(&b, "keep %d   %v\n", i+1, held)
	}
	fmt.Fprintf(&b, "final    %s\n", DiceStyle.Render(t.Final.String()))

	score := fmt.Sprint(t.Score)
	if t.Score == 0 {
		score = ZeroStyle.Render(score)
	}
	fmt.Fprintf(&b, "scored   %s %s", CategoryStyle.Render(t.Category.String()), score)
	return b.String()
}

// Run shows the replay on the terminal until the user quits.
func Run(result game.Result, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(NewReplayModel(result),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := program.Run()
	return err
}
