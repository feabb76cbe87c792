// Package ui renders the interactive confirmation prompt the confirmation
// collaborator delegates to: the diff, then a yes/no prompt. Modeled on
// loom's tui/enhanced_tui.go batch-approval view (approve/reject keys
// driving a bubbletea Update/View loop), narrowed from a multi-edit batch
// approval screen down to the single yes/no decision this confirmation
// collaborator needs.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	diffAddStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	diffDelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle    = lipgloss.NewStyle().Faint(true)
)

// confirmModel is the bubbletea model for one yes/no decision.
type confirmModel struct {
	displayPath string
	diffText    string
	approved    bool
	decided     bool
}

func (m *confirmModel) Init() tea.Cmd { return nil }

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.approved = true
		m.decided = true
		return m, tea.Quit
	case "n", "N", "esc", "ctrl+c":
		m.approved = false
		m.decided = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *confirmModel) View() string {
	s := titleStyle.Render("Apply edit: "+m.displayPath) + "\n\n"
	for _, line := range splitPreserving(m.diffText) {
		switch {
		case len(line) > 0 && line[0] == '+' && len(line) > 1 && line[1] != '+':
			s += diffAddStyle.Render(line) + "\n"
		case len(line) > 0 && line[0] == '-' && len(line) > 1 && line[1] != '-':
			s += diffDelStyle.Render(line) + "\n"
		default:
			s += line + "\n"
		}
	}
	s += "\n" + hintStyle.Render("[y] apply   [n] cancel")
	return s
}

func splitPreserving(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// Confirm renders diffText for displayPath in an interactive full-screen
// prompt and returns the user's approve/decline decision. It satisfies
// editor.Confirmer's signature so it can be passed directly as the
// confirmation collaborator.
func Confirm(diffText, displayPath string) bool {
	m := &confirmModel{displayPath: displayPath, diffText: diffText}
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return false
	}
	final, ok := finalModel.(*confirmModel)
	if !ok || !final.decided {
		return false
	}
	return final.approved
}

// FallbackLine is used by non-interactive callers (e.g. --yes) to render a
// one-line acknowledgement instead of entering the full-screen prompt.
func FallbackLine(displayPath string, approved bool) string {
	verb := "declined"
	if approved {
		verb = "applied"
	}
	return fmt.Sprintf("%s: %s", displayPath, verb)
}
