// Package home implements the landing screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Ityord/aistudy/internal/history"
	"github.com/Ityord/aistudy/internal/quizgen"
	"github.com/Ityord/aistudy/internal/router"
	"github.com/Ityord/aistudy/internal/screen"
	historyscreen "github.com/Ityord/aistudy/internal/screens/history"
	"github.com/Ityord/aistudy/internal/screens/setup"
	"github.com/Ityord/aistudy/internal/session"
	"github.com/Ityord/aistudy/internal/ui/components"
	"github.com/Ityord/aistudy/internal/ui/layout"
	"github.com/Ityord/aistudy/internal/ui/theme"
)

var banner = []string{
	`   _    ___ ____  _             _       `,
	`  / \  |_ _/ ___|| |_ _   _  __| |_   _ `,
	` / _ \  | |\___ \| __| | | |/ _' | | | |`,
	`/ ___ \ | | ___) | |_| |_| | (_| | |_| |`,
	`/_/  \_\___|____/ \__|\__,_|\__,_|\__, |`,
	`                                  |___/ `,
}

// HomeScreen is the main landing screen of the application.
type HomeScreen struct {
	menu    components.Menu
	history *history.Store
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(controller *session.Controller, generator quizgen.Generator, hist *history.Store) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(controller, generator)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(hist)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		history: hist,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	bannerStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	for _, line := range banner {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bannerStyle.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("AI-generated practice quizzes for JEE and NEET"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(h.statsLine()))
	b.WriteString("\n\n")

	menu := h.menu.View()
	for _, line := range strings.Split(strings.TrimRight(menu, "\n"), "\n") {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

// statsLine summarises past attempts from the local history.
func (h *HomeScreen) statsLine() string {
	items := h.history.Items()
	if len(items) == 0 {
		return "No quizzes taken yet"
	}
	var sum, best int
	for _, item := range items {
		sum += item.Percentage
		if item.Percentage > best {
			best = item.Percentage
		}
	}
	return fmt.Sprintf("%d quizzes  ·  avg %d%%  ·  best %d%%", len(items), sum/len(items), best)
}
