// Package history displays past quiz attempts.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/Ityord/aistudy/internal/history"
	"github.com/Ityord/aistudy/internal/router"
	"github.com/Ityord/aistudy/internal/screen"
	"github.com/Ityord/aistudy/internal/ui/layout"
	"github.com/Ityord/aistudy/internal/ui/theme"
)

type historyLoadedMsg struct {
	Items []history.Item
	Err   error
}

type historyClearedMsg struct {
	Err error
}

// HistoryScreen lists past quiz attempts, newest first.
type HistoryScreen struct {
	store        *history.Store
	items        []history.Item
	selected     int
	scroll       int
	confirmClear bool
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(store *history.Store) *HistoryScreen {
	return &HistoryScreen{store: store}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if err := s.store.Load(context.Background()); err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Items: s.store.Items()}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.confirmClear {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear all"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "C", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.items = msg.Items
		}
		s.loaded = true
		return s, nil

	case historyClearedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.items = nil
		s.selected = 0
		s.scroll = 0
		return s, nil

	case tea.KeyMsg:
		key := msg.String()

		if s.confirmClear {
			switch key {
			case "y", "Y":
				s.confirmClear = false
				return s, func() tea.Msg {
					return historyClearedMsg{Err: s.store.Clear(context.Background())}
				}
			case "n", "N", "esc":
				s.confirmClear = false
			}
			return s, nil
		}

		switch key {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
			return s, nil
		case "c", "C":
			if len(s.items) > 0 {
				s.confirmClear = true
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if s.confirmClear {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("\n\n\nDelete all %d history entries?\n\n[Y] Yes  [N] No", len(s.items)))
	}
	if len(s.items) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  No quizzes taken yet. Start one from the home screen.")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selected row visible.
	perPage := max(height-3, 1)
	if s.selected < s.scroll {
		s.scroll = s.selected
	}
	if s.selected >= s.scroll+perPage {
		s.scroll = s.selected - perPage + 1
	}

	end := min(s.scroll+perPage, len(s.items))
	for i := s.scroll; i < end; i++ {
		b.WriteString(s.renderRow(i, width))
		b.WriteString("\n")
	}

	if len(s.items) > perPage {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d-%d of %d", s.scroll+1, end, len(s.items))))
	}

	return b.String()
}

func (s *HistoryScreen) renderRow(i, width int) string {
	item := s.items[i]

	topic := item.Config.Topic
	if item.Config.MergeTopic != "" {
		topic = fmt.Sprintf("%s + %s", topic, item.Config.MergeTopic)
	}

	scoreColor := theme.Error
	switch {
	case item.Percentage >= 80:
		scoreColor = theme.Success
	case item.Percentage >= 50:
		scoreColor = theme.Accent
	}

	line := fmt.Sprintf("%s  %-4s %-12s %-28s %-8s %s",
		item.Date.Format("02 Jan 2006 15:04"),
		item.Config.Exam,
		item.Config.Subject,
		truncate(topic, 28),
		item.Config.Level,
		lipgloss.NewStyle().Foreground(scoreColor).Render(
			fmt.Sprintf("%d/%d (%d%%)", item.Score, item.TotalQuestions, item.Percentage)),
	)

	if i == s.selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ ") + line
	}
	return "    " + line
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
