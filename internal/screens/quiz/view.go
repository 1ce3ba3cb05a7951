package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Ityord/aistudy/internal/session"
	"github.com/Ityord/aistudy/internal/ui/components"
	"github.com/Ityord/aistudy/internal/ui/theme"
)

func (s *QuizScreen) renderLoading(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s Generating your quiz", s.spinner())))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  •  %s  •  %s", s.cfg.Exam.DisplayName(), s.cfg.Subject, topicLabel(s.cfg))))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}

func (s *QuizScreen) renderConfirm(width int) string {
	title := "Submit quiz?"
	detail := fmt.Sprintf("%d of %d questions answered. Unanswered questions score zero.",
		s.answeredCount(), len(s.lists))
	if s.confirmEarly {
		title = "End quiz early?"
		detail = "Your score so far will be recorded."
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")
	yes, no := s.confirmButtons()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		yes.View()+"   "+no.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("←→ choose · Enter confirm · Y/N shortcuts"))
	return b.String()
}

func (s *QuizScreen) renderQuestion(width int) string {
	questions := s.controller.Questions()
	if s.current >= len(questions) {
		return ""
	}
	q := questions[s.current]

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", s.cfg.Subject, topicLabel(s.cfg)))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  answered %d", s.current+1, len(questions), s.answeredCount()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	timer := components.NewTimerBar(quizDuration, s.remaining, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, timer.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionStyle.Render(q.Question)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.lists[s.current].View()))
	b.WriteString("\n")

	if q.SourceHint != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("concept: %s", q.SourceHint)))
	}

	return b.String()
}

func (s *QuizScreen) renderResults(width, height int) string {
	r := s.finished

	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	add("")
	verdict := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true)
	switch {
	case r.Percentage >= 80:
		add(verdict.Foreground(theme.Success).Render("Excellent work!"))
	case r.Percentage >= 50:
		add(verdict.Foreground(theme.Accent).Render("Good effort, keep going"))
	default:
		add(verdict.Foreground(theme.Error).Render("Needs more practice"))
	}
	if r.Reason == session.FinishTimeExpired {
		add(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render("Time expired"))
	}
	add("")

	score := components.NewProgressBar(
		fmt.Sprintf("Score %d/%d (%d%%)", r.Score, len(r.Questions), r.Percentage),
		float64(r.Percentage)/100, false, min(width-8, 50))
	add(lipgloss.PlaceHorizontal(width, lipgloss.Center, score.View()))
	if len(r.Unattempted) > 0 {
		add(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d unattempted", len(r.Unattempted))))
	}
	if r.SaveErr != nil {
		add(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render("Could not save this result to history"))
	}
	add("")

	sectionStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	bodyStyle := lipgloss.NewStyle().Width(min(width-8, 76)).Foreground(theme.Text)
	dimStyle := lipgloss.NewStyle().Width(min(width-8, 76)).Foreground(theme.TextDim)

	if len(r.Incorrect) > 0 {
		add(sectionStyle.Render("  Review your mistakes"))
		add("")
		for i, inc := range r.Incorrect {
			add(bodyStyle.Render(fmt.Sprintf("%d. %s", i+1, inc.Question.Question)))
			if i < len(s.revealLists) {
				add(s.revealLists[i].View())
			}
			if inc.Explanation != "" {
				add(dimStyle.Render(inc.Explanation))
			}
			if inc.ResourceLink != nil {
				add(dimStyle.Render(fmt.Sprintf("↗ %s — %s", inc.ResourceLink.Title, inc.ResourceLink.URL)))
			}
			add("")
		}

		lines = append(lines, s.renderSuggestions(sectionStyle, bodyStyle, dimStyle)...)
		lines = append(lines, s.renderImprovements(sectionStyle, bodyStyle, dimStyle)...)
	} else if len(r.Unattempted) == 0 {
		add(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("A perfect score. Nothing to review."))
	}

	add("")
	add(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[T] Try again with these mistakes   [N] New topic"))

	// Simple line scrolling keeps long reviews reachable on small terminals.
	if s.scroll > len(lines)-1 {
		s.scroll = len(lines) - 1
	}
	visible := lines[s.scroll:]
	if len(visible) > height {
		visible = visible[:height]
	}
	return strings.Join(visible, "\n")
}

func (s *QuizScreen) renderSuggestions(section, body, dim lipgloss.Style) []string {
	var out []string
	out = append(out, section.Render("  Recommended study material"))
	switch {
	case s.suggestPending:
		out = append(out, dim.Render(fmt.Sprintf("%s fetching recommendations...", s.spinner())))
	case s.suggestErr != "":
		out = append(out, dim.Render("recommendations unavailable: "+s.suggestErr))
	case s.suggestion != nil:
		for _, book := range s.suggestion.Books {
			out = append(out, body.Render(fmt.Sprintf("📖 %s — %s", book.Title, book.Author)))
			out = append(out, dim.Render("   "+book.ShortDescription))
		}
		for _, vid := range s.suggestion.YouTube {
			out = append(out, body.Render(fmt.Sprintf("▶ %s (%s)", vid.Title, vid.Channel)))
			out = append(out, dim.Render("   "+vid.Link))
		}
	}
	out = append(out, "")
	return out
}

func (s *QuizScreen) renderImprovements(section, body, dim lipgloss.Style) []string {
	var out []string
	out = append(out, section.Render("  Topics to strengthen"))
	switch {
	case s.improvePending:
		out = append(out, dim.Render(fmt.Sprintf("%s analysing your mistakes...", s.spinner())))
	case s.improveErr != "":
		out = append(out, dim.Render("analysis unavailable: "+s.improveErr))
	case s.improvement != nil:
		for _, topic := range s.improvement.TopicsToImprove {
			out = append(out, body.Render("• "+topic.TopicName))
			out = append(out, dim.Render("   "+topic.Reason))
			if topic.ResourceLink != nil {
				out = append(out, dim.Render(fmt.Sprintf("   ↗ %s — %s", topic.ResourceLink.Title, topic.ResourceLink.URL)))
			}
		}
	}
	out = append(out, "")
	return out
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
