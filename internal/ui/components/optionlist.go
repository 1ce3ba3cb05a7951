package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Ityord/aistudy/internal/ui/theme"
)

// optionLabels are the fixed A-D markers for the four choices.
var optionLabels = []string{"A", "B", "C", "D"}

// OptionList presents a question's four options. During the quiz the
// correct answer stays hidden; Reveal mode is used on the results screen
// to color the correct and chosen options.
type OptionList struct {
	Options      []string
	CorrectIndex int

	// Cursor is the highlighted option.
	Cursor int

	// Chosen is the recorded answer, -1 when unanswered.
	Chosen int

	// Reveal colors correct/incorrect instead of the selection highlight.
	Reveal bool
}

// NewOptionList creates an option list with no recorded answer.
func NewOptionList(options []string, correctIndex int) OptionList {
	return OptionList{
		Options:      options,
		CorrectIndex: correctIndex,
		Cursor:       0,
		Chosen:       -1,
	}
}

// Update handles keyboard navigation and selection.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Reveal {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	case "enter", " ":
		o.Chosen = o.Cursor
	case "a", "b", "c", "d":
		idx := int(kmsg.String()[0] - 'a')
		if idx < len(o.Options) {
			o.Cursor = idx
			o.Chosen = idx
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := optionLabels[i]
		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		prefix := "  "
		if i == o.Cursor && !o.Reveal {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		var style lipgloss.Style
		switch {
		case o.Reveal && i == o.CorrectIndex:
			style = theme.Correct
		case o.Reveal && i == o.Chosen:
			style = theme.Incorrect
		case o.Reveal:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == o.Cursor:
			style = theme.Selected
		case i == o.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			style = theme.Unselected
		}
		s += style.Render(line) + "\n"
	}
	return s
}

// Answered reports whether an option has been chosen.
func (o OptionList) Answered() bool {
	return o.Chosen >= 0
}
