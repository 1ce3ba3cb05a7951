package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Ityord/aistudy/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that want to show
// live state in the header's right slot, e.g. the quiz countdown.
type StatusProvider interface {
	Status() string
}

// EscHandler is an optional interface for screens that need to intercept
// Esc instead of letting the router pop them, e.g. an active quiz that
// must confirm before discarding answers.
type EscHandler interface {
	HandleEsc() (handled bool, cmd tea.Cmd)
}
