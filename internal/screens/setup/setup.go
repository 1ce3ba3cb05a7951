// Package setup implements the quiz configuration wizard: exam, subject,
// topic, optional secondary topic, and difficulty level.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Ityord/aistudy/internal/quizgen"
	"github.com/Ityord/aistudy/internal/router"
	"github.com/Ityord/aistudy/internal/screen"
	quizscreen "github.com/Ityord/aistudy/internal/screens/quiz"
	"github.com/Ityord/aistudy/internal/session"
	"github.com/Ityord/aistudy/internal/syllabus"
	"github.com/Ityord/aistudy/internal/ui/components"
	"github.com/Ityord/aistudy/internal/ui/layout"
	"github.com/Ityord/aistudy/internal/ui/theme"
)

// step is the current wizard stage.
type step int

const (
	stepExam step = iota
	stepSubject
	stepTopic
	stepMergeTopic
	stepLevel
)

// SetupScreen walks the user through building a QuizConfig.
type SetupScreen struct {
	controller *session.Controller
	generator  quizgen.Generator

	step    step
	exam    syllabus.Exam
	subject syllabus.Subject
	topic   string
	merge   string
	level   syllabus.Level

	examMenu    components.Menu
	subjectMenu components.Menu
	levelMenu   components.Menu
	topicInput  components.TextInput
	mergeInput  components.TextInput
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup wizard.
func New(controller *session.Controller, generator quizgen.Generator) *SetupScreen {
	s := &SetupScreen{
		controller: controller,
		generator:  generator,
		topicInput: components.NewTextInput("e.g. Kinematics (Enter for Foundational Concepts)", 80),
		mergeInput: components.NewTextInput("optional second topic (Enter to skip)", 80),
	}

	examItems := make([]components.MenuItem, 0, len(syllabus.AllExams()))
	for _, exam := range syllabus.AllExams() {
		exam := exam
		examItems = append(examItems, components.MenuItem{
			Label: exam.DisplayName(),
			Action: func() tea.Cmd {
				s.chooseExam(exam)
				return nil
			},
		})
	}
	s.examMenu = components.NewMenu(examItems)

	return s
}

func (s *SetupScreen) chooseExam(exam syllabus.Exam) {
	s.exam = exam
	subjectItems := make([]components.MenuItem, 0, 3)
	for _, subject := range syllabus.SubjectsFor(exam) {
		subject := subject
		subjectItems = append(subjectItems, components.MenuItem{
			Label: string(subject),
			Action: func() tea.Cmd {
				s.subject = subject
				s.step = stepTopic
				return s.topicInput.Init()
			},
		})
	}
	s.subjectMenu = components.NewMenu(subjectItems)
	s.step = stepSubject
}

func (s *SetupScreen) buildLevelMenu() {
	levelItems := make([]components.MenuItem, 0, 3)
	for _, level := range syllabus.AllLevels() {
		level := level
		levelItems = append(levelItems, components.MenuItem{
			Label: level.Description(),
			Action: func() tea.Cmd {
				s.level = level
				return s.startQuiz()
			},
		})
	}
	s.levelMenu = components.NewMenu(levelItems)
}

func (s *SetupScreen) startQuiz() tea.Cmd {
	cfg := syllabus.QuizConfig{
		Exam:       s.exam,
		Subject:    s.subject,
		Topic:      s.topic,
		Level:      s.level,
		MergeTopic: s.merge,
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quizscreen.New(s.controller, s.generator, cfg)}
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch s.step {
	case stepExam:
		s.examMenu, cmd = s.examMenu.Update(msg)

	case stepSubject:
		s.subjectMenu, cmd = s.subjectMenu.Update(msg)

	case stepTopic:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			s.topic = strings.TrimSpace(s.topicInput.Value())
			if s.topic == "" {
				s.topic = syllabus.TopicFoundational
			}
			if s.topic == syllabus.TopicFoundational {
				// Syllabus-wide revision has no secondary topic.
				s.buildLevelMenu()
				s.step = stepLevel
				return s, nil
			}
			s.step = stepMergeTopic
			return s, s.mergeInput.Init()
		}
		s.topicInput, cmd = s.topicInput.Update(msg)

	case stepMergeTopic:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			s.merge = strings.TrimSpace(s.mergeInput.Value())
			s.buildLevelMenu()
			s.step = stepLevel
			return s, nil
		}
		s.mergeInput, cmd = s.mergeInput.Update(msg)

	case stepLevel:
		s.levelMenu, cmd = s.levelMenu.Update(msg)
	}

	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(summaryLine(width, s.exam, s.subject, s.topic, s.merge))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	switch s.step {
	case stepExam:
		b.WriteString(center(width, prompt.Render("Which exam are you preparing for?")))
		b.WriteString("\n\n")
		b.WriteString(centerBlock(width, s.examMenu.View()))

	case stepSubject:
		b.WriteString(center(width, prompt.Render("Pick a subject")))
		b.WriteString("\n\n")
		b.WriteString(centerBlock(width, s.subjectMenu.View()))

	case stepTopic:
		b.WriteString(center(width, prompt.Render("Which topic? Leave empty for syllabus-wide revision.")))
		b.WriteString("\n\n")
		b.WriteString(center(width, s.topicInput.View()))

	case stepMergeTopic:
		b.WriteString(center(width, prompt.Render("Blend in a second topic?")))
		b.WriteString("\n\n")
		b.WriteString(center(width, s.mergeInput.View()))

	case stepLevel:
		b.WriteString(center(width, prompt.Render("Choose your difficulty level")))
		b.WriteString("\n\n")
		b.WriteString(centerBlock(width, s.levelMenu.View()))
	}

	return b.String()
}

// summaryLine shows the choices made so far.
func summaryLine(width int, exam syllabus.Exam, subject syllabus.Subject, topic, merge string) string {
	var parts []string
	if exam != "" {
		parts = append(parts, string(exam))
	}
	if subject != "" {
		parts = append(parts, string(subject))
	}
	if topic != "" {
		parts = append(parts, topic)
	}
	if merge != "" {
		parts = append(parts, fmt.Sprintf("+ %s", merge))
	}
	if len(parts) == 0 {
		return ""
	}
	return center(width, theme.Hint.Render(strings.Join(parts, "  ›  ")))
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func centerBlock(width int, block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		lines[i] = center(width, line)
	}
	return strings.Join(lines, "\n") + "\n"
}
