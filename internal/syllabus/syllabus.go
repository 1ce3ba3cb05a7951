// Package syllabus defines the exam, subject and difficulty taxonomy for
// Indian competitive exam preparation (JEE and NEET), and the quiz
// configuration built from it.
package syllabus

import "fmt"

// Exam represents a target competitive exam.
type Exam string

const (
	ExamJEE  Exam = "JEE"
	ExamNEET Exam = "NEET"
)

// AllExams returns all supported exams in display order.
func AllExams() []Exam {
	return []Exam{ExamJEE, ExamNEET}
}

// DisplayName returns a human-readable name for an exam.
func (e Exam) DisplayName() string {
	switch e {
	case ExamJEE:
		return "JEE (Engineering)"
	case ExamNEET:
		return "NEET (Medical)"
	default:
		return string(e)
	}
}

// Subject represents an exam subject.
type Subject string

const (
	SubjectPhysics     Subject = "Physics"
	SubjectChemistry   Subject = "Chemistry"
	SubjectMathematics Subject = "Mathematics"
	SubjectBiology     Subject = "Biology"
)

// SubjectsFor returns the allowed subjects for an exam in display order.
func SubjectsFor(e Exam) []Subject {
	switch e {
	case ExamJEE:
		return []Subject{SubjectPhysics, SubjectChemistry, SubjectMathematics}
	case ExamNEET:
		return []Subject{SubjectPhysics, SubjectChemistry, SubjectBiology}
	default:
		return nil
	}
}

// Level represents quiz difficulty calibrated to an exam stage.
type Level string

const (
	LevelBoards   Level = "Boards"
	LevelMains    Level = "Mains"
	LevelAdvanced Level = "Advanced"
)

// AllLevels returns all difficulty levels in ascending order.
func AllLevels() []Level {
	return []Level{LevelBoards, LevelMains, LevelAdvanced}
}

// Description returns a short label for the level used in menus.
func (l Level) Description() string {
	switch l {
	case LevelBoards:
		return "Boards (knowledge-based)"
	case LevelMains:
		return "Mains / NEET (core concepts)"
	case LevelAdvanced:
		return "Advanced (multi-concept)"
	default:
		return string(l)
	}
}

// TopicFoundational is the reserved topic meaning "sample broadly across
// the whole subject syllabus" rather than a literal topic name.
const TopicFoundational = "Foundational Concepts"

// QuizConfig describes one quiz the user wants generated.
type QuizConfig struct {
	Exam    Exam
	Subject Subject
	Topic   string
	Level   Level

	// MergeTopic is an optional secondary topic. When set, roughly half
	// the questions cover it and the rest cover Topic.
	MergeTopic string
}

// Validate checks that the config is internally consistent.
func (c QuizConfig) Validate() error {
	if c.Exam != ExamJEE && c.Exam != ExamNEET {
		return fmt.Errorf("unknown exam %q", c.Exam)
	}
	allowed := SubjectsFor(c.Exam)
	found := false
	for _, s := range allowed {
		if s == c.Subject {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("subject %q is not offered for %s", c.Subject, c.Exam)
	}
	if c.Topic == "" {
		return fmt.Errorf("topic must not be empty")
	}
	switch c.Level {
	case LevelBoards, LevelMains, LevelAdvanced:
	default:
		return fmt.Errorf("unknown level %q", c.Level)
	}
	return nil
}

// IsFoundational reports whether the config requests syllabus-wide revision.
func (c QuizConfig) IsFoundational() bool {
	return c.Topic == TopicFoundational
}
