package quizgen

import (
	"fmt"
	"strings"

	"github.com/Ityord/aistudy/internal/syllabus"
)

const quizSystemPrompt = `You are an expert question setter for Indian competitive exams (JEE and NEET).

Rules:
- Every question must be a multiple-choice question with exactly 4 options and exactly one correct option.
- Write all mathematics in LaTeX: inline math delimited by $...$, display math delimited by $$...$$. Never use plain-text superscripts or Unicode math symbols.
- Every question must carry a concise concept tag in "sourceHint" naming the concept it tests, e.g. "Projectile Motion".
- Every question must carry a "resourceLink" pointing to a free, reputable, directly-accessible educational page covering that concept (NCERT, Khan Academy, BYJU'S, Physics Wallah articles, Wikipedia). Never invent URLs and never link paywalled content.
- Explanations must show the key reasoning steps, not just restate the answer.`

const suggestionSystemPrompt = `You are a study advisor for Indian competitive exam aspirants (JEE and NEET).
Recommend only real, well-known study material. Never fabricate book titles, channel names, or links.`

// difficultyPolicy returns the fixed calibration text for a level.
func difficultyPolicy(level syllabus.Level) string {
	switch level {
	case syllabus.LevelAdvanced:
		return "Difficulty: JEE Advanced standard. Questions must be highly analytical, often combining multiple concepts in a single problem."
	case syllabus.LevelMains:
		return "Difficulty: JEE Mains / NEET standard. Medium difficulty, testing solid command of core concepts."
	default:
		return "Difficulty: Board exam standard. Straightforward, knowledge-based questions."
	}
}

// BuildQuizPrompt renders a quiz configuration, plus an optional list of
// previously missed questions, into the user instruction for the provider.
func BuildQuizPrompt(cfg syllabus.QuizConfig, incorrect []IncorrectAnswer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d multiple-choice questions in %s for %s aspirants.\n",
		QuestionCount, cfg.Subject, cfg.Exam)

	if cfg.IsFoundational() {
		fmt.Fprintf(&b, "Topic: sample broadly across the entire %s %s syllabus, covering foundational concepts from every major chapter.\n",
			cfg.Exam, cfg.Subject)
	} else {
		fmt.Fprintf(&b, "Topic: %s\n", cfg.Topic)
	}

	if cfg.MergeTopic != "" {
		fmt.Fprintf(&b, "Secondary topic: %s. Blend both topics, including some multi-concept questions that combine %s with %s.\n",
			cfg.MergeTopic, cfg.Topic, cfg.MergeTopic)
	}

	fmt.Fprintf(&b, "Level: %s\n", cfg.Level)
	b.WriteString(difficultyPolicy(cfg.Level))
	b.WriteString("\n")

	if len(incorrect) > 0 {
		b.WriteString("\nThe student previously answered these questions incorrectly:\n")
		b.WriteString(buildMistakeBlock(incorrect))
		b.WriteString("\nGenerate a DIFFERENT quiz that targets the same weak concepts. Never reuse any of the questions above.\n")
	}

	return b.String()
}

// buildMistakeBlock formats each mistake with the chosen and correct options.
func buildMistakeBlock(incorrect []IncorrectAnswer) string {
	var b strings.Builder
	for i, ia := range incorrect {
		fmt.Fprintf(&b, "%d. Question: %s\n", i+1, ia.Question.Question)
		fmt.Fprintf(&b, "   Your answer: %s\n", optionAt(ia.Options, ia.UserAnswerIndex))
		fmt.Fprintf(&b, "   Correct answer: %s\n", optionAt(ia.Options, ia.CorrectAnswerIndex))
	}
	return b.String()
}

func optionAt(options []string, idx int) string {
	if idx < 0 || idx >= len(options) {
		return "(not answered)"
	}
	return options[idx]
}

// BuildSuggestionPrompt renders the user's mistakes into an instruction
// requesting general study material (books and videos).
func BuildSuggestionPrompt(cfg syllabus.QuizConfig, incorrect []IncorrectAnswer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A %s aspirant took a %s quiz on %q at %s level and made these mistakes:\n\n",
		cfg.Exam, cfg.Subject, cfg.Topic, cfg.Level)
	b.WriteString(bulletMistakes(incorrect))

	b.WriteString("\nRecommend:\n")
	b.WriteString("- 2 to 3 reference books suited to these weak areas, each with author and a one-line description.\n")
	b.WriteString("- 2 to 3 YouTube videos or playlists from well-known educational channels (e.g. Physics Wallah, Khan Academy, Unacademy), each with channel name and link.\n")
	b.WriteString("Only recommend material you are certain exists. Never fabricate links.\n")

	return b.String()
}

// BuildImprovementPrompt renders the user's mistakes into an instruction
// requesting granular weak-topic analysis.
func BuildImprovementPrompt(cfg syllabus.QuizConfig, incorrect []IncorrectAnswer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A %s aspirant took a %s quiz on %q at %s level and made these mistakes:\n\n",
		cfg.Exam, cfg.Subject, cfg.Topic, cfg.Level)
	b.WriteString(bulletMistakes(incorrect))

	b.WriteString("\nIdentify 2 to 4 granular topics the student should revise. For each topic give:\n")
	b.WriteString("- topicName: the specific concept, not a whole chapter.\n")
	b.WriteString("- reason: why it is weak, tied explicitly to one of the mistakes above.\n")
	b.WriteString("- resourceLink: a free, directly-accessible page covering the concept. Only link pages you are certain exist. Never fabricate URLs.\n")

	return b.String()
}

// bulletMistakes formats mistakes as a bulleted list for suggestion prompts.
func bulletMistakes(incorrect []IncorrectAnswer) string {
	var b strings.Builder
	for _, ia := range incorrect {
		fmt.Fprintf(&b, "- %q: answered %q, correct was %q\n",
			ia.Question.Question,
			optionAt(ia.Options, ia.UserAnswerIndex),
			optionAt(ia.Options, ia.CorrectAnswerIndex))
	}
	return b.String()
}
