package quizgen

// QuestionCount is the fixed number of questions requested per quiz.
const QuestionCount = 20

// Config controls the behavior of the Service.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Quizzes are
	// large (20 questions with explanations), so this defaults high.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   16384,
		Temperature: 0.7,
	}
}
