package quizgen

// ResourceLink points to a free third-party educational page. The app never
// fetches or validates the URL, it is passed through to the user.
type ResourceLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Question represents a generated multiple-choice question ready for display.
type Question struct {
	// Question is the prompt text. May embed math markup: inline math is
	// delimited with $...$, display math with $$...$$.
	Question string `json:"question"`

	// Options holds exactly 4 answer choices in display order.
	Options []string `json:"options"`

	// CorrectAnswerIndex is the index of the correct option, in [0,3].
	CorrectAnswerIndex int `json:"correctAnswerIndex"`

	// Explanation is a brief worked solution shown after answering.
	Explanation string `json:"explanation"`

	// SourceHint is a concise concept tag, e.g. "Projectile Motion".
	SourceHint string `json:"sourceHint,omitempty"`

	// ResourceLink optionally points to a free page covering the concept.
	ResourceLink *ResourceLink `json:"resourceLink,omitempty"`
}

// IncorrectAnswer is a Question plus the option the user actually chose.
// Created only for answered questions where the choice was wrong.
type IncorrectAnswer struct {
	Question
	UserAnswerIndex int `json:"userAnswerIndex"`
}

// BookSuggestion is a recommended reference book.
type BookSuggestion struct {
	Title            string `json:"title"`
	Author           string `json:"author"`
	ShortDescription string `json:"shortDescription"`
}

// VideoSuggestion is a recommended YouTube resource.
type VideoSuggestion struct {
	Title   string `json:"title"`
	Channel string `json:"channel"`
	Link    string `json:"link"`
}

// Suggestion holds general remedial study material for the user's mistakes.
type Suggestion struct {
	Books   []BookSuggestion  `json:"books"`
	YouTube []VideoSuggestion `json:"youtube"`
}

// ImprovementTopic names one weak area with the mistake that exposed it.
type ImprovementTopic struct {
	TopicName    string        `json:"topicName"`
	Reason       string        `json:"reason"`
	ResourceLink *ResourceLink `json:"resourceLink,omitempty"`
}

// ImprovementSuggestion holds targeted weak-topic analysis.
type ImprovementSuggestion struct {
	TopicsToImprove []ImprovementTopic `json:"topicsToImprove"`
}
