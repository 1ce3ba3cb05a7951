package quizgen

import "github.com/Ityord/aistudy/internal/llm"

// resourceLinkDef is the shared schema fragment for {title, url} links.
var resourceLinkDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{
			"type":        "string",
			"description": "Display title of the linked page",
		},
		"url": map[string]any{
			"type":        "string",
			"description": "Direct URL to a free, reputable educational page",
		},
	},
	"required":             []any{"title", "url"},
	"additionalProperties": false,
}

// QuizSchema defines the JSON schema for quiz generation responses.
// The root is an array of question objects.
var QuizSchema = &llm.Schema{
	Name:        "exam-quiz",
	Description: "An ordered set of multiple-choice exam questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "Question text. Inline math in $...$, display math in $$...$$.",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"minItems":    4,
					"maxItems":    4,
					"description": "Exactly 4 answer choices, one correct",
				},
				"correctAnswerIndex": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"maximum":     3,
					"description": "Zero-based index of the correct option",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "Brief worked solution for the correct answer",
				},
				"sourceHint": map[string]any{
					"type":        "string",
					"description": "Concise concept tag, e.g. 'Rotational Dynamics'",
				},
				"resourceLink": resourceLinkDef,
			},
			"required":             []any{"question", "options", "correctAnswerIndex", "explanation", "sourceHint", "resourceLink"},
			"additionalProperties": false,
		},
	},
}

// SuggestionSchema defines the JSON schema for study suggestion responses.
var SuggestionSchema = &llm.Schema{
	Name:        "study-suggestions",
	Description: "Recommended books and videos for the user's weak areas",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"books": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":            map[string]any{"type": "string"},
						"author":           map[string]any{"type": "string"},
						"shortDescription": map[string]any{"type": "string"},
					},
					"required":             []any{"title", "author", "shortDescription"},
					"additionalProperties": false,
				},
			},
			"youtube": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":   map[string]any{"type": "string"},
						"channel": map[string]any{"type": "string"},
						"link":    map[string]any{"type": "string"},
					},
					"required":             []any{"title", "channel", "link"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"books", "youtube"},
		"additionalProperties": false,
	},
}

// ImprovementSchema defines the JSON schema for weak-topic analysis responses.
var ImprovementSchema = &llm.Schema{
	Name:        "improvement-topics",
	Description: "Granular weak topics derived from the user's mistakes",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topicsToImprove": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topicName": map[string]any{"type": "string"},
						"reason": map[string]any{
							"type":        "string",
							"description": "Why this topic is weak, tied to a specific mistake",
						},
						"resourceLink": resourceLinkDef,
					},
					"required":             []any{"topicName", "reason", "resourceLink"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"topicsToImprove"},
		"additionalProperties": false,
	},
}
