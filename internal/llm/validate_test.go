package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func questionListSchema(name string) *Schema {
	return &Schema{
		Name: name,
		Definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 4,
						"maxItems": 4,
					},
					"correctAnswerIndex": map[string]any{
						"type":    "integer",
						"minimum": 0,
						"maximum": 3,
					},
				},
				"required":             []any{"question", "options", "correctAnswerIndex"},
				"additionalProperties": false,
			},
		},
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("expected nil error without schema, got: %v", err)
	}
}

func TestValidateResponse_ValidArray(t *testing.T) {
	raw := json.RawMessage(`[
		{"question": "What is $2+2$?", "options": ["1", "2", "3", "4"], "correctAnswerIndex": 3}
	]`)
	if err := validateResponse(questionListSchema("valid-array"), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_SurroundingWhitespace(t *testing.T) {
	raw := json.RawMessage("\n\n  [{\"question\": \"q\", \"options\": [\"a\",\"b\",\"c\",\"d\"], \"correctAnswerIndex\": 0}]  \n")
	if err := validateResponse(questionListSchema("padded-array"), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCleanContent_StripsMarkdownFence(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"bare", `[{"q": 1}]`, `[{"q": 1}]`},
		{"whitespace", "  \n[1, 2]\n ", "[1, 2]"},
		{"json fence", "```json\n[1, 2]\n```", "[1, 2]"},
		{"anonymous fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence with padding", "\n```json\n[]\n```\n", "[]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := string(cleanContent(tc.raw)); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidateResponse_FencedArray(t *testing.T) {
	raw := json.RawMessage("```json\n[{\"question\": \"q\", \"options\": [\"a\",\"b\",\"c\",\"d\"], \"correctAnswerIndex\": 0}]\n```")
	if err := validateResponse(questionListSchema("fenced-array"), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(questionListSchema("invalid-json"), json.RawMessage(`[{"question":`))
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestValidateResponse_SchemaViolation(t *testing.T) {
	// correctAnswerIndex out of range.
	raw := json.RawMessage(`[{"question": "q", "options": ["a","b","c","d"], "correctAnswerIndex": 7}]`)
	err := validateResponse(questionListSchema("index-range"), raw)
	if err == nil {
		t.Fatal("expected error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`[{"question": "q", "options": ["a","b","c","d"]}]`)
	err := validateResponse(questionListSchema("missing-required"), raw)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	schema := questionListSchema("cache-check")
	raw := json.RawMessage(`[]`)
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := schemaCache.Load("cache-check"); !ok {
		t.Fatal("expected compiled schema to be cached")
	}
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("unexpected error on cached path: %v", err)
	}
}
