// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Ityord/aistudy/ent/llmrequestevent"
	"github.com/Ityord/aistudy/ent/quizhistoryitem"
	"github.com/Ityord/aistudy/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizhistoryitemFields := schema.QuizHistoryItem{}.Fields()
	_ = quizhistoryitemFields
	// quizhistoryitemDescExam is the schema descriptor for exam field.
	quizhistoryitemDescExam := quizhistoryitemFields[1].Descriptor()
	// quizhistoryitem.ExamValidator is a validator for the "exam" field. It is called by the builders before save.
	quizhistoryitem.ExamValidator = quizhistoryitemDescExam.Validators[0].(func(string) error)
	// quizhistoryitemDescSubject is the schema descriptor for subject field.
	quizhistoryitemDescSubject := quizhistoryitemFields[2].Descriptor()
	// quizhistoryitem.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	quizhistoryitem.SubjectValidator = quizhistoryitemDescSubject.Validators[0].(func(string) error)
	// quizhistoryitemDescTopic is the schema descriptor for topic field.
	quizhistoryitemDescTopic := quizhistoryitemFields[3].Descriptor()
	// quizhistoryitem.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizhistoryitem.TopicValidator = quizhistoryitemDescTopic.Validators[0].(func(string) error)
	// quizhistoryitemDescLevel is the schema descriptor for level field.
	quizhistoryitemDescLevel := quizhistoryitemFields[4].Descriptor()
	// quizhistoryitem.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	quizhistoryitem.LevelValidator = quizhistoryitemDescLevel.Validators[0].(func(string) error)
	// quizhistoryitemDescMergeTopic is the schema descriptor for merge_topic field.
	quizhistoryitemDescMergeTopic := quizhistoryitemFields[5].Descriptor()
	// quizhistoryitem.DefaultMergeTopic holds the default value on creation for the merge_topic field.
	quizhistoryitem.DefaultMergeTopic = quizhistoryitemDescMergeTopic.Default.(string)
	// quizhistoryitemDescDate is the schema descriptor for date field.
	quizhistoryitemDescDate := quizhistoryitemFields[9].Descriptor()
	// quizhistoryitem.DefaultDate holds the default value on creation for the date field.
	quizhistoryitem.DefaultDate = quizhistoryitemDescDate.Default.(func() time.Time)
}
