// Code generated by ent, DO NOT EDIT.

package quizhistoryitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Ityord/aistudy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v int64) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldItemID, v))
}

// Exam applies equality check predicate on the "exam" field. It's identical to ExamEQ.
func Exam(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldExam, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldSubject, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldTopic, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldLevel, v))
}

// MergeTopic applies equality check predicate on the "merge_topic" field. It's identical to MergeTopicEQ.
func MergeTopic(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldMergeTopic, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldScore, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldTotalQuestions, v))
}

// Percentage applies equality check predicate on the "percentage" field. It's identical to PercentageEQ.
func Percentage(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldPercentage, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldDate, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v int64) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v int64) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...int64) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...int64) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v int64) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v int64) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v int64) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v int64) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldItemID, v))
}

// ExamEQ applies the EQ predicate on the "exam" field.
func ExamEQ(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldExam, v))
}

// ExamNEQ applies the NEQ predicate on the "exam" field.
func ExamNEQ(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldExam, v))
}

// ExamIn applies the In predicate on the "exam" field.
func ExamIn(vs ...string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldExam, vs...))
}

// ExamNotIn applies the NotIn predicate on the "exam" field.
func ExamNotIn(vs ...string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldExam, vs...))
}

// ExamGT applies the GT predicate on the "exam" field.
func ExamGT(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldExam, v))
}

// ExamGTE applies the GTE predicate on the "exam" field.
func ExamGTE(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldExam, v))
}

// ExamLT applies the LT predicate on the "exam" field.
func ExamLT(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldExam, v))
}

// ExamLTE applies the LTE predicate on the "exam" field.
func ExamLTE(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldExam, v))
}

// ExamContains applies the Contains predicate on the "exam" field.
func ExamContains(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldContains(FieldExam, v))
}

// ExamHasPrefix applies the HasPrefix predicate on the "exam" field.
func ExamHasPrefix(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldHasPrefix(FieldExam, v))
}

// ExamHasSuffix applies the HasSuffix predicate on the "exam" field.
func ExamHasSuffix(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldHasSuffix(FieldExam, v))
}

// ExamEqualFold applies the EqualFold predicate on the "exam" field.
func ExamEqualFold(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEqualFold(FieldExam, v))
}

// ExamContainsFold applies the ContainsFold predicate on the "exam" field.
func ExamContainsFold(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldContainsFold(FieldExam, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldContainsFold(FieldSubject, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldContainsFold(FieldTopic, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldContainsFold(FieldLevel, v))
}

// MergeTopicEQ applies the EQ predicate on the "merge_topic" field.
func MergeTopicEQ(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldMergeTopic, v))
}

// MergeTopicNEQ applies the NEQ predicate on the "merge_topic" field.
func MergeTopicNEQ(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldMergeTopic, v))
}

// MergeTopicIn applies the In predicate on the "merge_topic" field.
func MergeTopicIn(vs ...string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldMergeTopic, vs...))
}

// MergeTopicNotIn applies the NotIn predicate on the "merge_topic" field.
func MergeTopicNotIn(vs ...string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldMergeTopic, vs...))
}

// MergeTopicGT applies the GT predicate on the "merge_topic" field.
func MergeTopicGT(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldMergeTopic, v))
}

// MergeTopicGTE applies the GTE predicate on the "merge_topic" field.
func MergeTopicGTE(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldMergeTopic, v))
}

// MergeTopicLT applies the LT predicate on the "merge_topic" field.
func MergeTopicLT(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldMergeTopic, v))
}

// MergeTopicLTE applies the LTE predicate on the "merge_topic" field.
func MergeTopicLTE(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldMergeTopic, v))
}

// MergeTopicContains applies the Contains predicate on the "merge_topic" field.
func MergeTopicContains(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldContains(FieldMergeTopic, v))
}

// MergeTopicHasPrefix applies the HasPrefix predicate on the "merge_topic" field.
func MergeTopicHasPrefix(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldHasPrefix(FieldMergeTopic, v))
}

// MergeTopicHasSuffix applies the HasSuffix predicate on the "merge_topic" field.
func MergeTopicHasSuffix(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldHasSuffix(FieldMergeTopic, v))
}

// MergeTopicEqualFold applies the EqualFold predicate on the "merge_topic" field.
func MergeTopicEqualFold(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEqualFold(FieldMergeTopic, v))
}

// MergeTopicContainsFold applies the ContainsFold predicate on the "merge_topic" field.
func MergeTopicContainsFold(v string) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldContainsFold(FieldMergeTopic, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldScore, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldTotalQuestions, v))
}

// PercentageEQ applies the EQ predicate on the "percentage" field.
func PercentageEQ(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldPercentage, v))
}

// PercentageNEQ applies the NEQ predicate on the "percentage" field.
func PercentageNEQ(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldPercentage, v))
}

// PercentageIn applies the In predicate on the "percentage" field.
func PercentageIn(vs ...int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldPercentage, vs...))
}

// PercentageNotIn applies the NotIn predicate on the "percentage" field.
func PercentageNotIn(vs ...int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldPercentage, vs...))
}

// PercentageGT applies the GT predicate on the "percentage" field.
func PercentageGT(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldPercentage, v))
}

// PercentageGTE applies the GTE predicate on the "percentage" field.
func PercentageGTE(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldPercentage, v))
}

// PercentageLT applies the LT predicate on the "percentage" field.
func PercentageLT(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldPercentage, v))
}

// PercentageLTE applies the LTE predicate on the "percentage" field.
func PercentageLTE(v int) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldPercentage, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.FieldLTE(FieldDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizHistoryItem) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizHistoryItem) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizHistoryItem) predicate.QuizHistoryItem {
	return predicate.QuizHistoryItem(sql.NotPredicates(p))
}
