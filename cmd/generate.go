package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Ityord/aistudy/internal/llm"
	"github.com/Ityord/aistudy/internal/quizgen"
	"github.com/Ityord/aistudy/internal/store"
	"github.com/Ityord/aistudy/internal/syllabus"
	"github.com/spf13/cobra"
)

// generateCmd produces a quiz as JSON on stdout, for scripting and
// for inspecting what the prompts actually return.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		exam, _ := cmd.Flags().GetString("exam")
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		level, _ := cmd.Flags().GetString("level")
		merge, _ := cmd.Flags().GetString("merge-topic")

		cfg := syllabus.QuizConfig{
			Exam:       syllabus.Exam(exam),
			Subject:    syllabus.Subject(subject),
			Topic:      topic,
			Level:      syllabus.Level(level),
			MergeTopic: merge,
		}
		if cfg.Topic == "" {
			cfg.Topic = syllabus.TopicFoundational
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		fmt.Fprintf(os.Stderr, "Generating %d questions for %s %s (%s)...\n",
			quizgen.QuestionCount, cfg.Exam, cfg.Subject, cfg.Topic)

		questions, err := gen.GenerateQuiz(ctx, cfg, nil)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(questions)
	},
}

func init() {
	generateCmd.Flags().String("exam", "JEE", "Target exam (JEE or NEET)")
	generateCmd.Flags().String("subject", "Physics", "Subject")
	generateCmd.Flags().String("topic", "", "Topic (empty for syllabus-wide)")
	generateCmd.Flags().String("level", "Mains", "Difficulty level (Boards, Mains, Advanced)")
	generateCmd.Flags().String("merge-topic", "", "Optional second topic to blend in")
}
