package cmd

import (
	"fmt"

	"github.com/Ityord/aistudy/internal/history"
	"github.com/Ityord/aistudy/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past quiz attempts",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past quiz attempts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, closeFn, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		items := hist.Items()
		if len(items) == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		if limit > 0 && limit < len(items) {
			items = items[:limit]
		}

		fmt.Printf("%-17s %-5s %-12s %-30s %-9s %s\n",
			"DATE", "EXAM", "SUBJECT", "TOPIC", "LEVEL", "SCORE")
		for _, item := range items {
			topic := item.Config.Topic
			if item.Config.MergeTopic != "" {
				topic = fmt.Sprintf("%s + %s", topic, item.Config.MergeTopic)
			}
			fmt.Printf("%-17s %-5s %-12s %-30s %-9s %d/%d (%d%%)\n",
				item.Date.Format("02 Jan 2006 15:04"),
				item.Config.Exam,
				item.Config.Subject,
				truncate(topic, 30),
				item.Config.Level,
				item.Score, item.TotalQuestions, item.Percentage)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, closeFn, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		n := hist.Len()
		if n == 0 {
			fmt.Println("History is already empty.")
			return nil
		}
		if err := hist.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Printf("Deleted %d history entries.\n", n)
		return nil
	},
}

// openHistory opens the store and loads the history into memory.
func openHistory(cmd *cobra.Command) (*history.Store, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	hist := history.NewStore(st.HistoryRepo())
	if err := hist.Load(cmd.Context()); err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load history: %w", err)
	}
	return hist, func() { st.Close() }, nil
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "Show at most N entries (0 = all)")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
}
