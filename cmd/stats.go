package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/usagi/eigoz/internal/quizbank"
	"github.com/usagi/eigoz/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cur := stats.NewStore(st.Ledger()).Current()
		now := time.Now()
		today := cur.Today(now)

		fmt.Printf("Total answered:  %d\n", cur.TotalAnswered)
		fmt.Printf("Total correct:   %d\n", cur.TotalCorrect)
		if cur.TotalAnswered > 0 {
			fmt.Printf("Accuracy:        %.0f%%\n", float64(cur.TotalCorrect)/float64(cur.TotalAnswered)*100)
		}
		fmt.Printf("Review queue:    %d\n", len(cur.ReviewList))
		fmt.Println()

		fmt.Printf("Today:           %d answered, %d correct\n", today.Answered, today.Correct)
		for _, stamp := range stats.Stamps(cur, now) {
			mark := " "
			if stamp.Achieved {
				mark = "*"
			}
			fmt.Printf("  [%s] %s\n", mark, stamp.Label)
		}
		fmt.Println()

		acc, err := st.CategoryAccuracy(cmd.Context())
		if err != nil {
			return fmt.Errorf("category accuracy: %w", err)
		}
		if len(acc) > 0 {
			fmt.Println("By category:")
			for _, cat := range quizbank.CategoryOrder {
				counts, ok := acc[cat]
				if !ok {
					continue
				}
				fmt.Printf("  %-10s %d/%d correct\n", cat, counts[1], counts[0])
			}
			if counts, ok := acc["review"]; ok {
				fmt.Printf("  %-10s %d/%d correct\n", "review", counts[1], counts[0])
			}
		}

		events, err := st.RecentAnswerEvents(cmd.Context(), 10)
		if err != nil {
			return fmt.Errorf("recent answers: %w", err)
		}
		if len(events) > 0 {
			fmt.Println()
			fmt.Println("Recent answers:")
			for _, ev := range events {
				mark := "x"
				if ev.Correct {
					mark = "o"
				}
				fmt.Printf("  %s  %s  %-10s %s\n",
					ev.AnsweredAt.Format("2006-01-02 15:04"), mark, ev.Category, ev.QuestionID)
			}
		}

		return nil
	},
}
