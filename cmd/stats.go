package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talentmatch/talentmatch/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show scoring call statistics per evaluator",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().EvaluationStats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No scoring calls recorded yet.")
			return nil
		}

		fmt.Printf("%-12s  %6s  %8s  %9s\n", "Evaluator", "Calls", "Failures", "Avg Score")
		fmt.Println(strings.Repeat("─", 42))
		for _, st := range stats {
			fmt.Printf("%-12s  %6d  %8d  %9.1f\n",
				st.Evaluator, st.Calls, st.Failures, st.AvgScore)
		}
		return nil
	},
}
