package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talentmatch/talentmatch/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past interview runs from the local log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		answers, _ := cmd.Flags().GetBool("answers")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		events, err := s.EventRepo().QueryInterviewEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No interview runs recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-9s  %-9s  %-24s  %8s  %5s\n",
			"Timestamp", "Mode", "Action", "Job Role", "Answered", "Score")
		fmt.Println(strings.Repeat("─", 84))

		for _, e := range events {
			if e.Action == "start" {
				continue
			}
			role := e.JobRole
			if len(role) > 24 {
				role = role[:24]
			}
			fmt.Printf("%-19s  %-9s  %-9s  %-24s  %5d/%2d  %5d\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Mode, e.Action, role,
				e.AnsweredCount, e.QuestionCount, e.FinalScore)

			if !answers {
				continue
			}
			as, err := s.EventRepo().AnswersBySession(ctx, e.SessionID)
			if err != nil {
				continue
			}
			for _, a := range as {
				text := a.QuestionText
				if len(text) > 56 {
					text = text[:53] + "..."
				}
				fmt.Printf("    %-60s  %3d  (%s)\n", text, a.Score, a.Evaluator)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().BoolP("answers", "a", false, "Show per-answer scores for each run")
}
