package cmd

import (
	"github.com/spf13/cobra"

	"github.com/talentmatch/talentmatch/internal/app"
	"github.com/talentmatch/talentmatch/internal/screen"
	"github.com/talentmatch/talentmatch/internal/screens/interview"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Jump straight into a practice interview",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		return runApp(cmd, func(opts *app.Options) screen.Screen {
			jobRole := role
			if jobRole == "" && opts.Profile != nil {
				jobRole = opts.Profile.JobRole
			}
			return interview.NewPractice(opts.Evaluator, opts.EventRepo, jobRole)
		})
	},
}

func init() {
	practiceCmd.Flags().String("role", "", "Job role to practice for (defaults to the saved profile's role)")
}
