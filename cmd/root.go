package cmd

import (
	"github.com/spf13/cobra"

	"github.com/talentmatch/talentmatch/internal/identity"
	"github.com/talentmatch/talentmatch/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "talentmatch",
	Short: "Interview scheduling and assessment in the terminal",
	Long:  "TalentMatch — terminal client for booking interviews, taking timed question rounds, and authoring questions as a subject-matter expert.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history file (overrides TALENTMATCH_DB env var)")
	rootCmd.PersistentFlags().String("backend", "", "Assessment backend base URL (overrides TALENTMATCH_API_URL env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the history path using --db flag (highest
// priority), then TALENTMATCH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadProfile reads the locally saved identity. A missing or malformed
// profile file means "not logged in", never an error.
func loadProfile() (string, *identity.Profile, error) {
	path, err := identity.DefaultPath()
	if err != nil {
		return "", nil, err
	}
	profile, err := identity.Load(path)
	if err != nil {
		return path, nil, nil
	}
	return path, profile, nil
}
