package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talentmatch/talentmatch/internal/identity"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the locally saved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := identity.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve profile path: %w", err)
		}
		if err := identity.Clear(path); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		fmt.Println("Logged out. The next launch starts with registration.")
		return nil
	},
}
