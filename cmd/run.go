package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/talentmatch/talentmatch/internal/api"
	"github.com/talentmatch/talentmatch/internal/app"
	"github.com/talentmatch/talentmatch/internal/evaluate"
	"github.com/talentmatch/talentmatch/internal/identity"
	"github.com/talentmatch/talentmatch/internal/screen"
	"github.com/talentmatch/talentmatch/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// start, when non-nil, is pushed on top of the landing screen.
func runApp(cmd *cobra.Command, start func(opts *app.Options) screen.Screen) error {
	ctx := cmd.Context()

	profilePath, profile, err := loadProfile()
	if err != nil {
		return fmt.Errorf("resolve profile path: %w", err)
	}

	backend, _ := cmd.Flags().GetString("backend")
	client := api.NewClient(backend)

	opts := app.Options{
		Client:      client,
		Profile:     profile,
		ProfilePath: profilePath,
	}

	// Local history is best effort; the backend owns durable truth.
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		st, err := store.Open(dbPath)
		if err == nil {
			defer st.Close()
			opts.EventRepo = st.EventRepo()
		} else {
			fmt.Fprintln(os.Stderr, "Local history unavailable:", err)
		}
	}

	// The evaluator is rebuilt once the candidate ID is known, which
	// for a first run is only after registration inside the TUI.
	opts.NewEvaluator = func(candidateID string) evaluate.Evaluator {
		evaluator, err := evaluate.New(ctx, evaluate.ConfigFromEnv(), client, candidateID)
		if err != nil {
			if cfg, ok := evaluate.DiscoverConfig(); ok {
				evaluator, err = evaluate.New(ctx, cfg, client, candidateID)
			}
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Evaluator not configured:", err)
			fmt.Fprintln(os.Stderr, "Falling back to local scoring.")
			evaluator = evaluate.NewLocalEvaluator(time.Now().UnixNano())
		}
		if opts.EventRepo != nil {
			evaluator = evaluate.WithLogging(evaluator, opts.EventRepo)
		}
		return evaluator
	}

	candidateID := ""
	if profile != nil && profile.Role == identity.RoleCandidate {
		candidateID = profile.ID
	}
	opts.Evaluator = opts.NewEvaluator(candidateID)

	if start != nil {
		opts.Start = start(&opts)
	}

	return app.Run(opts)
}
