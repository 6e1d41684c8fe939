package cmd

import (
	"game-catalog/core/database"
	"game-catalog/core/reconcile"
	gamesReconcile "game-catalog/feature/games/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRunReconcile bool

// reconcileCmd hashes the archive directory and syncs the games table.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Sync stored content hashes with the archive directory",
	Long: `Scans the archive directory, hashes every file and updates the games table:
files with a missing or stale hash are updated, unknown files are registered.
All writes are committed together at the end of the run.

Records whose file was removed are left untouched.

Examples:
  # Apply changes
  reconcile

  # Report only
  reconcile --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		r := gamesReconcile.NewReconciler(database.ConfigOpener{Config: cfg.Database}, cfg.Archive, l)
		plan, _, err := r.Run(cmd.Context(), reconcile.ReconcileOptions{DryRun: dryRunReconcile})
		if err != nil {
			return err
		}

		printReconcileReport(l, plan)
		if dryRunReconcile {
			l.Info("Dry-run mode: No changes were made.")
		}
		return nil
	},
}

// printReconcileReport logs the planned actions, at most five of them.
func printReconcileReport(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	for _, skipped := range plan.Skipped {
		l.Warn("Skipped file", zap.String("file", skipped.Name), zap.String("reason", skipped.Reason))
	}

	maxShow := 5
	if len(plan.Actions) < maxShow {
		maxShow = len(plan.Actions)
	}
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

func init() {
	reconcileCmd.Flags().BoolVar(&dryRunReconcile, "dry-run", false, "Plan only; write nothing")
	RootCmd.AddCommand(reconcileCmd)
}
