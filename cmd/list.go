package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"game-catalog/core/database"
	"game-catalog/feature/games"

	"github.com/spf13/cobra"
)

var listQuery string

// listCmd prints the catalog once and exits.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the game catalog as JSON",
	Long: `Prints the catalog to stdout exactly as GET /games.json would return it.
Logs go to stderr. Exits non-zero when the body is an error object.

Examples:
  list
  list --query mario`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		svc := games.NewService(database.ConfigOpener{Config: cfg.Database}, cfg.Archive, l)
		return runList(cmd.Context(), svc, listQuery, cmd.OutOrStdout())
	},
}

// runList writes the catalog to w. An error result is still written before
// it is returned as an error.
func runList(ctx context.Context, lister games.Lister, query string, w io.Writer) error {
	result := lister.List(ctx, query)

	body, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(body)); err != nil {
		return err
	}

	return result.Err()
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Case-insensitive search text (title or filename)")
	RootCmd.AddCommand(listCmd)
}
