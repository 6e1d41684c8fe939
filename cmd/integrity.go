package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"game-catalog/core/database"
	"game-catalog/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the store schema and the archive directory",
	Long: `Verifies that the games table has every column the catalog expects and that
the archive directory exists. Prints the report as JSON; never changes anything.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		svc := integrity.NewService(database.ConfigOpener{Config: cfg.Database}, cfg.Archive, l)
		report := svc.Run(cmd.Context())

		if report.Schema != nil {
			for table, tbl := range report.Schema.Tables {
				if len(tbl.MissingColumns) > 0 {
					l.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					l.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
		}

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		if !report.Healthy {
			return errors.New("integrity check failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}
