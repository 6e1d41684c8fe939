package cmd

import (
	"game-catalog/core/database"
	"game-catalog/core/storage"
	"game-catalog/feature/games"

	"github.com/spf13/cobra"
)

// publishCmd uploads the catalog document to object storage.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload games.json to the configured bucket",
	Long: `Reads the full catalog and uploads it as a static JSON document, so a CDN
or static host can serve it without this process. The bucket is created if missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		svc := games.NewService(database.ConfigOpener{Config: cfg.Database}, cfg.Archive, l)
		p := games.NewPublisher(svc, client, cfg.Storage.Bucket, cfg.Storage.ObjectName, l)
		_, err = p.Publish(cmd.Context())
		return err
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
}
