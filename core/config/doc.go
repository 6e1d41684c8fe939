// Package config provides configuration management for the game catalog.
//
// It uses Viper for environment variables and godotenv for an optional .env
// file. Defaults live next to each field in a `default` struct tag.
//
// # Configuration Structure
//
//   - Server: HTTP port and Swagger toggle
//   - Database: store driver and location (sqlite file or mysql)
//   - Archive: archive directory, download and cover-art base URLs
//   - Storage: S3/MinIO settings for publishing games.json
//   - Log: logging level and format
//
// Keys map to environment variables by upper-casing the dotted path and
// replacing dots with underscores: archive.download_base_url becomes
// ARCHIVE_DOWNLOAD_BASE_URL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Archive.Dir)
package config
