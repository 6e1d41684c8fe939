// Package archive describes the game file archive: where the files live on
// disk and the public base URLs they are served under.
package archive

import (
	"path/filepath"
	"strings"
)

// Config holds configuration for the archive directory and its public URLs.
type Config struct {
	// Dir is the directory scanned by the reconciler (non-recursive).
	Dir string `mapstructure:"dir" default:"wii_games"`
	// DownloadBaseURL is prefixed to a filename to build its download link.
	DownloadBaseURL string `mapstructure:"download_base_url" default:"http://localhost:8080/wii_games/"`
	// CoverArtBaseURL is prefixed to a cover-art filename to build its link.
	CoverArtBaseURL string `mapstructure:"cover_art_base_url" default:"http://localhost:8080/boxart/"`
	// Extensions optionally restricts reconciliation to these file extensions (e.g. ".iso,.wbfs").
	// Empty means every regular file.
	Extensions []string `mapstructure:"extensions" default:""`
	// ChunkSize is the read size in bytes used when hashing files.
	ChunkSize int `mapstructure:"chunk_size" default:"8192"`
}

// DownloadURL returns the absolute download link for filename.
func (c Config) DownloadURL(filename string) string {
	return c.DownloadBaseURL + filename
}

// CoverArtURL returns the absolute cover-art link, or nil when no cover is stored.
func (c Config) CoverArtURL(filename *string) *string {
	if filename == nil || *filename == "" {
		return nil
	}
	u := c.CoverArtBaseURL + *filename
	return &u
}

// Accepts reports whether filename passes the extension filter.
func (c Config) Accepts(filename string) bool {
	if len(c.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range c.Extensions {
		allowed = strings.ToLower(strings.TrimSpace(allowed))
		if allowed == "" {
			continue
		}
		if !strings.HasPrefix(allowed, ".") {
			allowed = "." + allowed
		}
		if ext == allowed {
			return true
		}
	}
	return false
}
