package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckArchive(t *testing.T) {
	t.Run("CountsCandidates", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"mario.iso", "zelda.wbfs", "readme.txt"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "boxart"), 0o755))

		report := CheckArchive(dir, nil)
		assert.Equal(t, "ok", report.Status)
		assert.True(t, report.Exists)
		assert.True(t, report.IsDir)
		assert.Equal(t, 3, report.Files)
		assert.Empty(t, report.Error)

		onlyISO := func(name string) bool { return strings.HasSuffix(name, ".iso") }
		assert.Equal(t, 1, CheckArchive(dir, onlyISO).Files)
	})

	t.Run("Missing", func(t *testing.T) {
		report := CheckArchive(filepath.Join(t.TempDir(), "wii_games"), nil)
		assert.Equal(t, "error", report.Status)
		assert.False(t, report.Exists)
		assert.Equal(t, "directory does not exist", report.Error)
	})

	t.Run("NotADirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "games.db")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		report := CheckArchive(path, nil)
		assert.Equal(t, "error", report.Status)
		assert.True(t, report.Exists)
		assert.False(t, report.IsDir)
		assert.Contains(t, report.Error, "not a directory")
	})
}
