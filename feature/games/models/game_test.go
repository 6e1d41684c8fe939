package models

import (
	"testing"

	"game-catalog/core/archive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_ToDisplay(t *testing.T) {
	links := archive.Config{
		DownloadBaseURL: "http://cdn.example/games/",
		CoverArtBaseURL: "http://cdn.example/boxart/",
	}
	stale := "http://old-host/wii_games/mario.iso"
	cover := "mario.png"
	size := int64(4096)

	t.Run("RebuildsLinks", func(t *testing.T) {
		g := Game{ID: 3, Filename: "mario.iso", Title: strPtr("Mario"), URL: &stale, SizeBytes: &size, CoverArtFilename: &cover}

		d := g.ToDisplay(links)
		assert.Equal(t, "http://cdn.example/games/mario.iso", d.URL)
		require.NotNil(t, d.CoverArtURL)
		assert.Equal(t, "http://cdn.example/boxart/mario.png", *d.CoverArtURL)
		assert.Equal(t, &size, d.SizeBytes)
		require.NotNil(t, d.Title)
		assert.Equal(t, "Mario", *d.Title)
	})

	t.Run("NoCoverArt", func(t *testing.T) {
		d := Game{Filename: "zelda.iso"}.ToDisplay(links)
		assert.Nil(t, d.CoverArtURL)
		assert.Nil(t, d.SHA256Hash)
		assert.Nil(t, d.Title)
	})
}

func strPtr(s string) *string {
	return &s
}
