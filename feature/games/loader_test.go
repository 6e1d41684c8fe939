package games_test

import (
	"net/http/httptest"
	"testing"

	"game-catalog/core/loader"
	"game-catalog/feature/games"
	"game-catalog/feature/games/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeature_Load(t *testing.T) {
	opener := seedStore(t, models.Game{Filename: "mario.iso", Title: strPtr("mario")})
	feature := games.NewFeature(opener, testLinks, zap.NewNop())

	assert.Equal(t, "games", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	var _ loader.Feature = feature

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/games.json", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
