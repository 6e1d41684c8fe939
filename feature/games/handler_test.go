package games_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"game-catalog/core/middleware/rayid"
	"game-catalog/feature/games"
	"game-catalog/feature/games/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(lister games.Lister) *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	handler := games.NewHandler(games.NewAdapter(lister, zap.NewNop()), zap.NewNop())
	handler.RegisterRoutes(app)
	return app
}

func TestHandleCatalog(t *testing.T) {
	lister := new(mockLister)
	lister.On("List", mock.Anything, "mar").
		Return(games.Result{Games: []models.DisplayRecord{{Filename: "a.iso", Title: strPtr("Mario Kart")}}})
	app := setupTestApp(lister)

	req := httptest.NewRequest("GET", "/games.json?q=mar", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))

	var body map[string][]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body["games"], 1)
	assert.Equal(t, "Mario Kart", body["games"][0]["title"])
}

func TestHandleCatalog_ErrorResult(t *testing.T) {
	lister := new(mockLister)
	lister.On("List", mock.Anything, "").
		Return(games.Failure(games.KindQueryFailed, "Server database error: no such table: games"))
	app := setupTestApp(lister)

	req := httptest.NewRequest("GET", "/games.json", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "query_failed", body["kind"])
}

func TestHandleCatalog_NotFound(t *testing.T) {
	lister := new(mockLister)
	app := setupTestApp(lister)

	for _, method := range []string{"GET", "POST"} {
		req := httptest.NewRequest(method, "/foo", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "Not Found", string(body))
	}
	lister.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandleCatalog_ReusesRayID(t *testing.T) {
	lister := new(mockLister)
	lister.On("List", mock.Anything, "").Return(games.Result{})
	app := setupTestApp(lister)

	id := "6f1c1f0e-6a8f-4d0c-9d8b-1b2f3c4d5e6f"
	req := httptest.NewRequest("GET", "/games.json", nil)
	req.Header.Set(rayid.Header, id)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, id, resp.Header.Get(rayid.Header))
}
