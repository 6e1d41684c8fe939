package rayid_test

import (
	"net/http/httptest"
	"testing"

	"game-catalog/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalsKey).(string))
	})
	return app
}

func TestNew_GeneratesID(t *testing.T) {
	resp, err := newApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	id := resp.Header.Get(rayid.Header)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)
}

func TestNew_ReusesInboundID(t *testing.T) {
	inbound := uuid.NewString()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, inbound)

	resp, err := newApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, inbound, resp.Header.Get(rayid.Header))
}

func TestNew_ReplacesInvalidInboundID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "not-a-uuid")

	resp, err := newApp().Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", resp.Header.Get(rayid.Header))
}
