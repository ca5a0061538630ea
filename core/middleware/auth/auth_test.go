package auth_test

import (
	"net/http/httptest"
	"testing"

	"shelf-gateway/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(key string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: key}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestNew(t *testing.T) {
	t.Run("empty key disables the check", func(t *testing.T) {
		app := newProtectedApp("")

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("matching key passes", func(t *testing.T) {
		app := newProtectedApp("s3cret")

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.HeaderName, "s3cret")
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		app := newProtectedApp("s3cret")

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		app := newProtectedApp("s3cret")

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.HeaderName, "nope")
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}
