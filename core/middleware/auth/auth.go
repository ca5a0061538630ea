// Package auth guards the API behind a static key.
package auth

import "github.com/gofiber/fiber/v2"

// HeaderName is the request header carrying the client's API key.
const HeaderName = "X-API-Key"

// Config configures the key check.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string
}

// New creates a middleware that rejects requests whose API key header does
// not match the configured key. When no key is configured every request
// passes through.
func New(config Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if config.ApiKey == "" {
			return c.Next()
		}
		if c.Get(HeaderName) != config.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
