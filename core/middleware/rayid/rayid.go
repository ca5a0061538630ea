// Package rayid tags every request with a unique identifier for tracing.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LocalsKey is the fiber locals key the ray id is stored under. It must
// match the key the logger helpers read.
const LocalsKey = "ray_id"

// HeaderName is the response header that echoes the ray id to the client.
const HeaderName = "X-Ray-ID"

// New creates a middleware that assigns each request a fresh ray id,
// stores it in locals for downstream handlers and echoes it in the
// response headers so clients can quote it when reporting problems.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
