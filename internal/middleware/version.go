package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIVersion is the version reported and accepted by the API.
const APIVersion = "1.0.0"

// VersionMiddleware parses the X-Api-Version header, stores it in context
// and echoes the served version on the response.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", APIVersion)

		// Support version aliases
		if version == "1.0" {
			version = APIVersion
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", APIVersion)

		return c.Next()
	}
}
