package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seekline/jobtrack/internal/models"
	"github.com/seekline/jobtrack/internal/services"
	"github.com/seekline/jobtrack/internal/store"
	"github.com/seekline/jobtrack/internal/utils"
)

// RequireUser resolves the request's session to a user and stores it in the
// request context. Missing session, expired session, or a session whose
// user has since been deleted all yield the same 401.
func RequireUser(rs store.RecordStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := services.SessionUserID(c)
		if userID == "" {
			return utils.UnauthorizedResponse(c, "auth.session")
		}

		user, err := rs.GetUserByID(c.UserContext(), userID)
		if err != nil {
			// stale session: referenced user no longer exists
			_ = services.DestroySession(c)
			return utils.UnauthorizedResponse(c, "auth.session")
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// ActingUser returns the user resolved by RequireUser, or nil on open routes.
func ActingUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
