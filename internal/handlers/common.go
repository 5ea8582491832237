package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seekline/jobtrack/internal/middleware"
	"github.com/seekline/jobtrack/internal/models"
	"github.com/seekline/jobtrack/internal/types"
)

// actingOwnerID returns the id the store operations scope by: the resolved
// user's id on gated routes, "" (unscoped) on the open variant.
func actingOwnerID(c *fiber.Ctx) string {
	if user := middleware.ActingUser(c); user != nil {
		return user.ID
	}
	return ""
}

// decodeApplication parses and validates a request body into an Application.
// Decoding fails closed: missing required fields reject the request instead
// of defaulting.
func decodeApplication(c *fiber.Ctx) (*models.Application, *types.AppError) {
	var app models.Application
	if err := c.BodyParser(&app); err != nil {
		return nil, &types.AppError{
			Code:    fiber.StatusBadRequest,
			Message: "malformed application body: " + err.Error(),
			Type:    "applications.validation",
		}
	}

	if app.Company == "" || app.Position == "" || app.Status == "" || app.DateApplied.IsZero() {
		return nil, &types.AppError{
			Code:    fiber.StatusBadRequest,
			Message: "company, position, date_applied and status are required",
			Type:    "applications.validation",
		}
	}

	return &app, nil
}
