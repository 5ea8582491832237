package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/seekline/jobtrack/internal/services"
	"github.com/seekline/jobtrack/internal/store"
	"github.com/seekline/jobtrack/internal/utils"
)

// ApplicationsHandler handles the application CRUD routes
type ApplicationsHandler struct {
	Store store.RecordStore
}

// Create handles POST /applications/
// @Summary Create a job application
// @Description Create a new application record; id is generated when omitted
// @Tags Applications
// @Accept json
// @Produce json
// @Param application body models.Application true "Application"
// @Success 200 {object} models.Application
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /applications/ [post]
func (h *ApplicationsHandler) Create(c *fiber.Ctx) error {
	app, appErr := decodeApplication(c)
	if appErr != nil {
		return utils.ErrorResponse(c, appErr.Message, appErr.Code, appErr.Type)
	}

	created, err := services.CreateApplication(c.UserContext(), h.Store, actingOwnerID(c), app)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			msg := fmt.Sprintf("Application '%s' already exists", app.ID)
			return utils.ErrorResponse(c, msg, fiber.StatusBadRequest, "applications.conflict")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "applications.create")
	}

	return c.Status(fiber.StatusOK).JSON(created)
}

// List handles GET /applications/?status=
// @Summary List job applications
// @Description List the acting user's applications, optionally filtered by status (case-insensitive)
// @Tags Applications
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} models.Application
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /applications/ [get]
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")

	apps, err := services.ListApplications(c.UserContext(), h.Store, actingOwnerID(c), status)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "applications.list")
	}

	return c.Status(fiber.StatusOK).JSON(apps)
}

// Get handles GET /applications/:id
// @Summary Get a job application
// @Description Fetch one application by id
// @Tags Applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} models.Application
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /applications/{id} [get]
func (h *ApplicationsHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	app, err := services.GetApplication(c.UserContext(), h.Store, actingOwnerID(c), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Application '%s' not found", id))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "applications.get")
	}

	return c.Status(fiber.StatusOK).JSON(app)
}

// Update handles PUT /applications/:id
// @Summary Update a job application
// @Description Full-replace of the record body; id and owner_id are preserved
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param application body models.Application true "Application"
// @Success 200 {object} models.Application
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /applications/{id} [put]
func (h *ApplicationsHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	app, appErr := decodeApplication(c)
	if appErr != nil {
		return utils.ErrorResponse(c, appErr.Message, appErr.Code, appErr.Type)
	}

	updated, err := services.UpdateApplication(c.UserContext(), h.Store, actingOwnerID(c), id, app)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Application '%s' not found", id))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "applications.update")
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// Delete handles DELETE /applications/:id
// @Summary Delete a job application
// @Description Delete one application by id; a repeat delete is a plain 404
// @Tags Applications
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /applications/{id} [delete]
func (h *ApplicationsHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	err := services.DeleteApplication(c.UserContext(), h.Store, actingOwnerID(c), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Application '%s' not found", id))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "applications.delete")
	}

	return utils.MessageResponse(c, "Application deleted successfully")
}
