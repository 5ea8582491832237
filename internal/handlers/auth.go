package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seekline/jobtrack/internal/middleware"
	"github.com/seekline/jobtrack/internal/services"
	"github.com/seekline/jobtrack/internal/store"
	"github.com/seekline/jobtrack/internal/utils"
)

// AuthHandler handles registration, login and session routes
type AuthHandler struct {
	Store store.RecordStore
}

// Register handles POST /register
// @Summary Register a new user
// @Description Create an account; usernames are unique and case-sensitive
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body services.RegisterInput true "User"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, "malformed registration body: "+err.Error(), fiber.StatusBadRequest, "auth.validation")
	}
	if input.Username == "" || input.Password == "" {
		return utils.ErrorResponse(c, "username and password are required", fiber.StatusBadRequest, "auth.validation")
	}

	user, err := services.RegisterUser(c.UserContext(), h.Store, input)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return utils.ErrorResponse(c, "username already registered", fiber.StatusBadRequest, "auth.conflict")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "auth.register")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

// Login handles POST /login
// @Summary Log in
// @Description Authenticate with username/password and establish a session cookie
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	// Form is the primary shape; fall back to a JSON body.
	if username == "" && password == "" {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&creds); err == nil {
			username, password = creds.Username, creds.Password
		}
	}

	user, err := services.Authenticate(c.UserContext(), h.Store, username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// same response for unknown user and wrong password
			return utils.ErrorResponse(c, services.ErrInvalidCredentials.Error(), fiber.StatusUnauthorized, "auth.credentials")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "auth.login")
	}

	if err := services.EstablishSession(c, user); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "auth.session")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "login successful",
		"ok":       true,
		"username": user.Username,
	})
}

// Logout handles POST /logout
// @Summary Log out
// @Description Destroy the server-side session; idempotent
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := services.DestroySession(c); err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "auth.logout")
	}
	return utils.MessageResponse(c, "logged out")
}

// Me handles GET /me
// @Summary Current user
// @Description Return the user bound to the request's session
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.ActingUser(c)
	if user == nil {
		return utils.UnauthorizedResponse(c, "auth.session")
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
