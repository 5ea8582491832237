package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/seekline/jobtrack/internal/models"
)

// SessionCookie is the name of the opaque session token cookie.
const SessionCookie = "tracker_session"

var (
	sessionStore *session.Store
	sessionOnce  sync.Once
)

// InitSessions configures the server-side session store (singleton pattern).
// Sessions live in process memory, keyed by the opaque cookie token, and
// idle out after expiration. Logout destroys them eagerly.
func InitSessions(expiration time.Duration) {
	sessionOnce.Do(func() {
		log.Printf("Initializing session store: expiration=%s", expiration)
		sessionStore = session.New(session.Config{
			Expiration:     expiration,
			KeyLookup:      "cookie:" + SessionCookie,
			CookieHTTPOnly: true,
			CookieSameSite: "Lax",
		})
	})
}

// CurrentSession returns the session bound to the request, creating a fresh
// one when the client sent no valid token.
func CurrentSession(c *fiber.Ctx) (*session.Session, error) {
	if sessionStore == nil {
		return nil, fmt.Errorf("session store not initialized")
	}
	return sessionStore.Get(c)
}

// EstablishSession binds the authenticated user to the request's session.
func EstablishSession(c *fiber.Ctx, user *models.User) error {
	sess, err := CurrentSession(c)
	if err != nil {
		return err
	}
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)
	return sess.Save()
}

// DestroySession clears the server-side session state. Destroying a session
// that does not exist is a no-op, so logout is idempotent.
func DestroySession(c *fiber.Ctx) error {
	sess, err := CurrentSession(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// SessionUserID returns the user id stored in the request's session, or ""
// when the request carries no authenticated session.
func SessionUserID(c *fiber.Ctx) string {
	sess, err := CurrentSession(c)
	if err != nil {
		return ""
	}
	id, _ := sess.Get("user_id").(string)
	return id
}
