package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/seekline/jobtrack/internal/handlers"
	"github.com/seekline/jobtrack/internal/middleware"
	"github.com/seekline/jobtrack/internal/services"
	"github.com/seekline/jobtrack/internal/store"
)

// setupApp wires the HTTP surface against a fresh in-memory store, mirroring
// the route layout in cmd/server.
func setupApp(t *testing.T, authRequired bool) (*fiber.App, store.RecordStore) {
	t.Helper()
	services.InitSessions(time.Hour)

	rs := store.NewMemory()
	app := fiber.New()

	authHandler := &handlers.AuthHandler{Store: rs}
	appsHandler := &handlers.ApplicationsHandler{Store: rs}
	statsHandler := &handlers.StatisticsHandler{Store: rs}

	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/me", middleware.RequireUser(rs), authHandler.Me)

	apps := app.Group("/applications")
	stats := app.Group("/statistics")
	if authRequired {
		gate := middleware.RequireUser(rs)
		apps.Use(gate)
		stats.Use(gate)
	}

	apps.Post("/", appsHandler.Create)
	apps.Get("/", appsHandler.List)
	apps.Get("/:id", appsHandler.Get)
	apps.Put("/:id", appsHandler.Update)
	apps.Delete("/:id", appsHandler.Delete)

	stats.Get("/", statsHandler.Summary)

	return app, rs
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute %s %s: %v", method, path, err)
	}
	return resp
}

// registerUser registers an account and fails the test on error.
func registerUser(t *testing.T, app *fiber.App, username, password string) {
	t.Helper()
	resp := doJSON(t, app, "POST", "/register", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("Failed to register %s: status %d", username, resp.StatusCode)
	}
}

// loginUser logs in with form credentials and returns the session cookie.
func loginUser(t *testing.T, app *fiber.App, username, password string) *http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Failed to execute login: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Failed to log in %s: status %d", username, resp.StatusCode)
	}

	for _, c := range resp.Cookies() {
		if c.Name == services.SessionCookie {
			return c
		}
	}
	t.Fatal("Login response carried no session cookie")
	return nil
}

// decodeBody decodes a JSON response body into out.
func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}
