package session_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutordash/frontend/session"
)

const secret = "testsecret"

func newApp() *fiber.App {
	app := fiber.New()
	app.Post("/set", func(c *fiber.Ctx) error {
		return session.Write(c, secret, c.FormValue("token"))
	})
	app.Get("/get", func(c *fiber.Ctx) error {
		token, ok := session.Read(c, secret)
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(token)
	})
	app.Post("/clear", func(c *fiber.Ctx) error {
		session.Clear(c)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func setCookie(t *testing.T, app *fiber.App, token string) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/set?token="+token, nil)
	// fiber reads form values from the query string too; good enough here
	resp, err := app.Test(req)
	require.NoError(t, err)
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestRoundTrip(t *testing.T) {
	app := newApp()
	cookie := setCookie(t, app, "abc")
	assert.True(t, cookie.HttpOnly)
	assert.NotEqual(t, "abc", cookie.Value, "raw bearer token must not appear in the cookie")

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(body))
}

func TestMissingCookieReadsAsAbsent(t *testing.T) {
	app := newApp()
	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTamperedCookieReadsAsAbsent(t *testing.T) {
	app := newApp()
	cookie := setCookie(t, app, "abc")
	cookie.Value += "x"

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestClearExpiresCookie(t *testing.T) {
	app := newApp()
	req := httptest.NewRequest(http.MethodPost, "/clear", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var cleared *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.MaxAge < 0 || !cleared.Expires.IsZero())
}
