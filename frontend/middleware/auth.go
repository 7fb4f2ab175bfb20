package middleware

import (
	"github.com/gofiber/fiber/v2"

	"tutordash/frontend/api"
	"tutordash/frontend/config"
	"tutordash/frontend/models"
	"tutordash/frontend/session"
)

// RequireIdentity is the bootstrap step for every dashboard route: it reads
// the session cookie and resolves it against the backend. The cookie alone
// proves nothing; only /api/auth/me decides whether the session is live.
// A 401 clears the session, any other failure sends the user back to login
// with a generic message.
func RequireIdentity(client *api.Client, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := session.Read(c, cfg.SessionSecret)
		if !ok {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		me, err := client.Me(c.UserContext(), token)
		if err != nil {
			if api.IsUnauthorized(err) {
				session.Clear(c)
				return c.Redirect("/login", fiber.StatusSeeOther)
			}
			return c.Redirect("/login?reason=invalid", fiber.StatusSeeOther)
		}

		c.Locals("token", token)
		c.Locals("identity", me)
		return c.Next()
	}
}

// AdminOnly keeps non-admins out of the admin view. Runs after RequireIdentity.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Identity(c).IsAdmin() {
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// Identity returns the identity resolved by RequireIdentity.
func Identity(c *fiber.Ctx) models.Identity {
	me, _ := c.Locals("identity").(models.Identity)
	return me
}

// Token returns the bearer token resolved by RequireIdentity.
func Token(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}
