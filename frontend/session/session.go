package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the session cookie holding the wrapped backend credential.
const CookieName = "learning_matrix_token"

// Write wraps the backend bearer token in a signed cookie. No expiry is set
// on either the cookie or the claims: staleness is discovered through a 401
// from the backend, never guessed at locally.
func Write(c *fiber.Ctx, secret, token string) error {
	claims := jwt.MapClaims{
		"token": token,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// Read returns the bearer token from the session cookie. A missing, tampered
// or oddly signed cookie all read as "no session".
func Read(c *fiber.Ctx, secret string) (string, bool) {
	value := c.Cookies(CookieName)
	if value == "" {
		return "", false
	}

	parsed, err := jwt.Parse(value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return "", false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	token, ok := claims["token"].(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// Clear drops the session cookie.
func Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}
