package controllers

import (
	"github.com/gofiber/fiber/v2"

	"tutordash/frontend/api"
	"tutordash/frontend/config"
	"tutordash/frontend/session"
	"tutordash/frontend/views"
)

type AuthController struct {
	Client *api.Client
	Cfg    *config.Config
}

func NewAuthController(client *api.Client, cfg *config.Config) *AuthController {
	return &AuthController{Client: client, Cfg: cfg}
}

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// ShowLogin renders the login view. The bootstrap middleware redirects here
// with reason=invalid when a session cookie exists but the backend rejects it
// with something other than a 401.
func (ac *AuthController) ShowLogin(c *fiber.Ctx) error {
	data := views.LoginData{AppName: ac.Cfg.AppName}
	if c.Query("reason") == "invalid" {
		data.Error = "Session invalid"
	}
	return views.Render(c, "login", data)
}

// Login exchanges credentials for a bearer token and stores it in the
// session cookie.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	form := loginForm{
		Username: c.FormValue("username"),
		Password: c.FormValue("password"),
	}
	if err := validate.Struct(form); err != nil {
		return views.Render(c, "login", views.LoginData{
			AppName: ac.Cfg.AppName,
			Error:   "Username and password are required",
		})
	}

	token, err := ac.Client.Login(c.UserContext(), form.Username, form.Password)
	if err != nil {
		return views.Render(c, "login", views.LoginData{
			AppName: ac.Cfg.AppName,
			Error:   loginError(err),
		})
	}

	if err := session.Write(c, ac.Cfg.SessionSecret, token); err != nil {
		return err
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout clears the session and returns to the login view.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	session.Clear(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func loginError(err error) string {
	if apiErr, ok := err.(*api.Error); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Login failed"
}
