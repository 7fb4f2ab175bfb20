package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"tutordash/frontend/config"
	"tutordash/frontend/mailer"
	"tutordash/frontend/views"
)

// ContactController relays the public contact form to the tutors' inbox.
// It never touches the dashboard session.
type ContactController struct {
	Mailer mailer.Mailer
	Cfg    *config.Config
}

func NewContactController(m mailer.Mailer, cfg *config.Config) *ContactController {
	return &ContactController{Mailer: m, Cfg: cfg}
}

type contactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

// Show renders the contact form.
func (cc *ContactController) Show(c *fiber.Ctx) error {
	return views.Render(c, "contact", views.ContactData{AppName: cc.Cfg.AppName})
}

// Send validates the form and relays one email.
func (cc *ContactController) Send(c *fiber.Ctx) error {
	form := contactForm{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Message: c.FormValue("message"),
	}
	data := views.ContactData{
		AppName: cc.Cfg.AppName,
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	}

	if err := validate.Struct(form); err != nil {
		data.Status = "Please fill in your name, a valid email and a message."
		data.StatusError = true
		return views.Render(c, "contact", data)
	}

	msg := mailer.Message{
		FromName:  form.Name,
		ReplyTo:   form.Email,
		Subject:   "New contact message",
		Body:      fmt.Sprintf("From: %s <%s>\n\n%s", form.Name, form.Email, form.Message),
		Recipient: cc.Cfg.ContactEmail,
	}
	if err := cc.Mailer.Send(msg); err != nil {
		data.Status = "Could not send your message, please try again later."
		data.StatusError = true
		return views.Render(c, "contact", data)
	}

	return views.Render(c, "contact", views.ContactData{
		AppName: cc.Cfg.AppName,
		Status:  "Message sent.",
	})
}
