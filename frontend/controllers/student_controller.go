package controllers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"tutordash/frontend/api"
	"tutordash/frontend/config"
	"tutordash/frontend/middleware"
	"tutordash/frontend/models"
	"tutordash/frontend/session"
	"tutordash/frontend/views"
)

type StudentController struct {
	Client *api.Client
	Cfg    *config.Config
}

func NewStudentController(client *api.Client, cfg *config.Config) *StudentController {
	return &StudentController{Client: client, Cfg: cfg}
}

// Dashboard renders the student view: one progress field per enrolled course
// and the progress chart. Admins land on their own view instead.
func (sc *StudentController) Dashboard(c *fiber.Ctx) error {
	me := middleware.Identity(c)
	if me.IsAdmin() {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	return views.Render(c, "student", sc.dashboardData(me, "", false))
}

// Submit saves one progress entry per filled-in course field. Fields that are
// empty or fail the 0..100 range check are skipped. The batch stops at the
// first backend failure; entries saved before it stand.
func (sc *StudentController) Submit(c *fiber.Ctx) error {
	me := middleware.Identity(c)
	if me.IsAdmin() {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	token := middleware.Token(c)

	var submitted int
	var failErr error
	for _, course := range me.Courses {
		raw := strings.TrimSpace(c.FormValue(fmt.Sprintf("pct_%d", course.ID)))
		if raw == "" {
			continue
		}
		pct, err := strconv.ParseFloat(raw, 64)
		if err != nil || pct < 0 || pct > 100 {
			continue
		}

		if err := sc.Client.SubmitProgress(c.UserContext(), token, course.ID, pct); err != nil {
			failErr = err
			break
		}
		submitted++
	}
	if api.IsUnauthorized(failErr) {
		session.Clear(c)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	status := "Enter at least one percentage."
	statusErr := false
	if failErr != nil {
		status = submitError(failErr)
		statusErr = true
	} else if submitted > 0 {
		status = "Progress saved."
	}

	// Whatever happened to the batch, re-resolve the identity so the form and
	// chart reflect server truth.
	if fresh, err := sc.Client.Me(c.UserContext(), token); err == nil {
		me = fresh
	} else if api.IsUnauthorized(err) {
		session.Clear(c)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return views.Render(c, "student", sc.dashboardData(me, status, statusErr))
}

func (sc *StudentController) dashboardData(me models.Identity, status string, statusErr bool) views.StudentData {
	return views.StudentData{
		AppName:     sc.Cfg.AppName,
		Name:        me.Name(),
		Courses:     me.Courses,
		Status:      status,
		StatusError: statusErr,
		StudentID:   me.StudentID,
		ChartStamp:  time.Now().UnixMilli(),
	}
}

func submitError(err error) string {
	if apiErr, ok := err.(*api.Error); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Failed to save some progress"
}
