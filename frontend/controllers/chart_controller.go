package controllers

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tutordash/frontend/api"
	"tutordash/frontend/chart"
	"tutordash/frontend/config"
	"tutordash/frontend/middleware"
	"tutordash/frontend/models"
	"tutordash/frontend/utils"
)

// ChartController renders progress charts as PNG for the two dashboard
// canvases. Each canvas owns one chart.Slot, so overlapping renders never
// stack images and a stale render never replaces a fresher one.
type ChartController struct {
	Client *api.Client
	Cfg    *config.Config
	Slots  *chart.SlotSet
}

func NewChartController(client *api.Client, cfg *config.Config) *ChartController {
	return &ChartController{Client: client, Cfg: cfg, Slots: chart.NewSlotSet()}
}

// StudentChart serves the authenticated student's own chart.
func (cc *ChartController) StudentChart(c *fiber.Ctx) error {
	me := middleware.Identity(c)
	if me.StudentID == 0 {
		return utils.NotFound(c, "No student profile for this account")
	}

	entries, err := cc.Client.StudentProgress(c.UserContext(), middleware.Token(c), me.StudentID)
	if err != nil {
		return chartError(c, err)
	}
	return cc.serve(c, fmt.Sprintf("student/%d", me.StudentID), me.Courses, entries)
}

// AdminStudentChart serves the chart for the student selected in the admin
// view.
func (cc *ChartController) AdminStudentChart(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid student ID")
	}
	token := middleware.Token(c)

	entries, err := cc.Client.StudentProgress(c.UserContext(), token, studentID)
	if err != nil {
		return chartError(c, err)
	}
	courses, err := cc.Client.StudentCourses(c.UserContext(), token, studentID)
	if err != nil {
		return chartError(c, err)
	}
	return cc.serve(c, fmt.Sprintf("admin/%d", studentID), courses, entries)
}

func (cc *ChartController) serve(c *fiber.Ctx, key string, courses []models.Course, entries []models.ProgressEntry) error {
	slot := cc.Slots.Get(key)
	gen := slot.Begin()

	var buf bytes.Buffer
	if err := chart.Render(&buf, chart.BuildSeries(courses, entries)); err != nil {
		return utils.InternalServerError(c, "Could not render chart")
	}

	img := buf.Bytes()
	if !slot.Commit(gen, img) {
		// A newer render finished first; serve that one rather than
		// resurrecting a stale chart.
		img = slot.Current()
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(img)
}

func chartError(c *fiber.Ctx, err error) error {
	if apiErr, ok := err.(*api.Error); ok {
		return utils.Error(c, apiErr.Status, apiErr)
	}
	return utils.InternalServerError(c, "Could not load progress")
}
