package controllers

import (
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"tutordash/frontend/api"
	"tutordash/frontend/config"
	"tutordash/frontend/middleware"
	"tutordash/frontend/session"
	"tutordash/frontend/views"
)

type AdminController struct {
	Client *api.Client
	Cfg    *config.Config
}

func NewAdminController(client *api.Client, cfg *config.Config) *AdminController {
	return &AdminController{Client: client, Cfg: cfg}
}

type studentForm struct {
	Username    string `validate:"required"`
	Password    string `validate:"required"`
	DisplayName string `validate:"required"`
}

type studentEditForm struct {
	Username    string `validate:"required"`
	DisplayName string `validate:"required"`
}

type courseForm struct {
	Name  string `validate:"required"`
	Color string `validate:"omitempty,hexcolor"`
}

// Dashboard renders the admin view: both managed lists, the add forms, the
// row being edited (if any) and the selected student's progress.
func (ac *AdminController) Dashboard(c *fiber.Ctx) error {
	return ac.render(c, 0, "", false)
}

// CreateStudent handles the add-student form.
func (ac *AdminController) CreateStudent(c *fiber.Ctx) error {
	form := studentForm{
		Username:    c.FormValue("username"),
		Password:    c.FormValue("password"),
		DisplayName: c.FormValue("display_name"),
	}
	if err := validate.Struct(form); err != nil {
		return ac.render(c, 0, "Display name, username and password are required", true)
	}

	in := api.StudentInput{
		Username:    form.Username,
		Password:    form.Password,
		DisplayName: form.DisplayName,
		CourseIDs:   formCourseIDs(c),
	}
	if err := ac.Client.CreateStudent(c.UserContext(), middleware.Token(c), in); err != nil {
		return ac.fail(c, err)
	}
	return ac.render(c, 0, "Student added", false)
}

// UpdateStudent saves a row edit. Account credentials and the profile live
// behind two separate endpoints; both must succeed, and there is no rollback
// of the first call when the second fails.
func (ac *AdminController) UpdateStudent(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return ac.render(c, 0, "Invalid student ID", true)
	}
	userID, err := strconv.Atoi(c.FormValue("user_id"))
	if err != nil {
		return ac.render(c, 0, "Invalid user ID", true)
	}

	form := studentEditForm{
		Username:    c.FormValue("username"),
		DisplayName: c.FormValue("display_name"),
	}
	if err := validate.Struct(form); err != nil {
		return ac.render(c, 0, "Display name and username are required", true)
	}

	token := middleware.Token(c)
	creds := api.UserInput{
		Username: form.Username,
		Password: c.FormValue("password"),
	}
	if err := ac.Client.UpdateUser(c.UserContext(), token, userID, creds); err != nil {
		return ac.fail(c, err)
	}

	profile := api.StudentProfileInput{
		DisplayName: form.DisplayName,
		CourseIDs:   formCourseIDs(c),
	}
	if err := ac.Client.UpdateStudent(c.UserContext(), token, studentID, profile); err != nil {
		return ac.fail(c, err)
	}
	return ac.render(c, 0, "Student updated", false)
}

// DeleteStudent removes a student. The template asks for confirmation before
// the form ever posts.
func (ac *AdminController) DeleteStudent(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return ac.render(c, 0, "Invalid student ID", true)
	}
	if err := ac.Client.DeleteStudent(c.UserContext(), middleware.Token(c), studentID); err != nil {
		return ac.fail(c, err)
	}
	return ac.render(c, 0, "Student deleted", false)
}

// CreateCourse handles the add-course form.
func (ac *AdminController) CreateCourse(c *fiber.Ctx) error {
	form := courseForm{Name: c.FormValue("name"), Color: c.FormValue("color")}
	if err := validate.Struct(form); err != nil {
		return ac.render(c, 0, "Course name is required and color must be a hex value", true)
	}

	in := api.CourseInput{Name: form.Name, Color: form.Color}
	if err := ac.Client.CreateCourse(c.UserContext(), middleware.Token(c), in); err != nil {
		return ac.fail(c, err)
	}
	return ac.render(c, 0, "Course added", false)
}

// UpdateCourse saves a course row edit.
func (ac *AdminController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return ac.render(c, 0, "Invalid course ID", true)
	}

	form := courseForm{Name: c.FormValue("name"), Color: c.FormValue("color")}
	if err := validate.Struct(form); err != nil {
		return ac.render(c, 0, "Course name is required and color must be a hex value", true)
	}

	in := api.CourseInput{Name: form.Name, Color: form.Color}
	if err := ac.Client.UpdateCourse(c.UserContext(), middleware.Token(c), courseID, in); err != nil {
		return ac.fail(c, err)
	}
	return ac.render(c, 0, "Course updated", false)
}

// DeleteCourse removes a course.
func (ac *AdminController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return ac.render(c, 0, "Invalid course ID", true)
	}
	if err := ac.Client.DeleteCourse(c.UserContext(), middleware.Token(c), courseID); err != nil {
		return ac.fail(c, err)
	}
	return ac.render(c, 0, "Course deleted", false)
}

// DeleteProgress removes one progress entry and re-renders the same
// student's chart and table.
func (ac *AdminController) DeleteProgress(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return ac.render(c, 0, "Invalid student ID", true)
	}
	progressID, err := strconv.Atoi(c.Params("progressId"))
	if err != nil {
		return ac.render(c, studentID, "Invalid progress ID", true)
	}

	if err := ac.Client.DeleteProgressEntry(c.UserContext(), middleware.Token(c), studentID, progressID); err != nil {
		return ac.fail(c, err)
	}
	return ac.render(c, studentID, "Entry deleted", false)
}

// render rebuilds the whole admin view from fresh server state. Every
// mutation funnels through here, so each change is followed by a full
// refetch-and-rerender rather than a row patch.
func (ac *AdminController) render(c *fiber.Ctx, selected int, msg string, msgErr bool) error {
	token := middleware.Token(c)
	me := middleware.Identity(c)

	data := views.AdminData{
		AppName:      ac.Cfg.AppName,
		Name:         me.Name(),
		Message:      msg,
		MessageError: msgErr,
		ChartStamp:   time.Now().UnixMilli(),
	}

	students, err := ac.Client.ListStudents(c.UserContext(), token)
	if err != nil {
		return ac.loadFailed(c, data, err)
	}
	courses, err := ac.Client.ListCourses(c.UserContext(), token)
	if err != nil {
		return ac.loadFailed(c, data, err)
	}
	data.Students = students
	data.Courses = courses

	if id, err := strconv.Atoi(c.Query("edit-student")); err == nil {
		data.EditStudentID = id
	}
	if id, err := strconv.Atoi(c.Query("edit-course")); err == nil {
		data.EditCourseID = id
	}

	if selected == 0 {
		// The empty placeholder option renders no chart and no table, and
		// costs no extra network calls.
		selected, _ = strconv.Atoi(c.Query("student"))
	}
	if selected != 0 {
		for i := range students {
			if students[i].ID == selected {
				data.SelectedStudent = &students[i]
				break
			}
		}
	}
	if data.SelectedStudent != nil {
		entries, err := ac.Client.StudentProgress(c.UserContext(), token, data.SelectedStudent.ID)
		if err != nil {
			return ac.loadFailed(c, data, err)
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].RecordedAt.After(entries[j].RecordedAt)
		})
		rows := make([]views.EntryRow, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, views.EntryRow{
				ID:         e.ID,
				Date:       e.RecordedAt.Format("2006-01-02 15:04"),
				CourseName: data.CourseName(e.CourseID),
				Percentage: e.Percentage.String(),
			})
		}
		data.Entries = rows
	}

	return views.Render(c, "admin", data)
}

// fail maps a mutation error to the right exit: a 401 means the session died
// mid-use, so the whole view is disposable and the user goes back to login.
// Anything else re-renders the view with the server's message inline.
func (ac *AdminController) fail(c *fiber.Ctx, err error) error {
	if api.IsUnauthorized(err) {
		session.Clear(c)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	msg := "Request failed"
	if apiErr, ok := err.(*api.Error); ok && apiErr.Message != "" {
		msg = apiErr.Message
	}
	return ac.render(c, 0, msg, true)
}

// loadFailed handles errors while rebuilding the view itself: render what we
// have with the failure inline instead of refetching again.
func (ac *AdminController) loadFailed(c *fiber.Ctx, data views.AdminData, err error) error {
	if api.IsUnauthorized(err) {
		session.Clear(c)
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	msg := "Request failed"
	if apiErr, ok := err.(*api.Error); ok && apiErr.Message != "" {
		msg = apiErr.Message
	}
	data.Message = "Failed to load: " + msg
	data.MessageError = true
	return views.Render(c, "admin", data)
}

func formCourseIDs(c *fiber.Ctx) []int {
	ids := []int{}
	for _, raw := range c.Request().PostArgs().PeekMulti("course_ids") {
		if id, err := strconv.Atoi(string(raw)); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
