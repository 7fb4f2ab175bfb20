package views

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"tutordash/frontend/models"
)

var templates = template.Must(parse())

func parse() (*template.Template, error) {
	t := template.New("views")
	for _, src := range []string{headTemplate, loginTemplate, studentTemplate, adminTemplate, contactTemplate} {
		var err error
		t, err = t.Parse(src)
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Render executes the named view into the response. Exactly one of the three
// dashboard views renders per request; there is no partial update path.
func Render(c *fiber.Ctx, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

type LoginData struct {
	AppName string
	Error   string
}

type StudentData struct {
	AppName     string
	Name        string
	Courses     []models.Course
	Status      string
	StatusError bool
	StudentID   int
	ChartStamp  int64
}

// EntryRow is one line of the admin progress table, with the course id
// already resolved to a name.
type EntryRow struct {
	ID         int
	Date       string
	CourseName string
	Percentage string
}

type AdminData struct {
	AppName         string
	Name            string
	Students        []models.Student
	Courses         []models.Course
	EditStudentID   int
	EditCourseID    int
	SelectedStudent *models.Student
	Entries         []EntryRow
	Message         string
	MessageError    bool
	ChartStamp      int64
}

// CourseName resolves a course id against the loaded course list.
func (d AdminData) CourseName(id int) string {
	for _, c := range d.Courses {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

type ContactData struct {
	AppName     string
	Status      string
	StatusError bool
	Name        string
	Email       string
	Message     string
}
