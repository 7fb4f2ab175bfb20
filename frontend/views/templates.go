package views

const headTemplate = `{{define "head"}}<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.AppName}}</title>
    <style>
      body { font-family: system-ui, -apple-system, "Segoe UI", sans-serif; margin: 24px; color: #1e293b; }
      h1 { font-size: 24px; }
      h2 { font-size: 18px; margin-top: 32px; }
      label { display: block; margin-top: 12px; font-weight: 600; }
      input, select { padding: 6px 8px; margin-top: 4px; max-width: 100%; }
      button { margin-top: 8px; padding: 6px 14px; cursor: pointer; }
      table { border-collapse: collapse; margin-top: 12px; }
      th, td { border: 1px solid #cbd5e1; padding: 6px 10px; text-align: left; }
      form.inline { display: inline; }
      .error { color: #b91c1c; }
      .status { margin-top: 12px; font-weight: 600; }
      .muted { color: #64748b; }
      .topbar { display: flex; justify-content: space-between; align-items: baseline; }
      img.chart { margin-top: 16px; max-width: 100%; border: 1px solid #e2e8f0; }
      .swatch { display: inline-block; width: 12px; height: 12px; border-radius: 2px; vertical-align: middle; }
    </style>
  </head>
  <body>{{end}}`

const loginTemplate = `{{define "login"}}{{template "head" .}}
    <h1>{{.AppName}}</h1>
    <form method="post" action="/login">
      <label for="login-username">Username</label>
      <input id="login-username" name="username" type="text" autocomplete="username" required />
      <label for="login-password">Password</label>
      <input id="login-password" name="password" type="password" autocomplete="current-password" required />
      <div><button type="submit">Log in</button></div>
    </form>
    {{if .Error}}<p class="status error">{{.Error}}</p>{{end}}
  </body>
</html>{{end}}`

const studentTemplate = `{{define "student"}}{{template "head" .}}
    <div class="topbar">
      <h1>{{.AppName}}</h1>
      <form method="post" action="/logout"><button type="submit">Log out</button></form>
    </div>
    <p>Welcome, {{.Name}}.</p>

    <h2>Record progress</h2>
    <form method="post" action="/progress">
      {{range .Courses}}
      <label for="pct-{{.ID}}">{{.Name}} (%)</label>
      <input id="pct-{{.ID}}" name="pct_{{.ID}}" type="number" min="0" max="100" step="0.5" placeholder="0&ndash;100" />
      {{end}}
      <div><button type="submit">Save progress</button></div>
    </form>
    {{if .Status}}<p class="status{{if .StatusError}} error{{end}}">{{.Status}}</p>{{end}}

    {{if .StudentID}}
    <h2>Progress over time</h2>
    <img class="chart" src="/student/chart.png?t={{.ChartStamp}}" alt="Progress chart" />
    {{end}}
  </body>
</html>{{end}}`

const adminTemplate = `{{define "admin"}}{{template "head" .}}
    <div class="topbar">
      <h1>{{.AppName}} &mdash; Admin</h1>
      <form method="post" action="/logout"><button type="submit">Log out</button></form>
    </div>
    <p>Signed in as {{.Name}}.</p>
    {{if .Message}}<p class="status{{if .MessageError}} error{{end}}">{{.Message}}</p>{{end}}

    <h2>Students</h2>
    <table>
      <tr><th>Name</th><th>Username</th><th>Courses</th><th></th></tr>
      {{range $s := .Students}}
      {{if eq $s.ID $.EditStudentID}}
      <tr>
        <td colspan="4">
          <form method="post" action="/admin/students/{{$s.ID}}">
            <input type="hidden" name="user_id" value="{{$s.UserID}}" />
            <label>Display name <input name="display_name" value="{{$s.DisplayName}}" required /></label>
            <label>Username <input name="username" value="{{$s.Username}}" required /></label>
            <label>New password <input name="password" type="password" placeholder="leave blank to keep" /></label>
            <label>Courses</label>
            {{range $c := $.Courses}}
            <label><input type="checkbox" name="course_ids" value="{{$c.ID}}" {{if $s.Enrolled $c.ID}}checked{{end}} /> {{$c.Name}}</label>
            {{end}}
            <button type="submit">Save</button>
            <a href="/admin">Cancel</a>
          </form>
        </td>
      </tr>
      {{else}}
      <tr>
        <td>{{$s.DisplayName}}</td>
        <td>{{$s.Username}}</td>
        <td>{{range $i, $id := $s.CourseIDs}}{{if $i}}, {{end}}{{$.CourseName $id}}{{end}}</td>
        <td>
          <a href="/admin?edit-student={{$s.ID}}">Edit</a>
          <form class="inline" method="post" action="/admin/students/{{$s.ID}}/delete" onsubmit="return confirm('Delete student {{$s.DisplayName}}?');">
            <button type="submit">Delete</button>
          </form>
        </td>
      </tr>
      {{end}}
      {{end}}
    </table>

    <h2>Add student</h2>
    <form method="post" action="/admin/students">
      <label>Display name <input name="display_name" required /></label>
      <label>Username <input name="username" required /></label>
      <label>Password <input name="password" type="password" required /></label>
      <label>Courses</label>
      {{range .Courses}}
      <label><input type="checkbox" name="course_ids" value="{{.ID}}" /> {{.Name}}</label>
      {{end}}
      <button type="submit">Add student</button>
    </form>

    <h2>Courses</h2>
    <table>
      <tr><th>Name</th><th>Color</th><th></th></tr>
      {{range $c := .Courses}}
      {{if eq $c.ID $.EditCourseID}}
      <tr>
        <td colspan="3">
          <form method="post" action="/admin/courses/{{$c.ID}}">
            <label>Name <input name="name" value="{{$c.Name}}" required /></label>
            <label>Color <input name="color" value="{{$c.Color}}" placeholder="#RRGGBB" /></label>
            <button type="submit">Save</button>
            <a href="/admin">Cancel</a>
          </form>
        </td>
      </tr>
      {{else}}
      <tr>
        <td>{{$c.Name}}</td>
        <td>{{if $c.Color}}<span class="swatch" style="background: {{$c.Color}}"></span> {{$c.Color}}{{end}}</td>
        <td>
          <a href="/admin?edit-course={{$c.ID}}">Edit</a>
          <form class="inline" method="post" action="/admin/courses/{{$c.ID}}/delete" onsubmit="return confirm('Delete course {{$c.Name}}?');">
            <button type="submit">Delete</button>
          </form>
        </td>
      </tr>
      {{end}}
      {{end}}
    </table>

    <h2>Add course</h2>
    <form method="post" action="/admin/courses">
      <label>Name <input name="name" required /></label>
      <label>Color <input name="color" placeholder="#RRGGBB" /></label>
      <button type="submit">Add course</button>
    </form>

    <h2>Student progress</h2>
    <form method="get" action="/admin">
      <select name="student" onchange="this.form.submit()">
        <option value="">&mdash; select a student &mdash;</option>
        {{range $s := .Students}}
        <option value="{{$s.ID}}" {{if and $.SelectedStudent (eq $.SelectedStudent.ID $s.ID)}}selected{{end}}>{{$s.DisplayName}}</option>
        {{end}}
      </select>
      <noscript><button type="submit">Show</button></noscript>
    </form>

    {{if .SelectedStudent}}
    <img class="chart" src="/admin/students/{{.SelectedStudent.ID}}/chart.png?t={{.ChartStamp}}" alt="Progress chart for {{.SelectedStudent.DisplayName}}" />
    <table>
      <tr><th>Date</th><th>Course</th><th>%</th><th></th></tr>
      {{range .Entries}}
      <tr>
        <td>{{.Date}}</td>
        <td>{{.CourseName}}</td>
        <td>{{.Percentage}}</td>
        <td>
          <form class="inline" method="post" action="/admin/students/{{$.SelectedStudent.ID}}/progress/{{.ID}}/delete" onsubmit="return confirm('Delete this entry?');">
            <button type="submit">Delete</button>
          </form>
        </td>
      </tr>
      {{else}}
      <tr><td colspan="4" class="muted">No entries yet.</td></tr>
      {{end}}
    </table>
    {{end}}
  </body>
</html>{{end}}`

const contactTemplate = `{{define "contact"}}{{template "head" .}}
    <h1>Contact {{.AppName}}</h1>
    <form method="post" action="/contact">
      <label for="contact-name">Name</label>
      <input id="contact-name" name="name" value="{{.Name}}" required />
      <label for="contact-email">Email</label>
      <input id="contact-email" name="email" type="email" value="{{.Email}}" required />
      <label for="contact-message">Message</label>
      <textarea id="contact-message" name="message" rows="6" cols="48" required>{{.Message}}</textarea>
      <div><button type="submit">Send</button></div>
    </form>
    {{if .Status}}<p class="status{{if .StatusError}} error{{end}}">{{.Status}}</p>{{end}}
  </body>
</html>{{end}}`
