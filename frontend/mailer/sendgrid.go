package mailer

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

type sendgridMailer struct {
	key        string
	from       *sgmail.Email
	subjPrefix string
}

var _ Mailer = (*sendgridMailer)(nil)

// NewSendgrid builds a Mailer backed by the SendGrid v3 API.
func NewSendgrid(key, appName, fromEmail string) Mailer {
	return &sendgridMailer{
		key:        key,
		from:       sgmail.NewEmail(appName, fromEmail),
		subjPrefix: "[" + appName + "] ",
	}
}

func (m *sendgridMailer) Send(msg Message) error {
	p := sgmail.NewPersonalization()
	p.Subject = m.subjPrefix + msg.Subject
	p.AddTos(sgmail.NewEmail("", msg.Recipient))

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.SetReplyTo(sgmail.NewEmail(msg.FromName, msg.ReplyTo))
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/plain", msg.Body))

	req := sendgrid.GetRequest(m.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(v3)

	res, err := sendgrid.API(req)
	if err != nil {
		return err
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
