// Package mailer relays contact-form messages through a third-party mail
// service. It is deliberately independent of the dashboard session: the form
// is public and nothing here touches the backend API.
package mailer

// Message is one outbound notification.
type Message struct {
	FromName  string
	ReplyTo   string
	Subject   string
	Body      string
	Recipient string
}

// Mailer is any service that can send a message.
type Mailer interface {
	Send(msg Message) error
}
