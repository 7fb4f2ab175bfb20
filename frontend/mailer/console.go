package mailer

import (
	"log"
	"sync"
)

// Console logs messages instead of sending them. Used when no SendGrid key is
// configured and in tests; Sent keeps what went through for assertions.
type Console struct {
	Logger *log.Logger

	mu   sync.Mutex
	Sent []Message
}

var _ Mailer = (*Console)(nil)

func (m *Console) Send(msg Message) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, msg)
	m.mu.Unlock()

	if m.Logger != nil {
		m.Logger.Printf("mail to %s from %s <%s>: %s: %s",
			msg.Recipient, msg.FromName, msg.ReplyTo, msg.Subject, msg.Body)
	}
	return nil
}
