package service

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// Mailer sends the welcome mail after signup. Mail is best-effort: when SMTP
// is not configured the mailer is disabled and signup proceeds without it.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewMailer(host, port, username, password, from string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != ""
}

func (m *Mailer) SendWelcome(to, name string) error {
	if !m.Enabled() {
		return nil
	}

	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = "Welcome to pagegen"
	e.Text = []byte(fmt.Sprintf(
		"Hi %s,\n\nYour account is ready. Log in and describe the page you want — the assistant will generate the HTML and CSS for you.\n", name))

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := e.Send(addr, smtp.PlainAuth("", m.username, m.password, m.host)); err != nil {
		return fmt.Errorf("failed to send welcome mail: %w", err)
	}
	return nil
}
