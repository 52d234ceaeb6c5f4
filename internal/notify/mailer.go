// Package notify delivers decision emails to candidates over SMTP.
package notify

import (
	"gopkg.in/gomail.v2"

	"github.com/zhassan-dev/resume-screener/config"
)

// Decision email templates, one pair per screening outcome.
const (
	MatchedSubject = "Interview Invitation"
	MatchedBody    = `Dear Candidate,

We reviewed your resume and are excited to invite you to a meeting/interview.

Please reply with your available times.

Best regards,
HR Team`

	RejectedSubject = "Application Update"
	RejectedBody    = `Dear Candidate,

Thank you for applying.

After reviewing your resume, we regret to inform you that we will not be moving forward with your application at this time.

We appreciate your interest and encourage you to apply for future openings.

Best regards,
HR Team`
)

// Mailer sends notifications through an SMTP relay. It implements
// services.Notifier.
type Mailer struct {
	cfg config.SMTP
}

// NewMailer creates a Mailer for the given SMTP settings.
func NewMailer(cfg config.SMTP) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers a single message. The dialer connects per call; the
// notification volume here is one message per candidate per pass.
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	return d.DialAndSend(msg)
}
