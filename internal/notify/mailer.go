package notify

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/retry"
)

type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
	Attempts int
	Delay    time.Duration
	Clock    clock.Clock
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers HTML mail over SMTP with retries.
type SMTPMailer struct {
	cfg      MailConfig
	sendMail sendMailFunc
}

func NewSMTPMailer(cfg MailConfig) *SMTPMailer {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 3
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 2 * time.Second
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.WallClock
	}
	return &SMTPMailer{cfg: cfg, sendMail: smtp.SendMail}
}

func (m *SMTPMailer) Enabled() bool {
	return m.cfg.Host != "" && m.cfg.User != "" && m.cfg.Password != ""
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if !m.Enabled() {
		return errors.NotSupportedf("smtp mailer without credentials")
	}
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	msg := buildMessage(m.cfg.FromName, m.cfg.User, to, subject, htmlBody)

	err := retry.Call(retry.CallArgs{
		Func: func() error {
			return m.sendMail(addr, auth, m.cfg.User, []string{to}, msg)
		},
		NotifyFunc: func(lastErr error, attempt int) {
			logger.Warningf("mail to %s failed (attempt %d): %v", to, attempt, lastErr)
		},
		Attempts: m.cfg.Attempts,
		Delay:    m.cfg.Delay,
		Clock:    m.cfg.Clock,
		Stop:     ctx.Done(),
	})
	if err != nil {
		return errors.Annotatef(retry.LastError(err), "sending mail to %s", to)
	}
	return nil
}

func buildMessage(fromName, from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", fromName), from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
