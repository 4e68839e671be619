package notify

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/juju/clock"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailer(send sendMailFunc) *SMTPMailer {
	m := NewSMTPMailer(MailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		User:     "noreply@example.com",
		Password: "secret",
		FromName: "Lindo Mart",
		Attempts: 3,
		Delay:    time.Millisecond,
		Clock:    clock.WallClock,
	})
	m.sendMail = send
	return m
}

func TestSMTPMailer_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	var sent []byte
	m := testMailer(func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		calls++
		if calls < 3 {
			return errors.New("temporary failure")
		}
		assert.Equal(t, "smtp.example.com:587", addr)
		assert.Equal(t, []string{"bob@example.com"}, to)
		sent = msg
		return nil
	})

	err := m.Send(context.Background(), "bob@example.com", "Hi", "<p>body</p>")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, string(sent), "To: bob@example.com\r\n")
	assert.Contains(t, string(sent), "Content-Type: text/html")
	assert.True(t, strings.HasSuffix(string(sent), "<p>body</p>"))
}

func TestSMTPMailer_GivesUp(t *testing.T) {
	calls := 0
	m := testMailer(func(string, smtp.Auth, string, []string, []byte) error {
		calls++
		return errors.New("smtp down")
	})

	err := m.Send(context.Background(), "bob@example.com", "Hi", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
	assert.Equal(t, 3, calls)
}

func TestSMTPMailer_DisabledWithoutCredentials(t *testing.T) {
	m := NewSMTPMailer(MailConfig{Host: "smtp.example.com"})
	assert.False(t, m.Enabled())
	assert.Error(t, m.Send(context.Background(), "a@b.c", "s", "b"))
}

func TestRenderMail(t *testing.T) {
	subject, body, err := RenderMail(alert.KindStatusUpdated, MailData{
		SenderName: "Lindo Mart",
		Username:   "alice",
		FormID:     12,
		Status:     "Approved",
		Message:    "<script>x</script>",
	})
	require.NoError(t, err)
	assert.Equal(t, "Form Status Updated", subject)
	assert.Contains(t, body, "Hello alice")
	assert.Contains(t, body, "#12")
	assert.Contains(t, body, "<strong>Approved</strong>")
	assert.NotContains(t, body, "<script>")

	subject, _, err = RenderMail(alert.Kind("unknown"), MailData{Message: "m"})
	require.NoError(t, err)
	assert.Equal(t, "Notification", subject)
}
