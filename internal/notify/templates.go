package notify

import (
	"bytes"
	"html/template"

	"github.com/juju/errors"
	"github.com/linskybing/storeops-go/internal/domain/alert"
)

// MailData is the data every email template receives.
type MailData struct {
	SenderName string
	Username   string
	Message    string
	FormID     uint
	Status     string
	Role       string
}

type mailTemplate struct {
	subject string
	body    *template.Template
}

const layout = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
<h2 style="color: #2c3e50;">{{template "title" .}}</h2>
<p>Hello {{.Username}},</p>
{{template "content" .}}
<p style="color: #7f8c8d; font-size: 12px;">This is an automated message from {{.SenderName}}.</p>
</body>
</html>`

var mailTemplates = map[alert.Kind]mailTemplate{
	alert.KindFormReceived: newMailTemplate("New Form Received",
		`{{define "title"}}New Form Received{{end}}
{{define "content"}}<p>A new form{{if .FormID}} (#{{.FormID}}){{end}} has been sent to you.</p><p>{{.Message}}</p>{{end}}`),
	alert.KindStatusUpdated: newMailTemplate("Form Status Updated",
		`{{define "title"}}Form Status Updated{{end}}
{{define "content"}}<p>The status of form{{if .FormID}} #{{.FormID}}{{end}} is now <strong>{{.Status}}</strong>.</p><p>{{.Message}}</p>{{end}}`),
	alert.KindFormMoved: newMailTemplate("Form Transferred",
		`{{define "title"}}Form Transferred{{end}}
{{define "content"}}<p>A form{{if .FormID}} (#{{.FormID}}){{end}} has been transferred to you.</p><p>{{.Message}}</p>{{end}}`),
	alert.KindFollowUp: newMailTemplate("Follow-up Required",
		`{{define "title"}}Follow-up Required{{end}}
{{define "content"}}<p>Form{{if .FormID}} #{{.FormID}}{{end}} is still waiting for your action.</p><p>{{.Message}}</p>{{end}}`),
	alert.KindRoleUpdated: newMailTemplate("Role Updated",
		`{{define "title"}}Role Updated{{end}}
{{define "content"}}<p>Your role has been changed to <strong>{{.Role}}</strong>.</p><p>{{.Message}}</p>{{end}}`),
	alert.KindGeneric: newMailTemplate("Notification",
		`{{define "title"}}Notification{{end}}
{{define "content"}}<p>{{.Message}}</p>{{end}}`),
}

func newMailTemplate(subject, blocks string) mailTemplate {
	t := template.Must(template.New("layout").Parse(layout))
	template.Must(t.Parse(blocks))
	return mailTemplate{subject: subject, body: t}
}

// RenderMail returns the subject and HTML body for an alert kind. Unknown
// kinds fall back to the generic template.
func RenderMail(kind alert.Kind, data MailData) (string, string, error) {
	tpl, ok := mailTemplates[kind]
	if !ok {
		tpl = mailTemplates[alert.KindGeneric]
	}
	var buf bytes.Buffer
	if err := tpl.body.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", "", errors.Annotatef(err, "rendering %s mail", kind)
	}
	return tpl.subject, buf.String(), nil
}
