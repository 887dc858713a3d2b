package mail

import (
	"bytes"
	"text/template"

	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/util"
)

const verificationSubject = "Verify your email"

var verificationTemplate = template.Must(template.New("verification").Parse(`Hi {{.Username}},

Welcome! We're very excited to have you on board.

To verify your email please open the following link:
{{.VerificationURL}}

This link expires in {{.ExpiresIn}}.

Need help, or have questions? Just reply to this email, we'd love to help.
`))

type templateRenderer struct{}

// NewTemplateRenderer returns the text/template based MailRenderer.
func NewTemplateRenderer() service.MailRenderer {
	return templateRenderer{}
}

// RenderVerification renders the email-verification message.
func (templateRenderer) RenderVerification(mail service.VerificationMail) (string, string, error) {
	return RenderVerification(mail)
}

// RenderVerification renders the email-verification subject and plain text body.
func RenderVerification(mail service.VerificationMail) (string, string, error) {
	var buf bytes.Buffer
	err := verificationTemplate.Execute(&buf, struct {
		Username        string
		VerificationURL string
		ExpiresIn       string
	}{
		Username:        mail.Username,
		VerificationURL: mail.VerificationURL,
		ExpiresIn:       util.FormatDuration(mail.ExpiresIn),
	})
	if err != nil {
		return "", "", errors.Wrap(err, "failed to render verification mail")
	}

	return verificationSubject, buf.String(), nil
}
