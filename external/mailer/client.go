package mailer

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"

	"github.com/somireddylaw/feedback-api/schema"
	"github.com/somireddylaw/feedback-api/utils"
)

//go:generate mockgen -destination=mocks/mailer.go -package=mocks github.com/somireddylaw/feedback-api/external/mailer Notifier

// Notifier sends the advisory emails that follow a feedback submission. All
// sends are best effort: callers log failures and move on.
type Notifier interface {
	SendSubmitterConfirmation(ctx context.Context, record schema.Feedback) error
	SendAdminAlert(ctx context.Context, record schema.Feedback) error
	SendFormOpenedAlert(ctx context.Context, name, formURL string) error
}

// SMTPMailer delivers notifications over a single SMTP account.
type SMTPMailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
	localizer  *i18n.Localizer
}

func New(host string, port int, username, password, adminEmail string) *SMTPMailer {
	return &SMTPMailer{
		dialer:     gomail.NewDialer(host, port, username, password),
		from:       username,
		adminEmail: adminEmail,
		localizer:  utils.NewLocalizer("en"),
	}
}

func (m *SMTPMailer) SendSubmitterConfirmation(ctx context.Context, record schema.Feedback) error {
	subject, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.confirmation.subject",
	})
	if err != nil {
		return err
	}
	body, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.confirmation.body",
		TemplateData: map[string]string{
			"Name": record.DisplayName(),
		},
	})
	if err != nil {
		return err
	}

	return m.send(ctx, record.Email, subject, body)
}

func (m *SMTPMailer) SendAdminAlert(ctx context.Context, record schema.Feedback) error {
	subject, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.alert.subject",
	})
	if err != nil {
		return err
	}
	body, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.alert.body",
		TemplateData: map[string]string{
			"Name":  record.DisplayName(),
			"Email": record.Email,
		},
	})
	if err != nil {
		return err
	}

	return m.send(ctx, m.adminEmail, subject, body)
}

func (m *SMTPMailer) SendFormOpenedAlert(ctx context.Context, name, formURL string) error {
	subject, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.form_opened.subject",
	})
	if err != nil {
		return err
	}
	body, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.form_opened.body",
		TemplateData: map[string]string{
			"Name":    name,
			"FormURL": formURL,
		},
	})
	if err != nil {
		return err
	}

	return m.send(ctx, m.adminEmail, subject, body)
}

// send delivers one message. The SMTP dial blocks, so it runs on its own
// goroutine and the call returns once delivery finishes or the context
// expires, whichever comes first.
func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.WithField("prefix", "mailer").WithField("to", to).WithError(err).Error("fail to send mail")
		}
		return err
	case <-ctx.Done():
		log.WithField("prefix", "mailer").WithField("to", to).WithError(ctx.Err()).Error("mail dispatch timed out")
		return ctx.Err()
	}
}
