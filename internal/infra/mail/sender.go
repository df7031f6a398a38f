package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const inboundAlertTemplate = `
<p>New inbound message on <b>{{.Channel}}</b>.</p>
<p>From: {{.From}}<br/>Message id: {{.MessageID}}</p>
<p>Reply within 24 hours to keep the free-text session window open.</p>
`

const deliveryFailureTemplate = `
<p>Message <b>{{.MessageID}}</b> to {{.To}} on {{.Channel}} ended as <b>{{.Status}}</b>.</p>
<p>Check the template status and the recipient identifier on the Zenvia console.</p>
`

func NewEmailSender(host string, port int, user, password, opsAddress string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		OpsAddress: opsAddress,
	}
}

func (s *EmailSender) SendInboundAlert(from, channel, messageID string) error {
	subject := fmt.Sprintf("📥 New %s message from %s", channel, from)
	return s.send(subject, inboundAlertTemplate, inboundAlertData{
		From:      from,
		Channel:   channel,
		MessageID: messageID,
	})
}

func (s *EmailSender) SendDeliveryFailure(to, channel, messageID, status string) error {
	subject := fmt.Sprintf("⚠️ Delivery %s for message to %s", status, to)
	return s.send(subject, deliveryFailureTemplate, deliveryFailureData{
		To:        to,
		Channel:   channel,
		MessageID: messageID,
		Status:    status,
	})
}

func (s *EmailSender) send(subject, tmpl string, data any) error {
	t, err := template.New("alert").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing mail template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering mail template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@softharbor.io")
	m.SetHeader("To", s.OpsAddress)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending SMTP mail: %w", err)
	}

	return nil
}
