package notifier

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"warehouse.GO/config"
)

// SMTPNotifier sends mail over plain SMTP using the settings from
// config.LoadMailerConfig.
type SMTPNotifier struct {
	cfg config.MailerConfig
}

func NewSMTPNotifier(cfg config.MailerConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(msg Message) error {
	body, contentType, err := buildMIME(msg)
	if err != nil {
		return err
	}

	var raw bytes.Buffer
	fmt.Fprintf(&raw, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&raw, "To: %s\r\n", msg.To)
	fmt.Fprintf(&raw, "Subject: %s\r\n", msg.Subject)
	raw.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&raw, "Content-Type: %s\r\n\r\n", contentType)
	raw.Write(body)

	addr := n.cfg.Host + ":" + n.cfg.Port
	var auth smtp.Auth
	if n.cfg.User != "" {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Pass, n.cfg.Host)
	}
	return smtp.SendMail(addr, auth, n.cfg.From, []string{msg.To}, raw.Bytes())
}

// buildMIME assembles a multipart/mixed body: an alternative part with the
// text and HTML bodies, followed by base64 attachments.
func buildMIME(msg Message) ([]byte, string, error) {
	var buf bytes.Buffer
	mixed := multipart.NewWriter(&buf)

	altBuf := &bytes.Buffer{}
	alt := multipart.NewWriter(altBuf)
	if msg.TextBody != "" {
		part, err := alt.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=utf-8"}})
		if err != nil {
			return nil, "", err
		}
		part.Write([]byte(msg.TextBody))
	}
	if msg.HTMLBody != "" {
		part, err := alt.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=utf-8"}})
		if err != nil {
			return nil, "", err
		}
		part.Write([]byte(msg.HTMLBody))
	}
	alt.Close()

	altPart, err := mixed.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"multipart/alternative; boundary=" + alt.Boundary()},
	})
	if err != nil {
		return nil, "", err
	}
	altPart.Write(altBuf.Bytes())

	for _, att := range msg.Attachments {
		ct := att.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		part, err := mixed.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {ct},
			"Content-Transfer-Encoding": {"base64"},
			"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", att.Filename)},
		})
		if err != nil {
			return nil, "", err
		}
		part.Write([]byte(base64.StdEncoding.EncodeToString(att.Data)))
	}
	mixed.Close()

	return buf.Bytes(), "multipart/mixed; boundary=" + mixed.Boundary(), nil
}
