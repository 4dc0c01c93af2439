package notifier

import (
	"github.com/sirupsen/logrus"

	"warehouse.GO/config"
)

// LogNotifier logs messages instead of sending them. Used when SMTP is
// not configured so the lifecycle code still has a working Notifier.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(msg Message) error {
	config.GetLogger().WithFields(logrus.Fields{
		"module":      "notifier",
		"to":          msg.To,
		"subject":     msg.Subject,
		"attachments": len(msg.Attachments),
	}).Info(msg.TextBody)
	return nil
}

// FromConfig returns an SMTP notifier when mail is configured, a log
// notifier otherwise.
func FromConfig(cfg config.MailerConfig) Notifier {
	if cfg.Host == "" {
		return NewLogNotifier()
	}
	return NewSMTPNotifier(cfg)
}
