package notifier

// Attachment is a file attached to an outgoing message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is one outgoing notification. Both bodies are sent as
// alternatives when present.
type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment
}

// Notifier delivers a message to a recipient. One synchronous attempt;
// any transport error means "notification failed" and the caller decides
// what to do about it.
type Notifier interface {
	Send(msg Message) error
}
