package email

import "context"

// Sender hands a message to a mail transport. A nil error means the
// transport accepted the message, not that it reached an inbox.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

type Message struct {
	To       []string
	CC       []string
	BCC      []string
	ReplyTo  Address
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}

// Address is a mailbox with an optional display name.
type Address struct {
	Email string
	Name  string
}
