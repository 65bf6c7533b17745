package domain

import "context"

// EmailContent is the rendered form of one inquiry: subject line plus
// plain-text and HTML bodies.
type EmailContent struct {
	Subject string
	Text    string
	HTML    string
}

// OutboundEmail is one fully-formatted message handed to the provider.
type OutboundEmail struct {
	From     string // sender address, from server configuration
	FromName string // sender display name
	To       string // recipient address, from server configuration
	ReplyTo  string // the inquirer's submitted address
	Subject  string
	Text     string
	HTML     string
}

// Mailer is the outbound email port. The domain layer owns this interface;
// infrastructure implements it against the real provider.
//
// Send returns the provider's message id on success. Failures wrap
// ErrSendFailed. There is no retry — a failed send surfaces once to the
// caller, who may resubmit.
type Mailer interface {
	Send(ctx context.Context, email OutboundEmail) (string, error)
}
