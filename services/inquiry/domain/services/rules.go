// Package services contains stateless domain services for the inquiry
// bounded context: form validation and outbound message formatting.
package services

import (
	"strings"

	pkgvalidator "github.com/ghuser/cardboard/pkg/validator"
	"github.com/ghuser/cardboard/services/inquiry/domain"
	"github.com/ghuser/cardboard/services/inquiry/domain/models"
)

// ValidationError reports the first rule an inquiry failed. Message is
// user-facing and safe to return verbatim in the response body.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap lets errors.Is(err, domain.ErrInvalidInquiry) match.
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInquiry }

// Rule binds one field extraction to a go-playground/validator tag
// expression and the message reported when it fails. The client and server
// rule sets are built from this one table shape so the two layers cannot
// drift apart; both use the same canonical email pattern (the "emailshape"
// tag registered in pkg/validator).
type Rule struct {
	Field   string
	Tag     string
	Value   func(models.Inquiry) string
	Message string
}

func rawName(in models.Inquiry) string    { return in.Name }
func rawEmail(in models.Inquiry) string   { return in.Email }
func rawMessage(in models.Inquiry) string { return in.Message }

func trimmedName(in models.Inquiry) string    { return strings.TrimSpace(in.Name) }
func trimmedEmail(in models.Inquiry) string   { return strings.TrimSpace(in.Email) }
func trimmedMessage(in models.Inquiry) string { return strings.TrimSpace(in.Message) }

// serverRules are authoritative: the endpoint re-validates every payload
// without trusting the client. Order matters — the first failing rule is
// reported and the rest are skipped.
var serverRules = []Rule{
	{"name", "required,max=100", trimmedName, "Valid name is required."},
	{"email", "required,emailshape,max=100", rawEmail, "Valid email is required."},
	{"message", "required,min=10", trimmedMessage, "Message must be between 10 and 2000 characters."},
	{"message", "max=2000", rawMessage, "Message must be between 10 and 2000 characters."},
}

// clientRules run before any network call. Same constraints, friendlier
// per-rule messages, and no honeypot check (the field is invisible to
// legitimate users).
var clientRules = []Rule{
	{"name", "required", trimmedName, "Name is required."},
	{"email", "required", trimmedEmail, "Email is required."},
	{"email", "emailshape", rawEmail, "Please enter a valid email address."},
	{"message", "required,min=10", trimmedMessage, "Message must be at least 10 characters long."},
	{"message", "max=2000", rawMessage, "Message cannot exceed 2000 characters."},
}

// ValidateServer applies the authoritative rule set, then the honeypot
// check. Returns a *ValidationError for field failures and
// domain.ErrSpamDetected when the honeypot is filled.
func ValidateServer(in models.Inquiry) error {
	if err := run(serverRules, in); err != nil {
		return err
	}
	if in.Phone != "" {
		return domain.ErrSpamDetected
	}
	return nil
}

// ValidateClient applies the pre-submission rule set.
func ValidateClient(in models.Inquiry) error {
	return run(clientRules, in)
}

func run(rules []Rule, in models.Inquiry) error {
	for _, r := range rules {
		if err := pkgvalidator.Var(r.Value(in), r.Tag); err != nil {
			return &ValidationError{Field: r.Field, Message: r.Message}
		}
	}
	return nil
}
