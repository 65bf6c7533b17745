package domain

import "errors"

// Sentinel errors for the inquiry domain. Use errors.Is() to check these.
var (
	// ErrInvalidInquiry indicates a field failed validation. The concrete
	// failure carries a user-facing message via services.ValidationError.
	ErrInvalidInquiry = errors.New("invalid inquiry")

	// ErrSpamDetected indicates the honeypot field was filled. The message
	// shown to the caller stays generic — it must not reveal the mechanism.
	ErrSpamDetected = errors.New("spam detected")

	// ErrNotConfigured indicates the email relay settings (API key,
	// recipient, sender) are incomplete. Fatal for the current request.
	ErrNotConfigured = errors.New("email service not configured")

	// ErrSendFailed indicates the email provider rejected or failed the send.
	ErrSendFailed = errors.New("email send failed")
)
