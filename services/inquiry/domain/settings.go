package domain

// EmailSettings is the relay configuration for outbound inquiry mail.
// Completeness is checked per request, not at startup: the storefront keeps
// serving the catalog when mail is unconfigured, and the inquiry endpoint
// reports the misconfiguration instead.
type EmailSettings struct {
	APIKey string // provider API key
	To     string // store owner's inbox
	From   string // verified sender address
	Label  string // storefront domain label used in subjects, e.g. "Baseball Card"
}

// Complete reports whether the settings allow sending. Label is excluded —
// it always has a default.
func (s EmailSettings) Complete() bool {
	return s.APIKey != "" && s.To != "" && s.From != ""
}
