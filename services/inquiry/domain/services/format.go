package services

import (
	"fmt"
	"html"
	"strings"

	"github.com/ghuser/cardboard/services/inquiry/domain"
	"github.com/ghuser/cardboard/services/inquiry/domain/models"
)

// FormatEmail renders a validated inquiry as an outbound message: subject,
// plain-text body, and HTML body. Every interpolated field in the HTML
// rendering is escaped (&, <, >, ", ') so a hostile message cannot inject
// markup into the owner's mail client.
//
// label is the storefront domain label, e.g. "Baseball Card", giving
// subjects like "Baseball Card Inquiry: 1989 Griffey RC - from Jo".
func FormatEmail(label string, in models.Inquiry) domain.EmailContent {
	var subject string
	if in.CardName != "" {
		subject = fmt.Sprintf("%s Inquiry: %s - from %s", label, in.CardName, in.Name)
	} else {
		subject = fmt.Sprintf("%s Inquiry from %s", label, in.Name)
	}

	return domain.EmailContent{
		Subject: subject,
		Text:    textBody(in),
		HTML:    htmlBody(label, in),
	}
}

func textBody(in models.Inquiry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", in.Name)
	fmt.Fprintf(&b, "Email: %s\n", in.Email)
	if in.CardID != "" {
		fmt.Fprintf(&b, "Card ID: %s\n", in.CardID)
	}
	if in.CardName != "" {
		fmt.Fprintf(&b, "Card Name: %s\n", in.CardName)
	}
	fmt.Fprintf(&b, "\nMessage:\n%s\n", in.Message)
	return b.String()
}

func htmlBody(label string, in models.Inquiry) string {
	esc := html.EscapeString

	var b strings.Builder
	b.WriteString("<html><body>\n")
	fmt.Fprintf(&b, "<h2>%s Inquiry</h2>\n", esc(label))
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>\n", esc(in.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>\n", esc(in.Email))
	if in.CardID != "" {
		fmt.Fprintf(&b, "<p><strong>Card ID:</strong> %s</p>\n", esc(in.CardID))
	}
	if in.CardName != "" {
		fmt.Fprintf(&b, "<p><strong>Card Name:</strong> %s</p>\n", esc(in.CardName))
	}
	b.WriteString("<p><strong>Message:</strong></p>\n")
	fmt.Fprintf(&b, "<pre style=\"font-family: sans-serif; white-space: pre-wrap;\">%s</pre>\n", esc(in.Message))
	b.WriteString("</body></html>\n")
	return b.String()
}
