package models

// Inquiry is one contact/purchase request as submitted by the form.
// It is constructed transiently per submission, validated twice (client
// then server), and either relayed as an outbound email or discarded —
// never persisted.
//
// Phone is the honeypot: the field is invisible to legitimate users, so
// any non-empty value flags the submission as automated spam. This is a
// heuristic against naive form-fillers, not a security boundary.
type Inquiry struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	CardID   string `json:"cardId,omitempty"`
	CardName string `json:"cardName,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
