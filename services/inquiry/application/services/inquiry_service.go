package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	pkgevents "github.com/ghuser/cardboard/pkg/events"
	"github.com/ghuser/cardboard/pkg/logger"
	"github.com/ghuser/cardboard/services/inquiry/domain"
	"github.com/ghuser/cardboard/services/inquiry/domain/events"
	"github.com/ghuser/cardboard/services/inquiry/domain/models"
	domainsvcs "github.com/ghuser/cardboard/services/inquiry/domain/services"
)

// Receipt confirms a relayed inquiry: a service-side inquiry id and the
// provider's message id.
type Receipt struct {
	InquiryID uuid.UUID
	MessageID string
}

// InquiryService orchestrates the submission pipeline: configuration
// precondition, validation, spam check, formatting, send, event publish.
type InquiryService struct {
	settings domain.EmailSettings
	mailer   domain.Mailer
	bus      *pkgevents.EventBus // nil disables event publishing
	log      logger.Logger
}

// NewInquiryService returns an InquiryService wired with the given settings
// and infrastructure.
func NewInquiryService(settings domain.EmailSettings, mailer domain.Mailer, bus *pkgevents.EventBus, log logger.Logger) *InquiryService {
	return &InquiryService{settings: settings, mailer: mailer, bus: bus, log: log}
}

// Submit relays one inquiry to the store owner's inbox.
//
// The configuration check runs before validation: a misconfigured relay is a
// server fault and must surface as one even for payloads that would also
// fail validation. The honeypot check yields a generic error to the caller;
// the specifics are only logged.
func (s *InquiryService) Submit(ctx context.Context, in models.Inquiry) (Receipt, error) {
	if !s.settings.Complete() {
		return Receipt{}, domain.ErrNotConfigured
	}

	if err := domainsvcs.ValidateServer(in); err != nil {
		if errors.Is(err, domain.ErrSpamDetected) {
			s.log.WarnContext(ctx, "inquiry: honeypot field filled, rejecting as spam")
		}
		return Receipt{}, err
	}

	content := domainsvcs.FormatEmail(s.settings.Label, in)

	msgID, err := s.mailer.Send(ctx, domain.OutboundEmail{
		From:     s.settings.From,
		FromName: s.settings.Label + " Inquiries",
		To:       s.settings.To,
		ReplyTo:  in.Email,
		Subject:  content.Subject,
		Text:     content.Text,
		HTML:     content.HTML,
	})
	if err != nil {
		return Receipt{}, err
	}

	inquiryID := uuid.New()
	s.publishReceived(ctx, inquiryID, in.CardID)

	return Receipt{InquiryID: inquiryID, MessageID: msgID}, nil
}

// publishReceived emits inquiry.received. Publishing is best-effort: the
// mail is already sent, so a bus failure must not fail the request.
func (s *InquiryService) publishReceived(ctx context.Context, inquiryID uuid.UUID, cardID string) {
	if s.bus == nil {
		return
	}

	evt := events.InquiryReceivedEvent{
		EventID:    uuid.New(),
		Version:    1,
		InquiryID:  inquiryID,
		CardID:     cardID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		s.log.ErrorContext(ctx, "inquiry: marshal event", "error", err)
		return
	}
	msg := message.NewMessage(evt.EventID.String(), payload)
	if err := s.bus.Publish(ctx, events.TopicInquiryReceived, msg); err != nil {
		s.log.ErrorContext(ctx, "inquiry: publish event", "error", err, "inquiry_id", inquiryID)
	}
}
