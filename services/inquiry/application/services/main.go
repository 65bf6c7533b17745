package services

import (
	"github.com/ghuser/cardboard/pkg/app"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Inquiry *InquiryService
}

// New wires the inquiry application service with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	return &Services{
		Inquiry: NewInquiryService(a.Email, a.Mailer, a.EventBus, a.Logger),
	}
}
