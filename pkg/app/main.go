package app

import (
	"github.com/ghuser/cardboard/pkg/cache"
	"github.com/ghuser/cardboard/pkg/events"
	"github.com/ghuser/cardboard/pkg/logger"
	"github.com/ghuser/cardboard/services/catalog/domain/repositories"
	inquirydomain "github.com/ghuser/cardboard/services/inquiry/domain"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service BookRoutes calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing card query", "count", n)
//	app.Logger.ErrorContext(ctx, "failed to send", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger   logger.Logger
	Catalog  repositories.CardRepository
	EventBus *events.EventBus
	Redis    *cache.RedisClient // nil when REDIS_URL is unset; callers must check
	Mailer   inquirydomain.Mailer
	Email    inquirydomain.EmailSettings
}
