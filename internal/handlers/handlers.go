package handlers

import (
	"log/slog"

	"github.com/gorilla/schema"

	"github.com/vangoframework/wms/internal/auth"
	"github.com/vangoframework/wms/internal/config"
	"github.com/vangoframework/wms/internal/store"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config   *config.Config
	repo     store.Repository
	sessions *auth.SessionStore
	decoder  *schema.Decoder
	logger   *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(
	cfg *config.Config,
	repo store.Repository,
	sessions *auth.SessionStore,
	logger *slog.Logger,
) *Handlers {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Handlers{
		config:   cfg,
		repo:     repo,
		sessions: sessions,
		decoder:  decoder,
		logger:   logger,
	}
}
