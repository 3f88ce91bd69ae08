package httpapi

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"skillbridge-engine/internal/auth"
	"skillbridge-engine/internal/config"
	"skillbridge-engine/internal/events"
	"skillbridge-engine/internal/recommend"
	"skillbridge-engine/internal/store"
)

type Deps struct {
	Engine   *recommend.Engine
	Users    store.Users
	Sessions store.Sessions
	Tokens   *auth.Tokens
	Hub      *events.Hub
	Log      zerolog.Logger

	// CfgVal holds the live config.Config so handlers always see the
	// latest saved version.
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Seed entrypoint (injected for testability)
	SeedUsers func() (int, error)
}
