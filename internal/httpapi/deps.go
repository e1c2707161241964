package httpapi

import (
	"database/sql"
	"sync/atomic"

	"techready-engine/internal/config"
	"techready-engine/internal/events"
	"techready-engine/internal/scrape"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	// Reloadable config
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Job-posting fetcher (inject for testability)
	Fetcher *scrape.Fetcher
}
