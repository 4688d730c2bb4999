// Package wire provides dependency injection for the scriptsplit
// application. It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/example/scriptsplit/internal/adapters/sqlite"
	"github.com/example/scriptsplit/internal/app"
	"github.com/example/scriptsplit/internal/config"
	"github.com/example/scriptsplit/internal/core/script"
	"github.com/example/scriptsplit/internal/db"
	"github.com/example/scriptsplit/internal/ports/primary"
	"github.com/example/scriptsplit/internal/ports/secondary"
)

var (
	organizationService primary.OrganizationService
	sessionRepository   secondary.SessionRepository
	once                sync.Once
)

// SessionRepository returns the singleton session repository.
func SessionRepository() secondary.SessionRepository {
	once.Do(initServices)
	return sessionRepository
}

// OrganizationService returns the singleton OrganizationService,
// restored from the persisted session when one exists.
func OrganizationService() primary.OrganizationService {
	once.Do(initServices)
	return organizationService
}

func initServices() {
	dir, err := config.DefaultConfigDir()
	if err != nil {
		log.Fatalf("failed to locate config: %v", err)
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	sessions := sqlite.NewSessionRepository(database)

	model, err := script.ForVersion(cfg.ScriptVersion)
	if err != nil {
		log.Fatalf("failed to select script: %v", err)
	}
	store := app.NewStore(model)

	svc := app.NewOrganizationService(store, sessions, time.Duration(cfg.DebounceMs)*time.Millisecond)
	if cfg.ResultsFolder != "" {
		svc.SetResultsFolder(cfg.ResultsFolder)
	}
	if err := svc.LoadSession(context.Background()); err != nil {
		log.Fatalf("failed to restore session: %v", err)
	}

	organizationService = svc
	sessionRepository = sessions
}
