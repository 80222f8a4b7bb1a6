package app

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"pokeroster/internal/catalog"
	"pokeroster/internal/domain"
	pokedexsvc "pokeroster/internal/services/pokedex"
	rostersvc "pokeroster/internal/services/roster"
	startersvc "pokeroster/internal/services/starter"
	"pokeroster/internal/store"
)

const sqliteFile = "roster.db"

// Wire bundles the store, services and clients for the CLI.
type Wire struct {
	Store    domain.KeyValueStore
	Roster   domain.RosterService
	Starters domain.StarterService
	Pokedex  domain.PokedexService
	Catalog  domain.CatalogClient
	HTTP     *http.Client

	closers []io.Closer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}
	w := &Wire{}

	kv, err := w.openStore(cfg)
	if err != nil {
		return nil, err
	}
	w.Store = kv
	log.Debug("store ready", zap.String("backend", cfg.Storage.Backend), zap.String("home", cfg.Home))

	// Ensure an HTTP client is available for outbound calls
	w.HTTP = &http.Client{Timeout: cfg.Catalog.Timeout}
	w.Catalog = catalog.NewHTTP(cfg.Catalog.BaseURL, w.HTTP, cfg.Catalog.Timeout, log.Named("catalog"))

	// High-level services
	roster := rostersvc.New(kv, log)
	w.Roster = roster
	w.Starters = startersvc.New(roster)
	w.Pokedex = pokedexsvc.New(w.Catalog, roster, log)
	return w, nil
}

func (w *Wire) openStore(cfg Config) (domain.KeyValueStore, error) {
	switch cfg.Storage.Backend {
	case BackendMemory:
		return store.NewMemoryStore(), nil
	case BackendSQLite:
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, err
		}
		s, err := store.OpenSQLiteStore(filepath.Join(cfg.Home, sqliteFile))
		if err != nil {
			return nil, err
		}
		w.closers = append(w.closers, s)
		return s, nil
	case BackendFile:
		if cfg.Storage.Passphrase != "" {
			return store.NewSealedFileStore(cfg.Home, cfg.Storage.Passphrase), nil
		}
		return store.NewFileStore(cfg.Home), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Close releases any resources the stores hold.
func (w *Wire) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c.Close())
	}
	w.closers = nil
	return errors.Join(errs...)
}
