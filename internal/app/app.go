// Package app wires configuration into the catalog stack shared by the
// server and the CLI.
package app

import (
	"context"
	"fmt"
	"strings"

	"alcyxob/clipclass/internal/config"
	"alcyxob/clipclass/internal/logger"
	"alcyxob/clipclass/internal/planner"
	"alcyxob/clipclass/internal/repository/memory"
	mongoRepo "alcyxob/clipclass/internal/repository/mongo"
	"alcyxob/clipclass/internal/seed"
	"alcyxob/clipclass/internal/service"
	"alcyxob/clipclass/internal/storage"
)

// Snapshot backend names accepted in snapshot.backend.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
	BackendMongo  = "mongo"
	BackendS3     = "s3"
	BackendRedis  = "redis"
)

// OpenSnapshotStore opens the backend named by cfg.Snapshot.Backend.
func OpenSnapshotStore(ctx context.Context, cfg config.Config, log *logger.Logger) (storage.SnapshotStore, error) {
	if log == nil {
		log = logger.Nop()
	}
	backend := strings.ToLower(strings.TrimSpace(cfg.Snapshot.Backend))
	log.Info("opening snapshot store", "backend", backend)

	switch backend {
	case BackendMemory:
		return storage.NewMemoryStore(), nil
	case BackendBadger, "":
		store, err := storage.NewBadgerStore(cfg.Badger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendMongo:
		client, err := mongoRepo.ConnectDB(ctx, cfg.Database.URI)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Database.Name)
		if err := mongoRepo.EnsureSnapshotIndexes(ctx, db.Collection(cfg.Database.Collection)); err != nil {
			// Indexes only help operators; the store works without them.
			log.Warn("failed to create snapshot indexes", "error", err)
		}
		return mongoRepo.NewMongoSnapshotStore(client, db, cfg.Database.Collection), nil
	case BackendS3:
		return storage.NewS3Store(ctx, cfg.S3)
	case BackendRedis:
		return storage.NewRedisStore(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}
}

// Catalog bundles the repository, its store and the service on top.
type Catalog struct {
	Store   storage.SnapshotStore
	Repo    *memory.VideoRepository
	Service service.CatalogService
	Planner *planner.Planner
}

// Close releases the snapshot store.
func (c *Catalog) Close() error {
	return c.Store.Close()
}

// NewCatalog restores the catalog from store, seeding the sample library when
// no snapshot exists and cfg.Catalog.SeedLibrary is set.
func NewCatalog(ctx context.Context, cfg config.Config, store storage.SnapshotStore, log *logger.Logger) (*Catalog, error) {
	if log == nil {
		log = logger.Nop()
	}
	repo := memory.NewVideoRepository(store, cfg.Catalog.SnapshotKey, log,
		memory.WithSaveTimeout(cfg.Snapshot.Timeout),
	)

	loadCtx := ctx
	if cfg.Snapshot.Timeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, cfg.Snapshot.Timeout)
		defer cancel()
	}
	found, err := repo.Load(loadCtx)
	if err != nil {
		return nil, err
	}
	if !found && cfg.Catalog.SeedLibrary {
		log.Info("no catalog snapshot, seeding sample library", "videos", len(seed.Library()))
		if err := repo.Seed(ctx, seed.Library()); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	p := planner.New(cfg.Planner.Options())
	opts := p.Options()
	log.Info("workout planner ready",
		"max_results", opts.MaxResults,
		"fallback_results", opts.FallbackResults,
		"delay", opts.Delay,
	)
	return &Catalog{
		Store:   store,
		Repo:    repo,
		Service: service.NewCatalogService(repo, p, log),
		Planner: p,
	}, nil
}

// Open is OpenSnapshotStore followed by NewCatalog. The caller closes the result.
func Open(ctx context.Context, cfg config.Config, log *logger.Logger) (*Catalog, error) {
	store, err := OpenSnapshotStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	catalog, err := NewCatalog(ctx, cfg, store, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return catalog, nil
}
