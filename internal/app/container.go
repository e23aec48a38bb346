package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/infrastructure/persistence/memory"
	"jobmatch/internal/infrastructure/persistence/sqlite"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/repository"
	"jobmatch/internal/seed"
	"jobmatch/internal/usecase"
	"jobmatch/internal/ws"

	"github.com/google/uuid"
)

// Container owns every long-lived dependency of the process. Tests build
// their own with an isolated store.
type Container struct {
	Config config.Config
	Logger *log.Logger
	Store  repository.Store
	Cache  *cache.Redis
	Hub    *ws.Hub
	JWT    jwt.Service

	Auth         *usecase.Auth
	Users        *usecase.User
	Jobs         *usecase.Jobs
	Applications *usecase.Applications
	Candidates   *usecase.Candidates
	Matching     *usecase.Matching
	Assessments  *usecase.Assessments
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	store, err := openStore(ctx, cfg.Store.Driver, logger)
	if err != nil {
		return nil, err
	}

	data, err := seed.Load(cfg.Store.SeedFile)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if cfg.Auth.AdminPassword == "" {
		logger.Printf("[Auth] ADMIN_PASSWORD not set, seeded admin accounts cannot log in")
	}
	data = data.WithAdminPassword(cfg.Auth.AdminPassword)
	if err := seed.Apply(ctx, store, data, time.Now()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("apply seed: %w", err)
	}
	logger.Printf("[Store] driver=%s seeded users=%d jobs=%d candidates=%d assessments=%d",
		cfg.Store.Driver, len(data.Users), len(data.Jobs), len(data.Candidates), len(data.Assessments))

	jwtSvc, err := jwt.NewHMACService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" {
		logger.Printf("[Auth] JWT_SECRET not set, tokens are signed with a per-process key")
	}

	redis := cache.NewRedis(ctx, cache.Options{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	}, logger)

	hub := ws.NewHub(logger)
	events := ws.NewPublisher(hub, logger)

	// Match cache keys are scoped to this process's store.
	namespace := uuid.NewString()

	var matchCache usecase.MatchCache
	if redis.Enabled() {
		matchCache = redis
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Cache:  redis,
		Hub:    hub,
		JWT:    jwtSvc,

		Auth:         usecase.NewAuthUsecase(store.Users(), store.Tokens(), jwtSvc, logger),
		Users:        usecase.NewUserUsecase(store.Users()),
		Jobs:         usecase.NewJobUsecase(store.Jobs(), matchCache, namespace, events, logger),
		Applications: usecase.NewApplicationUsecase(store.Applications(), store.Jobs(), events),
		Candidates:   usecase.NewCandidateUsecase(store.Candidates()),
		Matching:     usecase.NewMatchingUsecase(store.Jobs(), store.Candidates(), matchCache, namespace, cfg.Redis.TTL, logger),
		Assessments:  usecase.NewAssessmentUsecase(store.Assessments(), events),
	}, nil
}

func openStore(ctx context.Context, driver string, logger *log.Logger) (repository.Store, error) {
	switch driver {
	case "", config.StoreDriverMemory:
		return memory.New(), nil
	case config.StoreDriverSQLite:
		return sqlite.Open(ctx, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.Store != nil {
		errs = append(errs, c.Store.Close())
	}
	return errors.Join(errs...)
}
