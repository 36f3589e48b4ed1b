package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"learn-loop/internal/config"
	"learn-loop/internal/database"
	dbpostgres "learn-loop/internal/database/postgres"
	"learn-loop/internal/domain/submission"
	"learn-loop/internal/domain/user"
	"learn-loop/internal/infrastructure/cache"
	"learn-loop/internal/migrations"
	"learn-loop/internal/repository/memory"
	repopostgres "learn-loop/internal/repository/postgres"
	"learn-loop/internal/usecase/career"
	ucsubmission "learn-loop/internal/usecase/submission"
	ucuser "learn-loop/internal/usecase/user"
	"learn-loop/internal/ws"
)

// Container builds and owns the service graph.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Users       user.Repository
	SubsStore   submission.Repository
	DB          database.DB
	Cache       *cache.Redis
	Hub         *ws.Hub
	Submissions *ucsubmission.Service
	UserSvc     *ucuser.Service
	CareerSvc   *career.Service
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := migrations.Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		c.DB = db
		c.Users = repopostgres.NewUserStore(db)
		c.SubsStore = repopostgres.NewSubmissionStore(db)
	default:
		c.Users = memory.NewUserStore()
		c.SubsStore = memory.NewSubmissionStore()
	}

	c.Cache = cache.NewRedis(logger)

	c.Hub = ws.NewHub(logger)
	go c.Hub.Run()

	c.Submissions = ucsubmission.NewService(
		c.Users, c.SubsStore, c.Hub, logger,
		cfg.Validation.MinDelay, cfg.Validation.MaxDelay,
	)
	c.CareerSvc = career.NewService(c.Users, c.Cache, cache.DefaultTTLFromEnv())
	c.UserSvc = ucuser.NewService(c.Users, c.SubsStore, c.Submissions, c.CareerSvc)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Submissions != nil {
		c.Submissions.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
