package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deepak92201/Portfolio/config"
	"github.com/deepak92201/Portfolio/internal/auth/repository"
	authservice "github.com/deepak92201/Portfolio/internal/auth/service"
	"github.com/deepak92201/Portfolio/internal/auth/throttle"
	"github.com/deepak92201/Portfolio/internal/bootstrap"
	"github.com/deepak92201/Portfolio/internal/logging"
	projectsrepo "github.com/deepak92201/Portfolio/internal/projects/repository"
	projectsservice "github.com/deepak92201/Portfolio/internal/projects/service"
	"github.com/deepak92201/Portfolio/internal/storage/postgres"
)

const serviceName = "portfolio-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", "").WithError(err).Fatal("load config")
	}

	log := logging.New(cfg.App.LogLevel, cfg.App.Environment)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	dsn := postgres.DSN(&cfg.Database)

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: dsn})
	if err != nil {
		log.WithError(err).Fatal("open database pool")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.WithError(err).Fatal("run migrations")
	}
	log.Info("database migrations applied")

	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer db.Close()

	tokens, err := authservice.NewTokenManager(cfg.JWT)
	if err != nil {
		log.WithError(err).Fatal("init token manager")
	}

	authSvc, err := authservice.NewAuthService(repository.NewAccountRepository(db), tokens, log)
	if err != nil {
		log.WithError(err).Fatal("init auth service")
	}

	seed := authservice.AdminSeed{Username: cfg.Admin.Username, Password: cfg.Admin.Password}
	if cfg.Admin.SeedFile != "" {
		if seed, err = authservice.LoadSeedFile(cfg.Admin.SeedFile); err != nil {
			log.WithError(err).Fatal("load admin seed file")
		}
	}
	if _, err := authSvc.EnsureAdmin(ctx, seed); err != nil {
		log.WithError(err).Fatal("seed admin account")
	}

	redisClient, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.WithError(err).Fatal("connect redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.WithField("addr", cfg.Redis.Addr).Info("login throttle backed by redis")
	}
	limiter := throttle.New(cfg.Login, redisClient)

	projectSvc := projectsservice.NewProjectService(projectsrepo.NewProjectRepository(db))

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
		DB:             pool,
		Logger:         log,
		Auth:           authSvc,
		Tokens:         tokens,
		Limiter:        limiter,
		Projects:       projectSvc,
	})
	if err != nil {
		log.WithError(err).Fatal("build router")
	}

	server := bootstrap.NewServer(":"+cfg.Server.Port, router, log)
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("http server")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}
