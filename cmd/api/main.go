package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "monastery_tours/internal/adapters/http_server"
	"monastery_tours/internal/adapters/observability"
	redisad "monastery_tours/internal/adapters/redis"
	"monastery_tours/internal/app"
	"monastery_tours/internal/domain"
	"monastery_tours/internal/shared"
	"monastery_tours/internal/storage/memory"
	mysqlrepo "monastery_tours/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "api")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// site catalog: MySQL when configured, built-in seed otherwise
	var repo domain.SiteRepository = memory.NewSiteRepo(shared.SeedSites())
	if cfg.MySQLDSN != "" {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	}

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; cache calls will miss")
		}
		cache = rc
	}

	// deps
	q := app.NewQueryService(repo, cache, cfg.CacheTTL)
	media := memory.NewMediaStore(cfg.MaxMedia)
	sessions := app.NewSessions(q, media, app.SessionOptions{
		TTL:         cfg.SessionTTL,
		MaxSessions: cfg.MaxSessions,
		MaxPhotos:   cfg.MaxPhotos,
		PreviewSize: cfg.PreviewSize,
	})
	limiter := server.NewWriteLimiter(cfg.WriteRPS, cfg.WriteBurst)

	// http
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:             q,
		Sessions:      sessions,
		Limiter:       limiter,
		MaxUpload:     cfg.MaxUpload,
		SecureCookies: cfg.AppEnv != "dev" && cfg.AppEnv != "development",
	})
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return sessions.RunSweeper(gctx, cfg.SessionSweep)
	})
	g.Go(func() error {
		t := time.NewTicker(time.Minute)
		defer t.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-t.C:
				limiter.Forget(10 * time.Minute)
			}
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("api stopped with error")
	}
	log.Info().Msg("api stopped")
}
