package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"monastery_tours/internal/adapters/catalog"
	"monastery_tours/internal/adapters/observability"
	redisad "monastery_tours/internal/adapters/redis"
	"monastery_tours/internal/app"
	"monastery_tours/internal/domain"
	"monastery_tours/internal/shared"
	mysqlrepo "monastery_tours/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "ingestor")

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required")
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	// 2) source: remote catalog when configured, built-in seed otherwise
	var client domain.CatalogClient
	if cfg.CatalogBase != "" {
		c, err := catalog.New(cfg.CatalogBase, cfg.CatalogKey, 5)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize catalog client")
		}
		client = c
	}
	imp := app.NewImportService(client, repo, cache)

	if client == nil {
		// seed order defines catalog position, so load it sequentially
		for _, s := range shared.SeedSites() {
			if err := imp.ImportSite(ctx, s); err != nil {
				log.Fatal().Err(err).Str("id", s.ID).Msg("seed import failed")
			}
		}
		log.Info().Msg("built-in catalog imported")
		return
	}

	ids, err := imp.RemoteIDs(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("list catalog failed")
	}
	log.Info().Str("base", cfg.CatalogBase).Int("workers", cfg.Workers).Int("sites", len(ids)).Msg("ingestor starting")

	sem := semaphore.NewWeighted(int64(max(1, cfg.Workers)))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for _, id := range ids {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(siteID string) {
			defer wg.Done()
			defer sem.Release(1)

			if err := imp.ImportRemote(ctx, siteID); err != nil {
				failed.Add(1)
				log.Warn().Str("id", siteID).Str("err_type", observability.LabelErr(err)).Err(err).Msg("import failed")
				return
			}
			log.Info().Str("id", siteID).Msg("import ok")
		}(id)
	}

	wg.Wait()
	log.Info().Int32("failed", failed.Load()).Msg("ingestion completed")
}
