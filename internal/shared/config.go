package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	CacheTTL     time.Duration
	SessionTTL   time.Duration
	SessionSweep time.Duration
	MaxSessions  int
	MaxMedia     int64
	MaxUpload    int64
	MaxPhotos    int
	PreviewSize  int
	WriteRPS     float64
	WriteBurst   int
	CatalogBase  string
	CatalogKey   string
	Workers      int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ""),
		MySQLDSN:     env("MYSQL_DSN", ""),
		RedisAddr:    env("REDIS_ADDR", ""),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SessionTTL:   time.Duration(atoi("SESSION_TTL_SECONDS", 1800)) * time.Second,
		SessionSweep: time.Duration(atoi("SESSION_SWEEP_SECONDS", 60)) * time.Second,
		MaxSessions:  atoi("MAX_SESSIONS", 10000),
		MaxMedia:     int64(atoi("MAX_MEDIA_BYTES", 256<<20)),
		MaxUpload:    int64(atoi("MAX_UPLOAD_BYTES", 20<<20)),
		MaxPhotos:    atoi("MAX_DRAFT_PHOTOS", 10),
		PreviewSize:  atoi("PREVIEW_SIZE", 640),
		WriteRPS:     atof("WRITE_RPS", 5),
		WriteBurst:   atoi("WRITE_BURST", 20),
		CatalogBase:  env("CATALOG_URL", ""),
		CatalogKey:   env("CATALOG_KEY", ""),
		Workers:      atoi("INGEST_WORKERS", 4),
	}
	if c.MySQLDSN == "" {
		log.Info().Msg("MYSQL_DSN is empty; serving the built-in site catalog")
	}
	if c.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR is empty; site cache disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
