package main

import (
	"context"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	httpadapter "hexforge/internal/adapter/http"
	metricsinmem "hexforge/internal/adapter/metrics/inmemory"
	gormrepo "hexforge/internal/adapter/repo/gorm"
	"hexforge/internal/adapter/repo/memory"
	"hexforge/internal/app/generate"
	"hexforge/internal/app/maps"
	"hexforge/internal/app/ports"
	"hexforge/internal/domain/hexmap"
	"hexforge/migrations"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevelEnv("HEXFORGE_LOG_LEVEL")}))
	mapRepo := mustBuildMapRepo()
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		GenerateUC: generate.UseCase{
			Generator: hexmap.Generator{Logger: logger.With("module", "MapEngine")},
			Maps:      mapRepo,
			Metrics:   kpiRecorder,
			Logger:    logger,
			MaxRadius: intEnv("HEXFORGE_MAX_RADIUS", generate.DefaultMaxRadius),
		},
		MapsUC: maps.UseCase{Maps: mapRepo},
		KPI:    kpiRecorder,
	}

	addr := strEnv("HEXFORGE_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("hexforge server listening on %s", addr)
	s.Spin()
}

// mustBuildMapRepo uses Postgres when HEXFORGE_DB_DSN is set and an in-memory
// store otherwise.
func mustBuildMapRepo() ports.MapRepository {
	dsn := strings.TrimSpace(os.Getenv("HEXFORGE_DB_DSN"))
	if dsn == "" {
		log.Println("HEXFORGE_DB_DSN not set, generated maps are kept in memory")
		return memory.NewMapRepo(memory.NewStore())
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	applied, err := gormrepo.ApplyMigrations(context.Background(), db, migrationSource(strEnv("HEXFORGE_MIGRATIONS_DIR", "")))
	if err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	for _, v := range applied {
		log.Printf("applied migration %s", v)
	}
	return gormrepo.NewMapRepo(db)
}

// migrationSource reads migrations from dir when set and from the embedded
// copy otherwise.
func migrationSource(dir string) fs.FS {
	if dir == "" {
		return migrations.FS
	}
	return os.DirFS(dir)
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func strEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func logLevelEnv(key string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
