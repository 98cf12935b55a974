package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"hosplanner/internal/adapters/audit"
	"hosplanner/internal/adapters/cache"
	"hosplanner/internal/adapters/routingoracle"
	"hosplanner/internal/api"
	"hosplanner/internal/config"
	"hosplanner/internal/platform/db"
	"hosplanner/internal/ports"
)

// main is the application composition root. It wires concrete adapters
// (SQLite + Redis layered cache, an OSRM-style routing oracle, an
// optional Postgres audit sink) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	cacheDB, err := openSQLite(cfg.CachePath)
	if err != nil {
		log.Fatal(err)
	}
	defer cacheDB.Close()

	if err := cache.InitSchema(cacheDB); err != nil {
		log.Fatal(err)
	}

	routeCache := buildLayeredRouteCache(cfg, cacheDB)

	oracle, err := routingoracle.NewOSRMRoutingOracle(cfg.RoutingOracleURL, cfg.RoutingAPIKey, cfg.RoutingTimeout, routeCache)
	if err != nil {
		log.Fatal(err)
	}

	auditSink := buildAuditSink(cfg)

	router := api.NewRouter(oracle, auditSink, cfg.DefaultRuleSet, cfg.DefaultRuleTag)

	// Timeouts are tuned for cold-cache route planning (external API latency).
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func buildLayeredRouteCache(cfg *config.Config, cacheDB *sql.DB) ports.RouteCache {
	persistent := cache.NewSQLRouteCache(cacheDB)

	var hot ports.RouteCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		hot = cache.NewRedisRouteCache(client, 15*time.Minute)
	}

	return &cache.LayeredRouteCache{Hot: hot, Persistent: persistent}
}

func buildAuditSink(cfg *config.Config) ports.AuditSink {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set: trip-plan audit logging disabled")
		return nil
	}

	pgDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := audit.InitSchema(pgDB); err != nil {
		log.Fatal(err)
	}
	return audit.NewPostgresAuditSink(pgDB)
}
