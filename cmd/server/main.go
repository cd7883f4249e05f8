package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"fleet-eta-service/internal/adapters/cache"
	"fleet-eta-service/internal/adapters/chat"
	"fleet-eta-service/internal/adapters/fleet"
	"fleet-eta-service/internal/adapters/geocode"
	"fleet-eta-service/internal/adapters/routing"
	"fleet-eta-service/internal/api"
	"fleet-eta-service/internal/clock"
	"fleet-eta-service/internal/config"
	"fleet-eta-service/internal/metrics"
	"fleet-eta-service/internal/platform/db"
	"fleet-eta-service/internal/ports"
	"fleet-eta-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (fleet telemetry, ORS, cache backends)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	rateLimit, err := strconv.Atoi(config.Get("RATE_LIMIT_PER_SECOND", "10"))
	if err != nil {
		log.Fatal("RATE_LIMIT_PER_SECOND must be an integer")
	}

	fleetToken := os.Getenv("FLEET_API_TOKEN")
	if strings.TrimSpace(fleetToken) == "" {
		log.Fatal("FLEET_API_TOKEN is required")
	}

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	geocodeCache, err := openGeocodeCache()
	if err != nil {
		log.Fatal(err)
	}

	fleetClient, err := fleet.NewClient(fleetToken, config.Get("FLEET_API_URL", ""))
	if err != nil {
		log.Fatal(err)
	}

	geocoder, err := geocode.NewORSGeocoder(orsKey, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	router, err := routing.NewORSRouter(orsKey)
	if err != nil {
		log.Fatal(err)
	}

	// Chat delivery is optional; without a token replies are API-only.
	var notifier ports.Notifier
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); strings.TrimSpace(token) != "" {
		notifier, err = chat.NewTelegramNotifier(token)
		if err != nil {
			log.Fatal(err)
		}
	}

	deps := services.Deps{
		Directory: fleetClient,
		Snapshots: fleetClient,
		Geocoder:  geocoder,
		Router:    router,
	}

	handler := api.NewRouter(deps, notifier, clock.RealClock{}, metrics.New(), rateLimit)

	// Timeouts are tuned for cold-cache itinerary computation (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openGeocodeCache selects a cache backend from GEOCODE_CACHE:
// sqlite (default), postgres, redis, or off.
func openGeocodeCache() (ports.GeocodeCache, error) {
	switch backend := config.Get("GEOCODE_CACHE", "sqlite"); backend {
	case "off":
		return nil, nil

	case "sqlite":
		sqliteDB, err := openSqlite(config.Get("DB_PATH", "data/app.db"))
		if err != nil {
			return nil, err
		}
		if err := cache.InitSqliteSchema(sqliteDB); err != nil {
			return nil, err
		}
		return cache.NewSqliteGeocodeCache(sqliteDB), nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres geocode cache")
		}
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, err
		}
		return cache.NewPostgresGeocodeCache(pg), nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: config.Get("REDIS_ADDR", "localhost:6379"),
		})
		return cache.NewRedisGeocodeCache(client, 0), nil

	default:
		return nil, fmt.Errorf("unknown GEOCODE_CACHE backend %q", backend)
	}
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqliteDB, nil
}
