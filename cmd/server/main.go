package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"shuttle-logistics-service/internal/adapters/cache"
	"shuttle-logistics-service/internal/adapters/repositories"
	"shuttle-logistics-service/internal/api"
	"shuttle-logistics-service/internal/config"
	"shuttle-logistics-service/internal/metrics"
	"shuttle-logistics-service/internal/platform/db"
	"shuttle-logistics-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, optional Redis) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/guests.json")
	catalogPath := config.Get("CATALOG_PATH", "")
	redisAddr := config.Get("REDIS_ADDR", "")
	port := config.Get("PORT", "8080")

	sqlDB, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(sqlDB); err != nil {
		log.Fatal(err)
	}
	if err := repositories.SeedFromJSON(sqlDB, seedPath); err != nil {
		log.Fatal(err)
	}

	catalog, err := config.LoadCatalog(catalogPath)
	if err != nil {
		log.Fatal(err)
	}

	guests := repositories.NewSqliteGuestRepository(sqlDB)
	store := repositories.NewSqliteManifestStore(sqlDB)

	// Driver-sheet guest lookups go through Redis when configured.
	var details ports.GuestDetailReader = guests
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		details = cache.NewRedisGuestDetails(client, guests, 15*time.Minute)
		log.Printf("Guest detail cache enabled addr=%s", redisAddr)
	}

	metrics.RegisterDefault()
	router := api.NewRouter(guests, details, store, catalog)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
