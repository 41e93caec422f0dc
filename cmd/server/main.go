package main

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/cors"

	"github.com/trimly-app/survey-api/internal/api"
	"github.com/trimly-app/survey-api/internal/config"
	"github.com/trimly-app/survey-api/internal/db"
	"github.com/trimly-app/survey-api/internal/middleware"
)

func main() {
	cfg := config.Load()

	var store api.Store
	if os.Getenv("TRIMLY_MEMORY_STORE") != "" {
		// Dev mode: everything lives in process memory and is lost on exit.
		log.Printf("using in-memory store; responses will not be persisted")
		store = api.NewMemoryStore()
	} else {
		conn, err := sql.Open("mysql", cfg.DSN())
		if err != nil {
			log.Fatalf("open mysql: %v", err)
		}
		defer conn.Close()
		if err := conn.Ping(); err != nil {
			log.Fatalf("mysql ping failed: %v", err)
		}
		if err := db.RunMigrations(conn, cfg.MigrationsDir); err != nil {
			log.Fatalf("run migrations: %v", err)
		}
		mysqlStore, err := db.NewMySQLStore(conn)
		if err != nil {
			log.Fatalf("init mysql store: %v", err)
		}
		store = mysqlStore
		log.Printf("mysql store ready (%s:%s/%s)", cfg.DBHost, cfg.DBPort, cfg.DBName)
	}

	mux := http.NewServeMux()
	router := api.NewRouter(store)
	router.Register(mux)

	if err := router.Auth().EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin user: %v", err)
	}

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":   true,
			"name": "Trimly Survey API",
		})
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	handler := c.Handler(middleware.NoStore(middleware.SecureHeaders(middleware.WithAuth(mux))))

	log.Printf("Trimly survey server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
