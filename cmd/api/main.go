package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/davidromera/decisiones-backend/internal/modules/auth"
	"github.com/davidromera/decisiones-backend/internal/modules/decision"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtKey) == 0 {
		jwtKey = []byte("dev-secret")
	}

	// The pool is opened once here and shared by every request; each store
	// operation borrows a connection from it instead of dialing its own.
	var repo decision.Repository
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Successfully connected to the database!")
		repo = decision.NewPostgresRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory store")
		repo = decision.NewMemoryRepository()
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(auth.Middleware(jwtKey))

	// ── Identity ────────────────────────────────────────────
	source, err := auth.NewMemorySource([]auth.SeedAccount{
		{Username: "Robert_Fripp", Password: envOr("ADMIN_PASSWORD", "Kingoftheking"), Category: "admin"},
		{Username: "Robert_Wyatt", Password: envOr("NORMAL_PASSWORD", "RockBottom"), Category: "normal"},
	})
	if err != nil {
		log.Fatal(err)
	}
	authService := auth.NewService(source, jwtKey)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Decisions ───────────────────────────────────────────
	decisionService := decision.NewService(repo)
	decision.NewHandler(decisionService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Decisions API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
