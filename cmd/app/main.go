package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/personalia-app/personalia-backend/internal/config"
	"github.com/personalia-app/personalia-backend/internal/karyawan"
	"github.com/personalia-app/personalia-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app, cfg.AllowOrigins)
	app.Use(logRequest)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	ensureSchema(db)

	karyawanHandler := karyawan.NewHandler(karyawan.NewService(karyawan.NewPostgresRepository(db)))
	karyawanHandler.RegisterRoutes(app)

	userHandler := user.NewHandler(user.NewService(user.NewPostgresRepository(db)))
	userHandler.RegisterRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App, origins string) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func logRequest(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// ensureSchema creates the two tables on first start. The email uniqueness
// constraint lives here, in the store, not in application logic.
func ensureSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS karyawan (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		jabatan TEXT NOT NULL,
		umur INT NOT NULL,
		gaji INT NOT NULL
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		age INT NOT NULL
	)`); err != nil {
		panic(err)
	}
}
