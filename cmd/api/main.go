package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/personalia-app/personalia-backend/internal/config"
	"github.com/personalia-app/personalia-backend/internal/karyawan"
	"github.com/personalia-app/personalia-backend/internal/user"
)

// main starts the API against the in-memory repositories so the frontend can
// be developed without a Postgres instance. Data does not survive restarts.
func main() {
	cfg := config.Load()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	karyawanHandler := karyawan.NewHandler(karyawan.NewService(karyawan.NewInMemoryRepository(nil)))
	karyawanHandler.RegisterRoutes(app)

	userHandler := user.NewHandler(user.NewService(user.NewInMemoryRepository(nil)))
	userHandler.RegisterRoutes(app)

	log.Printf("starting in-memory server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
