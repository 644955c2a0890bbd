package config

import "os"

type Config struct {
	Addr         string
	DatabaseURL  string
	AllowOrigins string
}

func Load() Config {
	addr := os.Getenv("PERSONALIA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	origins := os.Getenv("PERSONALIA_ALLOW_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	return Config{
		Addr:         addr,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		AllowOrigins: origins,
	}
}
