package main

import (
	"os"

	"github.com/joho/godotenv"
)

// defaultMigrationsDir is where the goose SQL files are checked in.
const defaultMigrationsDir = "db/migrations"

// loadEnvFiles pulls in local overrides. godotenv never clobbers
// variables the runtime (e.g. Docker) already set.
func loadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func migrationsDir() string {
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return dir
	}
	return defaultMigrationsDir
}
