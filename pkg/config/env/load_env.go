package env

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from the given .env files.
// ENV_PATH overrides the whole list. A missing file is not fatal;
// callers log the error and continue with the process environment.
func LoadDotEnv(paths ...string) error {
	if envPath := os.Getenv("ENV_PATH"); envPath != "" {
		return godotenv.Load(envPath)
	}
	return godotenv.Load(paths...)
}
