package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads local env files before the YAML config is read. Precedence
// is OS environment > .env.local > .env: godotenv.Load never overwrites a
// variable that is already set. Returns the files that were found.
func LoadDotEnv() []string {
	var found []string
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			found = append(found, name)
		}
	}
	if len(found) > 0 {
		_ = godotenv.Load(found...)
	}
	return found
}
