package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadEnv loads ENV_FILE (default .env) into the process environment.
// Variables already set in the environment win over the file.
func LoadEnv() {
	path := getEnv("ENV_FILE", ".env")

	err := godotenv.Load(path)
	switch {
	case err == nil:
		Logger.Debugf("Loaded environment from %s", path)
	case errors.Is(err, fs.ErrNotExist):
		Logger.Infof("No %s file found, using process environment only", path)
	default:
		// Don't call Fatal here - continue execution
		Logger.Warn("Error loading env file, will use environment variables instead: ", err)
	}
}
