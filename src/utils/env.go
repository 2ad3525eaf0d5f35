package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

// InitEnvironmentVariables loads the .env file matching goEnv from projectDir.
// Production deploys inject real environment variables, so a missing file is
// logged rather than treated as fatal.
func InitEnvironmentVariables(projectDir string, goEnv string) error {
	if os.Getenv("ENV") == "production" {
		log.Info("Running in production environment")
		return nil
	}

	envFile := filepath.Join(projectDir, DEV_ENV_FILENAME)
	if goEnv == "production" {
		envFile = filepath.Join(projectDir, PROD_ENV_FILENAME)
	}

	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("InitEnvironmentVariables: no %s file loaded: %v", envFile, err)
		return nil
	}

	log.Infof("Loaded environment from %s", envFile)
	return nil
}
