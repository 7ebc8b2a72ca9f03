package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/gatepass/internal/flagx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment key, e.g. GATEPASS_SUPERUSER_USERNAME.
const EnvPrefix = "GATEPASS"

// parseDotenv loads the file named by -env-file into the process environment.
// Variables already set in the environment win over the file.
func parseDotenv() error {
	path := flagx.EnvFileFlags()
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("env file %s not found", path)
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// parseEnv overlays GATEPASS_* variables. Unset variables leave the current
// value untouched.
func parseEnv(config *Config) error {
	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	return nil
}
