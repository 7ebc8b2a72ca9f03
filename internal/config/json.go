package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gatepass/internal/flagx"
	"github.com/dmitrijs2005/gatepass/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. Pointer fields
// distinguish "absent" from "zero" so a partial file only overrides what it names.
type JsonConfig struct {
	DatabaseDSN    *string         `json:"database_dsn"`
	ConnectTimeout *timex.Duration `json:"connect_timeout"`
	LogLevel       *string         `json:"log_level"`
	PasswordCost   *int            `json:"password_cost"`
	UserName       *string         `json:"username"`
	Email          *string         `json:"email"`
	Password       *string         `json:"password"`
	NoInput        *bool           `json:"noinput"`
}

// parseJson overlays values from the JSON file named by -c / -config.
// Without the flag nothing is loaded.
func parseJson(config *Config) error {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.ConnectTimeout != nil {
		config.ConnectTimeout = c.ConnectTimeout.Duration
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.PasswordCost != nil {
		config.PasswordCost = *c.PasswordCost
	}
	if c.UserName != nil {
		config.UserName = *c.UserName
	}
	if c.Email != nil {
		config.Email = *c.Email
	}
	if c.Password != nil {
		config.Password = *c.Password
	}
	if c.NoInput != nil {
		config.NoInput = *c.NoInput
	}
	return nil
}
