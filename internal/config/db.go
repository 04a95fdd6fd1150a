package config

import (
	"errors"
)

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"db-name"`
	Address  string `mapstructure:"address"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Username == "" {
		return errors.New("missing db username")
	}

	if cfg.Password == "" {
		return errors.New("missing db password")
	}

	if cfg.DbName == "" {
		return errors.New("missing db name")
	}

	if cfg.Address == "" {
		return errors.New("missing db address")
	}

	return nil
}
