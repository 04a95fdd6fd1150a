package config

import (
	"errors"
	"fmt"
)

type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	AdminAPIKey  string `mapstructure:"admin-api-key"`
	ReadTimeout  int    `mapstructure:"read-timeout"`
	WriteTimeout int    `mapstructure:"write-timeout"`
}

func (cfg *ServerConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("missing server host")
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return errors.New("server port must be between 1 and 65535")
	}

	if cfg.AdminAPIKey == "" {
		return errors.New("missing admin-api-key")
	}

	return nil
}

func (cfg *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
