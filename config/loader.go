package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the application configuration from the first
// readable path. With no arguments it tries config.yml in the working
// directory.
func Load(paths ...string) (*AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return nil, err
	}
	if err := v.Struct(cfg.Sources); err != nil {
		return nil, err
	}
	// credentials are optional; if present validate each
	for _, c := range cfg.Credentials {
		if err := v.Struct(c); err != nil {
			return nil, err
		}
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	// PORT env wins over the file, for container deployments
	if p := os.Getenv("PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	return &cfg, nil
}
