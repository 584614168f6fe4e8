package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	RegistryPath string // YAML document produced by the external resolver
	OverlayPath  string // .hcl overlay file or directory of them

	OutPath   string // augmented registry destination; empty means stdout
	CheckOnly bool   // validate and merge but write nothing

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.RegistryPath == "" {
		return nil, errors.New("RegistryPath is a required configuration field and cannot be empty")
	}
	if cfg.OverlayPath == "" {
		return nil, errors.New("OverlayPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
