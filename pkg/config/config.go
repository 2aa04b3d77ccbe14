// Package config loads the optional TOML run configuration. Values
// given on the command line always win over file values.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Master     string   `toml:"master"`
	Backups    []string `toml:"backups"`
	RootPrefix string   `toml:"root_prefix"`
	MasterRoot string   `toml:"master_root"`
	ReportDir  string   `toml:"report_dir"`
	HistoryDB  string   `toml:"history_db"`
}

// Load decodes the configuration file at path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}
