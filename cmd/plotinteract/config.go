// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"os"

	"cogentcore.org/plotinteract/base/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is the config file read when --config is not given.
const DefaultConfigFile = "plotinteract.toml"

// Config is the configuration of the plotinteract command. It is read from
// a TOML file and then overridden by the command line flags that are set.
type Config struct {

	// Scene is the YAML scene file.
	Scene string `toml:"scene"`

	// Script is the input script file.
	Script string `toml:"script"`

	// Watch re-runs the script when the scene or script file changes.
	Watch bool `toml:"watch"`

	// Status prints the tool states of every component after the run.
	Status bool `toml:"status"`

	// Only restricts the printed trace to the given stages.
	Only []string `toml:"only"`

	// Verbose prints info log messages.
	Verbose bool `toml:"verbose"`

	// VeryVerbose prints debug log messages, including every activation.
	VeryVerbose bool `toml:"very_verbose"`

	// Quiet only prints error log messages.
	Quiet bool `toml:"quiet"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{Status: true}
}

// LoadConfig reads the TOML config file into cfg. A missing default config
// file is not an error; a missing file given explicitly is.
func LoadConfig(cfg *Config, filename string) error {
	explicit := filename != ""
	if !explicit {
		filename = DefaultConfigFile
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return toml.Unmarshal(b, cfg)
}

// bindFlags defines the flags for the fields of cfg that can be set on the
// command line, with the current values of cfg as defaults.
func bindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "re-run when the scene or script file changes")
	fs.BoolVar(&cfg.Status, "status", cfg.Status, "print the tool states after the run")
	fs.StringSliceVar(&cfg.Only, "only", cfg.Only, "only print deliveries of these stages (active, overlay, self, underlay, listener)")
}

// applyFlags copies the flags that were set on the command line into cfg,
// so that they override the config file.
func applyFlags(fs *pflag.FlagSet, flags, cfg *Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "watch":
			cfg.Watch = flags.Watch
		case "status":
			cfg.Status = flags.Status
		case "only":
			cfg.Only = flags.Only
		case "verbose":
			cfg.Verbose = flags.Verbose
		case "vv":
			cfg.VeryVerbose = flags.VeryVerbose
		case "quiet":
			cfg.Quiet = flags.Quiet
		}
	})
}
