package process

import (
	"fmt"
	"regexp"
	"time"
)

// Default output patterns matching btcrecover's console report.
const (
	DefaultFoundPattern = `(?m)^\s*Seed found:\s*(.+?)\s*$`
	DefaultPathPattern  = `(?m)^\s*Derivation Path:\s*(.+?)\s*$`
)

// DefaultChildGrace is how long stray engine children get to exit after each call.
const DefaultChildGrace = time.Second

// Config describes how to launch the external recovery engine.
type Config struct {
	// Command is the executable, e.g. "python3".
	Command string `yaml:"command" json:"command" mapstructure:"command"`
	// Args precede the generated flags, e.g. ["seedrecover.py"].
	Args []string `yaml:"args" json:"args" mapstructure:"args"`
	// Flags are fixed engine flags placed before the per-candidate ones.
	Flags []string `yaml:"flags" json:"flags" mapstructure:"flags"`
	// Env adds variables to the engine environment.
	Env map[string]string `yaml:"env" json:"env" mapstructure:"env"`
	// WorkDir is the engine working directory; empty means the current one.
	WorkDir string `yaml:"work_dir" json:"work_dir" mapstructure:"work_dir"`

	// FoundPattern extracts the recovered mnemonic (first capture group) from stdout.
	FoundPattern string `yaml:"found_pattern" json:"found_pattern" mapstructure:"found_pattern"`
	// PathPattern extracts the derivation path/coin (first capture group) from stdout.
	PathPattern string `yaml:"path_pattern" json:"path_pattern" mapstructure:"path_pattern"`
	// NoMatchExitCodes are non-zero exit codes that mean "no match" instead of failure.
	NoMatchExitCodes []int `yaml:"no_match_exit_codes" json:"no_match_exit_codes" mapstructure:"no_match_exit_codes"`

	// ChildGrace bounds the wait for leftover child processes after each call.
	ChildGrace time.Duration `yaml:"child_grace" json:"child_grace" mapstructure:"child_grace"`
}

// DefaultConfig returns the configuration for btcrecover's seedrecover.py.
func DefaultConfig() Config {
	return Config{
		Command:      "python3",
		Args:         []string{"seedrecover.py"},
		Flags:        []string{"--dsw"},
		FoundPattern: DefaultFoundPattern,
		PathPattern:  DefaultPathPattern,
		ChildGrace:   DefaultChildGrace,
	}
}

type patterns struct {
	found *regexp.Regexp
	path  *regexp.Regexp
}

func (c Config) compile() (patterns, error) {
	var p patterns
	found := c.FoundPattern
	if found == "" {
		found = DefaultFoundPattern
	}
	re, err := regexp.Compile(found)
	if err != nil {
		return p, fmt.Errorf("invalid found_pattern: %w", err)
	}
	if re.NumSubexp() < 1 {
		return p, fmt.Errorf("found_pattern must have a capture group")
	}
	p.found = re

	path := c.PathPattern
	if path == "" {
		path = DefaultPathPattern
	}
	re, err = regexp.Compile(path)
	if err != nil {
		return p, fmt.Errorf("invalid path_pattern: %w", err)
	}
	if re.NumSubexp() < 1 {
		return p, fmt.Errorf("path_pattern must have a capture group")
	}
	p.path = re
	return p, nil
}
