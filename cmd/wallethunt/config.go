package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/wallethunt/internal/config"
)

// loadConfig resolves the configuration and applies the flags the user set
// explicitly, which take precedence over the file and the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path, os.Environ())
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed("wallet-type") {
		cfg.WalletType, _ = flags.GetString("wallet-type")
	}
	if flags.Changed("dir") {
		cfg.Dir, _ = flags.GetString("dir")
	}
	if flags.Changed("store") {
		cfg.Store.Backend, _ = flags.GetString("store")
	}
	if flags.Changed("redis-addr") {
		cfg.Store.Redis.Addr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("debug") {
		cfg.Log.Debug, _ = flags.GetBool("debug")
	}

	// Hunt-only flags.
	if f := flags.Lookup("typos"); f != nil && f.Changed {
		cfg.Typos, _ = flags.GetInt("typos")
	}
	if f := flags.Lookup("addr-limit"); f != nil && f.Changed {
		cfg.AddrLimit, _ = flags.GetInt("addr-limit")
	}
	if f := flags.Lookup("metrics-addr"); f != nil && f.Changed {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if f := flags.Lookup("engine"); f != nil && f.Changed {
		fields := strings.Fields(f.Value.String())
		if len(fields) == 0 {
			return config.Config{}, fmt.Errorf("--engine cannot be empty")
		}
		cfg.Engine.Command = fields[0]
		cfg.Engine.Args = fields[1:]
	}

	return cfg, nil
}
