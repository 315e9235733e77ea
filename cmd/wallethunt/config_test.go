package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WALLETHUNT_TYPOS", "3")
	t.Setenv("WALLETHUNT_STORE", "memory")

	require.NoError(t, rootCmd.ParseFlags([]string{
		"-t", "2",
		"--engine", "/opt/venv/bin/python /opt/btcrecover/seedrecover.py",
		"--wallet-type", "bitcoin",
	}))

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Typos, "flag beats environment")
	assert.Equal(t, "memory", cfg.Store.Backend, "environment beats default")
	assert.Equal(t, "bitcoin", cfg.WalletType)
	assert.Equal(t, "/opt/venv/bin/python", cfg.Engine.Command)
	assert.Equal(t, []string{"/opt/btcrecover/seedrecover.py"}, cfg.Engine.Args)
	assert.Equal(t, 1, cfg.AddrLimit)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "wallethunt version dev\n", buf.String())
}
