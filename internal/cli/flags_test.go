package cli

import (
	"errors"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yplus-tool/internal/yplus"
)

func TestParseFlags_NoArgs(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"yplus-tool"}

	cfg, err := ParseFlags()
	assert.NoError(t, err)
	assert.Nil(t, cfg, "no args should return nil config for GUI mode")
}

func TestParseFlags_HelpFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	for _, arg := range []string{"help", "--help", "-h"} {
		os.Args = []string{"yplus-tool", arg}

		cfg, err := ParseFlags()
		assert.True(t, errors.Is(err, flag.ErrHelp), "%s: err = %v, want flag.ErrHelp", arg, err)
		assert.Nil(t, cfg)
	}
}

func TestParseFlags_Inputs(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"yplus-tool", "-u", "20", "-rho", "998.2", "-mu", "1.002e-3", "-L", "0.5", "-yplus", "30"}

	cfg, err := ParseFlags()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, yplus.Fields{
		Velocity:  "20",
		Density:   "998.2",
		Viscosity: "1.002e-3",
		Length:    "0.5",
		YPlus:     "30",
	}, cfg.Fields)
	assert.False(t, cfg.GUI)
	assert.False(t, cfg.Verbose)
}

func TestParseFlags_LongNames(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"yplus-tool", "-velocity", "3", "-density", "1.1", "-viscosity", "2e-5",
		"-length", "4", "-target", "5", "-verbose", "-quiet"}

	cfg, err := ParseFlags()
	require.NoError(t, err)

	assert.Equal(t, "3", cfg.Fields.Velocity)
	assert.Equal(t, "1.1", cfg.Fields.Density)
	assert.Equal(t, "2e-5", cfg.Fields.Viscosity)
	assert.Equal(t, "4", cfg.Fields.Length)
	assert.Equal(t, "5", cfg.Fields.YPlus)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Quiet)
}

func TestParseFlags_ApplyDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	// An explicit empty value is kept and later parses to NaN
	os.Args = []string{"yplus-tool", "-u", "15", "-mu", ""}

	cfg, err := ParseFlags()
	require.NoError(t, err)

	cfg.ApplyDefaults(yplus.DefaultFields())

	assert.Equal(t, "15", cfg.Fields.Velocity)
	assert.Equal(t, yplus.DefaultDensity, cfg.Fields.Density)
	assert.Equal(t, "", cfg.Fields.Viscosity)
	assert.Equal(t, yplus.DefaultLength, cfg.Fields.Length)
	assert.Equal(t, yplus.DefaultYPlus, cfg.Fields.YPlus)
}

func TestParseFlags_ConfigAndGUI(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"yplus-tool", "-config", "/etc/yplus.ini", "-gui"}

	cfg, err := ParseFlags()
	require.NoError(t, err)

	assert.Equal(t, "/etc/yplus.ini", cfg.ConfigPath)
	assert.True(t, cfg.GUI)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"yplus-tool", "-mach", "0.3"}

	cfg, err := ParseFlags()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseFlags_StrayArgument(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"yplus-tool", "-u", "1", "extra"}

	cfg, err := ParseFlags()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
