package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := NewConfig()

	is.Equal(cfg.GetInt(ConfigGridRows), 11)
	is.Equal(cfg.GetInt(ConfigGridCols), 8)
	is.Equal(cfg.GetInt(ConfigLevelThreshold), 500)
	is.Equal(cfg.GetFloat64(ConfigWildcardChance), 0.05)
	is.Equal(cfg.GetFloat64(ConfigVowelBias), 0.4)
	is.Equal(cfg.GetInt(ConfigBombCadence), 20)
	is.Equal(cfg.GetInt(ConfigScanCharges), 3)
	is.Equal(cfg.GetInt(ConfigFlashTicks), 10)
	is.Equal(cfg.GetString(ConfigVariant), "freescan")
}

func TestSetOverrides(t *testing.T) {
	is := is.New(t)
	cfg := NewConfig()
	cfg.Set(ConfigGridRows, 20)
	is.Equal(cfg.GetInt(ConfigGridRows), 20)
}

func TestLoadEmptyPathIsNoOp(t *testing.T) {
	is := is.New(t)
	cfg := NewConfig()
	is.NoErr(cfg.Load(""))
	is.Equal(cfg.GetInt(ConfigGridRows), 11)
}

func TestAllSettings(t *testing.T) {
	is := is.New(t)
	settings := NewConfig().AllSettings()
	is.True(len(settings) >= 15)
}
