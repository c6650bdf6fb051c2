package config

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Keys for all engine tunables. The reference values match the shipped
// Lextris rules; everything is overridable via config file or environment
// (LEXTRIS_GRID_ROWS and so on).
const (
	ConfigGridRows       = "grid-rows"
	ConfigGridCols       = "grid-cols"
	ConfigLevelThreshold = "level-threshold"
	ConfigWildcardChance = "wildcard-chance"
	ConfigVowelBias      = "vowel-bias"
	ConfigCrowdedRows    = "crowded-rows"
	ConfigBombCadence    = "bomb-cadence"
	ConfigScanCharges    = "scan-charges"
	ConfigFlashTicks     = "flash-ticks"
	ConfigNotifyTicks    = "notify-ticks"
	ConfigBaseDropMs     = "base-drop-ms"
	ConfigDropDecay      = "drop-decay"
	ConfigFloorDropMs    = "floor-drop-ms"
	ConfigSeed           = "seed"
	ConfigLexiconPath    = "lexicon-path"
	ConfigLexiconName    = "lexicon-name"
	ConfigVariant        = "variant"
)

// Config wraps a viper instance holding every engine setting.
type Config struct {
	v *viper.Viper
}

func defaults() map[string]any {
	return map[string]any{
		ConfigGridRows:       11,
		ConfigGridCols:       8,
		ConfigLevelThreshold: 500,
		ConfigWildcardChance: 0.05,
		ConfigVowelBias:      0.4,
		ConfigCrowdedRows:    4,
		ConfigBombCadence:    20,
		ConfigScanCharges:    3,
		ConfigFlashTicks:     10,
		ConfigNotifyTicks:    3,
		ConfigBaseDropMs:     800,
		ConfigDropDecay:      0.85,
		ConfigFloorDropMs:    120,
		ConfigSeed:           0,
		ConfigLexiconPath:    "",
		ConfigLexiconName:    "LEXTRIS24",
		ConfigVariant:        "freescan",
	}
}

// NewConfig returns a config preloaded with defaults and bound to the
// LEXTRIS_ environment prefix.
func NewConfig() *Config {
	v := viper.New()
	for key, val := range defaults() {
		v.SetDefault(key, val)
	}
	v.SetEnvPrefix("lextris")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// Load reads settings from the given config file on top of the defaults.
// A missing file is not an error; explicit settings just stay at defaults.
func (c *Config) Load(path string) error {
	if path == "" {
		return nil
	}
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("path", path).Msg("no config file found, using defaults")
			return nil
		}
		return err
	}
	log.Info().Str("path", c.v.ConfigFileUsed()).Msg("loaded config file")
	return nil
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// Set overrides a single setting.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

func (c *Config) AllSettings() map[string]any {
	return c.v.AllSettings()
}
