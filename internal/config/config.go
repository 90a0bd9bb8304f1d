// Package config loads regasm settings from defaults, an optional YAML
// file, and REGASM_ environment variables, in increasing priority.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ezrec/regasm/emulator"
	"github.com/ezrec/regasm/translate"
)

var f = translate.From

// ConfigFileName is the config file looked for when none is given.
const ConfigFileName = "regasm.yaml"

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "REGASM_"

var (
	ErrNoRegisters = errors.New(f("no registers configured"))
	ErrStepLimit   = errors.New(f("step limit must not be negative"))
	ErrOutput      = errors.New(f("output must be table or plain"))
)

// Config holds the run settings.
type Config struct {
	Registers []string `koanf:"registers"`  // Register names, in output order.
	StepLimit int      `koanf:"step_limit"` // 0 for no limit.
	Verbose   bool     `koanf:"verbose"`
	Output    string   `koanf:"output"` // table or plain
}

// Defaults returns the default configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"registers":  emulator.REGISTERS,
		"step_limit": emulator.STEP_LIMIT,
		"verbose":    false,
		"output":     "table",
	}
}

// Load reads the configuration. If path is empty, ConfigFileName is
// used when it exists in the working directory.
func Load(path string) (cfg *Config, err error) {
	k := koanf.New(".")

	err = k.Load(confmap.Provider(Defaults(), "."), nil)
	if err != nil {
		return
	}

	if len(path) == 0 {
		if _, serr := os.Stat(ConfigFileName); serr == nil {
			path = ConfigFileName
		}
	}

	if len(path) != 0 {
		err = k.Load(file.Provider(path), yaml.Parser())
		if err != nil {
			return
		}
	}

	err = k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return
	}

	cfg = &Config{}
	err = k.Unmarshal("", cfg)
	if err != nil {
		cfg = nil
		return
	}

	return
}

// envValue maps REGASM_STEP_LIMIT to step_limit, and splits the
// comma separated REGASM_REGISTERS list.
func envValue(key string, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "registers" {
		return key, SplitRegisters(value)
	}
	return key, value
}

// SplitRegisters splits a comma separated register list, dropping blanks.
func SplitRegisters(list string) (names []string) {
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if len(name) != 0 {
			names = append(names, name)
		}
	}
	return
}

// Validate checks the configuration for consistency.
func (cfg *Config) Validate() (err error) {
	if len(cfg.Registers) == 0 {
		err = ErrNoRegisters
		return
	}
	if cfg.StepLimit < 0 {
		err = ErrStepLimit
		return
	}
	switch cfg.Output {
	case "table", "plain":
	default:
		err = ErrOutput
	}

	return
}
