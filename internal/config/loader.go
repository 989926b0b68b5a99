package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvSeed       = "CANDYMAZE_SEED"
	EnvGenerator  = "CANDYMAZE_GENERATOR"
	EnvAudio      = "CANDYMAZE_AUDIO"
	EnvJournal    = "CANDYMAZE_JOURNAL"
	EnvSSHAddress = "CANDYMAZE_SSH_ADDRESS"
	EnvHostKey    = "CANDYMAZE_HOST_KEY"
)

// Load reads the configuration, applies environment overrides from the
// process and from ./.env, and validates the result.
// Search order: customPath -> ~/.candymaze/config.yaml -> ./configs/candymaze.yaml -> embedded default
func Load(customPath string) (Config, error) {
	return load(customPath, ".env", os.LookupEnv)
}

func load(customPath, envFile string, lookup func(string) (string, bool)) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	env, err := readEnvFile(envFile)
	if err != nil {
		return cfg, err
	}
	merged := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}
	if err := applyEnv(&cfg, merged); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "candymaze.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readEnvFile parses a dotenv file without touching the process
// environment. A missing file is not an error.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return env, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(EnvGenerator); ok && v != "" {
		cfg.Generator = v
	}
	if v, ok := lookup(EnvAudio); ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a boolean: %w", EnvAudio, err)
		}
		cfg.Audio.Enabled = on
	}
	if v, ok := lookup(EnvJournal); ok && v != "" {
		cfg.Journal.Enabled = true
		cfg.Journal.Path = v
	}
	if v, ok := lookup(EnvSSHAddress); ok && v != "" {
		cfg.Server.Address = v
	}
	if v, ok := lookup(EnvHostKey); ok && v != "" {
		cfg.Server.HostKey = v
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".candymaze", filename)
}
