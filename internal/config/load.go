package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type LoadOptions struct {
	ExplicitPath string
	WorkingDir   string
	Env          map[string]string
}

type fileConfig struct {
	Version  *int         `yaml:"version"`
	Defaults fileDefaults `yaml:"defaults"`
	Codes    fileCodes    `yaml:"codes"`
}

type fileDefaults struct {
	Scope     *string `yaml:"scope"`
	Format    *string `yaml:"format"`
	Subsystem *string `yaml:"subsystem"`
	Category  *string `yaml:"category"`
}

type fileCodes struct {
	Errors          map[string]string `yaml:"errors"`
	DeletionReasons map[string]string `yaml:"deletion_reasons"`
}

func Load(opts LoadOptions) (Config, error) {
	cfg := DefaultConfig()

	cwd := opts.WorkingDir
	if strings.TrimSpace(cwd) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("resolve working directory: %w", err)
		}
		cwd = wd
	}

	env := opts.Env
	if env == nil {
		env = osEnvMap()
	}

	if explicit := strings.TrimSpace(opts.ExplicitPath); explicit != "" {
		if err := mergeFile(&cfg, explicit, true); err != nil {
			return Config{}, err
		}
	} else {
		userPath, err := UserConfigPath()
		if err != nil {
			return Config{}, err
		}
		if err := mergeFile(&cfg, userPath, false); err != nil {
			return Config{}, err
		}

		if err := mergeFile(&cfg, ProjectConfigPath(cwd), false); err != nil {
			return Config{}, err
		}
	}

	applyEnvOverrides(&cfg, env)
	return cfg, nil
}

func mergeFile(cfg *Config, path string, required bool) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file does not exist: %s", path)
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(payload, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Version != nil {
		cfg.Version = *fc.Version
	}
	if fc.Defaults.Scope != nil {
		cfg.Defaults.Scope = strings.TrimSpace(*fc.Defaults.Scope)
	}
	if fc.Defaults.Format != nil {
		cfg.Defaults.Format = Format(strings.TrimSpace(*fc.Defaults.Format))
	}
	if fc.Defaults.Subsystem != nil {
		cfg.Defaults.Subsystem = strings.TrimSpace(*fc.Defaults.Subsystem)
	}
	if fc.Defaults.Category != nil {
		cfg.Defaults.Category = strings.TrimSpace(*fc.Defaults.Category)
	}

	// Code tables accumulate across files so a project config can add
	// entries without clobbering the user-level table.
	if len(fc.Codes.Errors) > 0 {
		if cfg.Codes.Errors == nil {
			cfg.Codes.Errors = map[string]string{}
		}
		for code, label := range fc.Codes.Errors {
			cfg.Codes.Errors[strings.TrimSpace(code)] = strings.TrimSpace(label)
		}
	}
	if len(fc.Codes.DeletionReasons) > 0 {
		if cfg.Codes.DeletionReasons == nil {
			cfg.Codes.DeletionReasons = map[string]string{}
		}
		for reason, label := range fc.Codes.DeletionReasons {
			cfg.Codes.DeletionReasons[strings.TrimSpace(reason)] = strings.TrimSpace(label)
		}
	}

	return nil
}

func applyEnvOverrides(cfg *Config, env map[string]string) {
	if value := strings.TrimSpace(env["SYNCLOG_SCOPE"]); value != "" {
		cfg.Defaults.Scope = value
	}
	if value := strings.TrimSpace(env["SYNCLOG_FORMAT"]); value != "" {
		cfg.Defaults.Format = Format(value)
	}
	if value := strings.TrimSpace(env["SYNCLOG_SUBSYSTEM"]); value != "" {
		cfg.Defaults.Subsystem = value
	}
	if value := strings.TrimSpace(env["SYNCLOG_CATEGORY"]); value != "" {
		cfg.Defaults.Category = value
	}
}

func osEnvMap() map[string]string {
	result := map[string]string{}
	for _, pair := range os.Environ() {
		pieces := strings.SplitN(pair, "=", 2)
		if len(pieces) == 2 {
			result[pieces[0]] = pieces[1]
		}
	}
	return result
}

func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory %s: %w", dir, err)
	}
	return nil
}
