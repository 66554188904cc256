package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/devfinder/pkg/errors"
)

const envPrefix = "DEVFINDER_"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns $XDG_CONFIG_HOME/devfinder/config.yaml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "devfinder", "config.yaml"), nil
}

// Load builds the configuration from defaults, the YAML file at path and
// the environment, in that order, then validates it. A missing file is not
// an error when path is the default location; an explicit path must exist.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				err = nil
			}
			if err != nil {
				return nil, err
			}
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return apperrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

type lookupEnvFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupEnvFunc) error {
	strs := map[string]*string{
		"API_BASE_URL":       &cfg.API.BaseURL,
		"SEED":               &cfg.Lookup.Seed,
		"COMMIT_POLICY":      &cfg.Lookup.CommitPolicy,
		"THEME":              &cfg.Theme.Default,
		"LOG_LEVEL":          &cfg.Log.Level,
		"LOG_FILE":           &cfg.Log.File,
		"SERVER_ADDR":        &cfg.Server.Addr,
		"SERVER_SESSION_KEY": &cfg.Server.SessionKey,
	}
	for key, target := range strs {
		if raw, ok := lookup(envPrefix + key); ok {
			*target = strings.TrimSpace(raw)
		}
	}

	bools := map[string]*bool{
		"THEME_PERSIST": &cfg.Theme.Persist,
		"LOG_HUMAN":     &cfg.Log.Human,
	}
	for key, target := range bools {
		raw, ok := lookup(envPrefix + key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return apperrors.NewValidationError(envPrefix+key, "must be a boolean", err)
		}
		*target = parsed
	}

	if raw, ok := lookup(envPrefix + "API_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return apperrors.NewValidationError(envPrefix+"API_TIMEOUT", "must be a valid duration", err)
		}
		cfg.API.Timeout = parsed
	}

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, scanErr := strconv.Atoi(matches[1])
	if scanErr != nil {
		return 0
	}
	return line
}

// String renders the effective configuration as YAML.
func (c Config) String() string {
	redacted := c
	if redacted.Server.SessionKey != "" {
		redacted.Server.SessionKey = "<redacted>"
	}
	out, err := yaml.Marshal(redacted)
	if err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return string(out)
}
