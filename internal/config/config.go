package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Defaults matching the upstream homebrew-file bootstrap.
const (
	DefaultInstallerURL = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"
	DefaultPackage      = "rcmdnk/file/brew-file"
	DefaultTimeout      = 15 * time.Minute
)

// Config is the on-disk config file (config.json under Dir()).
// Every field is optional; zero values fall back to defaults.
type Config struct {
	// Brewfile is the path to the managed Brewfile. The HOMEBREW_BREWFILE
	// environment variable takes precedence over this field.
	Brewfile string `json:"brewfile,omitempty" jsonschema:"description=Path to the managed Brewfile"`
	// InstallerURL is the remote Homebrew installer script.
	InstallerURL string `json:"installerURL,omitempty" jsonschema:"description=URL of the Homebrew install script"`
	// Package is the formula installed by bootstrap.
	Package string `json:"package,omitempty" jsonschema:"description=Formula installed during bootstrap"`
	// Legacy enables the historical ignore-and-continue error policy.
	Legacy bool `json:"legacy,omitempty" jsonschema:"description=Ignore fetch/install failures like the original install script"`
	// TimeoutSeconds bounds a whole bootstrap run. 0 means the default.
	TimeoutSeconds int `json:"timeoutSeconds,omitempty" jsonschema:"description=Overall bootstrap timeout in seconds"`
}

// Dir returns the brewctl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/brewctl; on macOS
// to ~/Library/Application Support/brewctl. Falls back to HOME when
// UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "brewctl"), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file. A missing file yields a zero Config.
func Load() (Config, error) {
	var cfg Config
	p, err := Path()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// InstallerURLOrDefault resolves the installer URL.
func (c Config) InstallerURLOrDefault() string {
	if strings.TrimSpace(c.InstallerURL) != "" {
		return c.InstallerURL
	}
	return DefaultInstallerURL
}

// PackageOrDefault resolves the bootstrap formula.
func (c Config) PackageOrDefault() string {
	if strings.TrimSpace(c.Package) != "" {
		return c.Package
	}
	return DefaultPackage
}

// Timeout resolves the bootstrap timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return DefaultTimeout
}

// BrewfilePath resolves the Brewfile location: HOMEBREW_BREWFILE wins,
// then the config file, then the upstream default
// $XDG_CONFIG_HOME/brewfile/Brewfile (~/.config/brewfile/Brewfile).
func BrewfilePath(cfg Config) (string, error) {
	if v := strings.TrimSpace(os.Getenv("HOMEBREW_BREWFILE")); v != "" {
		return v, nil
	}
	if strings.TrimSpace(cfg.Brewfile) != "" {
		return cfg.Brewfile, nil
	}
	base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("cannot determine Brewfile location")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "brewfile", "Brewfile"), nil
}
