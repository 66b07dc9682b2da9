package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultLogLevel = "info"

var localtimePath = "/etc/localtime"

type Config struct {
	Display   DisplayConfig   `toml:"display"`
	Logging   LoggingConfig   `toml:"logging"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

type DisplayConfig struct {
	Locales  []string `toml:"locales"`
	TimeZone string   `toml:"time_zone"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type ClipboardConfig struct {
	OSC52 *bool `toml:"osc52"`
}

func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
	}
}

func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadConfigFromPath(path)
}

// Locales returns the configured locale preference list, falling back to
// the host locale environment when none is configured.
func (c Config) Locales() []string {
	if locales := normalizedList(c.Display.Locales); len(locales) > 0 {
		return locales
	}
	return HostLocales()
}

// Location resolves the display time zone. An empty setting means the host
// zone, named after TZ or the /etc/localtime link when possible so that it
// compares equal to instants parsed with the same zone name.
func (c Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Display.TimeZone)
	if name == "" {
		return hostLocation(), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("display.time_zone: %w", err)
	}
	return loc, nil
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (c Config) OSC52Enabled() bool {
	if c.Clipboard.OSC52 == nil {
		return true
	}
	return *c.Clipboard.OSC52
}

func hostLocation() *time.Location {
	candidates := []string{strings.TrimPrefix(strings.TrimSpace(os.Getenv("TZ")), ":")}
	if target, err := os.Readlink(localtimePath); err == nil {
		if i := strings.Index(target, "zoneinfo/"); i >= 0 {
			candidates = append(candidates, target[i+len("zoneinfo/"):])
		}
	}
	for _, name := range candidates {
		if name == "" || filepath.IsAbs(name) {
			continue
		}
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.Local
}

// HostLocales derives a BCP-47 tag from LC_ALL, LC_TIME or LANG, in that
// order. "C" and "POSIX" mean no preference.
func HostLocales() []string {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if tag := posixLocaleTag(os.Getenv(name)); tag != "" {
			return []string{tag}
		}
	}
	return nil
}

// posixLocaleTag maps "en_GB.UTF-8@euro" to "en-GB".
func posixLocaleTag(raw string) string {
	value := strings.TrimSpace(raw)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	switch value {
	case "", "C", "POSIX":
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}

func loadConfigFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}

func normalizedList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
