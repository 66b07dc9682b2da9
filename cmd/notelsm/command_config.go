package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"notelsm/internal/config"
	"notelsm/internal/timefmt"
)

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
)

type ConfigCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.Config, error)
}

type configOutput struct {
	ConfigPath       string                   `json:"config_path,omitempty" toml:"config_path,omitempty"`
	Display          effectiveDisplayConfig   `json:"display" toml:"display"`
	Logging          effectiveLoggingConfig   `json:"logging" toml:"logging"`
	Clipboard        effectiveClipboardConfig `json:"clipboard" toml:"clipboard"`
	SupportedLocales []string                 `json:"supported_locales" toml:"supported_locales"`
}

type effectiveDisplayConfig struct {
	Locales        []string `json:"locales" toml:"locales"`
	ResolvedLocale string   `json:"resolved_locale,omitempty" toml:"resolved_locale,omitempty"`
	TimeZone       string   `json:"time_zone" toml:"time_zone"`
}

type effectiveLoggingConfig struct {
	Level string `json:"level" toml:"level"`
}

type effectiveClipboardConfig struct {
	OSC52 bool `json:"osc52" toml:"osc52"`
}

func NewConfigCommand(stdout, stderr io.Writer, loadConfig func() (config.Config, error)) *ConfigCommand {
	if loadConfig == nil {
		loadConfig = config.LoadConfig
	}
	return &ConfigCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	payload, err := c.buildOutput(*defaults)
	if err != nil {
		return err
	}
	return writeConfigOutput(c.stdout, resolvedFormat, payload)
}

func (c *ConfigCommand) buildOutput(defaults bool) (configOutput, error) {
	out := configOutput{SupportedLocales: timefmt.SupportedLocales()}
	cfg := config.DefaultConfig()
	if !defaults {
		path, err := config.ConfigPath()
		if err != nil {
			return configOutput{}, err
		}
		out.ConfigPath = path
		cfg, err = c.loadConfig()
		if err != nil {
			return configOutput{}, err
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		return configOutput{}, err
	}
	locales := cfg.Locales()
	if locales == nil {
		locales = []string{}
	}
	out.Display = effectiveDisplayConfig{
		Locales:  locales,
		TimeZone: loc.String(),
	}
	// Host locale variables may hold tags the matcher rejects.
	if locale, err := timefmt.ResolveLocale(locales...); err == nil {
		out.Display.ResolvedLocale = locale.String()
	}
	out.Logging = effectiveLoggingConfig{Level: cfg.LogLevel()}
	out.Clipboard = effectiveClipboardConfig{OSC52: cfg.OSC52Enabled()}
	return out, nil
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", usageErrorf("invalid format: must be json or toml")
	}
}
