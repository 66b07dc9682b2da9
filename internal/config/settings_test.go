package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"
)

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	dataDir := filepath.Join(home, ".notelsm")
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	t.Setenv(configEnvVar, "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_TIME", "")
	t.Setenv("LANG", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", filepath.Join(t.TempDir(), "home"))
	clearLocaleEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	if locales := cfg.Locales(); len(locales) != 0 {
		t.Fatalf("expected no locales, got %#v", locales)
	}
	if !cfg.OSC52Enabled() {
		t.Fatalf("expected OSC52 enabled by default")
	}
}

func TestLocationDefaultsToHostZone(t *testing.T) {
	t.Setenv("TZ", "Asia/Tokyo")
	loc, err := DefaultConfig().Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc.String() != "Asia/Tokyo" {
		t.Fatalf("expected TZ zone, got %s", loc)
	}

	t.Setenv("TZ", "")
	previous := localtimePath
	localtimePath = filepath.Join(t.TempDir(), "missing")
	t.Cleanup(func() { localtimePath = previous })
	if loc, err = DefaultConfig().Location(); err != nil || loc != time.Local {
		t.Fatalf("expected time.Local fallback, got %v err=%v", loc, err)
	}
}

func TestLoadConfigFromTOML(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)
	clearLocaleEnv(t)
	writeConfig(t, home, `
[display]
locales = [" en-GB ", "fr", "en-GB", ""]
time_zone = "Europe/Paris"

[logging]
level = "debug"

[clipboard]
osc52 = false
`)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	locales := cfg.Locales()
	if len(locales) != 2 || locales[0] != "en-GB" || locales[1] != "fr" {
		t.Fatalf("unexpected locales: %#v", locales)
	}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location: %v", err)
	}
	if loc.String() != "Europe/Paris" {
		t.Fatalf("unexpected zone: %s", loc)
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
	if cfg.OSC52Enabled() {
		t.Fatalf("expected OSC52 disabled")
	}
}

func TestLoadConfigEmptyFileUsesDefaults(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)
	clearLocaleEnv(t)
	writeConfig(t, home, "  \n")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.LogLevel() != "info" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel())
	}
}

func TestLoadConfigMalformedTOML(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("HOME", home)
	clearLocaleEnv(t)
	writeConfig(t, home, "[display\nlocales = 3\n")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected malformed config to fail")
	}
}

func TestLocationRejectsUnknownZone(t *testing.T) {
	cfg := Config{Display: DisplayConfig{TimeZone: "Mars/Olympus_Mons"}}
	if _, err := cfg.Location(); err == nil {
		t.Fatalf("expected unknown zone to fail")
	}
}

func TestHostLocales(t *testing.T) {
	clearLocaleEnv(t)
	if got := HostLocales(); len(got) != 0 {
		t.Fatalf("expected no host locales, got %#v", got)
	}

	t.Setenv("LANG", "en_GB.UTF-8")
	if got := HostLocales(); len(got) != 1 || got[0] != "en-GB" {
		t.Fatalf("unexpected LANG locale: %#v", got)
	}

	t.Setenv("LC_TIME", "de_DE@euro")
	if got := HostLocales(); len(got) != 1 || got[0] != "de-DE" {
		t.Fatalf("unexpected LC_TIME locale: %#v", got)
	}

	t.Setenv("LC_ALL", "C")
	if got := HostLocales(); len(got) != 1 || got[0] != "de-DE" {
		t.Fatalf("C should not override LC_TIME: %#v", got)
	}
}
