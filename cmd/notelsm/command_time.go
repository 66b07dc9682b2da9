package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"notelsm/internal/logging"
	"notelsm/internal/timefmt"
)

type TimeCommand struct {
	wiring commandWiring
}

func NewTimeCommand(wiring commandWiring) *TimeCommand {
	return &TimeCommand{wiring: wiring}
}

func (c *TimeCommand) Run(args []string) error {
	fs := flag.NewFlagSet("time", flag.ContinueOnError)
	fs.SetOutput(c.wiring.stderr)
	var locales stringList
	fs.Var(&locales, "locale", "preferred locale tags, comma separated or repeated (default from config)")
	nowRaw := fs.String("now", "", "reference instant in zoned form (default: current time in --tz)")
	tz := fs.String("tz", "", "viewer time zone (default from config)")
	logLevel := fs.String("log-level", "", "override the configured log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usageErrorf("at least one instant is required")
	}

	cfg, err := c.wiring.loadConfig()
	if err != nil {
		return err
	}
	logger := newCommandLogger(c.wiring.stderr, cfg, *logLevel, "time")

	now, err := c.referenceInstant(*nowRaw, *tz, cfg.Location)
	if err != nil {
		return err
	}
	preferences := []string(locales)
	if len(preferences) == 0 {
		preferences = cfg.Locales()
	}
	locale, err := timefmt.ResolveLocale(preferences...)
	if err != nil {
		return err
	}
	logger.Debug("resolved display settings",
		logging.F("locales", preferences),
		logging.F("locale", locale.String()),
		logging.F("zone", now.Location().String()),
	)

	for _, raw := range fs.Args() {
		instant, err := timefmt.ParseInstant(raw)
		if err != nil {
			return err
		}
		text, err := locale.Format(instant, now)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(c.wiring.stdout, text); err != nil {
			return err
		}
	}
	return nil
}

// referenceInstant is --now when given, otherwise the wired clock in the
// viewer zone. An explicit --tz moves either one into that zone.
func (c *TimeCommand) referenceInstant(raw, tz string, configured func() (*time.Location, error)) (time.Time, error) {
	var loc *time.Location
	if name := strings.TrimSpace(tz); name != "" {
		parsed, err := time.LoadLocation(name)
		if err != nil {
			return time.Time{}, usageErrorf("--tz: unknown time zone %q", name)
		}
		loc = parsed
	}
	if strings.TrimSpace(raw) != "" {
		now, err := timefmt.ParseInstant(raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("--now: %w", err)
		}
		if loc != nil {
			now = now.In(loc)
		}
		return now, nil
	}
	if loc == nil {
		configuredLoc, err := configured()
		if err != nil {
			return time.Time{}, err
		}
		loc = configuredLoc
	}
	return c.wiring.now().In(loc), nil
}
