// Package timefmt renders note timestamps relative to a caller-supplied
// "now": recent instants as "now", "34s ago" or "7m ago", older ones as
// locale-formatted clock times or dates.
package timefmt

import (
	"fmt"
	"strconv"
	"time"

	"notelsm/internal/types"
)

const (
	justNowWindow = 30 * time.Second
	secondsWindow = 90 * time.Second
	minutesWindow = 90 * time.Minute
)

type shape int

const (
	shapeFuture shape = iota
	shapeNow
	shapeSeconds
	shapeMinutes
	shapeSameDay
	shapeSameYear
	shapeOlder
)

func (s shape) String() string {
	switch s {
	case shapeFuture:
		return "future"
	case shapeNow:
		return "now"
	case shapeSeconds:
		return "seconds"
	case shapeMinutes:
		return "minutes"
	case shapeSameDay:
		return "same_day"
	case shapeSameYear:
		return "same_year"
	default:
		return "older"
	}
}

// Format renders instant relative to now using the best match for locales.
// With no locales the matcher default (en-US) is used.
func Format(instant, now time.Time, locales ...string) (string, error) {
	locale, err := ResolveLocale(locales...)
	if err != nil {
		return "", err
	}
	return locale.Format(instant, now)
}

// Format renders instant relative to now in this locale.
func (l *Locale) Format(instant, now time.Time) (string, error) {
	if err := validateInstant("instant", instant); err != nil {
		return "", err
	}
	if err := validateInstant("now", now); err != nil {
		return "", err
	}

	elapsed := now.Sub(instant).Truncate(time.Second)
	withZone := instant.Location().String() != now.Location().String()

	switch classify(elapsed, instant, now) {
	case shapeFuture:
		return l.Render(instant, FieldsMonthDayTime, withZone), nil
	case shapeNow:
		return "now", nil
	case shapeSeconds:
		return strconv.FormatInt(int64(elapsed/time.Second), 10) + "s ago", nil
	case shapeMinutes:
		return strconv.FormatInt(int64(elapsed/time.Minute), 10) + "m ago", nil
	case shapeSameDay:
		return l.Render(instant, FieldsTime, withZone), nil
	case shapeSameYear:
		return l.Render(instant, FieldsMonthDayTime, withZone), nil
	default:
		return l.Render(instant, FieldsNumericDate, false), nil
	}
}

// classify picks the first matching output shape. Calendar comparisons use
// each instant's own location.
func classify(elapsed time.Duration, instant, now time.Time) shape {
	switch {
	case elapsed < -justNowWindow:
		return shapeFuture
	case elapsed < justNowWindow:
		return shapeNow
	case elapsed < secondsWindow:
		return shapeSeconds
	case elapsed < minutesWindow:
		return shapeMinutes
	}
	iy, im, id := instant.Date()
	ny, nm, nd := now.Date()
	if iy == ny && im == nm && id == nd {
		return shapeSameDay
	}
	if iy == ny {
		return shapeSameYear
	}
	return shapeOlder
}

func validateInstant(name string, t time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("%w: %s is not set", types.ErrInvalidInput, name)
	}
	if t.Location().String() == "" {
		return fmt.Errorf("%w: %s has no time zone", types.ErrInvalidInput, name)
	}
	return nil
}
