package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"notelsm/internal/types"
)

const (
	localDateTimeLayout = "2006-01-02T15:04:05"
	instantLayout       = "2006-01-02T15:04:05.999999999-07:00"
)

// ParseInstant reads the zoned interchange form used by the notes backend,
// e.g. "2024-06-19T15:22:45-04:00[America/New_York]". The offset may be
// omitted, in which case the wall time is resolved in the named zone.
// The zone may also be a numeric offset such as [+02:00], which yields a
// fixed zone of that name. Trailing [key=value] annotations are ignored.
func ParseInstant(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	open := strings.IndexByte(value, '[')
	if open < 0 {
		return time.Time{}, fmt.Errorf("%w: instant %q has no [zone] annotation", types.ErrInvalidInput, raw)
	}
	stamp := value[:open]
	zone, err := parseAnnotations(value[open:])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: instant %q: %v", types.ErrInvalidInput, raw, err)
	}
	if zone == "" || zone == "Local" {
		return time.Time{}, fmt.Errorf("%w: instant %q has no time zone", types.ErrInvalidInput, raw)
	}
	loc, err := loadZone(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}

	if exact, err := time.Parse(time.RFC3339Nano, stamp); err == nil {
		zoned := exact.In(loc)
		if !strings.HasSuffix(strings.ToUpper(stamp), "Z") {
			_, given := exact.Zone()
			_, actual := zoned.Zone()
			if given != actual {
				return time.Time{}, fmt.Errorf("%w: offset of %q does not match zone %s", types.ErrInvalidInput, raw, zone)
			}
		}
		return zoned, nil
	}
	wall, err := time.ParseInLocation(localDateTimeLayout, stamp, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: instant %q: %v", types.ErrInvalidInput, raw, err)
	}
	return wall, nil
}

func loadZone(zone string) (*time.Location, error) {
	if zone[0] == '+' || zone[0] == '-' {
		seconds, ok := parseOffsetZone(zone)
		if !ok {
			return nil, fmt.Errorf("malformed offset zone %q", zone)
		}
		return time.FixedZone(zone, seconds), nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q", zone)
	}
	return loc, nil
}

// parseOffsetZone reads "±HH:MM".
func parseOffsetZone(zone string) (int, bool) {
	if len(zone) != len("+00:00") || zone[3] != ':' {
		return 0, false
	}
	hours, err := strconv.Atoi(zone[1:3])
	if err != nil || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(zone[4:])
	if err != nil || minutes > 59 {
		return 0, false
	}
	seconds := hours*3600 + minutes*60
	if zone[0] == '-' {
		seconds = -seconds
	}
	return seconds, true
}

// FormatInstant is the inverse of ParseInstant.
func FormatInstant(t time.Time) string {
	return t.Format(instantLayout) + "[" + t.Location().String() + "]"
}

func parseAnnotations(rest string) (string, error) {
	zone := ""
	for rest != "" {
		if rest[0] != '[' {
			return "", fmt.Errorf("unexpected %q after annotations", rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", fmt.Errorf("unterminated annotation")
		}
		body := strings.TrimPrefix(rest[1:end], "!")
		rest = rest[end+1:]
		if strings.Contains(body, "=") {
			continue
		}
		if zone != "" {
			return "", fmt.Errorf("more than one zone annotation")
		}
		zone = strings.TrimSpace(body)
	}
	return zone, nil
}
