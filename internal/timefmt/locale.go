package timefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"notelsm/internal/types"
)

// Fields selects which calendar fields a Locale renders.
type Fields int

const (
	// FieldsTime is a 2-digit hour and minute.
	FieldsTime Fields = iota
	// FieldsMonthDayTime is an abbreviated month, numeric day, hour and minute.
	FieldsMonthDayTime
	// FieldsNumericDate is a numeric year, month and day.
	FieldsNumericDate
)

// Locale renders field sets the way ICU does for the matching Intl options.
// Patterns use {token} placeholders: d dd M MM MMM y HH hh mm a.
type Locale struct {
	tag          language.Tag
	months       [12]string
	dayPeriods   [2]string
	timePattern  string
	monthDayTime string
	numericDate  string
	zones        zoneStyle
}

var englishMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var (
	localeEnUS = &Locale{
		tag:          language.AmericanEnglish,
		months:       englishMonths,
		dayPeriods:   [2]string{"AM", "PM"},
		timePattern:  "{hh}:{mm} {a}",
		monthDayTime: "{MMM} {d}, {hh}:{mm} {a}",
		numericDate:  "{M}/{d}/{y}",
		zones: zoneStyle{
			gmt:   "GMT",
			minus: "-",
			names: map[metazone]zoneName{
				mzAlaska:   {"AKST", "AKDT"},
				mzAleutian: {"HAST", "HADT"},
				mzHawaii:   {"HST", "HDT"},
				mzAtlantic: {"AST", "ADT"},
				mzEastern:  {"EST", "EDT"},
				mzCentral:  {"CST", "CDT"},
				mzMountain: {"MST", "MDT"},
				mzPacific:  {"PST", "PDT"},
			},
		},
	}
	localeEnGB = &Locale{
		tag:          language.BritishEnglish,
		months:       [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sept", "Oct", "Nov", "Dec"},
		timePattern:  "{HH}:{mm}",
		monthDayTime: "{d} {MMM}, {HH}:{mm}",
		numericDate:  "{dd}/{MM}/{y}",
		zones: zoneStyle{
			gmt:   "GMT",
			minus: "-",
			names: map[metazone]zoneName{
				mzBritish:       {"GMT", "BST"},
				mzEuropeWestern: {"WET", "WEST"},
				mzEuropeCentral: {"CET", "CEST"},
				mzEuropeEastern: {"EET", "EEST"},
				mzGulf:          {"GST", "GST"},
			},
		},
	}
	localeDe = &Locale{
		tag:          language.German,
		months:       [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		timePattern:  "{HH}:{mm}",
		monthDayTime: "{d}. {MMM}, {HH}:{mm}",
		numericDate:  "{d}.{M}.{y}",
		zones: zoneStyle{
			gmt:   "GMT",
			minus: "-",
			names: map[metazone]zoneName{
				mzEuropeWestern: {"WEZ", "WESZ"},
				mzEuropeCentral: {"MEZ", "MESZ"},
				mzEuropeEastern: {"OEZ", "OESZ"},
			},
		},
	}
	localeFr = &Locale{
		tag:          language.French,
		months:       [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		timePattern:  "{HH}:{mm}",
		monthDayTime: "{d} {MMM}, {HH}:{mm}",
		numericDate:  "{dd}/{MM}/{y}",
		zones: zoneStyle{
			gmt:   "UTC",
			minus: "−",
		},
	}
)

// The first entry is the matcher default.
var supportedLocales = []*Locale{localeEnUS, localeEnGB, localeDe, localeFr}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supportedLocales))
	for _, locale := range supportedLocales {
		tags = append(tags, locale.tag)
	}
	return language.NewMatcher(tags)
}()

// ResolveLocale picks the best supported Locale for an ordered list of
// BCP-47 tags. Unsupported but well-formed tags fall through to the next
// preference, then to en-US; malformed tags are rejected.
func ResolveLocale(tags ...string) (*Locale, error) {
	desired := make([]language.Tag, 0, len(tags))
	for _, raw := range tags {
		value := strings.TrimSpace(raw)
		if value == "" {
			return nil, fmt.Errorf("%w: empty locale tag", types.ErrInvalidInput)
		}
		tag, err := language.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %v", types.ErrInvalidInput, value, err)
		}
		desired = append(desired, tag)
	}
	_, index, _ := localeMatcher.Match(desired...)
	if index < 0 || index >= len(supportedLocales) {
		index = 0
	}
	return supportedLocales[index], nil
}

// SupportedLocales lists the tags with a rendering table.
func SupportedLocales() []string {
	out := make([]string, 0, len(supportedLocales))
	for _, locale := range supportedLocales {
		out = append(out, locale.tag.String())
	}
	return out
}

func (l *Locale) String() string {
	return l.tag.String()
}

// Render formats t in its own location. withZone appends the short zone
// label to the time-of-day field sets; numeric dates never carry one.
func (l *Locale) Render(t time.Time, fields Fields, withZone bool) string {
	var pattern string
	switch fields {
	case FieldsTime:
		pattern = l.timePattern
	case FieldsMonthDayTime:
		pattern = l.monthDayTime
	default:
		return l.expand(l.numericDate, t)
	}
	out := l.expand(pattern, t)
	if withZone {
		out += " " + l.zones.label(t)
	}
	return out
}

func (l *Locale) expand(pattern string, t time.Time) string {
	var b strings.Builder
	for {
		start := strings.IndexByte(pattern, '{')
		if start < 0 {
			b.WriteString(pattern)
			return b.String()
		}
		end := strings.IndexByte(pattern[start:], '}')
		if end < 0 {
			b.WriteString(pattern)
			return b.String()
		}
		b.WriteString(pattern[:start])
		b.WriteString(l.field(pattern[start+1:start+end], t))
		pattern = pattern[start+end+1:]
	}
}

func (l *Locale) field(token string, t time.Time) string {
	switch token {
	case "d":
		return strconv.Itoa(t.Day())
	case "dd":
		return twoDigits(t.Day())
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "MM":
		return twoDigits(int(t.Month()))
	case "MMM":
		return l.months[t.Month()-1]
	case "y":
		return strconv.Itoa(t.Year())
	case "HH":
		return twoDigits(t.Hour())
	case "hh":
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return twoDigits(hour)
	case "mm":
		return twoDigits(t.Minute())
	case "a":
		if t.Hour() < 12 {
			return l.dayPeriods[0]
		}
		return l.dayPeriods[1]
	default:
		return "{" + token + "}"
	}
}

func twoDigits(value int) string {
	if value >= 0 && value < 10 {
		return "0" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}
