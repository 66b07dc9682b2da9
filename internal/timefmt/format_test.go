package timefmt

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"notelsm/internal/types"
)

const referenceNow = "2024-06-19T15:22:45-04:00[America/New_York]"

func mustInstant(t *testing.T, raw string) time.Time {
	t.Helper()
	instant, err := ParseInstant(raw)
	if err != nil {
		t.Fatalf("ParseInstant(%q): %v", raw, err)
	}
	return instant
}

type formatCase struct {
	name    string
	instant string
	want    string
}

func runFormatCases(t *testing.T, locale string, cases []formatCase) {
	t.Helper()
	now := mustInstant(t, referenceNow)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Format(mustInstant(t, tc.instant), now, locale)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected output: got=%q want=%q", got, tc.want)
			}
		})
	}
}

func TestFormatEnGBSameZone(t *testing.T) {
	runFormatCases(t, "en-GB", []formatCase{
		{name: "just now", instant: "2024-06-19T15:22:24-04:00[America/New_York]", want: "now"},
		{name: "recently", instant: "2024-06-19T15:22:11-04:00[America/New_York]", want: "34s ago"},
		{name: "earlier", instant: "2024-06-19T15:15:11-04:00[America/New_York]", want: "7m ago"},
		{name: "today", instant: "2024-06-19T10:21:11-04:00[America/New_York]", want: "10:21"},
		{name: "last month", instant: "2024-05-19T10:21:11-04:00[America/New_York]", want: "19 May, 10:21"},
		{name: "last year", instant: "2023-07-19T10:21:11-04:00[America/New_York]", want: "19/07/2023"},
	})
}

func TestFormatEnGBDifferentZone(t *testing.T) {
	runFormatCases(t, "en-GB", []formatCase{
		{name: "just now", instant: "2024-06-19T21:22:24+02:00[Europe/Paris]", want: "now"},
		{name: "recently", instant: "2024-06-19T21:22:11+02:00[Europe/Paris]", want: "34s ago"},
		{name: "earlier", instant: "2024-06-19T21:15:11+02:00[Europe/Paris]", want: "7m ago"},
		{name: "today", instant: "2024-06-19T16:21:11+02:00[Europe/Paris]", want: "16:21 CEST"},
		{name: "last month", instant: "2024-05-19T16:21:11+02:00[Europe/Paris]", want: "19 May, 16:21 CEST"},
		{name: "last year", instant: "2023-07-19T16:21:11+02:00[Europe/Paris]", want: "19/07/2023"},
	})
}

func TestFormatEnUSSameZone(t *testing.T) {
	runFormatCases(t, "en-US", []formatCase{
		{name: "just now", instant: "2024-06-19T15:22:24-04:00[America/New_York]", want: "now"},
		{name: "recently", instant: "2024-06-19T15:22:11-04:00[America/New_York]", want: "34s ago"},
		{name: "earlier", instant: "2024-06-19T15:15:11-04:00[America/New_York]", want: "7m ago"},
		{name: "today", instant: "2024-06-19T10:21:11-04:00[America/New_York]", want: "10:21 AM"},
		{name: "last month", instant: "2024-05-19T10:21:11-04:00[America/New_York]", want: "May 19, 10:21 AM"},
		{name: "last year", instant: "2023-07-19T10:21:11-04:00[America/New_York]", want: "7/19/2023"},
	})
}

func TestFormatEnUSDifferentZone(t *testing.T) {
	runFormatCases(t, "en-US", []formatCase{
		{name: "just now", instant: "2024-06-19T21:22:24+02:00[Europe/Paris]", want: "now"},
		{name: "recently", instant: "2024-06-19T21:22:11+02:00[Europe/Paris]", want: "34s ago"},
		{name: "earlier", instant: "2024-06-19T21:15:11+02:00[Europe/Paris]", want: "7m ago"},
		{name: "today", instant: "2024-06-19T16:21:11+02:00[Europe/Paris]", want: "04:21 PM GMT+2"},
		{name: "last month", instant: "2024-05-19T16:21:11+02:00[Europe/Paris]", want: "May 19, 04:21 PM GMT+2"},
		{name: "last year", instant: "2023-07-19T16:21:11+02:00[Europe/Paris]", want: "7/19/2023"},
	})
}

func TestFormatFutureUsesMonthDayTime(t *testing.T) {
	runFormatCases(t, "en-GB", []formatCase{
		{name: "31 seconds ahead", instant: "2024-06-19T15:23:16-04:00[America/New_York]", want: "19 Jun, 15:23"},
		{name: "next year", instant: "2025-01-02T08:00:00-05:00[America/New_York]", want: "2 Jan, 08:00"},
		{name: "other zone", instant: "2024-06-20T09:00:00+02:00[Europe/Paris]", want: "20 Jun, 09:00 CEST"},
	})
}

func TestFormatBoundaries(t *testing.T) {
	now := mustInstant(t, referenceNow)
	cases := []struct {
		offset time.Duration
		want   string
	}{
		{offset: -30 * time.Second, want: "now"},
		{offset: -30*time.Second - 900*time.Millisecond, want: "now"},
		{offset: 29 * time.Second, want: "now"},
		{offset: 30 * time.Second, want: "30s ago"},
		{offset: 30*time.Second + 900*time.Millisecond, want: "30s ago"},
		{offset: 89 * time.Second, want: "89s ago"},
		{offset: 90 * time.Second, want: "1m ago"},
		{offset: 5399 * time.Second, want: "89m ago"},
		{offset: 90 * time.Minute, want: "13:52"},
	}
	for _, tc := range cases {
		got, err := Format(now.Add(-tc.offset), now, "en-GB")
		if err != nil {
			t.Fatalf("Format(%v): %v", tc.offset, err)
		}
		if got != tc.want {
			t.Fatalf("Format(%v): got=%q want=%q", tc.offset, got, tc.want)
		}
	}
	got, err := Format(now.Add(31*time.Second), now, "en-GB")
	if err != nil {
		t.Fatalf("Format future: %v", err)
	}
	if got != "19 Jun, 15:23" {
		t.Fatalf("unexpected future output: %q", got)
	}
}

func TestFormatComparesDatesInOwnZone(t *testing.T) {
	now := mustInstant(t, referenceNow)
	tokyo := mustInstant(t, "2024-06-20T01:00:00+09:00[Asia/Tokyo]")

	got, err := Format(tokyo, now, "en-GB")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "20 Jun, 01:00 GMT+9" {
		t.Fatalf("unexpected en-GB output: %q", got)
	}
	got, err = Format(tokyo, now, "en-US")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "Jun 20, 01:00 AM GMT+9" {
		t.Fatalf("unexpected en-US output: %q", got)
	}

	newYear := mustInstant(t, "2024-01-01T00:30:00+01:00[Europe/Paris]")
	eve := mustInstant(t, "2023-12-31T16:00:00-05:00[America/New_York]")
	if got, err = Format(eve, newYear, "en-GB"); err != nil || got != "31/12/2023" {
		t.Fatalf("unexpected year boundary output: %q err=%v", got, err)
	}
}

func TestFormatLocaleFallbackList(t *testing.T) {
	now := mustInstant(t, referenceNow)
	instant := mustInstant(t, "2024-05-19T10:21:11-04:00[America/New_York]")

	got, err := Format(instant, now, "ja", "de-AT")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "19. Mai, 10:21" {
		t.Fatalf("unexpected fallback output: %q", got)
	}
	if got, err = Format(instant, now); err != nil || got != "May 19, 10:21 AM" {
		t.Fatalf("unexpected default locale output: %q err=%v", got, err)
	}
}

func TestFormatRejectsInvalidInput(t *testing.T) {
	now := mustInstant(t, referenceNow)
	instant := now.Add(-time.Hour)

	if _, err := Format(time.Time{}, now, "en-GB"); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero instant, got %v", err)
	}
	if _, err := Format(instant, time.Time{}, "en-GB"); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero now, got %v", err)
	}
	unnamed := instant.In(time.FixedZone("", -4*3600))
	if _, err := Format(unnamed, now, "en-GB"); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unnamed zone, got %v", err)
	}
	for _, locale := range []string{"", "en--GB", "not a locale!"} {
		if _, err := Format(instant, now, locale); !errors.Is(err, types.ErrInvalidInput) {
			t.Fatalf("expected invalid input for locale %q, got %v", locale, err)
		}
	}
}

func TestClassifyShapes(t *testing.T) {
	now := mustInstant(t, referenceNow)
	cases := []struct {
		instant string
		want    shape
	}{
		{instant: "2024-06-19T15:30:00-04:00[America/New_York]", want: shapeFuture},
		{instant: "2024-06-19T15:22:40-04:00[America/New_York]", want: shapeNow},
		{instant: "2024-06-19T15:22:00-04:00[America/New_York]", want: shapeSeconds},
		{instant: "2024-06-19T15:00:00-04:00[America/New_York]", want: shapeMinutes},
		{instant: "2024-06-19T01:00:00-04:00[America/New_York]", want: shapeSameDay},
		{instant: "2024-02-29T12:00:00-05:00[America/New_York]", want: shapeSameYear},
		{instant: "2021-06-19T12:00:00-04:00[America/New_York]", want: shapeOlder},
	}
	for _, tc := range cases {
		instant := mustInstant(t, tc.instant)
		elapsed := now.Sub(instant).Truncate(time.Second)
		if got := classify(elapsed, instant, now); got != tc.want {
			t.Fatalf("classify(%s): got=%v want=%v", tc.instant, got, tc.want)
		}
	}
}
