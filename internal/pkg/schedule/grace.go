// Package schedule classifies the configured reclamation schedule into a
// grace period. The grace period is the duration an unpaid order may hold
// a resource before the sweep reclaims it; it is derived from the sweep's
// own cadence so that orders survive at least one full cycle.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

// FallbackGraceMinutes is the deliberate safety default applied when the
// configured schedule cannot be classified. The sweep is best-effort, so
// an unrecognized schedule downgrades to a safe cadence instead of failing.
const FallbackGraceMinutes = 30

// Grace periods per recognized schedule shape, in minutes.
const (
	everyMinute  = 1
	hourlyGrace  = 60
	dailyGrace   = 1440
	weeklyGrace  = 10080
	monthlyGrace = 43200
)

// Normalize converts a time-of-day value ("HH:MM") to the five-field cron
// form. Five-field strings pass through unchanged.
func Normalize(spec string) string {
	spec = strings.TrimSpace(spec)

	parts := strings.SplitN(spec, ":", 2)
	if len(parts) == 2 && !strings.ContainsAny(spec, " *") {
		hour, errH := strconv.Atoi(parts[0])
		minute, errM := strconv.Atoi(parts[1])
		if errH == nil && errM == nil && hour >= 0 && hour < 24 && minute >= 0 && minute < 60 {
			return fmt.Sprintf("%d %d * * *", minute, hour)
		}
	}

	return spec
}

// GraceMinutes classifies a five-field cron expression to a minute count:
//
//	"* * * * *"  → 1        every minute
//	"*/N …"      → N        every N minutes
//	"M * * * *"  → 60       fixed hourly
//	"M H * * *"  → 1440     fixed daily
//	"M H * * D"  → 10080    fixed weekly
//	"M H D * *"  → 43200    fixed monthly
//
// Anything else, including strings robfig/cron rejects, classifies to
// FallbackGraceMinutes. The boolean result reports whether the
// classification matched a recognized shape, so callers can log the
// fallback.
func GraceMinutes(spec string) (int, bool) {
	spec = Normalize(spec)

	if _, err := cron.ParseStandard(spec); err != nil {
		return FallbackGraceMinutes, false
	}

	fields := strings.Fields(spec)
	if len(fields) != 5 {
		return FallbackGraceMinutes, false
	}
	minute, hour, dom, month, dow := fields[0], fields[1], fields[2], fields[3], fields[4]

	wild := func(f string) bool { return f == "*" }
	fixed := func(f string) bool {
		_, err := strconv.Atoi(f)
		return err == nil
	}

	switch {
	case minute == "*" && wild(hour) && wild(dom) && wild(month) && wild(dow):
		return everyMinute, true

	case strings.HasPrefix(minute, "*/"):
		n, err := strconv.Atoi(minute[2:])
		if err != nil || n <= 0 {
			return FallbackGraceMinutes, false
		}
		return n, true

	case fixed(minute) && wild(hour) && wild(dom) && wild(month) && wild(dow):
		return hourlyGrace, true

	case fixed(minute) && fixed(hour) && wild(dom) && wild(month) && wild(dow):
		return dailyGrace, true

	case fixed(minute) && fixed(hour) && wild(dom) && wild(month) && !wild(dow):
		return weeklyGrace, true

	case fixed(minute) && fixed(hour) && !wild(dom) && wild(month) && wild(dow):
		return monthlyGrace, true
	}

	return FallbackGraceMinutes, false
}
