package moderation

import (
	"fmt"
	"time"
	_ "time/tzdata" // zones must resolve in minimal containers
)

// WorkingHours is the daily window in which the market is open. A window
// whose close is earlier than its open spans midnight.
type WorkingHours struct {
	openMin  int
	closeMin int
	loc      *time.Location
}

// ParseWorkingHours parses "HH:MM" bounds in the given IANA zone. An empty
// zone means UTC.
func ParseWorkingHours(open, closeAt, zone string) (*WorkingHours, error) {
	loc := time.UTC
	if zone != "" {
		var err error
		if loc, err = time.LoadLocation(zone); err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", zone, err)
		}
	}

	openMin, err := parseClock(open)
	if err != nil {
		return nil, fmt.Errorf("invalid open time: %w", err)
	}
	closeMin, err := parseClock(closeAt)
	if err != nil {
		return nil, fmt.Errorf("invalid close time: %w", err)
	}
	if openMin == closeMin {
		return nil, fmt.Errorf("open and close times must differ")
	}

	return &WorkingHours{openMin: openMin, closeMin: closeMin, loc: loc}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%q is not HH:MM", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Location returns the zone the window is evaluated in.
func (w *WorkingHours) Location() *time.Location {
	return w.loc
}

// IsOpen reports whether t falls inside the window. The open minute is
// inside, the close minute is outside.
func (w *WorkingHours) IsOpen(t time.Time) bool {
	local := t.In(w.loc)
	m := local.Hour()*60 + local.Minute()
	if w.openMin < w.closeMin {
		return m >= w.openMin && m < w.closeMin
	}
	return m >= w.openMin || m < w.closeMin
}

// OpenCron returns a five-field cron spec firing at the opening minute.
func (w *WorkingHours) OpenCron() string {
	return fmt.Sprintf("%d %d * * *", w.openMin%60, w.openMin/60)
}

// CloseCron returns a five-field cron spec firing at the closing minute.
func (w *WorkingHours) CloseCron() string {
	return fmt.Sprintf("%d %d * * *", w.closeMin%60, w.closeMin/60)
}

func (w *WorkingHours) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d %s", w.openMin/60, w.openMin%60, w.closeMin/60, w.closeMin%60, w.loc)
}
