package moderation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseWorkingHoursErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseWorkingHours("9am", "18:00", "")
	require.Error(t, err)
	_, err = ParseWorkingHours("09:00", "25:00", "")
	require.Error(t, err)
	_, err = ParseWorkingHours("09:00", "09:00", "")
	require.Error(t, err)
	_, err = ParseWorkingHours("09:00", "18:00", "Mars/Olympus")
	require.Error(t, err)
}

func TestWorkingHoursIsOpen(t *testing.T) {
	t.Parallel()

	day, err := ParseWorkingHours("09:00", "18:30", "Asia/Tashkent")
	require.NoError(t, err)
	night, err := ParseWorkingHours("22:00", "06:00", "UTC")
	require.NoError(t, err)

	tashkent := day.Location()
	at := func(loc *time.Location, h, m int) time.Time {
		return time.Date(2024, 5, 10, h, m, 0, 0, loc)
	}

	tests := []struct {
		name string
		wh   *WorkingHours
		t    time.Time
		want bool
	}{
		{name: "before open", wh: day, t: at(tashkent, 8, 59), want: false},
		{name: "at open", wh: day, t: at(tashkent, 9, 0), want: true},
		{name: "midday", wh: day, t: at(tashkent, 13, 0), want: true},
		{name: "at close", wh: day, t: at(tashkent, 18, 30), want: false},
		{name: "utc converted", wh: day, t: at(time.UTC, 5, 0), want: true},
		{name: "overnight late", wh: night, t: at(time.UTC, 23, 0), want: true},
		{name: "overnight early", wh: night, t: at(time.UTC, 5, 59), want: true},
		{name: "overnight closed", wh: night, t: at(time.UTC, 12, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.wh.IsOpen(tt.t))
		})
	}
}

func TestWorkingHoursCron(t *testing.T) {
	t.Parallel()

	wh, err := ParseWorkingHours("09:05", "18:30", "")
	require.NoError(t, err)
	require.Equal(t, "5 9 * * *", wh.OpenCron())
	require.Equal(t, "30 18 * * *", wh.CloseCron())
	require.Equal(t, "09:05-18:30 UTC", wh.String())
}
