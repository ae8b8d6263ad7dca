//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"turnera/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, s string) schedule.TimeOfDay {
	t.Helper()
	tod, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func mustBlock(t *testing.T, weekday time.Weekday, start, end string) schedule.Block {
	t.Helper()
	b, err := schedule.NewBlock(weekday, mustTimeOfDay(t, start), mustTimeOfDay(t, end))
	require.NoError(t, err)
	return b
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: "09:00"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "09:60", wantErr: true},
		{name: "missing separator", input: "0900", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "morning", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tod, err := schedule.ParseTimeOfDay(c.input)
			if c.wantErr {
				require.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, tod.String())
		})
	}
}

func TestNewBlock(t *testing.T) {
	t.Run("valid block", func(t *testing.T) {
		b, err := schedule.NewBlock(time.Monday, mustTimeOfDay(t, "09:00"), mustTimeOfDay(t, "13:00"))
		require.NoError(t, err)
		assert.Equal(t, time.Monday, b.Weekday())
		assert.Equal(t, "09:00", b.Start().String())
		assert.Equal(t, "13:00", b.End().String())
	})

	t.Run("start equal to end", func(t *testing.T) {
		_, err := schedule.NewBlock(time.Monday, mustTimeOfDay(t, "09:00"), mustTimeOfDay(t, "09:00"))
		require.ErrorIs(t, err, schedule.ErrStartNotBeforeEnd)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := schedule.NewBlock(time.Monday, mustTimeOfDay(t, "13:00"), mustTimeOfDay(t, "09:00"))
		require.ErrorIs(t, err, schedule.ErrStartNotBeforeEnd)
	})

	t.Run("invalid weekday", func(t *testing.T) {
		_, err := schedule.NewBlock(time.Weekday(7), mustTimeOfDay(t, "09:00"), mustTimeOfDay(t, "13:00"))
		require.ErrorIs(t, err, schedule.ErrInvalidWeekday)
	})
}

func TestBlockContains(t *testing.T) {
	b := mustBlock(t, time.Monday, "09:00", "13:00")

	cases := []struct {
		name string
		tod  string
		want bool
	}{
		{name: "just before opening", tod: "08:59", want: false},
		{name: "exactly at opening", tod: "09:00", want: true},
		{name: "mid block", tod: "11:30", want: true},
		{name: "last covered minute", tod: "12:59", want: true},
		{name: "exactly at closing", tod: "13:00", want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, b.Contains(mustTimeOfDay(t, c.tod)))
		})
	}
}

func TestNewWeek(t *testing.T) {
	t.Run("adjacent blocks on the same day are allowed", func(t *testing.T) {
		week, err := schedule.NewWeek([]schedule.Block{
			mustBlock(t, time.Monday, "09:00", "12:00"),
			mustBlock(t, time.Monday, "12:00", "15:00"),
		})
		require.NoError(t, err)
		assert.Len(t, week.BlocksFor(time.Monday), 2)
	})

	t.Run("overlapping blocks on the same day are rejected", func(t *testing.T) {
		_, err := schedule.NewWeek([]schedule.Block{
			mustBlock(t, time.Monday, "09:00", "12:00"),
			mustBlock(t, time.Monday, "11:00", "15:00"),
		})
		require.ErrorIs(t, err, schedule.ErrOverlappingBlocks)
	})

	t.Run("same times on different days do not conflict", func(t *testing.T) {
		week, err := schedule.NewWeek([]schedule.Block{
			mustBlock(t, time.Monday, "09:00", "12:00"),
			mustBlock(t, time.Tuesday, "09:00", "12:00"),
		})
		require.NoError(t, err)
		assert.Len(t, week.All(), 2)
	})

	t.Run("empty week covers nothing", func(t *testing.T) {
		week, err := schedule.NewWeek(nil)
		require.NoError(t, err)
		assert.False(t, week.Covers(time.Now(), time.UTC))
	})

	t.Run("blocks are returned sorted by start", func(t *testing.T) {
		week, err := schedule.NewWeek([]schedule.Block{
			mustBlock(t, time.Monday, "14:00", "18:00"),
			mustBlock(t, time.Monday, "09:00", "12:00"),
		})
		require.NoError(t, err)

		blocks := week.BlocksFor(time.Monday)
		require.Len(t, blocks, 2)
		assert.Equal(t, "09:00", blocks[0].Start().String())
		assert.Equal(t, "14:00", blocks[1].Start().String())
	})
}

func TestWeekCovers(t *testing.T) {
	// Monday 09:00-13:00 in a UTC-3 zone.
	buenosAires, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)

	week, err := schedule.NewWeek([]schedule.Block{
		mustBlock(t, time.Monday, "09:00", "13:00"),
	})
	require.NoError(t, err)

	// 2026-09-07 is a Monday.
	cases := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{
			name:    "local 08:59 is before opening",
			instant: time.Date(2026, 9, 7, 11, 59, 0, 0, time.UTC),
			want:    false,
		},
		{
			name:    "local 09:00 is covered",
			instant: time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC),
			want:    true,
		},
		{
			name:    "local 12:59 is covered",
			instant: time.Date(2026, 9, 7, 15, 59, 0, 0, time.UTC),
			want:    true,
		},
		{
			name:    "local 13:00 is past closing",
			instant: time.Date(2026, 9, 7, 16, 0, 0, 0, time.UTC),
			want:    false,
		},
		{
			name:    "covered wall-clock time on a closed day",
			instant: time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC),
			want:    false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, week.Covers(c.instant, buenosAires))
		})
	}
}
