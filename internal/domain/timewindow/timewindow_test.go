package timewindow

import (
	"testing"
	"time"

	"localdrop/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func hm(hour, minute int) int {
	return hour*60 + minute
}

func TestToComparableMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        entity.OperatingTime
		reference int
		expected  int
	}{
		{"same zone", entity.OperatingTime{Hour: 9, Minute: 30, ZoneOffsetMinutes: 480}, 480, hm(9, 30)},
		{"to UTC", entity.OperatingTime{Hour: 9, Minute: 30, ZoneOffsetMinutes: 480}, 0, hm(1, 30)},
		{"wraps below midnight", entity.OperatingTime{Hour: 2, Minute: 0, ZoneOffsetMinutes: 480}, 0, hm(18, 0)},
		{"wraps past midnight", entity.OperatingTime{Hour: 22, Minute: 0, ZoneOffsetMinutes: -300}, 60, hm(4, 0)},
		{"half hour zone", entity.OperatingTime{Hour: 12, Minute: 0, ZoneOffsetMinutes: 330}, 0, hm(6, 30)},
		{"midnight", entity.OperatingTime{Hour: 0, Minute: 0}, 0, 0},
		{"last minute", entity.OperatingTime{Hour: 23, Minute: 59}, 0, hm(23, 59)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToComparableMinutes(tt.in, tt.reference)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, MinutesPerDay)
		})
	}
}

func TestIsWithinWindow_SameDay(t *testing.T) {
	t.Parallel()

	opening, closing := hm(9, 0), hm(17, 0)

	assert.False(t, IsWithinWindow(hm(8, 59), opening, closing))
	assert.True(t, IsWithinWindow(hm(9, 0), opening, closing))
	assert.True(t, IsWithinWindow(hm(12, 0), opening, closing))
	assert.False(t, IsWithinWindow(hm(17, 0), opening, closing), "closing is exclusive")
	assert.False(t, IsWithinWindow(hm(23, 0), opening, closing))
}

func TestIsWithinWindow_CrossMidnight(t *testing.T) {
	t.Parallel()

	opening, closing := hm(22, 0), hm(2, 0)

	tests := []struct {
		name     string
		now      int
		expected bool
	}{
		{"before opening", hm(21, 59), false},
		{"at opening", hm(22, 0), true},
		{"late evening", hm(23, 30), true},
		{"midnight", hm(0, 0), true},
		{"after midnight", hm(1, 0), true},
		{"at closing", hm(2, 0), false},
		{"early morning", hm(3, 0), false},
		{"noon", hm(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsWithinWindow(tt.now, opening, closing))
		})
	}
}

func TestIsWithinWindow_EqualBoundsNeverClose(t *testing.T) {
	t.Parallel()

	for _, now := range []int{0, hm(8, 0), hm(23, 59)} {
		assert.True(t, IsWithinWindow(now, hm(8, 0), hm(8, 0)))
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	const taipei = 480
	opening := entity.OperatingTime{Hour: 22, Minute: 0, ZoneOffsetMinutes: taipei}
	closing := entity.OperatingTime{Hour: 2, Minute: 0, ZoneOffsetMinutes: taipei}
	zone := time.FixedZone("Asia/Taipei", taipei*60)

	// 2026-10-16 is a Friday.
	friday2330 := time.Date(2026, 10, 16, 23, 30, 0, 0, zone)
	saturday0100 := time.Date(2026, 10, 17, 1, 0, 0, 0, zone)
	saturday0300 := time.Date(2026, 10, 17, 3, 0, 0, 0, zone)

	t.Run("cross midnight in caller's UTC clock", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Evaluate(friday2330.UTC(), opening, closing, nil))
		assert.True(t, Evaluate(saturday0100.UTC(), opening, closing, nil))
		assert.False(t, Evaluate(saturday0300.UTC(), opening, closing, nil))
	})

	t.Run("after midnight counts as the opening day", func(t *testing.T) {
		t.Parallel()

		fridayOnly := []time.Weekday{time.Friday}
		assert.True(t, Evaluate(friday2330, opening, closing, fridayOnly))
		assert.True(t, Evaluate(saturday0100, opening, closing, fridayOnly))

		saturdayOnly := []time.Weekday{time.Saturday}
		assert.False(t, Evaluate(saturday0100, opening, closing, saturdayOnly))
	})

	t.Run("closed weekday", func(t *testing.T) {
		t.Parallel()

		dayOpening := entity.OperatingTime{Hour: 9, ZoneOffsetMinutes: taipei}
		dayClosing := entity.OperatingTime{Hour: 17, ZoneOffsetMinutes: taipei}
		sunday := time.Date(2026, 10, 18, 12, 0, 0, 0, zone)
		weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

		assert.False(t, Evaluate(sunday, dayOpening, dayClosing, weekdays))
		assert.True(t, Evaluate(sunday.AddDate(0, 0, 1), dayOpening, dayClosing, weekdays))
	})

	t.Run("closing recorded in another zone", func(t *testing.T) {
		t.Parallel()

		// 17:00 at UTC+8 equals 09:00 UTC.
		dayOpening := entity.OperatingTime{Hour: 9, ZoneOffsetMinutes: taipei}
		utcClosing := entity.OperatingTime{Hour: 9, ZoneOffsetMinutes: 0}

		assert.True(t, Evaluate(time.Date(2026, 10, 16, 16, 59, 0, 0, zone), dayOpening, utcClosing, nil))
		assert.False(t, Evaluate(time.Date(2026, 10, 16, 17, 0, 0, 0, zone), dayOpening, utcClosing, nil))
	})
}
