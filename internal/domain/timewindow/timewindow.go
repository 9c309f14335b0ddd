// Package timewindow evaluates daily opening windows recorded in a business's local zone.
package timewindow

import (
	"time"

	"localdrop/internal/domain/entity"
)

// MinutesPerDay bounds every comparable value to [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

// ToComparableMinutes converts t to minutes since midnight at referenceZoneOffsetMinutes, so times
// recorded in different zones can be compared directly. The result wraps into [0, MinutesPerDay).
func ToComparableMinutes(t entity.OperatingTime, referenceZoneOffsetMinutes int) int {
	minutes := t.Hour*60 + t.Minute - t.ZoneOffsetMinutes + referenceZoneOffsetMinutes

	return wrap(minutes)
}

// IsWithinWindow reports whether now falls in [opening, closing). When closing is not after opening
// the window spans midnight and holds from opening until closing on the next day, so equal bounds
// describe a window that never closes.
func IsWithinWindow(now, opening, closing int) bool {
	if closing > opening {
		return now >= opening && now < closing
	}

	return now >= opening || now < closing
}

// Evaluate reports whether the instant now is inside the daily window [opening, closing) on one of
// days, evaluated in the zone of the opening time. Past midnight, a window that started the evening
// before is attributed to the day it opened. An empty days set places no restriction.
func Evaluate(now time.Time, opening, closing entity.OperatingTime, days []time.Weekday) bool {
	reference := opening.ZoneOffsetMinutes
	local := now.In(time.FixedZone("", reference*60))

	nowMinutes := local.Hour()*60 + local.Minute()
	openMinutes := ToComparableMinutes(opening, reference)
	closeMinutes := ToComparableMinutes(closing, reference)

	if !IsWithinWindow(nowMinutes, openMinutes, closeMinutes) {
		return false
	}

	if len(days) == 0 {
		return true
	}

	day := local.Weekday()
	if closeMinutes <= openMinutes && nowMinutes < closeMinutes {
		day = (day + 6) % 7
	}

	for _, d := range days {
		if d == day {
			return true
		}
	}

	return false
}

func wrap(minutes int) int {
	return ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
}
