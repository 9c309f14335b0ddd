package entity

import "fmt"

const (
	minutesPerHour = 60
	// maxZoneOffsetMinutes covers the widest offsets in use (UTC-12:00 to UTC+14:00).
	maxZoneOffsetMinutes = 14 * minutesPerHour
)

// OperatingTime is a wall-clock instant repeated daily, recorded in the business's local zone.
type OperatingTime struct {
	Hour              int `json:"hour"`                // Hour of day, 0-23.
	Minute            int `json:"minute"`              // Minute of hour, 0-59.
	ZoneOffsetMinutes int `json:"zone_offset_minutes"` // Offset of the local zone from UTC, in minutes.
}

// IsValid checks that every component is within range.
func (t OperatingTime) IsValid() bool {
	return t.Hour >= 0 && t.Hour <= 23 &&
		t.Minute >= 0 && t.Minute <= 59 &&
		t.ZoneOffsetMinutes >= -maxZoneOffsetMinutes && t.ZoneOffsetMinutes <= maxZoneOffsetMinutes
}

// String renders the time as HH:MM±hh:mm.
func (t OperatingTime) String() string {
	sign := '+'
	offset := t.ZoneOffsetMinutes
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	return fmt.Sprintf("%02d:%02d%c%02d:%02d", t.Hour, t.Minute, sign, offset/minutesPerHour, offset%minutesPerHour)
}
