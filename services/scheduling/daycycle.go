package scheduling

import (
	"time"

	"malone/config"
	"malone/models"
)

const dayMillis = 24 * 60 * 60 * 1000

// civilDayUTC takes the civil date of t in the shop's time zone and re-anchors
// it at UTC midnight. Differencing two such values is always an exact whole
// number of days, so the 23- and 25-hour days around DST transitions can never
// shift the cycle parity by one.
func civilDayUTC(t time.Time) time.Time {
	y, m, d := t.In(config.Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsPuebloDay reports whether the given date falls on the Pueblo side of the
// alternating day cycle. The cycle is anchored at the fixed reference date
// (itself a Pueblo day): an even day count from the anchor is Pueblo, odd is
// Valley. Defined for any date, past or future.
func IsPuebloDay(t time.Time) bool {
	diff := civilDayUTC(t).Sub(civilDayUTC(config.ReferenceDate)).Milliseconds()
	days := diff / dayMillis
	return days%2 == 0
}

// ZoneForDate returns which zone the truck is in on a given date. Weekends
// belong to nobody; weekday eligibility for the home zone is decided by the
// availability scan, not here.
func ZoneForDate(t time.Time) models.Zone {
	if IsPuebloDay(t) {
		return models.ZonePueblo
	}
	return models.ZoneValley
}
