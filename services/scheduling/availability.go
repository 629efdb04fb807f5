package scheduling

import (
	"time"

	"malone/config"
	"malone/models"
)

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// eligible reports whether the truck can be in the given zone on the given
// weekday. Home is serviced every weekday; Pueblo and Valley only on their
// side of the alternating cycle.
func eligible(zone models.Zone, day time.Time) bool {
	switch zone {
	case models.ZoneHome:
		return true
	case models.ZonePueblo:
		return IsPuebloDay(day)
	case models.ZoneValley:
		return !IsPuebloDay(day)
	}
	return false
}

// NextAvailableDates returns the next count bookable dates for a zone,
// ascending, starting the day after today. Weekends are always skipped.
// An unknown zone yields no dates rather than an endless scan, and the scan
// itself is capped so a broken cycle configuration cannot loop forever: by
// the alternation invariant eligible days are at most three calendar days
// apart, so the cap only trips if something upstream is wrong.
func NextAvailableDates(zone models.Zone, count int, today time.Time) ([]time.Time, error) {
	if !zone.Serviced() || count <= 0 {
		return nil, nil
	}

	loc := config.Location()
	y, m, d := today.In(loc).Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)

	var dates []time.Time
	for i := 0; i < config.MaxLookaheadDays; i++ {
		day = day.AddDate(0, 0, 1)
		if isWeekend(day) || !eligible(zone, day) {
			continue
		}
		dates = append(dates, day)
		if len(dates) == count {
			return dates, nil
		}
	}
	return nil, NewNoAvailabilityError()
}
