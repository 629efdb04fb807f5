package scheduling

import (
	"fmt"
	"strings"
	"time"

	"malone/config"
	"malone/models"
)

// ApplianceExcluded reports whether the named appliance is on the fixed
// no-service list. Substring match, case-insensitive: callers describe their
// appliance in free speech ("it's my little coffee maker machine").
func ApplianceExcluded(appliance string) bool {
	lower := strings.ToLower(appliance)
	for _, excluded := range config.ExcludedAppliances {
		if strings.Contains(lower, excluded) {
			return true
		}
	}
	return false
}

// ApplianceForMenuKey resolves an IVR keypad digit to an appliance name.
func ApplianceForMenuKey(key string) (string, bool) {
	name, ok := config.ApplianceMenu[strings.TrimSpace(key)]
	return name, ok
}

// ValidateRequest checks a caller-proposed appointment against every business
// rule: serviced appliance, serviced ZIP, weekday, not in the past, the zone's
// side of the day cycle, and a real slot for that zone. On success it returns
// the resolved zone and the slots offered there; on failure the error message
// is speakable and the slots (when known) let the voice layer offer options.
func ValidateRequest(zip string, date time.Time, slot string, appliance string, now time.Time) (models.Zone, []string, error) {
	if ApplianceExcluded(appliance) {
		return models.ZoneUnknown, nil, NewExcludedApplianceError(appliance)
	}

	zone := ZoneForZIP(zip)
	if !zone.Serviced() {
		return models.ZoneUnknown, nil, NewOutOfAreaError(zip)
	}

	if isWeekend(date) {
		return zone, nil, NewValidationError("We only schedule appointments Monday through Friday.")
	}

	loc := config.Location()
	if civilDayUTC(date).Before(civilDayUTC(now.In(loc))) {
		return zone, nil, NewValidationError("Cannot schedule appointments in the past.")
	}

	if zone != models.ZoneHome && ZoneForDate(date) != zone {
		return zone, nil, NewValidationError(
			fmt.Sprintf("We service the %s zone on different days.", zone.Title()))
	}

	slots := SlotsForZone(zone)
	if slot != "" {
		hour, err := ParseSlot(slot)
		if err != nil {
			return zone, slots, NewValidationError(
				fmt.Sprintf("Time %s not available. Options: %s", slot, strings.Join(slots, ", ")))
		}
		normalized := FormatHour(hour)
		offered := false
		for _, s := range slots {
			if s == normalized {
				offered = true
				break
			}
		}
		if !offered {
			return zone, slots, NewValidationError(
				fmt.Sprintf("Time %s not available. Options: %s", slot, strings.Join(slots, ", ")))
		}
	}

	return zone, slots, nil
}
