package scheduling

import (
	"strings"

	"malone/config"
	"malone/models"
)

// ZoneForZIP maps a caller's ZIP code to its service zone. The home-base ZIP
// wins over set membership; anything unrecognized is outside the service area.
func ZoneForZIP(zip string) models.Zone {
	zip = strings.TrimSpace(zip)
	if zip == config.HomeBaseZIP {
		return models.ZoneHome
	}
	if _, ok := config.PuebloZIPs[zip]; ok {
		return models.ZonePueblo
	}
	if _, ok := config.ValleyZIPs[zip]; ok {
		return models.ZoneValley
	}
	return models.ZoneUnknown
}
