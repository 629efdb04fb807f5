package models

// Zone is the geographic service category a ZIP code falls in. It drives
// both which time slots are offered and which days of the week are eligible.
type Zone string

const (
	ZoneHome    Zone = "home"
	ZonePueblo  Zone = "pueblo"
	ZoneValley  Zone = "valley"
	ZoneUnknown Zone = ""
)

// Serviced reports whether the zone is inside the service area at all.
func (z Zone) Serviced() bool {
	return z == ZoneHome || z == ZonePueblo || z == ZoneValley
}

// Title returns the zone name as spoken to a caller.
func (z Zone) Title() string {
	switch z {
	case ZoneHome:
		return "Home"
	case ZonePueblo:
		return "Pueblo"
	case ZoneValley:
		return "Valley"
	}
	return "Unknown"
}
