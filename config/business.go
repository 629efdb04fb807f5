package config

import "time"

// Fixed business data for the dispatch area. Changing any of this is a
// business decision, not a deployment concern, so it lives in code rather
// than in the viper config.

// HomeBaseZIP is the shop's own ZIP code; it is serviced every weekday.
const HomeBaseZIP = "81039"

// Timezone is the civil time zone all appointment times are anchored in.
const Timezone = "America/Denver"

// PuebloZIPs covers the Pueblo metro service area.
var PuebloZIPs = map[string]struct{}{
	"81001": {}, "81003": {}, "81004": {}, "81005": {}, "81006": {},
	"81007": {}, "81008": {}, "81009": {}, "81010": {}, "81011": {},
	"81012": {}, "81019": {}, "81020": {}, "81021": {}, "81022": {},
	"81023": {}, "81025": {},
}

// ValleyZIPs covers the outlying valley towns.
var ValleyZIPs = map[string]struct{}{
	"81020": {}, "81021": {}, "81022": {}, "81024": {}, "81027": {},
	"81030": {}, "81041": {}, "81043": {}, "81050": {}, "81054": {},
	"81055": {}, "81059": {}, "81062": {}, "81063": {}, "81071": {},
	"81073": {}, "81082": {}, "81089": {}, "81090": {}, "81091": {},
}

// Business hours: first slot starts at BusinessStartHour, last slot must
// end by BusinessEndHour.
const (
	BusinessStartHour = 9
	BusinessEndHour   = 16
	SlotDurationHours = 2
)

// ReferenceDate anchors the alternating Pueblo/Valley day cycle.
// December 2, 2025 is a Pueblo day; parity from there decides every other date.
// Anchored at local midnight in the shop's civil zone.
var ReferenceDate = time.Date(2025, time.December, 2, 0, 0, 0, 0, Location())

// ExcludedAppliances are small appliances Malone's does not service.
// Matching is case-insensitive substring (callers say "my rice cooker thing").
var ExcludedAppliances = []string{
	"microwave", "toaster", "coffee maker", "blender", "mixer",
	"air fryer", "slow cooker", "pressure cooker", "rice cooker",
}

// ApplianceMenu maps IVR keypad digits to appliance names.
var ApplianceMenu = map[string]string{
	"1": "Refrigerator",
	"2": "Washer",
	"3": "Dryer",
	"4": "Dishwasher",
	"5": "Oven",
	"6": "Range",
	"7": "Freezer",
	"8": "Water Heater",
}

// DateOptionCount is how many candidate dates a caller is offered.
const DateOptionCount = 5

// SessionTTL bounds how long an in-progress call session survives in Redis.
const SessionTTL = 30 * time.Minute

// MaxLookaheadDays caps the availability scan so a misconfigured day cycle
// can never spin the generator forever.
const MaxLookaheadDays = 60

// Location returns the loaded civil time zone. The dispatch area has a single
// fixed zone; failing to load it is a deployment fault worth panicking on.
func Location() *time.Location {
	loc, err := time.LoadLocation(Timezone)
	if err != nil {
		panic("config: cannot load timezone " + Timezone + ": " + err.Error())
	}
	return loc
}
