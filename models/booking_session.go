package models

// BookingSession holds per-call context between availability lookup and final
// confirmation. It lives only in the session store, keyed by session ID, so
// the scheduling core itself stays stateless across calls.
type BookingSession struct {
	SessionID    string   `json:"sessionId"`
	CustomerName string   `json:"customerName,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	ZIP          string   `json:"zip"`
	Zone         Zone     `json:"zone"`
	Appliance    string   `json:"appliance"`
	Dates        []string `json:"dates"` // candidate dates, "YYYY-MM-DD", ascending
	Slots        []string `json:"slots"` // slot labels in presentation order
}

// SessionOptions is what the voice layer reads back to the caller: numbered
// speakable dates plus the slot labels for the caller's zone.
type SessionOptions struct {
	SessionID   string   `json:"sessionId"`
	Zone        Zone     `json:"zone"`
	DateOptions []string `json:"dateOptions"` // e.g. "1. Monday, December 08"
	Slots       []string `json:"slots"`
}

// BookingConfirmation is the terminal success payload for a booked call.
type BookingConfirmation struct {
	Booking *Booking `json:"booking"`
	Message string   `json:"message"`
}
