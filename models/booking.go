package models

import "time"

// AppointmentWindow is a concrete start/end pair for a candidate or confirmed
// appointment. Always two hours long, always in the shop's civil time zone.
type AppointmentWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingRequest carries everything needed to put an appointment on the
// calendar. Built from caller input, consumed once by the calendar gateway.
type BookingRequest struct {
	CustomerName string            `json:"customerName"`
	Phone        string            `json:"phone"`
	Appliance    string            `json:"appliance"`
	ZIP          string            `json:"zip"`
	Window       AppointmentWindow `json:"window"`
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                      // Unique booking identifier (UUID)
	CustomerName    string    `bson:"customer_name" json:"customerName"` // Who the tech is visiting
	Phone           string    `bson:"phone" json:"phone"`                // Callback number
	Appliance       string    `bson:"appliance" json:"appliance"`        // What is being repaired
	ZIP             string    `bson:"zip" json:"zip"`                    // Service address ZIP
	Zone            Zone      `bson:"zone" json:"zone"`                  // Zone the ZIP resolved to
	Date            string    `bson:"date" json:"date"`                  // Appointment date in "YYYY-MM-DD"
	Slot            string    `bson:"slot" json:"slot"`                  // Arrival slot label, e.g. "1:00 PM"
	Start           time.Time `bson:"start" json:"start"`                // Window start
	End             time.Time `bson:"end" json:"end"`                    // Window end
	CalendarEventID string    `bson:"calendar_event_id,omitempty" json:"calendarEventId,omitempty"`
	Status          string    `bson:"status" json:"status"` // e.g. "Confirmed"
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

const (
	BookingStatusConfirmed = "Confirmed"
)

// ReminderPayload is the asynq task body for appointment-eve reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	FireDate  string `json:"fireDate"`
}
