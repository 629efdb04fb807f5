package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"malone/config"
	"malone/models"
	"malone/services/scheduling"
	"malone/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateKeyFormat = "2006-01-02"

// InitiateSession starts a booking session for a caller: rejects appliances
// we don't service, classifies the ZIP, generates candidate dates and slots,
// and parks everything in the session store under a fresh session ID.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, intent SessionIntent) (*models.SessionOptions, error) {
	logger := utils.GetLogger()

	appliance := strings.TrimSpace(intent.Appliance)
	if intent.MenuKey != "" {
		if name, ok := scheduling.ApplianceForMenuKey(intent.MenuKey); ok {
			appliance = name
		}
	}
	if appliance == "" {
		return nil, scheduling.NewValidationError("Which appliance needs repair?")
	}
	if scheduling.ApplianceExcluded(appliance) {
		return nil, scheduling.NewExcludedApplianceError(appliance)
	}

	zone := scheduling.ZoneForZIP(intent.ZIP)
	if !zone.Serviced() {
		return nil, scheduling.NewOutOfAreaError(intent.ZIP)
	}

	dates, err := scheduling.NextAvailableDates(zone, config.DateOptionCount, s.now())
	if err != nil {
		return nil, err
	}

	session := &models.BookingSession{
		SessionID:    uuid.New().String(),
		CustomerName: intent.CustomerName,
		Phone:        intent.Phone,
		ZIP:          strings.TrimSpace(intent.ZIP),
		Zone:         zone,
		Appliance:    appliance,
		Dates:        formatDateKeys(dates),
		Slots:        scheduling.SlotsForZone(zone),
	}
	if err := s.Store.Set(ctx, session); err != nil {
		logger.Error("Failed to store booking session", zap.Error(err))
		return nil, fmt.Errorf("failed to store booking session: %w", err)
	}

	logger.Info("Initiated booking session",
		zap.String("sessionID", session.SessionID),
		zap.String("zip", session.ZIP),
		zap.String("zone", string(zone)),
		zap.String("appliance", appliance))

	return s.options(session, dates), nil
}

// GetSession re-reads the speakable options for an active call.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.SessionOptions, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	if session == nil {
		return nil, NewSessionNotFoundError()
	}
	return s.options(session, parseDateKeys(session.Dates)), nil
}

// CancelSession evicts the call's session (hangup or caller declined).
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// ConfirmBooking resolves the caller's selection to a concrete window, checks
// the calendar, and books the first conflict-free candidate. Conflicts roll
// forward through the remaining slot/date candidates in the order they were
// offered; a conflict-check transport failure is logged and treated as no
// conflict, and a failed event creation is reported as a booking failure
// rather than raised.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, in ConfirmInput) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	session, err := s.Store.Get(ctx, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	if session == nil {
		return nil, NewSessionNotFoundError()
	}

	candidates := parseDateKeys(session.Dates)
	chosenDate, err := s.resolveDate(in.Date, candidates)
	if err != nil {
		return nil, err
	}
	chosenSlot, err := s.resolveSlot(in.Slot, session.Slots)
	if err != nil {
		return nil, err
	}

	// A caller may name a date we never offered; it still has to pass every
	// business rule before we try the calendar.
	if indexOfDate(candidates, chosenDate) < 0 {
		if _, _, err := scheduling.ValidateRequest(session.ZIP, chosenDate, chosenSlot, session.Appliance, s.now()); err != nil {
			return nil, err
		}
	}

	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		name = session.CustomerName
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		phone = session.Phone
	}

	for _, cand := range buildCandidates(chosenDate, chosenSlot, candidates, session.Slots) {
		window, err := scheduling.WindowFor(cand.date, cand.slot)
		if err != nil {
			return nil, err
		}

		conflict, err := s.Calendar.HasConflict(ctx, window)
		if err != nil {
			// Fail-open: during a calendar outage we'd rather risk a
			// double-booking than turn every caller away.
			logger.Warn("Calendar conflict check failed, assuming window is free",
				zap.String("sessionID", session.SessionID), zap.Error(err))
			conflict = false
		}
		if conflict {
			logger.Info("Window conflicted, trying next candidate",
				zap.String("sessionID", session.SessionID),
				zap.Time("start", window.Start))
			continue
		}

		request := models.BookingRequest{
			CustomerName: name,
			Phone:        phone,
			Appliance:    session.Appliance,
			ZIP:          session.ZIP,
			Window:       window,
		}
		event, err := s.Calendar.CreateEvent(ctx, request)
		if err != nil || event == nil {
			logger.Error("Failed to create calendar event",
				zap.String("sessionID", session.SessionID), zap.Error(err))
			return nil, NewBookingFailedError()
		}

		booking := &models.Booking{
			ID:              uuid.New().String(),
			CustomerName:    name,
			Phone:           phone,
			Appliance:       session.Appliance,
			ZIP:             session.ZIP,
			Zone:            session.Zone,
			Date:            cand.date.Format(dateKeyFormat),
			Slot:            cand.slot,
			Start:           window.Start,
			End:             window.End,
			CalendarEventID: event.ID,
			Status:          models.BookingStatusConfirmed,
			CreatedAt:       s.now(),
		}
		if s.Repo != nil {
			if err := s.Repo.Create(ctx, booking); err != nil {
				// The calendar event exists; losing the office record is
				// recoverable and must not fail the caller.
				logger.Error("Failed to persist booking record",
					zap.String("bookingID", booking.ID), zap.Error(err))
			}
		}
		if s.Reminders != nil {
			if err := s.Reminders.ScheduleReminder(booking); err != nil {
				logger.Error("Failed to schedule reminder",
					zap.String("bookingID", booking.ID), zap.Error(err))
			}
		}
		if err := s.Store.Delete(ctx, session.SessionID); err != nil {
			logger.Warn("Failed to evict booking session",
				zap.String("sessionID", session.SessionID), zap.Error(err))
		}

		message := fmt.Sprintf("Appointment booked for %s! %s repair on %s at %s.",
			name, session.Appliance, scheduling.FormatSpokenDate(cand.date), cand.slot)
		if !sameCivilDay(cand.date, chosenDate) || cand.slot != chosenSlot {
			message = fmt.Sprintf("That time was already booked, so we scheduled the next opening: %s at %s for %s.",
				scheduling.FormatSpokenDate(cand.date), cand.slot, name)
		}

		logger.Info("Booking confirmed",
			zap.String("bookingID", booking.ID),
			zap.String("date", booking.Date),
			zap.String("slot", booking.Slot))

		return &models.BookingConfirmation{Booking: booking, Message: message}, nil
	}

	return nil, NewSlotConflictError()
}

type candidate struct {
	date time.Time
	slot string
}

// buildCandidates lays out the retry order: the chosen slot first, then the
// rest of the chosen date's slots, then every slot on each later offered date.
func buildCandidates(chosenDate time.Time, chosenSlot string, dates []time.Time, slots []string) []candidate {
	slotIdx := 0
	for i, s := range slots {
		if s == chosenSlot {
			slotIdx = i
			break
		}
	}

	var out []candidate
	for _, s := range slots[slotIdx:] {
		out = append(out, candidate{date: chosenDate, slot: s})
	}
	for _, d := range dates {
		if !d.After(chosenDate) {
			continue
		}
		for _, s := range slots {
			out = append(out, candidate{date: d, slot: s})
		}
	}
	return out
}

func (s *DefaultBookingSessionService) resolveDate(input string, candidates []time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" && len(candidates) > 0 {
		return candidates[0], nil
	}
	if d, err := time.ParseInLocation(dateKeyFormat, input, config.Location()); err == nil {
		return d, nil
	}
	if d := scheduling.ParseSpokenDate(input, s.now(), candidates); !d.IsZero() {
		return d, nil
	}
	return time.Time{}, scheduling.NewValidationError(
		fmt.Sprintf("Sorry, I didn't catch which date you meant by %q.", input))
}

func (s *DefaultBookingSessionService) resolveSlot(input string, offered []string) (string, error) {
	if strings.TrimSpace(input) == "" && len(offered) > 0 {
		return offered[0], nil
	}
	hour, err := scheduling.ParseSlot(input)
	if err != nil {
		return "", scheduling.NewValidationError(
			fmt.Sprintf("Time %s not available. Options: %s", input, strings.Join(offered, ", ")))
	}
	label := scheduling.FormatHour(hour)
	for _, s := range offered {
		if s == label {
			return label, nil
		}
	}
	return "", scheduling.NewValidationError(
		fmt.Sprintf("Time %s not available. Options: %s", input, strings.Join(offered, ", ")))
}

func (s *DefaultBookingSessionService) options(session *models.BookingSession, dates []time.Time) *models.SessionOptions {
	return &models.SessionOptions{
		SessionID:   session.SessionID,
		Zone:        session.Zone,
		DateOptions: scheduling.FormatDateOptions(dates),
		Slots:       session.Slots,
	}
}

func formatDateKeys(dates []time.Time) []string {
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = d.Format(dateKeyFormat)
	}
	return keys
}

func parseDateKeys(keys []string) []time.Time {
	dates := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		if d, err := time.ParseInLocation(dateKeyFormat, k, config.Location()); err == nil {
			dates = append(dates, d)
		}
	}
	return dates
}

func indexOfDate(dates []time.Time, target time.Time) int {
	for i, d := range dates {
		if sameCivilDay(d, target) {
			return i
		}
	}
	return -1
}

func sameCivilDay(a, b time.Time) bool {
	loc := config.Location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
