package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"malone/config"
	"malone/models"
	"malone/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday December 1, 2025; December 2 is the reference Pueblo day.
func fixedNow() time.Time {
	return time.Date(2025, time.December, 1, 10, 0, 0, 0, config.Location())
}

type memSessionStore struct {
	sessions map[string]*models.BookingSession
	deleted  []string
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*models.BookingSession)}
}

func (m *memSessionStore) Get(_ context.Context, id string) (*models.BookingSession, error) {
	return m.sessions[id], nil
}

func (m *memSessionStore) Set(_ context.Context, s *models.BookingSession) error {
	m.sessions[s.SessionID] = s
	return nil
}

func (m *memSessionStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// fakeGateway scripts conflict answers in call order; after the script runs
// out every window is free.
type fakeGateway struct {
	conflicts  []bool
	checkErr   error
	checkCalls int
	createErr  error
	created    []models.BookingRequest
}

func (f *fakeGateway) HasConflict(_ context.Context, _ models.AppointmentWindow) (bool, error) {
	f.checkCalls++
	if f.checkErr != nil {
		return false, f.checkErr
	}
	if len(f.conflicts) == 0 {
		return false, nil
	}
	conflict := f.conflicts[0]
	f.conflicts = f.conflicts[1:]
	return conflict, nil
}

func (f *fakeGateway) CreateEvent(_ context.Context, req models.BookingRequest) (*models.CalendarEvent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &models.CalendarEvent{ID: "evt1", Start: req.Window.Start, End: req.Window.End}, nil
}

type memBookingRepo struct {
	bookings []*models.Booking
}

func (m *memBookingRepo) Create(_ context.Context, b *models.Booking) error {
	m.bookings = append(m.bookings, b)
	return nil
}

func (m *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memBookingRepo) FindByPhone(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (m *memBookingRepo) ListUpcoming(_ context.Context, _ int64) ([]models.Booking, error) {
	return nil, nil
}

type fakeReminders struct {
	scheduled []*models.Booking
}

func (f *fakeReminders) ScheduleReminder(b *models.Booking) error {
	f.scheduled = append(f.scheduled, b)
	return nil
}

func newTestService() (*DefaultBookingSessionService, *memSessionStore, *fakeGateway, *memBookingRepo, *fakeReminders) {
	store := newMemSessionStore()
	gateway := &fakeGateway{}
	repo := &memBookingRepo{}
	reminders := &fakeReminders{}
	svc := &DefaultBookingSessionService{
		Store:     store,
		Calendar:  gateway,
		Repo:      repo,
		Reminders: reminders,
		Clock:     fixedNow,
	}
	return svc, store, gateway, repo, reminders
}

func TestInitiateSessionPuebloZIP(t *testing.T) {
	svc, store, _, _, _ := newTestService()

	options, err := svc.InitiateSession(context.Background(), SessionIntent{
		ZIP: "81001", Appliance: "dryer", CustomerName: "Pat Jones", Phone: "719-555-0100",
	})
	require.NoError(t, err)
	require.NotNil(t, options)
	assert.Equal(t, models.ZonePueblo, options.Zone)
	assert.Len(t, options.DateOptions, 5)
	assert.Len(t, options.Slots, 4)
	assert.Contains(t, options.DateOptions[0], "Tuesday, December 02")

	session := store.sessions[options.SessionID]
	require.NotNil(t, session)
	assert.Equal(t, []string{"2025-12-02", "2025-12-04", "2025-12-08", "2025-12-10", "2025-12-12"}, session.Dates)
}

func TestInitiateSessionHomeZIP(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	options, err := svc.InitiateSession(context.Background(), SessionIntent{ZIP: "81039", Appliance: "oven"})
	require.NoError(t, err)
	assert.Equal(t, models.ZoneHome, options.Zone)
	assert.Len(t, options.DateOptions, 5)
	assert.Equal(t, []string{"9:00 AM", "4:00 PM"}, options.Slots)
}

func TestInitiateSessionResolvesMenuKey(t *testing.T) {
	svc, store, _, _, _ := newTestService()

	options, err := svc.InitiateSession(context.Background(), SessionIntent{ZIP: "81001", MenuKey: "3"})
	require.NoError(t, err)
	assert.Equal(t, "Dryer", store.sessions[options.SessionID].Appliance)
}

func TestInitiateSessionRejectsExcludedAppliance(t *testing.T) {
	svc, _, gateway, _, _ := newTestService()

	_, err := svc.InitiateSession(context.Background(), SessionIntent{ZIP: "81001", Appliance: "microwave"})
	require.Error(t, err)

	var schedErr *scheduling.SchedulingError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, "excludedAppliance", schedErr.Code)
	assert.Zero(t, gateway.checkCalls, "excluded appliance must never reach the calendar")
}

func TestInitiateSessionRejectsUnknownZIP(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.InitiateSession(context.Background(), SessionIntent{ZIP: "90210", Appliance: "dryer"})
	var schedErr *scheduling.SchedulingError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, "outOfServiceArea", schedErr.Code)
}

func startedSession(t *testing.T, svc *DefaultBookingSessionService) *models.SessionOptions {
	t.Helper()
	options, err := svc.InitiateSession(context.Background(), SessionIntent{
		ZIP: "81001", Appliance: "dryer", CustomerName: "Pat Jones", Phone: "719-555-0100",
	})
	require.NoError(t, err)
	return options
}

func TestConfirmBookingHappyPath(t *testing.T) {
	svc, store, gateway, repo, reminders := newTestService()
	options := startedSession(t, svc)

	confirmation, err := svc.ConfirmBooking(context.Background(), ConfirmInput{
		SessionID: options.SessionID,
		Date:      "2025-12-04",
		Slot:      "1:00 PM",
	})
	require.NoError(t, err)
	require.NotNil(t, confirmation.Booking)

	assert.Equal(t, "2025-12-04", confirmation.Booking.Date)
	assert.Equal(t, "1:00 PM", confirmation.Booking.Slot)
	assert.Equal(t, 13, confirmation.Booking.Start.Hour())
	assert.Equal(t, 15, confirmation.Booking.End.Hour())
	assert.Equal(t, "evt1", confirmation.Booking.CalendarEventID)
	assert.Contains(t, confirmation.Message, "Pat Jones")

	require.Len(t, gateway.created, 1)
	assert.Equal(t, 1, gateway.checkCalls, "exactly one conflict check before creation")
	require.Len(t, repo.bookings, 1)
	require.Len(t, reminders.scheduled, 1)
	assert.Nil(t, store.sessions[options.SessionID], "session must be evicted after booking")
}

func TestConfirmBookingRollsToNextCandidateOnConflict(t *testing.T) {
	svc, _, gateway, _, _ := newTestService()
	options := startedSession(t, svc)

	gateway.conflicts = []bool{true, true} // 1:00 PM and 3:00 PM on Dec 2 taken

	confirmation, err := svc.ConfirmBooking(context.Background(), ConfirmInput{
		SessionID: options.SessionID,
		Date:      "2025-12-02",
		Slot:      "1:00 PM",
	})
	require.NoError(t, err)

	// Next candidate after Dec 2's remaining slots is Dec 4 at 9:00 AM.
	assert.Equal(t, "2025-12-04", confirmation.Booking.Date)
	assert.Equal(t, "9:00 AM", confirmation.Booking.Slot)
	assert.Equal(t, 3, gateway.checkCalls)
	assert.Contains(t, confirmation.Message, "next opening")
}

func TestConfirmBookingExhaustsCandidates(t *testing.T) {
	svc, _, gateway, repo, _ := newTestService()
	options := startedSession(t, svc)

	// Every window is taken.
	gateway.conflicts = make([]bool, 64)
	for i := range gateway.conflicts {
		gateway.conflicts[i] = true
	}

	_, err := svc.ConfirmBooking(context.Background(), ConfirmInput{
		SessionID: options.SessionID,
		Date:      "2025-12-02",
		Slot:      "9:00 AM",
	})
	require.Error(t, err)

	var bookErr *BookingError
	require.ErrorAs(t, err, &bookErr)
	assert.Equal(t, "slotConflict", bookErr.Code)
	assert.Empty(t, gateway.created, "no event may be created when every check conflicts")
	assert.Empty(t, repo.bookings)
	// 4 slots on the chosen date plus 4 on each of the 4 later dates.
	assert.Equal(t, 20, gateway.checkCalls)
}

func TestConfirmBookingFailsOpenWhenCheckErrors(t *testing.T) {
	svc, _, gateway, _, _ := newTestService()
	options := startedSession(t, svc)

	gateway.checkErr = errors.New("calendar bridge unreachable")

	confirmation, err := svc.ConfirmBooking(context.Background(), ConfirmInput{
		SessionID: options.SessionID,
		Date:      "2025-12-02",
		Slot:      "9:00 AM",
	})
	require.NoError(t, err, "an outage must not turn callers away")
	assert.Equal(t, "2025-12-02", confirmation.Booking.Date)
	require.Len(t, gateway.created, 1)
}

func TestConfirmBookingReportsCreateFailure(t *testing.T) {
	svc, store, gateway, repo, reminders := newTestService()
	options := startedSession(t, svc)

	gateway.createErr = errors.New("calendar bridge returned status 500")

	_, err := svc.ConfirmBooking(context.Background(), ConfirmInput{
		SessionID: options.SessionID,
		Date:      "2025-12-02",
		Slot:      "9:00 AM",
	})
	require.Error(t, err)

	var bookErr *BookingError
	require.ErrorAs(t, err, &bookErr)
	assert.Equal(t, "bookingFailed", bookErr.Code)
	assert.Empty(t, repo.bookings)
	assert.Empty(t, reminders.scheduled)
	assert.NotNil(t, store.sessions[options.SessionID], "session survives so the caller can retry")
}

func TestConfirmBookingSpokenSelection(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	options := startedSession(t, svc)

	confirmation, err := svc.ConfirmBooking(context.Background(), ConfirmInput{
		SessionID: options.SessionID,
		Date:      "the second one",
		Slot:      "11 am",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-04", confirmation.Booking.Date)
	assert.Equal(t, "11:00 AM", confirmation.Booking.Slot)
}

func TestConfirmBookingValidatesOffListDate(t *testing.T) {
	svc, _, gateway, _, _ := newTestService()
	options := startedSession(t, svc)

	// December 3 is a Valley day; this Pueblo caller can't have it.
	_, err := svc.ConfirmBooking(context.Background(), ConfirmInput{
		SessionID: options.SessionID,
		Date:      "2025-12-03",
		Slot:      "9:00 AM",
	})
	require.Error(t, err)
	assert.Zero(t, gateway.checkCalls)

	// December 16 is a Pueblo Tuesday beyond the offered five; that's fine.
	confirmation, err := svc.ConfirmBooking(context.Background(), ConfirmInput{
		SessionID: options.SessionID,
		Date:      "2025-12-16",
		Slot:      "9:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-16", confirmation.Booking.Date)
}

func TestConfirmBookingUnknownSession(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.ConfirmBooking(context.Background(), ConfirmInput{SessionID: "gone"})
	var bookErr *BookingError
	require.ErrorAs(t, err, &bookErr)
	assert.Equal(t, "sessionNotFound", bookErr.Code)
}

func TestGetAndCancelSession(t *testing.T) {
	svc, store, _, _, _ := newTestService()
	options := startedSession(t, svc)

	again, err := svc.GetSession(context.Background(), options.SessionID)
	require.NoError(t, err)
	assert.Equal(t, options.DateOptions, again.DateOptions)

	require.NoError(t, svc.CancelSession(context.Background(), options.SessionID))
	assert.Nil(t, store.sessions[options.SessionID])

	_, err = svc.GetSession(context.Background(), options.SessionID)
	var bookErr *BookingError
	require.ErrorAs(t, err, &bookErr)
	assert.Equal(t, "sessionNotFound", bookErr.Code)
}
