package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"malone/config"
	"malone/models"
)

const (
	findEventPath   = "/api/v2/actions/GOOGLECALENDAR_FIND_EVENT/execute"
	createEventPath = "/api/v2/actions/GOOGLECALENDAR_CREATE_EVENT/execute"
)

// ComposioGateway talks to Google Calendar through the Composio action
// bridge, authenticating with a static API key header.
type ComposioGateway struct {
	BaseURL    string
	APIKey     string
	CalendarID string
	Client     *http.Client
}

// NewComposioGateway builds a gateway from the loaded app config.
func NewComposioGateway() *ComposioGateway {
	return &ComposioGateway{
		BaseURL:    config.AppConfig.ComposioBaseURL,
		APIKey:     config.AppConfig.ComposioAPIKey,
		CalendarID: config.AppConfig.CalendarID,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type findEventInput struct {
	CalendarID   string `json:"calendar_id"`
	TimeMin      string `json:"timeMin"`
	TimeMax      string `json:"timeMax"`
	SingleEvents bool   `json:"singleEvents"`
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type createEventInput struct {
	CalendarID  string    `json:"calendar_id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       eventTime `json:"start"`
	End         eventTime `json:"end"`
}

type actionRequest struct {
	Input any `json:"input"`
}

// Composio wraps the upstream response one level deeper than the raw
// Google payload.
type actionResponse struct {
	Data struct {
		Data json.RawMessage `json:"data"`
	} `json:"data"`
}

func (g *ComposioGateway) execute(ctx context.Context, path string, input any) (json.RawMessage, error) {
	body, err := json.Marshal(actionRequest{Input: input})
	if err != nil {
		return nil, fmt.Errorf("marshal calendar action input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build calendar request: %w", err)
	}
	req.Header.Set("X-API-Key", g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar bridge unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar bridge returned status %d", resp.StatusCode)
	}

	var parsed actionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode calendar response: %w", err)
	}
	return parsed.Data.Data, nil
}

// HasConflict queries the calendar for events overlapping the window.
func (g *ComposioGateway) HasConflict(ctx context.Context, window models.AppointmentWindow) (bool, error) {
	raw, err := g.execute(ctx, findEventPath, findEventInput{
		CalendarID:   g.CalendarID,
		TimeMin:      window.Start.Format(time.RFC3339),
		TimeMax:      window.End.Format(time.RFC3339),
		SingleEvents: true,
	})
	if err != nil {
		return false, err
	}

	var result struct {
		Items []json.RawMessage `json:"items"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil {
			return false, fmt.Errorf("decode calendar events: %w", err)
		}
	}
	return len(result.Items) > 0, nil
}

// CreateEvent puts the appointment on the calendar with a human-readable
// summary and description for the tech's benefit.
func (g *ComposioGateway) CreateEvent(ctx context.Context, req models.BookingRequest) (*models.CalendarEvent, error) {
	summary := fmt.Sprintf("Repair: %s - %s", req.Appliance, req.CustomerName)
	description := fmt.Sprintf(
		"Appliance: %s\nCustomer: %s\nPhone: %s\nZIP: %s\nArrival Window: %s - %s\n",
		req.Appliance, req.CustomerName, req.Phone, req.ZIP,
		req.Window.Start.Format("3:04 PM"), req.Window.End.Format("3:04 PM"),
	)

	raw, err := g.execute(ctx, createEventPath, createEventInput{
		CalendarID:  g.CalendarID,
		Summary:     summary,
		Description: description,
		Start:       eventTime{DateTime: req.Window.Start.Format(time.RFC3339), TimeZone: config.Timezone},
		End:         eventTime{DateTime: req.Window.End.Format(time.RFC3339), TimeZone: config.Timezone},
	})
	if err != nil {
		return nil, err
	}

	var created struct {
		ID      string `json:"id"`
		Summary string `json:"summary"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &created); err != nil {
			return nil, fmt.Errorf("decode created event: %w", err)
		}
	}
	if created.ID == "" {
		return nil, fmt.Errorf("calendar bridge returned no created event")
	}

	return &models.CalendarEvent{
		ID:          created.ID,
		Summary:     summary,
		Description: description,
		Start:       req.Window.Start,
		End:         req.Window.End,
	}, nil
}
