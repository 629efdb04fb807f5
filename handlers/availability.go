package handlers

import (
	"net/http"
	"strconv"
	"time"

	"malone/config"
	"malone/models"
	"malone/services/scheduling"

	"github.com/gin-gonic/gin"
)

// Availability is the stateless preview: ZIP in, next dates and slots out.
// Used by the agent for "what's the soonest you could come out" questions
// before any session exists.
func Availability(c *gin.Context) {
	zip := c.Query("zip")
	if zip == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "zip query parameter is required"})
		return
	}

	count := config.DateOptionCount
	if raw := c.Query("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 20 {
			count = n
		}
	}

	zone := scheduling.ZoneForZIP(zip)
	if !zone.Serviced() {
		respondServiceError(c, scheduling.NewOutOfAreaError(zip))
		return
	}

	dates, err := scheduling.NextAvailableDates(zone, count, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"zone":        zone,
		"dateOptions": scheduling.FormatDateOptions(dates),
		"slots":       scheduling.SlotsForZone(zone),
	})
}

// ApplianceMenu returns the IVR keypad menu so the agent and this service
// can never disagree about which digit is which appliance.
func ApplianceMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menu": config.ApplianceMenu})
}

// ZoneForDate answers dispatch-office tooling: which zone is the truck in on
// a given date. Weekends belong to no zone.
func ZoneForDate(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", raw, config.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var zone models.Zone
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		zone = models.ZoneUnknown
	} else {
		zone = scheduling.ZoneForDate(date)
	}
	c.JSON(http.StatusOK, gin.H{"date": raw, "zone": zone, "puebloDay": scheduling.IsPuebloDay(date)})
}
