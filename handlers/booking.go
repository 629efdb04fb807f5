package handlers

import (
	"errors"
	"net/http"

	"malone/services/booking"
	"malone/services/scheduling"
	"malone/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session flow to the voice agent.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// StartSession begins a booking session from the caller's gathered intent and
// returns the speakable date/slot options.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var intent booking.SessionIntent
	if err := c.ShouldBindJSON(&intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	options, err := h.Service.InitiateSession(c.Request.Context(), intent)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetSession re-reads an active session's options (the agent repeats choices
// to a caller who asked to hear them again).
func (h *BookingHandler) GetSession(c *gin.Context) {
	options, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

// Confirm books the caller's selection, rolling to the next open candidate
// if the chosen one conflicts.
func (h *BookingHandler) Confirm(c *gin.Context) {
	var in booking.ConfirmInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := h.Service.ConfirmBooking(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// Cancel evicts a session when the call ends without a booking.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// respondServiceError maps typed service errors to HTTP statuses, always with
// a message the agent can speak back to the caller.
func respondServiceError(c *gin.Context, err error) {
	var schedErr *scheduling.SchedulingError
	if errors.As(err, &schedErr) {
		status := http.StatusUnprocessableEntity
		if schedErr.Code == "noAvailability" {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": schedErr.Code, "message": schedErr.Message})
		return
	}

	var bookErr *booking.BookingError
	if errors.As(err, &bookErr) {
		status := http.StatusConflict
		switch bookErr.Code {
		case "sessionNotFound":
			status = http.StatusNotFound
		case "bookingFailed":
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": bookErr.Code, "message": bookErr.Message})
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}
