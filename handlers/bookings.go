package handlers

import (
	"net/http"

	repo "malone/database/repository/booking"
	"malone/utils"

	"github.com/gin-gonic/gin"
)

// BookingsHandler serves the dispatch office's read-only view of what has
// been booked.
type BookingsHandler struct {
	Repo repo.BookingRepository
}

func NewBookingsHandler(r repo.BookingRepository) *BookingsHandler {
	return &BookingsHandler{Repo: r}
}

// List returns bookings for a caller's phone number, or the upcoming
// schedule when no phone is given.
func (h *BookingsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if phone := c.Query("phone"); phone != "" {
		bookings, err := h.Repo.FindByPhone(ctx, phone)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
		return
	}

	bookings, err := h.Repo.ListUpcoming(ctx, 50)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch upcoming bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Get returns a single booking by ID.
func (h *BookingsHandler) Get(c *gin.Context) {
	booking, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, booking)
}
