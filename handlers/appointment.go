package handlers

import (
	"net/http"
	"strconv"

	appointmentRepo "glamazon/database/repository/appointment"
	"glamazon/services/appointment"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler wires the booking endpoints to the appointment service.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

func NewAppointmentHandler(svc appointment.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// AvailableSlotsHandler handles GET /api/appointments/available-slots.
// Public; expects ?date=YYYY-MM-DD&serviceDuration=N.
func (h *AppointmentHandler) AvailableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	duration, err := strconv.Atoi(c.DefaultQuery("serviceDuration", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceDuration must be an integer"})
		return
	}

	result, err := h.Service.GetAvailableSlots(date, duration)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BookHandler handles POST /api/appointments/book.
func (h *AppointmentHandler) BookHandler(c *gin.Context) {
	var req appointment.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	appt, err := h.Service.Book(c.GetString("userID"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListHandler handles GET /api/appointments, the caller's own bookings.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	appts, err := h.Service.ListForUser(c.GetString("userID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts, "count": len(appts)})
}

// AdminListHandler handles GET /api/appointments/admin with status/date
// filters and page/limit pagination.
func (h *AppointmentHandler) AdminListHandler(c *gin.Context) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	filter := appointmentRepo.AdminFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
		Page:   page,
		Limit:  limit,
	}
	appts, total, err := h.Service.ListAdmin(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appointments": appts,
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}

// UpdateStatusHandler handles PATCH /api/appointments/admin/:id/status.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	appt, err := h.Service.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
