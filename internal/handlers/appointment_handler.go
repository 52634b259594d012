package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ArthurMoreiraS/OperlyService/internal/cache"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/httpresp"
	"github.com/ArthurMoreiraS/OperlyService/internal/metrics"
	"github.com/ArthurMoreiraS/OperlyService/internal/middleware"

	apdomain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
	ucAppointment "github.com/ArthurMoreiraS/OperlyService/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	update       *ucAppointment.UpdateAppointment
	updateStatus *ucAppointment.UpdateAppointmentStatus
	delete       *ucAppointment.DeleteAppointment
	list         *ucAppointment.ListAppointments
	slots        *ucAppointment.GetAvailableSlots

	availability *cache.Availability
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	delete *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	slots *ucAppointment.GetAvailableSlots,
	availability *cache.Availability,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		update:       update,
		updateStatus: updateStatus,
		delete:       delete,
		list:         list,
		slots:        slots,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID string  `json:"customer_id" binding:"required"`
	ServiceID  string  `json:"service_id" binding:"required"`
	VehicleID  *string `json:"vehicle_id"`
	Date       string  `json:"date" binding:"required"`
	StartTime  string  `json:"start_time" binding:"required"`
	Notes      string  `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateInput{
		BusinessID: businessID,
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
		VehicleID:  req.VehicleID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Notes:      req.Notes,
	})
	if err != nil {
		if httperr.IsCode(err, "time_conflict") {
			metrics.SlotConflictsCounter.Inc()
		}
		httperr.Respond(c, err)
		return
	}

	metrics.RecordAppointmentCreated("private")
	h.availability.InvalidateDay(c.Request.Context(), businessID, ap.Date)

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = httpresp.ClampPage(page, limit)

	appointments, total, err := h.list.Execute(c.Request.Context(), businessID, apdomain.ListFilter{
		Date:     c.Query("date"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Status:   c.Query("status"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, appointments, page, limit, total)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var req ucAppointment.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), businessID, c.Param("id"), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.availability.InvalidateDay(c.Request.Context(), businessID, ap.Date)

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateStatus.Execute(
		c.Request.Context(), businessID, c.Param("id"), apdomain.Status(req.Status),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	// cancelling frees the slot
	h.availability.InvalidateDay(c.Request.Context(), businessID, ap.Date)

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	ap, err := h.delete.Execute(c.Request.Context(), businessID, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	// deletion frees the slot
	h.availability.InvalidateDay(c.Request.Context(), businessID, ap.Date)

	httpresp.NoContent(c)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	durationMin, _ := strconv.Atoi(c.Query("duration_min"))
	in := apdomain.AvailabilityInput{
		BusinessID:  businessID,
		Date:        c.Query("date"),
		ServiceID:   c.Query("service_id"),
		DurationMin: durationMin,
	}

	h.respondAvailability(c, in)
}

// respondAvailability serves the grid cache-first; shared with the public
// handler.
func (h *AppointmentHandler) respondAvailability(c *gin.Context, in apdomain.AvailabilityInput) {
	ctx := c.Request.Context()

	if slots, ok := h.availability.Get(ctx, in.BusinessID, in.Date, in.ServiceID, in.DurationMin); ok {
		httpresp.OK(c, gin.H{"date": in.Date, "slots": slots})
		return
	}

	slots, err := h.slots.Execute(ctx, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	h.availability.Set(ctx, in.BusinessID, in.Date, in.ServiceID, in.DurationMin, slots)

	httpresp.OK(c, gin.H{"date": in.Date, "slots": slots})
}
