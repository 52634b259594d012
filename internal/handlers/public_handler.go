package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/cache"
	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/httpresp"
	"github.com/ArthurMoreiraS/OperlyService/internal/metrics"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"

	apdomain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
	ucAppointment "github.com/ArthurMoreiraS/OperlyService/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the unauthenticated booking page: services,
// availability and bookings, all addressed by business slug.
type PublicHandler struct {
	db           *gorm.DB
	create       *ucAppointment.CreateAppointment
	slots        *ucAppointment.GetAvailableSlots
	availability *cache.Availability
}

func NewPublicHandler(
	db *gorm.DB,
	create *ucAppointment.CreateAppointment,
	slots *ucAppointment.GetAvailableSlots,
	availability *cache.Availability,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		create:       create,
		slots:        slots,
		availability: availability,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	ServiceID     string `json:"service_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	StartTime     string `json:"start_time" binding:"required"`
	Notes         string `json:"notes"`
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

func (h *PublicHandler) businessBySlug(c *gin.Context) (*models.Business, bool) {
	slug := c.Param("slug")

	var biz models.Business
	if err := h.db.Where("slug = ? AND onboarded = true", slug).First(&biz).Error; err != nil {
		httperr.NotFoundJSON(c, "business_not_found", "Empresa não encontrada.")
		return nil, false
	}
	return &biz, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	biz, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	q := h.db.Where("business_id = ? AND active = true", biz.ID)

	if query := strings.TrimSpace(strings.ToLower(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": gin.H{
			"name":     biz.Name,
			"slug":     biz.Slug,
			"phone":    biz.Phone,
			"address":  biz.Address,
			"logo_url": biz.LogoURL,
		},
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	biz, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequestJSON(c, "missing_params", "Data obrigatória.")
		return
	}

	durationMin, _ := strconv.Atoi(c.Query("duration_min"))
	in := apdomain.AvailabilityInput{
		BusinessID:  biz.ID,
		Date:        date,
		ServiceID:   c.Query("service_id"),
		DurationMin: durationMin,
	}

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

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	biz, ok := h.businessBySlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	phone := strings.TrimSpace(req.CustomerPhone)

	// Get-or-create by phone; the phone is the customer identity here.
	var customer models.Customer
	err := h.db.
		Where("business_id = ? AND phone = ?", biz.ID, phone).
		First(&customer).Error
	if err == gorm.ErrRecordNotFound {
		customer = models.Customer{
			ID:         uuid.NewString(),
			BusinessID: biz.ID,
			Name:       req.CustomerName,
			Phone:      phone,
			Email:      req.CustomerEmail,
		}
		if err := h.db.Create(&customer).Error; err != nil {
			httperr.Internal(c, "failed_to_create_customer", "Erro ao registrar cliente.")
			return
		}
	} else if err != nil {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateInput{
		BusinessID:   biz.ID,
		CustomerID:   customer.ID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		Notes:        req.Notes,
		PublicOrigin: true,
	})
	if err != nil {
		if httperr.IsCode(err, "time_conflict") {
			metrics.SlotConflictsCounter.Inc()
		}
		httperr.Respond(c, err)
		return
	}

	metrics.RecordAppointmentCreated("public")
	h.availability.InvalidateDay(c.Request.Context(), biz.ID, ap.Date)

	httpresp.Created(c, gin.H{
		"id":         ap.ID,
		"date":       ap.Date,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}
