package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/httpresp"
	"github.com/ArthurMoreiraS/OperlyService/internal/middleware"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	DurationMin int             `json:"duration_min" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	DurationMin *int             `json:"duration_min"`
	Active      *bool            `json:"active"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	q := h.db.Where("business_id = ?", businessID)
	if c.Query("active") == "true" {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.OK(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Price.IsNegative() {
		httperr.BadRequestJSON(c, "invalid_price", "Preço inválido.")
		return
	}
	if req.DurationMin < 5 {
		httperr.BadRequestJSON(c, "invalid_duration", "Duração inválida.")
		return
	}

	svc := models.Service{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)
	serviceID := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		httperr.NotFoundJSON(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			httperr.BadRequestJSON(c, "invalid_price", "Preço inválido.")
			return
		}
		svc.Price = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin < 5 {
			httperr.BadRequestJSON(c, "invalid_duration", "Duração inválida.")
			return
		}
		svc.DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar serviço.")
		return
	}

	httpresp.OK(c, svc)
}

// Delete refuses when appointments still reference the service; the caller
// should deactivate instead to keep history intact.
func (h *ServiceHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)
	serviceID := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		httperr.NotFoundJSON(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var refs int64
	h.db.Model(&models.Appointment{}).
		Where("business_id = ? AND service_id = ?", businessID, serviceID).
		Count(&refs)
	if refs > 0 {
		httperr.Write(c, http.StatusConflict, "service_in_use", "Serviço possui agendamentos; desative-o.")
		return
	}

	if err := h.db.Delete(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao excluir serviço.")
		return
	}

	httpresp.NoContent(c)
}
