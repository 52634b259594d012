package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/httpresp"
	"github.com/ArthurMoreiraS/OperlyService/internal/middleware"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Notes *string `json:"notes"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = httpresp.ClampPage(page, limit)

	q := h.db.Model(&models.Customer{}).Where("business_id = ?", businessID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR phone LIKE ?", like, like)
	}

	var total int64
	q.Count(&total)

	var customers []models.Customer
	if err := q.
		Preload("Vehicles").
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&customers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, customers, page, limit, total)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var customer models.Customer
	if err := h.db.
		Preload("Vehicles").
		Where("id = ? AND business_id = ?", c.Param("customerId"), businessID).
		First(&customer).Error; err != nil {
		httperr.NotFoundJSON(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	phone := strings.TrimSpace(req.Phone)

	var count int64
	h.db.Model(&models.Customer{}).
		Where("business_id = ? AND phone = ?", businessID, phone).
		Count(&count)
	if count > 0 {
		httperr.Write(c, http.StatusConflict, "phone_already_exists", "Telefone já cadastrado.")
		return
	}

	customer := models.Customer{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Name:       req.Name,
		Phone:      phone,
		Email:      req.Email,
		Notes:      req.Notes,
	}

	if err := h.db.Create(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_create_customer", "Erro ao criar cliente.")
		return
	}

	httpresp.Created(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND business_id = ?", c.Param("customerId"), businessID).
		First(&customer).Error; err != nil {
		httperr.NotFoundJSON(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		var count int64
		h.db.Model(&models.Customer{}).
			Where("business_id = ? AND phone = ? AND id <> ?", businessID, phone, customer.ID).
			Count(&count)
		if count > 0 {
			httperr.Write(c, http.StatusConflict, "phone_already_exists", "Telefone já cadastrado.")
			return
		}
		customer.Phone = phone
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Erro ao salvar cliente.")
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND business_id = ?", c.Param("customerId"), businessID).
		First(&customer).Error; err != nil {
		httperr.NotFoundJSON(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	var refs int64
	h.db.Model(&models.Appointment{}).
		Where("business_id = ? AND customer_id = ?", businessID, customer.ID).
		Count(&refs)
	if refs > 0 {
		httperr.Write(c, http.StatusConflict, "customer_in_use", "Cliente possui agendamentos.")
		return
	}

	if err := h.db.Delete(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Erro ao excluir cliente.")
		return
	}

	httpresp.NoContent(c)
}
