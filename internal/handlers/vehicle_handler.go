package handlers

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/httpresp"
	"github.com/ArthurMoreiraS/OperlyService/internal/middleware"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"
	"github.com/ArthurMoreiraS/OperlyService/internal/storage"

	ucVehicle "github.com/ArthurMoreiraS/OperlyService/internal/usecase/vehicle"
)

const maxPhotoBytes = 8 << 20
const photoMaxDim = 1280

type VehicleHandler struct {
	db       *gorm.DB
	vehicles *ucVehicle.Vehicles
	uploader *storage.Uploader
}

func NewVehicleHandler(
	db *gorm.DB,
	vehicles *ucVehicle.Vehicles,
	uploader *storage.Uploader,
) *VehicleHandler {
	return &VehicleHandler{db: db, vehicles: vehicles, uploader: uploader}
}

// ======================================================
// HANDLERS
// ======================================================

func (h *VehicleHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)
	customerID := c.Param("customerId")

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND business_id = ?", customerID, businessID).
		First(&customer).Error; err != nil {
		httperr.NotFoundJSON(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	var vehicles []models.Vehicle
	if err := h.db.
		Where("customer_id = ?", customer.ID).
		Order("created_at ASC").
		Find(&vehicles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_vehicles", "Erro ao listar veículos.")
		return
	}

	httpresp.OK(c, vehicles)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)
	customerID := c.Param("customerId")

	var req ucVehicle.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	v, err := h.vehicles.Create(c.Request.Context(), businessID, customerID, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, v)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)
	customerID := c.Param("customerId")
	vehicleID := c.Param("id")

	var req ucVehicle.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	v, err := h.vehicles.Update(c.Request.Context(), businessID, customerID, vehicleID, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, v)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)
	customerID := c.Param("customerId")
	vehicleID := c.Param("id")

	if err := h.vehicles.Delete(c.Request.Context(), businessID, customerID, vehicleID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *VehicleHandler) UploadPhoto(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)
	customerID := c.Param("customerId")
	vehicleID := c.Param("id")

	if !h.uploader.Enabled() {
		httperr.BadRequestJSON(c, "storage_not_configured", "Upload indisponível.")
		return
	}

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND business_id = ?", customerID, businessID).
		First(&customer).Error; err != nil {
		httperr.NotFoundJSON(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	var vehicle models.Vehicle
	if err := h.db.
		Where("id = ? AND customer_id = ?", vehicleID, customer.ID).
		First(&vehicle).Error; err != nil {
		httperr.NotFoundJSON(c, "vehicle_not_found", "Veículo não encontrado.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil || file.Size > maxPhotoBytes {
		httperr.BadRequestJSON(c, "invalid_photo", "Arquivo inválido.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler arquivo.")
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler arquivo.")
		return
	}

	encoded, err := storage.NormalizeImage(raw, photoMaxDim)
	if err != nil {
		httperr.BadRequestJSON(c, "invalid_image", "Imagem inválida.")
		return
	}

	key := fmt.Sprintf("vehicles/%s.webp", vehicle.ID)
	url, err := h.uploader.Put(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_photo", "Erro ao salvar arquivo.")
		return
	}

	vehicle.PhotoURL = url
	if err := h.db.Save(&vehicle).Error; err != nil {
		httperr.Internal(c, "failed_to_update_vehicle", "Erro ao salvar.")
		return
	}

	httpresp.OK(c, gin.H{"photo_url": url})
}
