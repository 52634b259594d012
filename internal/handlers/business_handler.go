package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/middleware"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"
	"github.com/ArthurMoreiraS/OperlyService/internal/storage"
	"github.com/ArthurMoreiraS/OperlyService/internal/timeutil"

	apdomain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

const maxLogoBytes = 5 << 20
const logoMaxDim = 512

type BusinessHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewBusinessHandler(db *gorm.DB, uploader *storage.Uploader) *BusinessHandler {
	return &BusinessHandler{db: db, uploader: uploader}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateBusinessRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`

	OperatingDays   *[]string `json:"operating_days"`
	OpenTime        *string   `json:"open_time"`
	CloseTime       *string   `json:"close_time"`
	SlotDurationMin *int      `json:"slot_duration_min"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BusinessHandler) GetMe(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var biz models.Business
	if err := h.db.First(&biz, "id = ?", businessID).Error; err != nil {
		httperr.NotFoundJSON(c, "business_not_found", "Empresa não encontrada.")
		return
	}

	c.JSON(http.StatusOK, biz)
}

func (h *BusinessHandler) UpdateMe(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var biz models.Business
	if err := h.db.First(&biz, "id = ?", businessID).Error; err != nil {
		httperr.NotFoundJSON(c, "business_not_found", "Empresa não encontrada.")
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		biz.Name = *req.Name
	}
	if req.Phone != nil {
		biz.Phone = *req.Phone
	}
	if req.Address != nil {
		biz.Address = *req.Address
	}

	if req.OperatingDays != nil {
		days := make([]string, 0, len(*req.OperatingDays))
		for _, d := range *req.OperatingDays {
			day := strings.ToUpper(strings.TrimSpace(d))
			if !apdomain.IsValidWeekday(day) {
				httperr.BadRequestJSON(c, "invalid_operating_day", "Dia da semana inválido.")
				return
			}
			days = append(days, day)
		}
		biz.OperatingDays = days
	}

	if req.OpenTime != nil {
		if !timeutil.IsValidClock(*req.OpenTime) {
			httperr.BadRequestJSON(c, "invalid_open_time", "Horário inválido.")
			return
		}
		biz.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		if !timeutil.IsValidClock(*req.CloseTime) {
			httperr.BadRequestJSON(c, "invalid_close_time", "Horário inválido.")
			return
		}
		biz.CloseTime = *req.CloseTime
	}
	if biz.CloseTime <= biz.OpenTime {
		httperr.BadRequestJSON(c, "invalid_operating_window", "Fechamento deve ser após a abertura.")
		return
	}

	if req.SlotDurationMin != nil {
		if *req.SlotDurationMin < 5 || *req.SlotDurationMin > 480 {
			httperr.BadRequestJSON(c, "invalid_slot_duration", "Duração de slot inválida.")
			return
		}
		biz.SlotDurationMin = *req.SlotDurationMin
	}

	// Operating hours plus at least one open day completes onboarding.
	if len(biz.OperatingDays) > 0 {
		biz.Onboarded = true
	}

	if err := h.db.Save(&biz).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Erro ao salvar.")
		return
	}

	c.JSON(http.StatusOK, biz)
}

func (h *BusinessHandler) UploadLogo(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	if !h.uploader.Enabled() {
		httperr.BadRequestJSON(c, "storage_not_configured", "Upload indisponível.")
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, "id = ?", businessID).Error; err != nil {
		httperr.NotFoundJSON(c, "business_not_found", "Empresa não encontrada.")
		return
	}

	file, err := c.FormFile("logo")
	if err != nil || file.Size > maxLogoBytes {
		httperr.BadRequestJSON(c, "invalid_logo", "Arquivo inválido.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_logo", "Erro ao ler arquivo.")
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		httperr.Internal(c, "failed_to_read_logo", "Erro ao ler arquivo.")
		return
	}

	encoded, err := storage.NormalizeImage(raw, logoMaxDim)
	if err != nil {
		httperr.BadRequestJSON(c, "invalid_image", "Imagem inválida.")
		return
	}

	key := fmt.Sprintf("logos/%s.webp", biz.ID)
	url, err := h.uploader.Put(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_logo", "Erro ao salvar arquivo.")
		return
	}

	biz.LogoURL = url
	if err := h.db.Save(&biz).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Erro ao salvar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
