package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/httpresp"
	"github.com/ArthurMoreiraS/OperlyService/internal/middleware"
	"github.com/ArthurMoreiraS/OperlyService/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	page, limit = httpresp.ClampPage(page, limit)

	q := h.db.Model(&models.AuditLog{}).Where("business_id = ?", businessID)
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var total int64
	q.Count(&total)

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao listar auditoria.")
		return
	}

	httpresp.List(c, logs, page, limit, total)
}
