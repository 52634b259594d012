package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/httpresp"
	"github.com/ArthurMoreiraS/OperlyService/internal/middleware"

	ucBilling "github.com/ArthurMoreiraS/OperlyService/internal/usecase/billing"
)

type BillingHandler struct {
	stats *ucBilling.GetStats
}

func NewBillingHandler(stats *ucBilling.GetStats) *BillingHandler {
	return &BillingHandler{stats: stats}
}

// Stats serves the billing dashboard. Accepts either period=week|month|year
// or an explicit from/to pair (RFC 3339).
func (h *BillingHandler) Stats(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	in := ucBilling.StatsInput{
		Period: ucBilling.Period(c.DefaultQuery("period", "month")),
	}

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.BadRequestJSON(c, "invalid_from", "Data inicial inválida.")
			return
		}
		in.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.BadRequestJSON(c, "invalid_to", "Data final inválida.")
			return
		}
		in.To = &t
	}

	stats, err := h.stats.Execute(c.Request.Context(), businessID, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, stats)
}
