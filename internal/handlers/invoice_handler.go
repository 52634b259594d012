package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
	"github.com/ArthurMoreiraS/OperlyService/internal/httpresp"
	"github.com/ArthurMoreiraS/OperlyService/internal/metrics"
	"github.com/ArthurMoreiraS/OperlyService/internal/middleware"
	"github.com/ArthurMoreiraS/OperlyService/internal/payments"

	invdomain "github.com/ArthurMoreiraS/OperlyService/internal/domain/invoice"
	ucInvoice "github.com/ArthurMoreiraS/OperlyService/internal/usecase/invoice"
)

// ======================================================
// HANDLER
// ======================================================

type InvoiceHandler struct {
	create            *ucInvoice.CreateInvoice
	createFromBooking *ucInvoice.CreateInvoiceFromAppointment
	update            *ucInvoice.UpdateInvoice
	issue             *ucInvoice.IssueInvoice
	cancel            *ucInvoice.CancelInvoice
	addPayment        *ucInvoice.AddPayment
	removePayment     *ucInvoice.RemovePayment
	get               *ucInvoice.GetInvoice
	list              *ucInvoice.ListInvoices

	mercadopago *payments.MercadoPago
}

func NewInvoiceHandler(
	create *ucInvoice.CreateInvoice,
	createFromBooking *ucInvoice.CreateInvoiceFromAppointment,
	update *ucInvoice.UpdateInvoice,
	issue *ucInvoice.IssueInvoice,
	cancel *ucInvoice.CancelInvoice,
	addPayment *ucInvoice.AddPayment,
	removePayment *ucInvoice.RemovePayment,
	get *ucInvoice.GetInvoice,
	list *ucInvoice.ListInvoices,
	mercadopago *payments.MercadoPago,
) *InvoiceHandler {
	return &InvoiceHandler{
		create:            create,
		createFromBooking: createFromBooking,
		update:            update,
		issue:             issue,
		cancel:            cancel,
		addPayment:        addPayment,
		removePayment:     removePayment,
		get:               get,
		list:              list,
		mercadopago:       mercadopago,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type InvoiceItemRequest struct {
	ServiceID   *string         `json:"service_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	CustomerID    string               `json:"customer_id" binding:"required"`
	Items         []InvoiceItemRequest `json:"items" binding:"required"`
	Discount      decimal.Decimal      `json:"discount"`
	DueDate       *time.Time           `json:"due_date"`
	Notes         string               `json:"notes"`
	AutoIssue     bool                 `json:"auto_issue"`
	AppointmentID *string              `json:"appointment_id"`
}

type CreateFromAppointmentRequest struct {
	AppointmentID string          `json:"appointment_id" binding:"required"`
	Discount      decimal.Decimal `json:"discount"`
	DueDate       *time.Time      `json:"due_date"`
	Notes         string          `json:"notes"`
	AutoIssue     bool            `json:"auto_issue"`
}

type IssueInvoiceRequest struct {
	DueDate *time.Time `json:"due_date"`
}

type AddPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"required"`
	PaidAt *time.Time      `json:"paid_at"`
	Notes  string          `json:"notes"`
}

// ======================================================
// INVOICES
// ======================================================

func (h *InvoiceHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	items := make([]invdomain.ItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, invdomain.ItemInput{
			ServiceID:   it.ServiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	inv, err := h.create.Execute(c.Request.Context(), businessID, invdomain.CreateInput{
		CustomerID:    req.CustomerID,
		Items:         items,
		Discount:      req.Discount,
		DueDate:       req.DueDate,
		Notes:         req.Notes,
		AutoIssue:     req.AutoIssue,
		AppointmentID: req.AppointmentID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	metrics.InvoicesCreatedCounter.Inc()
	httpresp.Created(c, inv)
}

func (h *InvoiceHandler) CreateFromAppointment(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var req CreateFromAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	inv, err := h.createFromBooking.Execute(c.Request.Context(), businessID,
		invdomain.CreateFromAppointmentInput{
			AppointmentID: req.AppointmentID,
			Discount:      req.Discount,
			DueDate:       req.DueDate,
			Notes:         req.Notes,
			AutoIssue:     req.AutoIssue,
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	metrics.InvoicesCreatedCounter.Inc()
	httpresp.Created(c, inv)
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	inv, err := h.get.Execute(c.Request.Context(), businessID, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = httpresp.ClampPage(page, limit)

	invoices, total, err := h.list.Execute(c.Request.Context(), businessID, invdomain.ListFilter{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, invoices, page, limit, total)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var req invdomain.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	inv, err := h.update.Execute(c.Request.Context(), businessID, c.Param("id"), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) Issue(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var req IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	inv, err := h.issue.Execute(c.Request.Context(), businessID, c.Param("id"), req.DueDate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) Cancel(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	inv, err := h.cancel.Execute(c.Request.Context(), businessID, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, inv)
}

// ======================================================
// PAYMENTS
// ======================================================

func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestJSON(c, "invalid_request", "Dados inválidos.")
		return
	}

	inv, err := h.addPayment.Execute(c.Request.Context(), businessID, c.Param("id"),
		ucInvoice.AddPaymentInput{
			Amount: req.Amount,
			Method: invdomain.PaymentMethod(req.Method),
			PaidAt: req.PaidAt,
			Notes:  req.Notes,
		})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	metrics.RecordPayment(req.Method)
	httpresp.OK(c, inv)
}

func (h *InvoiceHandler) RemovePayment(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	inv, err := h.removePayment.Execute(
		c.Request.Context(), businessID, c.Param("id"), c.Param("paymentId"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, inv)
}

// PaymentLink creates a Mercado Pago checkout for the invoice's outstanding
// balance. Only issued, unsettled invoices get a link.
func (h *InvoiceHandler) PaymentLink(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(string)

	if !h.mercadopago.Enabled() {
		httperr.BadRequestJSON(c, "payments_not_configured", "Pagamento online indisponível.")
		return
	}

	inv, err := h.get.Execute(c.Request.Context(), businessID, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	switch invdomain.Status(inv.Status) {
	case invdomain.StatusPending, invdomain.StatusPartial, invdomain.StatusOverdue:
	default:
		httperr.BadRequestJSON(c, "invoice_not_payable", "Fatura não está aberta para pagamento.")
		return
	}

	link, err := h.mercadopago.PaymentLink(c.Request.Context(), inv)
	if err != nil {
		httperr.Internal(c, "failed_to_create_payment_link", "Erro ao criar link de pagamento.")
		return
	}

	httpresp.OK(c, gin.H{"payment_link": link})
}
