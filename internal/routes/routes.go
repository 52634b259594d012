package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/audit"
	"github.com/ArthurMoreiraS/OperlyService/internal/cache"
	"github.com/ArthurMoreiraS/OperlyService/internal/clock"
	"github.com/ArthurMoreiraS/OperlyService/internal/config"
	"github.com/ArthurMoreiraS/OperlyService/internal/handlers"
	infraRepo "github.com/ArthurMoreiraS/OperlyService/internal/infra/repository"
	"github.com/ArthurMoreiraS/OperlyService/internal/middleware"
	"github.com/ArthurMoreiraS/OperlyService/internal/payments"
	"github.com/ArthurMoreiraS/OperlyService/internal/storage"

	ucAppointment "github.com/ArthurMoreiraS/OperlyService/internal/usecase/appointment"
	ucBilling "github.com/ArthurMoreiraS/OperlyService/internal/usecase/billing"
	ucInvoice "github.com/ArthurMoreiraS/OperlyService/internal/usecase/invoice"
	ucVehicle "github.com/ArthurMoreiraS/OperlyService/internal/usecase/vehicle"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	invoiceRepo := infraRepo.NewInvoiceGormRepository(db)
	vehicleRepo := infraRepo.NewVehicleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	clk := clock.System()
	availability := cache.NewAvailability(cfg)
	uploader := storage.NewUploader(cfg)
	mercadopago := payments.NewMercadoPago(cfg.MercadoPagoToken)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(appointmentRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(appointmentRepo, clk, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	availableSlotsUC := ucAppointment.NewGetAvailableSlots(appointmentRepo, clk)

	// ======================================================
	// USE CASES — BILLING
	// ======================================================
	createInvoiceUC := ucInvoice.NewCreateInvoice(invoiceRepo, clk, auditDispatcher)
	createFromBookingUC := ucInvoice.NewCreateInvoiceFromAppointment(invoiceRepo, clk, auditDispatcher)
	updateInvoiceUC := ucInvoice.NewUpdateInvoice(invoiceRepo, auditDispatcher)
	issueInvoiceUC := ucInvoice.NewIssueInvoice(invoiceRepo, clk, auditDispatcher)
	cancelInvoiceUC := ucInvoice.NewCancelInvoice(invoiceRepo, auditDispatcher)
	addPaymentUC := ucInvoice.NewAddPayment(invoiceRepo, clk, auditDispatcher)
	removePaymentUC := ucInvoice.NewRemovePayment(invoiceRepo, clk, auditDispatcher)
	getInvoiceUC := ucInvoice.NewGetInvoice(invoiceRepo)
	listInvoicesUC := ucInvoice.NewListInvoices(invoiceRepo)

	statsUC := ucBilling.NewGetStats(invoiceRepo, clk)
	vehiclesUC := ucVehicle.New(vehicleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	businessHandler := handlers.NewBusinessHandler(db, uploader)
	serviceHandler := handlers.NewServiceHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	vehicleHandler := handlers.NewVehicleHandler(db, vehiclesUC, uploader)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		updateStatusUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		availableSlotsUC,
		availability,
	)

	invoiceHandler := handlers.NewInvoiceHandler(
		createInvoiceUC,
		createFromBookingUC,
		updateInvoiceUC,
		issueInvoiceUC,
		cancelInvoiceUC,
		addPaymentUC,
		removePaymentUC,
		getInvoiceUC,
		listInvoicesUC,
		mercadopago,
	)

	billingHandler := handlers.NewBillingHandler(statsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db, createAppointmentUC, availableSlotsUC, availability)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/business", businessHandler.GetMe)
			secured.PATCH("/me/business", businessHandler.UpdateMe)
			secured.POST("/me/business/logo", businessHandler.UploadLogo)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/customers", customerHandler.List)
			secured.POST("/me/customers", customerHandler.Create)
			secured.GET("/me/customers/:customerId", customerHandler.Get)
			secured.PATCH("/me/customers/:customerId", customerHandler.Update)
			secured.DELETE("/me/customers/:customerId", customerHandler.Delete)

			secured.GET("/me/customers/:customerId/vehicles", vehicleHandler.List)
			secured.POST("/me/customers/:customerId/vehicles", vehicleHandler.Create)
			secured.PATCH("/me/customers/:customerId/vehicles/:id", vehicleHandler.Update)
			secured.DELETE("/me/customers/:customerId/vehicles/:id", vehicleHandler.Delete)
			secured.POST("/me/customers/:customerId/vehicles/:id/photo", vehicleHandler.UploadPhoto)

			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// booking and billing wait for completed onboarding
			onboarded := secured.Group("/")
			onboarded.Use(middleware.RequireOnboarded(db))
			{
				onboarded.GET("/me/availability", appointmentHandler.Availability)
				onboarded.POST("/me/appointments", appointmentHandler.Create)
				onboarded.GET("/me/appointments", appointmentHandler.List)
				onboarded.PATCH("/me/appointments/:id", appointmentHandler.Update)
				onboarded.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
				onboarded.DELETE("/me/appointments/:id", appointmentHandler.Delete)

				onboarded.POST("/me/invoices", invoiceHandler.Create)
				onboarded.POST("/me/invoices/from-appointment", invoiceHandler.CreateFromAppointment)
				onboarded.GET("/me/invoices", invoiceHandler.List)
				onboarded.GET("/me/invoices/:id", invoiceHandler.Get)
				onboarded.PATCH("/me/invoices/:id", invoiceHandler.Update)
				onboarded.POST("/me/invoices/:id/issue", invoiceHandler.Issue)
				onboarded.POST("/me/invoices/:id/cancel", invoiceHandler.Cancel)
				onboarded.POST("/me/invoices/:id/payments", invoiceHandler.AddPayment)
				onboarded.DELETE("/me/invoices/:id/payments/:paymentId", invoiceHandler.RemovePayment)
				onboarded.POST("/me/invoices/:id/payment-link", invoiceHandler.PaymentLink)

				onboarded.GET("/me/billing/stats", billingHandler.Stats)
			}
		}
	}
}
