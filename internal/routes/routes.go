package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	"github.com/BruksfildServices01/belezasmart/internal/cache"
	"github.com/BruksfildServices01/belezasmart/internal/config"
	"github.com/BruksfildServices01/belezasmart/internal/handlers"
	infraRepo "github.com/BruksfildServices01/belezasmart/internal/infra/repository"
	"github.com/BruksfildServices01/belezasmart/internal/metrics"
	"github.com/BruksfildServices01/belezasmart/internal/middleware"
	"github.com/BruksfildServices01/belezasmart/internal/payment"
	"github.com/BruksfildServices01/belezasmart/internal/phone"
	"github.com/BruksfildServices01/belezasmart/internal/storage"
	ucAppointment "github.com/BruksfildServices01/belezasmart/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/belezasmart/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/belezasmart/internal/usecase/dashboard"
	ucFinance "github.com/BruksfildServices01/belezasmart/internal/usecase/finance"
	ucInventory "github.com/BruksfildServices01/belezasmart/internal/usecase/inventory"
	ucProfile "github.com/BruksfildServices01/belezasmart/internal/usecase/profile"
	ucSubscription "github.com/BruksfildServices01/belezasmart/internal/usecase/subscription"
)

// Deps reúne a infraestrutura construída no main.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *logrus.Logger
	Audit   *audit.Dispatcher
	Metrics *metrics.Metrics
	Cache   cache.Cache
	Gateway payment.Gateway

	// nil quando o S3 não está configurado
	Uploader storage.Uploader
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	log := d.Log

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.RequestLogger(log))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", d.Metrics.Handler())
	}

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	clientRepo := infraRepo.NewClientGormRepository(d.DB)
	professionalRepo := infraRepo.NewProfessionalGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	productRepo := infraRepo.NewProductGormRepository(d.DB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(d.DB)
	transactionRepo := infraRepo.NewTransactionGormRepository(d.DB)
	accountRepo := infraRepo.NewAccountGormRepository(d.DB)

	phones := phone.NewNormalizer(cfg.PhoneCountryCode, log)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(appointmentRepo, d.Audit),
		ucAppointment.NewUpdateAppointment(appointmentRepo, d.Audit),
		ucAppointment.NewSetAppointmentStatus(appointmentRepo, d.Audit, log),
		ucAppointment.NewDeleteAppointment(appointmentRepo, d.Audit),
		listByDateUC,
		ucAppointment.NewListAppointmentsByMonth(appointmentRepo),
		ucAppointment.NewGetAvailability(appointmentRepo),
		ucAppointment.NewIssueConfirmationLink(appointmentRepo, phones, d.Audit, cfg.AppBaseURL, cfg.ConfirmationTTL),
		log,
	)

	confirmWebHandler := handlers.NewConfirmWebHandler(
		ucAppointment.NewConfirmByToken(appointmentRepo, d.Audit, log),
		d.Metrics,
	)

	// ======================================================
	// 🧠 USE CASES — CADASTROS / ESTOQUE / FINANCEIRO
	// ======================================================
	birthdaysUC := ucClient.NewListBirthdays(clientRepo, accountRepo)
	lowStockUC := ucInventory.NewListLowStock(productRepo, inventoryRepo)

	recordTxUC := ucFinance.NewRecordTransaction(transactionRepo, inventoryRepo, d.Audit, log)
	reportUC := ucFinance.NewBuildReport(transactionRepo, professionalRepo, clientRepo)

	dashboardUC := ucDashboard.NewGetDashboard(accountRepo, listByDateUC, transactionRepo, lowStockUC, birthdaysUC)

	// ======================================================
	// 🧠 USE CASES — CONTA / ASSINATURA
	// ======================================================
	checkoutUC := ucSubscription.NewCheckout(d.Gateway, d.Cache, d.Audit)
	portalUC := ucSubscription.NewPortal(d.Gateway, accountRepo)
	checkUC := ucSubscription.NewCheckSubscription(d.Gateway, accountRepo, d.Cache, cfg.SubscriptionCacheTTL, log)

	updateProfileUC := ucProfile.NewUpdateProfile(accountRepo, d.Audit)
	avatarUC := ucProfile.NewUploadAvatar(accountRepo, d.Uploader)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, cfg, log)
	profileHandler := handlers.NewProfileHandler(accountRepo, updateProfileUC, avatarUC, log)
	clientHandler := handlers.NewClientHandler(clientRepo, birthdaysUC, log)
	professionalHandler := handlers.NewProfessionalHandler(professionalRepo, log)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, log)
	stockHandler := handlers.NewStockHandler(productRepo, inventoryRepo, lowStockUC, log)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, recordTxUC, reportUC, log)
	billingHandler := handlers.NewBillingHandler(checkoutUC, portalUC, checkUC, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, log)

	// ======================================================
	// 🌍 PÁGINA PÚBLICA (HTML)
	// ======================================================
	confirmLimiter := middleware.NewIPRateLimiter(cfg.ConfirmRatePerSec, cfg.ConfirmRateBurst)
	r.GET(ucAppointment.ConfirmPath, confirmLimiter.Middleware(), confirmWebHandler.Confirm)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 CONTA (token obrigatório)
		// ------------------------------
		account := api.Group("/")
		account.Use(middleware.AuthMiddleware(cfg))
		{
			account.GET("/me/profile", profileHandler.Get)
			account.PATCH("/me/profile", profileHandler.Update)
			account.POST("/me/profile/avatar", profileHandler.UploadAvatar)

			account.POST("/billing/checkout", billingHandler.Checkout)
			account.POST("/billing/portal", billingHandler.Portal)
			account.POST("/billing/check-subscription", billingHandler.CheckSubscription)
		}

		// ------------------------------
		// 👤 DADOS DO SALÃO (escopo pelo dono; anônimo vê vazio)
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.OptionalAuthMiddleware(cfg, log))
		{
			me.GET("/dashboard", dashboardHandler.Get)

			me.GET("/clients", clientHandler.List)
			me.POST("/clients", clientHandler.Create)
			me.PATCH("/clients/:id", clientHandler.Update)
			me.DELETE("/clients/:id", clientHandler.Delete)
			me.GET("/clients/birthdays/today", clientHandler.BirthdaysToday)
			me.GET("/clients/birthdays/month", clientHandler.BirthdaysMonth)

			me.GET("/professionals", professionalHandler.List)
			me.POST("/professionals", professionalHandler.Create)
			me.PATCH("/professionals/:id", professionalHandler.Update)
			me.DELETE("/professionals/:id", professionalHandler.Delete)

			me.GET("/services", serviceHandler.List)
			me.POST("/services", serviceHandler.Create)
			me.PATCH("/services/:id", serviceHandler.Update)
			me.DELETE("/services/:id", serviceHandler.Delete)

			me.GET("/products", stockHandler.ListProducts)
			me.POST("/products", stockHandler.CreateProduct)
			me.PATCH("/products/:id", stockHandler.UpdateProduct)
			me.DELETE("/products/:id", stockHandler.DeleteProduct)

			me.GET("/inventory", stockHandler.ListInventory)
			me.PATCH("/inventory/:id", stockHandler.UpdateInventory)
			me.GET("/inventory/low-stock", stockHandler.LowStock)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			me.GET("/appointments", appointmentHandler.ListByDate)
			me.GET("/appointments/month", appointmentHandler.ListByMonth)
			me.GET("/appointments/availability", appointmentHandler.Availability)
			me.GET("/appointments/statuses", appointmentHandler.Statuses)
			me.POST("/appointments", appointmentHandler.Create)
			me.PATCH("/appointments/:id", appointmentHandler.Update)
			me.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
			me.DELETE("/appointments/:id", appointmentHandler.Delete)
			me.POST("/appointments/:id/confirmation-link", appointmentHandler.ConfirmationLink)

			// ------------------------------
			// FINANCEIRO
			// ------------------------------
			me.GET("/transactions", transactionHandler.List)
			me.GET("/transactions/export.xlsx", transactionHandler.ExportXLSX)
			me.GET("/transactions/export.pdf", transactionHandler.ExportPDF)
			me.POST("/transactions", transactionHandler.Create)
			me.PATCH("/transactions/:id", transactionHandler.Update)
			me.DELETE("/transactions/:id", transactionHandler.Delete)

			me.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
