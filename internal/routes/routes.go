package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ManosLatam/marketplace-api/internal/audit"
	"github.com/ManosLatam/marketplace-api/internal/config"
	"github.com/ManosLatam/marketplace-api/internal/gateway"
	"github.com/ManosLatam/marketplace-api/internal/handlers"
	infraRepo "github.com/ManosLatam/marketplace-api/internal/infra/repository"
	"github.com/ManosLatam/marketplace-api/internal/lock"
	"github.com/ManosLatam/marketplace-api/internal/middleware"
	"github.com/ManosLatam/marketplace-api/internal/models"
	"github.com/ManosLatam/marketplace-api/internal/notify"
	ucBooking "github.com/ManosLatam/marketplace-api/internal/usecase/booking"
	ucPayment "github.com/ManosLatam/marketplace-api/internal/usecase/payment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	collector gateway.Collector,
	locks *lock.Locker,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)

	notifyDispatcher := notify.NewDispatcher(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	acceptBookingUC := ucBooking.NewAcceptBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	rejectBookingUC := ucBooking.NewRejectBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	negotiateBookingUC := ucBooking.NewNegotiateBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	acceptProposalUC := ucBooking.NewAcceptProposal(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	startWorkUC := ucBooking.NewStartWork(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	requestReviewUC := ucBooking.NewRequestReview(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	approveWorkUC := ucBooking.NewApproveWork(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	// ======================================================
	// 🧠 USE CASES — PAYMENTS
	// ======================================================
	checkoutUC := ucPayment.NewCheckout(
		bookingRepo,
		paymentRepo,
		collector,
		locks,
		cfg,
		notifyDispatcher,
		auditDispatcher,
	)

	remainingPaymentUC := ucPayment.NewRemainingPayment(
		bookingRepo,
		paymentRepo,
		collector,
		locks,
		cfg,
		notifyDispatcher,
		auditDispatcher,
	)

	releaseEscrowUC := ucPayment.NewReleaseEscrow(
		bookingRepo,
		paymentRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	syncProviderPaymentUC := ucPayment.NewSyncProviderPayment(
		bookingRepo,
		paymentRepo,
		collector,
		notifyDispatcher,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		acceptBookingUC,
		rejectBookingUC,
		negotiateBookingUC,
		acceptProposalUC,
		startWorkUC,
		requestReviewUC,
		approveWorkUC,
		cancelBookingUC,
		bookingRepo,
	)

	paymentHandler := handlers.NewPaymentHandler(
		checkoutUC,
		remainingPaymentUC,
		releaseEscrowUC,
		paymentRepo,
	)

	webhookHandler := handlers.NewWebhookHandler(syncProviderPaymentUC)

	quotationHandler := handlers.NewQuotationHandler(db, createBookingUC)
	creditHandler := handlers.NewCreditHandler(db)
	conversationHandler := handlers.NewConversationHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

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
		// 🌐 WEBHOOKS
		// ------------------------------
		api.POST("/webhooks/mercadopago", webhookHandler.ProviderNotification)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)

			secured.PATCH("/bookings/:id/accept", bookingHandler.Accept)
			secured.PATCH("/bookings/:id/reject", bookingHandler.Reject)
			secured.PATCH("/bookings/:id/negotiate", bookingHandler.Negotiate)
			secured.PATCH("/bookings/:id/accept-proposal", bookingHandler.AcceptProposal)
			secured.PATCH("/bookings/:id/start-work", bookingHandler.StartWork)
			secured.PATCH("/bookings/:id/request-review", bookingHandler.RequestReview)
			secured.PATCH("/bookings/:id/approve-work", bookingHandler.ApproveWork)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// PAYMENTS
			// ------------------------------
			secured.POST("/bookings/:id/payments", paymentHandler.Checkout)
			secured.POST("/bookings/:id/payments/remaining", paymentHandler.Remaining)
			secured.PATCH("/payments/:id/release", paymentHandler.ReleaseEscrow)
			secured.GET("/payments", paymentHandler.List)

			// ------------------------------
			// CREDITS
			// ------------------------------
			secured.GET("/me/credits", paymentHandler.CreditsBalance)
			secured.GET("/me/credits/history", creditHandler.ListMine)
			secured.POST("/credits", middleware.RequireRole(models.RoleAdmin), creditHandler.Grant)

			// ------------------------------
			// QUOTATIONS
			// ------------------------------
			secured.POST("/quotations", middleware.RequireRole(models.RoleMaster), quotationHandler.Create)
			secured.GET("/quotations", quotationHandler.List)
			secured.GET("/quotations/:id", quotationHandler.Get)
			secured.PATCH("/quotations/:id/accept", quotationHandler.Accept)
			secured.PATCH("/quotations/:id/reject", quotationHandler.Reject)

			// ------------------------------
			// CONVERSATIONS / NOTIFICATIONS
			// ------------------------------
			secured.GET("/conversations/:id/messages", conversationHandler.ListMessages)
			secured.POST("/conversations/:id/messages", conversationHandler.PostMessage)

			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// ADMIN
			// ------------------------------
			secured.GET("/audit-logs", middleware.RequireRole(models.RoleAdmin), auditLogsHandler.List)
		}
	}
}
