package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/MobiPetApp/mobipet-server/internal/config"
	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/handlers"
	infraRepo "github.com/MobiPetApp/mobipet-server/internal/infra/repository"
	"github.com/MobiPetApp/mobipet-server/internal/middleware"
	"github.com/MobiPetApp/mobipet-server/internal/notify"
	"github.com/MobiPetApp/mobipet-server/internal/payments"
	"github.com/MobiPetApp/mobipet-server/internal/realtime"
	"github.com/MobiPetApp/mobipet-server/internal/storage"
	ucAppointment "github.com/MobiPetApp/mobipet-server/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	var mailer notify.Mailer = notify.NoopMailer{}
	if cfg.SMTPHost != "" {
		mailer = notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	}
	dispatcher := notify.NewDispatcher(notify.NewGormStore(db), mailer)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	feed := realtime.NewPublisher(rdb)

	var uploader *storage.Uploader
	if cfg.S3Bucket != "" {
		uploader = storage.NewUploader(cfg.S3Region, cfg.S3Bucket, cfg.S3AccessKey, cfg.S3SecretKey)
	}

	var checkout *payments.Checkout
	if cfg.MPAccessToken != "" {
		var err error
		checkout, err = payments.NewCheckout(cfg.MPAccessToken)
		if err != nil {
			log.Println("payments: checkout disabled:", err)
		}
	}

	// ======================================================
	// USE CASES (APPOINTMENT LIFECYCLE)
	// ======================================================
	createBookingUC := ucAppointment.NewCreateBooking(appointmentRepo, dispatcher, feed)
	acceptJobUC := ucAppointment.NewAcceptJob(appointmentRepo, dispatcher, feed)
	declineJobUC := ucAppointment.NewDeclineJob(appointmentRepo, dispatcher, feed)
	completeVisitUC := ucAppointment.NewCompleteVisit(appointmentRepo, dispatcher, feed)
	cancelBookingUC := ucAppointment.NewCancelBooking(appointmentRepo, feed)
	listBucketsUC := ucAppointment.NewListBuckets(appointmentRepo)

	proposeTimeUC := ucAppointment.NewProposeTime(appointmentRepo, dispatcher, feed)
	respondProposalUC := ucAppointment.NewRespondToProposal(appointmentRepo, dispatcher, feed)
	withdrawProposalUC := ucAppointment.NewWithdrawProposal(appointmentRepo, feed)
	listProposalsUC := ucAppointment.NewListProposals(appointmentRepo)

	getRecordUC := ucAppointment.NewGetClinicalRecord(appointmentRepo)
	upsertRecordUC := ucAppointment.NewUpsertClinicalRecord(appointmentRepo, dispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	publicHandler := handlers.NewPublicHandler()

	appointmentHandler := handlers.NewAppointmentHandler(
		createBookingUC,
		acceptJobUC,
		declineJobUC,
		completeVisitUC,
		cancelBookingUC,
		listBucketsUC,
	)
	proposalHandler := handlers.NewProposalHandler(
		proposeTimeUC,
		respondProposalUC,
		withdrawProposalUC,
		listProposalsUC,
	)
	recordHandler := handlers.NewClinicalRecordHandler(getRecordUC, upsertRecordUC)
	notificationHandler := handlers.NewNotificationHandler(db)
	petHandler := handlers.NewPetHandler(db, uploader)
	paymentHandler := handlers.NewPaymentHandler(db, checkout)
	adminHandler := handlers.NewAdminHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/time-slots", publicHandler.ListTimeSlots)
		api.POST("/payments/webhook", paymentHandler.Webhook)

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
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)

			owner := secured.Group("/")
			owner.Use(middleware.RequireRole(domain.RolePetOwner))
			{
				owner.POST("/me/appointments", appointmentHandler.Create)
				owner.DELETE("/me/appointments/:id", appointmentHandler.Cancel)
				owner.GET("/me/appointments/:id/checkout", paymentHandler.Checkout)

				owner.GET("/me/pets", petHandler.List)
				owner.POST("/me/pets", petHandler.Create)
				owner.POST("/me/pets/:id/image", petHandler.UploadImage)

				owner.PATCH("/time-proposals/:id", proposalHandler.Respond)
			}

			vet := secured.Group("/")
			vet.Use(middleware.RequireRole(domain.RoleVet))
			{
				vet.POST("/me/appointments/:id/status", appointmentHandler.StatusAction)
				vet.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
				vet.PUT("/me/appointments/:id/clinical-record", recordHandler.Put)

				vet.POST("/time-proposals", proposalHandler.Create)
				vet.DELETE("/time-proposals/:id", proposalHandler.Withdraw)
			}

			secured.GET("/me/appointments/:id/clinical-record", recordHandler.Get)
			secured.GET("/time-proposals", proposalHandler.List)

			secured.GET("/me/notifications", notificationHandler.List)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(domain.RoleAdmin))
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.PATCH("/users/:id/enabled", adminHandler.SetEnabled)
				admin.DELETE("/users/:id", adminHandler.DeleteUser)
			}
		}
	}
}
