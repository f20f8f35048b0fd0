package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/glowline/salon-scheduler/internal/audit"
	"github.com/glowline/salon-scheduler/internal/config"
	"github.com/glowline/salon-scheduler/internal/handlers"
	infraRepo "github.com/glowline/salon-scheduler/internal/infra/repository"
	"github.com/glowline/salon-scheduler/internal/middleware"
	"github.com/glowline/salon-scheduler/internal/session"
	ucAppointment "github.com/glowline/salon-scheduler/internal/usecase/appointment"
	ucDashboard "github.com/glowline/salon-scheduler/internal/usecase/dashboard"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store *session.Store,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	dashboardRepo := infraRepo.NewDashboardGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	createUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	confirmUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	completeUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.SalonTimezone,
	)

	listUC := ucAppointment.NewListAppointments(appointmentRepo)

	aggregator := ucDashboard.NewAggregator(dashboardRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(store)
	profileHandler := handlers.NewProfileHandler(db, store)
	serviceHandler := handlers.NewServiceHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	userAdminHandler := handlers.NewUserAdminHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(aggregator, cfg.SalonTimezone)

	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentRepo,
		availabilityUC,
		createUC,
		confirmUC,
		completeUC,
		cancelUC,
		listUC,
		cfg.SalonTimezone,
	)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/services", serviceHandler.List)
		api.GET("/staff", staffHandler.List)
		api.GET("/availability", appointmentHandler.Availability)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.Auth(store))
		secured.Use(middleware.Require(session.AuthenticatedOnly))
		{
			secured.GET("/auth/me", authHandler.Me)
			secured.POST("/auth/logout", authHandler.Logout)
			secured.PUT("/users/profile", profileHandler.Update)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.POST("/appointments/:id/cancel", appointmentHandler.Cancel)

			// Role gating for these lives in the lifecycle
			// transition table; customers are rejected there.
			secured.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.POST("/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/dashboard/upcoming", dashboardHandler.Upcoming)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.Auth(store))
		admin.Use(middleware.Require(session.AdminOnly))
		{
			admin.GET("/services", serviceHandler.ListAll)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)

			admin.POST("/staff", staffHandler.Create)
			admin.PATCH("/staff/:id", staffHandler.Update)
			admin.GET("/staff/:id/working-hours", staffHandler.GetWorkingHours)
			admin.PUT("/staff/:id/working-hours", staffHandler.UpdateWorkingHours)

			admin.GET("/users", userAdminHandler.List)
			admin.PATCH("/users/:id/deactivate", userAdminHandler.Deactivate)

			admin.GET("/dashboard/stats", dashboardHandler.Stats)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
