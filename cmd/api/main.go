package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowline/salon-scheduler/internal/audit"
	"github.com/glowline/salon-scheduler/internal/config"
	dbpkg "github.com/glowline/salon-scheduler/internal/db"
	"github.com/glowline/salon-scheduler/internal/infra/cache"
	infraRepo "github.com/glowline/salon-scheduler/internal/infra/repository"
	"github.com/glowline/salon-scheduler/internal/middleware"
	"github.com/glowline/salon-scheduler/internal/routes"
	"github.com/glowline/salon-scheduler/internal/session"
	"github.com/glowline/salon-scheduler/internal/sweeper"
	ucAppointment "github.com/glowline/salon-scheduler/internal/usecase/appointment"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisCache := cache.NewRedis(cfg)

	userRepo := infraRepo.NewUserGormRepository(db)
	store := session.NewStore(
		userRepo,
		redisCache,
		cfg.JWTSecret,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
	)

	// Background sweep for pending appointments that were never
	// confirmed before their start time.
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	auditDispatcher := audit.NewDispatcher(audit.New(db))
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, cfg.SalonTimezone)

	sw := sweeper.New(appointmentRepo, cancelUC, cfg.SalonTimezone)
	sw.Start()
	defer sw.Stop()

	r := gin.Default()

	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
