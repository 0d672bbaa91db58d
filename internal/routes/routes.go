package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/novareservas/reservation-api/internal/audit"
	"github.com/novareservas/reservation-api/internal/auth"
	"github.com/novareservas/reservation-api/internal/config"
	"github.com/novareservas/reservation-api/internal/handlers"
	"github.com/novareservas/reservation-api/internal/middleware"
	"github.com/novareservas/reservation-api/internal/repository"
	"github.com/novareservas/reservation-api/internal/service"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	reservationRepo := repository.NewReservationRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	accounts := service.NewAccountService(db, tokens)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(accounts)
	reservationHandler := handlers.NewReservationHandler(reservationRepo, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, auditDispatcher)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Reservation System API")
	})

	r.POST("/client", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// ======================================================
	// PRIVATE ROUTES
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokens))
	{
		secured.POST("/reservations", reservationHandler.Create)
		secured.GET("/reservations", reservationHandler.List)
		secured.PUT("/reservations/:id", reservationHandler.Update)
		secured.DELETE("/reservations/:id", reservationHandler.Delete)

		secured.POST("/services", serviceHandler.Create)
		secured.GET("/services", serviceHandler.List)
		secured.PUT("/services/:id", serviceHandler.Update)
		secured.DELETE("/services/:id", serviceHandler.Delete)
	}
}
