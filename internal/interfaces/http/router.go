package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/storage"
	authhandler "helpdesk/internal/interfaces/http/handlers/auth"
	tickethandler "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine        *gin.Engine
	ticketHandler *tickethandler.TicketHandler
	authHandler   *authhandler.AuthHandler
}

func NewRouter(database *gorm.DB, cfg *config.Config, rateLimiter ratelimit.RateLimiter, objectStore storage.ObjectStore) (*Router, error) {
	log := logger.NewLogger()

	ticketRepo := repository.NewTicketRepository(database)
	reportRepo := repository.NewReportRepository(database)
	userRepo := repository.NewUserRepository(database)
	txManager := db.NewTransactionManager(database)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)

	ticketHandler := tickethandler.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, reportRepo, txManager, log),
		ticketusecases.NewAddReportUseCase(ticketRepo, reportRepo, objectStore, log),
		ticketusecases.NewListReportsUseCase(ticketRepo, reportRepo, objectStore, log),
	)

	authHandler := authhandler.NewAuthHandler(
		userusecases.NewLoginUseCase(userRepo, hasher, rateLimiter, log),
		userusecases.NewCreateUserUseCase(userRepo, hasher, log),
	)

	tickethandler.RegisterValidations()

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))

	r := &Router{
		engine:        engine,
		ticketHandler: ticketHandler,
		authHandler:   authHandler,
	}
	r.setupRoutes()

	return r, nil
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", healthCheck)

	tickets := r.engine.Group("/tickets")
	{
		tickets.POST("", r.ticketHandler.CreateTicket)
		tickets.GET("", middleware.RequireActor(), r.ticketHandler.ListTickets)
		tickets.GET("/:id", r.ticketHandler.GetTicket)
		tickets.PUT("/:id", middleware.RequireActor(), r.ticketHandler.UpdateTicket)
		tickets.DELETE("/:id", middleware.ResolveActor(), r.ticketHandler.DeleteTicket)
		tickets.POST("/:id/reports", middleware.ResolveActor(), r.ticketHandler.AddReport)
		tickets.GET("/:id/reports", r.ticketHandler.ListReports)
	}

	authGroup := r.engine.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/users", r.authHandler.CreateUser)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
