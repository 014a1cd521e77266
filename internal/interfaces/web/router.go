package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/backendclient"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Router assembles the browser-facing gin engine.
type Router struct {
	engine  *gin.Engine
	handler *Handler
}

func NewRouter(cfg *config.Config, objectStore storage.ObjectStore) (*Router, error) {
	log := logger.NewLogger()

	backend := backendclient.NewClient(cfg.Web.BackendURL, log)
	sessions := auth.NewSessionService(cfg.Web.SessionSecret, cfg.Web.SessionExpHrs)
	handler := NewHandler(backend, sessions, objectStore, cfg.Storage.ServeMode, log)

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.SetHTMLTemplate(tmpl)

	mediaPath := cfg.Web.MediaPath
	if mediaPath == "" {
		mediaPath = "/media"
	}

	r := &Router{engine: engine, handler: handler}
	r.setupRoutes(sessions, mediaPath)

	return r, nil
}

func (r *Router) setupRoutes(sessions *auth.SessionService, mediaPath string) {
	r.engine.GET("/", r.handler.Index)
	r.engine.GET("/login", r.handler.LoginPage)
	r.engine.POST("/login", r.handler.Login)
	r.engine.GET("/logout", r.handler.Logout)

	authed := r.engine.Group("")
	authed.Use(RequireSession(sessions))
	{
		authed.GET("/dashboard", r.handler.Dashboard)
		authed.POST("/tickets/create", r.handler.CreateTicket)
		authed.GET("/ticket/:id", r.handler.TicketDetail)
		authed.POST("/ticket/:id/update", r.handler.UpdateTicket)
		authed.POST("/ticket/:id/delete", r.handler.DeleteTicket)
		authed.POST("/ticket/:id/add_report", r.handler.AddReport)
		authed.GET(mediaPath+"/*object", r.handler.Media)

		admin := authed.Group("/admin")
		admin.Use(RequireAdmin())
		{
			admin.GET("", r.handler.AdminPage)
			admin.POST("", r.handler.AdminCreateUser)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
