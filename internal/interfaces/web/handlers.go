package web

import (
	"html/template"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/backendclient"
	"helpdesk/internal/infrastructure/storage"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// reportView is a report with its markdown comment pre-rendered and its
// timestamp formatted for display.
type reportView struct {
	ID            uint
	AuthorID      uint
	CommentHTML   template.HTML
	AttachmentURL *string
	Created       string
}

type sessionView struct {
	UserID   uint
	Username string
	Role     authorization.Role
}

// Handler serves the browser-facing UI. All data access goes through the
// backend API; the only state held here is the session cookie.
type Handler struct {
	backend     *backendclient.Client
	sessions    *auth.SessionService
	objectStore storage.ObjectStore
	mediaMode   string
	logger      logger.Interface
}

func NewHandler(backend *backendclient.Client, sessions *auth.SessionService, objectStore storage.ObjectStore, mediaMode string, log logger.Interface) *Handler {
	return &Handler{
		backend:     backend,
		sessions:    sessions,
		objectStore: objectStore,
		mediaMode:   mediaMode,
		logger:      log,
	}
}

// Index redirects to the dashboard when a session exists, otherwise to
// the login page.
func (h *Handler) Index(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		if _, err := h.sessions.Verify(token); err == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage handles GET /login
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Flashes": popFlashes(c)})
}

// Login handles POST /login
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.backend.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.IsUnauthorizedError(err) || errors.IsValidationError(err) {
			setFlash(c, "error", "Invalid credentials")
		} else {
			setFlash(c, "error", "Backend unavailable: "+err.Error())
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	role := authorization.RoleFromFlags(user.IsAdmin, user.IsStaff)
	token, err := h.sessions.Generate(user.ID, user.Username, role)
	if err != nil {
		h.logger.Errorw("failed to generate session token", "error", err)
		setFlash(c, "error", "Login failed")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	setSessionCookie(c, token, 0)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles GET /logout
func (h *Handler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login")
}

// Dashboard handles GET /dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	claims := getSession(c)

	tickets, err := h.backend.ListTickets(c.Request.Context(), sessionActor(claims))
	if err != nil {
		h.logger.Warnw("failed to list tickets", "error", err)
		tickets = nil
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":    sessionView{UserID: claims.UserID, Username: claims.Username, Role: claims.Role},
		"Tickets": tickets,
		"Flashes": popFlashes(c),
	})
}

// CreateTicket handles POST /tickets/create
func (h *Handler) CreateTicket(c *gin.Context) {
	claims := getSession(c)

	err := h.backend.CreateTicket(c.Request.Context(), sessionActor(claims), c.PostForm("title"), c.PostForm("description"))
	if err != nil {
		setFlash(c, "error", "Error creating ticket")
	} else {
		setFlash(c, "success", "Ticket created!")
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// TicketDetail handles GET /ticket/:id
func (h *Handler) TicketDetail(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		c.String(http.StatusNotFound, "Ticket Not Found")
		return
	}

	ticket, err := h.backend.GetTicket(c.Request.Context(), ticketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			c.String(http.StatusNotFound, "Ticket Not Found")
			return
		}
		c.String(http.StatusInternalServerError, "Frontend error: "+err.Error())
		return
	}

	reports, err := h.backend.ListReports(c.Request.Context(), ticketID)
	if err != nil {
		h.logger.Warnw("failed to list reports", "ticket_id", ticketID, "error", err)
		reports = nil
	}

	views := make([]reportView, 0, len(reports))
	for _, r := range reports {
		views = append(views, reportView{
			ID:            r.ID,
			AuthorID:      r.AuthorID,
			CommentHTML:   renderMarkdown(r.Comment),
			AttachmentURL: r.AttachmentURL,
			Created:       biztime.FormatDisplay(r.CreatedAt),
		})
	}

	statuses := make([]string, 0, len(vo.Values()))
	for _, s := range vo.Values() {
		statuses = append(statuses, s.String())
	}

	c.HTML(http.StatusOK, "ticket_detail.html", gin.H{
		"Ticket":   ticket,
		"Created":  biztime.FormatDisplay(ticket.CreatedAt),
		"Closed":   vo.TicketStatus(ticket.Status).IsClosed(),
		"Statuses": statuses,
		"Reports":  views,
		"Flashes":  popFlashes(c),
	})
}

// UpdateTicket handles POST /ticket/:id/update
func (h *Handler) UpdateTicket(c *gin.Context) {
	claims := getSession(c)

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if err := h.backend.UpdateTicketStatus(c.Request.Context(), sessionActor(claims), ticketID, c.PostForm("status")); err != nil {
		setFlash(c, "error", "Error updating status: "+err.Error())
	} else {
		setFlash(c, "success", "Status updated")
	}

	c.Redirect(http.StatusFound, "/ticket/"+c.Param("id"))
}

// DeleteTicket handles POST /ticket/:id/delete
func (h *Handler) DeleteTicket(c *gin.Context) {
	claims := getSession(c)

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if err := h.backend.DeleteTicket(c.Request.Context(), sessionActor(claims), ticketID); err != nil {
		setFlash(c, "error", "Error deleting ticket")
	} else {
		setFlash(c, "success", "Ticket deleted")
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// AddReport handles POST /ticket/:id/add_report
func (h *Handler) AddReport(c *gin.Context) {
	claims := getSession(c)

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	comment := c.PostForm("comment")

	var filename string
	var file io.Reader
	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil && fileHeader.Filename != "" {
		f, err := fileHeader.Open()
		if err == nil {
			filename = fileHeader.Filename
			file = f
			defer f.Close()
		}
	}

	if err := h.backend.AddReport(c.Request.Context(), sessionActor(claims), ticketID, comment, filename, file); err != nil {
		setFlash(c, "error", "Error adding report")
	} else {
		setFlash(c, "success", "Report added")
	}

	c.Redirect(http.StatusFound, "/ticket/"+c.Param("id"))
}

// AdminPage handles GET /admin
func (h *Handler) AdminPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{"Flashes": popFlashes(c)})
}

// AdminCreateUser handles POST /admin
func (h *Handler) AdminCreateUser(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	isAdmin := c.PostForm("is_admin") == "on"
	isStaff := c.PostForm("is_staff") == "on"

	if _, err := h.backend.CreateUser(c.Request.Context(), username, password, isAdmin, isStaff); err != nil {
		setFlash(c, "error", "Error: "+err.Error())
	} else {
		setFlash(c, "success", "User "+username+" created successfully!")
	}

	c.Redirect(http.StatusFound, "/admin")
}

// RequireAdmin bounces non-admin sessions back to the dashboard.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := getSession(c)
		if claims == nil || !claims.Role.IsAdmin() {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Media serves attachment objects under the configured media path. In
// redirect mode the browser is sent straight to the public object URL; in
// stream mode the object is piped through so private buckets stay private.
func (h *Handler) Media(c *gin.Context) {
	key, err := url.PathUnescape(c.Param("object"))
	if err != nil || key == "" || key == "/" {
		c.String(http.StatusNotFound, "Not Found")
		return
	}
	if key[0] == '/' {
		key = key[1:]
	}

	if h.objectStore == nil {
		c.String(http.StatusInternalServerError, "Error: Cloud storage configuration is missing")
		return
	}

	if h.mediaMode == "stream" {
		obj, err := h.objectStore.Get(c.Request.Context(), key)
		if err != nil {
			c.String(http.StatusNotFound, "Not Found")
			return
		}
		defer obj.Close()
		c.DataFromReader(http.StatusOK, -1, "application/octet-stream", obj, nil)
		return
	}

	c.Redirect(http.StatusFound, h.objectStore.URLFor(key))
}
