package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	getTicketUC    usecases.GetTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
	addReportUC    usecases.AddReportExecutor
	listReportsUC  usecases.ListReportsExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	addReportUC usecases.AddReportExecutor,
	listReportsUC usecases.ListReportsExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		addReportUC:    addReportUC,
		listReportsUC:  listReportsUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user_id query parameter is required"))
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, _ := middleware.GetActor(c)
	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user_id query parameter is required"))
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(actor, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user_id query parameter is required"))
		return
	}

	if _, err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Actor:    actor,
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "deleted"})
}

// AddReport handles POST /tickets/:id/reports
func (h *TicketHandler) AddReport(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := middleware.GetActor(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user_id query parameter is required"))
		return
	}

	comment := c.PostForm("comment")

	cmd := usecases.AddReportCommand{
		Actor:    actor,
		TicketID: ticketID,
		Comment:  comment,
	}

	fileHeader, err := c.FormFile("file")
	if err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			h.logger.Errorw("failed to open uploaded file", "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("could not read uploaded file"))
			return
		}
		defer f.Close()

		cmd.File = &usecases.FileUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      f,
		}
	}

	if _, err := h.addReportUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// ListReports handles GET /tickets/:id/reports
func (h *TicketHandler) ListReports(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listReportsUC.Execute(c.Request.Context(), usecases.ListReportsQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
