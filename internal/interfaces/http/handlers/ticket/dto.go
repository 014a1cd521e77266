package ticket

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"helpdesk/internal/application/ticket/usecases"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
)

// RegisterValidations installs the ticketstatus binding tag. Must run
// before the first request that binds UpdateTicketRequest.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
			return vo.TicketStatus(fl.Field().String()).IsValid()
		})
	}
}

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	CreatorID   uint   `json:"creator_id" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:       authorization.Actor{UserID: r.CreatorID, Role: authorization.RoleMember},
		Title:       r.Title,
		Description: r.Description,
	}
}

type UpdateTicketRequest struct {
	Status      *string `json:"status" binding:"omitempty,ticketstatus"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
}

func (r *UpdateTicketRequest) ToCommand(actor authorization.Actor, ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		Actor:       actor,
		TicketID:    ticketID,
		Status:      r.Status,
		Description: r.Description,
	}
}

type StatusResponse struct {
	Status string `json:"status"`
}
