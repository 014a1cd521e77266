package middleware

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/utils"
)

const actorKey = "actor"

// RequireActor reads the caller's identity from the user_id, is_admin and
// is_staff query parameters and stores a resolved Actor in the request
// context. The flags are collapsed into a single role here so nothing
// downstream ever reasons about raw wire flags.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := utils.ParseUintQuery(c, "user_id")
		if userID == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("user_id query parameter is required"))
			c.Abort()
			return
		}

		actor := authorization.NewActor(
			userID,
			utils.ParseBoolQuery(c, "is_admin"),
			utils.ParseBoolQuery(c, "is_staff"),
		)
		c.Set(actorKey, actor)
		c.Next()
	}
}

// ResolveActor is the lenient variant used on routes whose wire contract
// has no user_id parameter: the role flags alone decide what the caller
// may do, and a zero user ID means the caller is anonymous.
func ResolveActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := authorization.NewActor(
			utils.ParseUintQuery(c, "user_id"),
			utils.ParseBoolQuery(c, "is_admin"),
			utils.ParseBoolQuery(c, "is_staff"),
		)
		c.Set(actorKey, actor)
		c.Next()
	}
}

// GetActor returns the actor stored by RequireActor or ResolveActor.
func GetActor(c *gin.Context) (authorization.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return authorization.Actor{}, false
	}
	actor, ok := v.(authorization.Actor)
	return actor, ok
}
