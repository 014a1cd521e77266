package authorization

// Actor is the authenticated identity attached to a request.
type Actor struct {
	UserID uint
	Role   Role
}

// NewActor builds an actor from an id and wire-level role flags.
func NewActor(userID uint, isAdmin, isStaff bool) Actor {
	return Actor{
		UserID: userID,
		Role:   RoleFromFlags(isAdmin, isStaff),
	}
}

// CanReadTicket reports whether the actor may view a ticket created by
// creatorID. Staff and admins see everything; members only their own.
func CanReadTicket(actor Actor, creatorID uint) bool {
	return actor.Role.IsPrivileged() || actor.UserID == creatorID
}

// CanUpdateTicket uses the same rule as CanReadTicket: there is no distinct
// update-only role.
func CanUpdateTicket(actor Actor, creatorID uint) bool {
	return CanReadTicket(actor, creatorID)
}

// CanDeleteTicket is admin-only, regardless of ownership.
func CanDeleteTicket(actor Actor) bool {
	return actor.Role.IsAdmin()
}
