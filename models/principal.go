package models

// Principal is the identity bound to a single request by the auth middleware.
// It is passed explicitly into every service call that needs the caller.
type Principal struct {
	UserID int
	Email  string
	Role   Role
}

func (p Principal) IsZero() bool {
	return p.Email == ""
}
