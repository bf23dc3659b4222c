package auth

import "github.com/myjobsapp/myjobs-api/internal/model"

type Role int

const (
	RoleNone Role = iota
	RoleFaculty
	RoleRecruiter
)

// Principal is the authenticated caller, resolved once by the auth middleware.
// Handlers and usecases dispatch on Role instead of re-probing the user flags.
type Principal struct {
	UserID uint
	Email  string
	Role   Role
}

func ResolveRole(u *model.User) Role {
	switch {
	case u.IsRecruiter:
		return RoleRecruiter
	case u.IsFaculty:
		return RoleFaculty
	default:
		return RoleNone
	}
}

func PrincipalFor(u *model.User) Principal {
	return Principal{UserID: u.ID, Email: u.Email, Role: ResolveRole(u)}
}
