package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/myjobsapp/myjobs-api/internal/auth"
	"github.com/myjobsapp/myjobs-api/internal/repository"
	"github.com/myjobsapp/myjobs-api/internal/util"
)

const principalKey = "principal"

// RequireAuth validates the bearer token, loads the user, and stores the
// resolved principal on the request context.
func RequireAuth(userRepo *repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Authentication credentials were not provided",
			})
		}

		userID, err := auth.ParseAccessToken(token)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
		}

		user, err := userRepo.FindByID(userID)
		if err != nil || !user.IsActive {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
		}

		c.Locals(principalKey, auth.PrincipalFor(user))
		return c.Next()
	}
}

// Principal returns the authenticated principal set by RequireAuth. The zero
// value comes back on routes that skipped the middleware.
func Principal(c *fiber.Ctx) auth.Principal {
	p, _ := c.Locals(principalKey).(auth.Principal)
	return p
}

func RequireFaculty() fiber.Handler {
	return requireRole(auth.RoleFaculty, "Only faculty accounts may perform this action")
}

func RequireRecruiter() fiber.Handler {
	return requireRole(auth.RoleRecruiter, "Only recruiter accounts may perform this action")
}

func requireRole(role auth.Role, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Principal(c).Role != role {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: message,
			})
		}
		return c.Next()
	}
}
