package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/wardenapp/corrections-api/internal/auth"
	"github.com/wardenapp/corrections-api/internal/models"
	"github.com/wardenapp/corrections-api/internal/types"
	"gorm.io/gorm"
)

// RequireAuth validates the bearer token on the request and resolves it to a
// live user, stored in c.Locals("user"). Each request is authenticated
// independently; there is no session state.
func RequireAuth(db *gorm.DB, tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return types.UnauthenticatedError("Missing Authorization header")
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return types.UnauthenticatedError("Authorization header is not a bearer token")
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			return types.UnauthenticatedError("Invalid or expired token")
		}

		var user models.User
		if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return types.UnauthenticatedError("Unknown user")
			}
			return types.InternalError(err)
		}

		c.Locals("user", &user)
		return c.Next()
	}
}

// RequireAdmin rejects requests whose authenticated user does not hold the
// Admin role. Must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return types.UnauthenticatedError("Not authenticated")
		}
		if !user.IsAdmin() {
			return types.ForbiddenError("Access Denied")
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
