// middleware/auth.go - Credential resolution: API key + optional access token
package middleware

import (
	"strings"
	"tododuk/services"
	"tododuk/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	localsUserID    = "userId"
	localsUserEmail = "userEmail"
)

// Auth resolves the request's actor and fails closed: every route behind it
// requires a verified identity.
//
// Credentials arrive as "Authorization: Bearer <apiKey>[ <accessToken>]" or,
// absent the header, as apiKey/accessToken cookies. A valid access token is
// authoritative on its own (no database lookup); otherwise the API key is
// matched against the store, and a fresh access token is attached to the
// response so later requests skip the lookup.
func Auth(db *gorm.DB) fiber.Handler {
	userService := services.NewUserService(db)
	tokenService := services.NewAuthTokenService()

	return func(c *fiber.Ctx) error {
		var apiKey, accessToken string

		authHeader := c.Get("Authorization")
		if authHeader != "" {
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return unauthorized(c, "401-2", "Authorization header must use the Bearer scheme")
			}
			parts := strings.SplitN(strings.TrimSpace(authHeader[len("Bearer "):]), " ", 2)
			apiKey = parts[0]
			if len(parts) == 2 {
				accessToken = parts[1]
			}
		} else {
			apiKey = c.Cookies("apiKey")
			accessToken = c.Cookies("accessToken")
		}

		if apiKey == "" && accessToken == "" {
			return unauthorized(c, "401-1", "login required")
		}

		// Trust-the-token path: a valid access token needs no lookup.
		if accessToken != "" {
			if userID, email, ok := tokenService.Payload(accessToken); ok {
				c.Locals(localsUserID, userID)
				c.Locals(localsUserEmail, email)
				return c.Next()
			}
		}

		user, err := userService.FindByAPIKey(apiKey)
		if err != nil {
			return unauthorized(c, "401-3", "unknown API key")
		}

		// The API key carried the request; mint a token so the next one
		// can skip the lookup.
		if fresh, err := tokenService.GenAccessToken(user); err == nil {
			c.Cookie(&fiber.Cookie{
				Name:     "accessToken",
				Value:    fresh,
				Path:     "/",
				HTTPOnly: true,
			})
			c.Set("Authorization", fresh)
		}

		c.Locals(localsUserID, user.ID)
		c.Locals(localsUserEmail, user.Email)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, resultCode, msg string) error {
	return utils.Send(c, resultCode, msg, nil)
}

// GetUserID returns the resolved actor's id. Handlers pass it explicitly
// into services; nothing below the handler layer reads request state.
func GetUserID(c *fiber.Ctx) (uint, error) {
	if id, ok := c.Locals(localsUserID).(uint); ok && id > 0 {
		return id, nil
	}
	return 0, fiber.NewError(fiber.StatusUnauthorized, "user not authenticated")
}

// GetUserEmail returns the resolved actor's email, when the credential
// carried one.
func GetUserEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(localsUserEmail).(string)
	return email
}
