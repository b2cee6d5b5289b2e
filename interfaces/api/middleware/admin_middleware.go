package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kimnjuki/faceless-sub001/pkg/config"
	"github.com/Kimnjuki/faceless-sub001/pkg/utils"
)

// AdminOnly guards the administrative mutations. It accepts either the
// dedicated admin token in X-Admin-Token (falling back to the JWT secret
// when no admin token is configured) or a bearer JWT carrying the admin
// role.
func AdminOnly(cfg *config.Config) fiber.Handler {
	adminToken := cfg.Admin.Token
	if adminToken == "" {
		adminToken = cfg.JWT.Secret
	}

	return func(c *fiber.Ctx) error {
		if headerToken := c.Get("X-Admin-Token"); headerToken != "" {
			if headerToken == adminToken {
				return c.Next()
			}
			return utils.UnauthorizedResponse(c, "Invalid admin token")
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		if err := utils.ValidateAdminJWT(token, cfg.JWT.Secret); err != nil {
			switch err {
			case utils.ErrExpiredToken:
				return utils.UnauthorizedResponse(c, "Token has expired")
			default:
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
		}

		return c.Next()
	}
}
