package middleware

import (
	"fmt"
	"strings"

	"learnhub/internal/domain"
	"learnhub/internal/logger"
	"learnhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
	RoleKey             = "role"
)

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}

// Protected requires a valid access token and stores the caller's id and
// role in the request locals.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return unauthorized(c, "MISSING_AUTH_HEADER", "Authorization header is missing")
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return unauthorized(c, "INVALID_AUTH_SCHEME", "Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return unauthorized(c, "EMPTY_TOKEN", "Token is empty")
		}

		claims, err := authService.ValidateJWT(c.Context(), tokenString)
		if err != nil {
			logger.Get().Debug("JWT validation failed",
				zap.String("request_id", RequestIDFromCtx(c)),
				zap.Error(err),
			)
			return unauthorized(c, "INVALID_TOKEN", err.Error())
		}

		if claims.TokenType != service.TokenTypeAccess {
			return c.Status(fiber.StatusForbidden).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN_TYPE",
				Message: fmt.Sprintf("Invalid token type: expected %s, got %s", service.TokenTypeAccess, claims.TokenType),
				Status:  fiber.StatusForbidden,
			})
		}

		role, err := domain.ParseRole(claims.Role)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", err.Error())
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(RoleKey, role)
		return c.Next()
	}
}

// CallerFromCtx returns the identity stored by Protected.
func CallerFromCtx(c *fiber.Ctx) (domain.Caller, error) {
	userID, _ := c.Locals(UserIDKey).(string)
	role, ok := c.Locals(RoleKey).(domain.Role)
	if userID == "" || !ok {
		return domain.Caller{}, domain.NewUnauthorizedError("authentication required")
	}
	return domain.Caller{UserID: userID, Role: role}, nil
}
