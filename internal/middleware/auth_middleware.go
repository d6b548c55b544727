package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pushkov-fedor/course-selection/internal/pkg/apperrors"
	"github.com/pushkov-fedor/course-selection/internal/pkg/auth"
)

// mapTokenError translates token failures into application errors so the
// central handler renders them as 401.
func mapTokenError(err error) error {
	if errors.Is(err, auth.ErrExpiredToken) {
		return apperrors.ErrTokenExpired
	}
	return apperrors.ErrTokenInvalid
}

// AdminRequired guards catalog administration endpoints. It expects a valid
// bearer token issued to the administrative user.
func AdminRequired(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, mapTokenError(err))
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			HandleAPIError(c, mapTokenError(err))
			c.Abort()
			return
		}

		c.Set("login", claims.Login)
		c.Set("role", claims.Role)
		c.Next()
	}
}
