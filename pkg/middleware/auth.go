package middleware

import (
	"context"
	"strings"

	"inventory-system/internal/authz"
	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/contextkeys"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService  service.JWTService
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, authService services.AuthServiceInterface, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtSvc,
		authService: authService,
		logger:      logger,
	}
}

// extractToken достает токен из HTTP-only cookie (браузерные клиенты)
// или из заголовка "Authorization: Bearer <token>" (API-клиенты).
func (m *AuthMiddleware) extractToken(c echo.Context) (string, error) {
	if cookie, err := c.Cookie(constants.AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", apperrors.ErrTokenNotFound
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.ErrInvalidAuthHeader
	}

	return parts[1], nil
}

// Auth валидирует токен и резолвит его в существующего пользователя.
// Любой сбой — единообразный 401: решение о редиректе на форму логина
// принимает клиент, а не сервер.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := m.extractToken(c)
		if err != nil {
			m.logger.Warn("AuthMiddleware: токен не предоставлен", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Warn("AuthMiddleware: ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: попытка доступа с refresh-токеном")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		// Токен может пережить удаление аккаунта: личность обязана
		// резолвиться в существующего пользователя.
		user, err := m.authService.GetUserByID(c.Request().Context(), claims.UserID)
		if err != nil {
			m.logger.Warn("AuthMiddleware: пользователь из токена не найден",
				zap.Uint64("userID", claims.UserID))
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, user.ID)
		ctx = context.WithValue(ctx, contextkeys.UserKey, user)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRoles пропускает только пользователей с одной из перечисленных ролей.
func (m *AuthMiddleware) RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := utils.GetUserFromCtx(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, err, m.logger)
			}

			if !authz.CanDo(user, roles...) {
				m.logger.Warn("RequireRoles: доступ запрещен",
					zap.Uint64("userID", user.ID),
					zap.String("role", user.Role),
					zap.Strings("required", roles))
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}

			return next(c)
		}
	}
}
