package controllers

import (
	"net/http"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

// setAuthCookie кладет access-токен в HTTP-only cookie для браузерных
// клиентов; API-клиенты используют тот же токен из тела ответа.
func (ctrl *AuthController) setAuthCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewInvalidInputError("Неверный формат данных для входа"))
	}

	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Error("Login: ошибка валидации данных", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	tokens, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Login: ошибка авторизации", zap.String("username", payload.Username), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	ctrl.setAuthCookie(c, tokens.AccessToken, ctrl.jwtSvc.GetAccessTokenTTL())

	return utils.SuccessResponse(c, tokens, "Авторизация прошла успешно", http.StatusOK)
}

func (ctrl *AuthController) Register(c echo.Context) error {
	var payload dto.RegisterDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Register: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewInvalidInputError("Неверный формат данных для регистрации"))
	}

	if err := c.Validate(&payload); err != nil {
		ctrl.logger.Error("Register: ошибка валидации данных", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.authService.Register(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Error("Register: ошибка регистрации", zap.String("username", payload.Username), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	response := dto.ShortUserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	return utils.SuccessResponse(c, response, "Пользователь успешно зарегистрирован", http.StatusCreated)
}

func (ctrl *AuthController) Refresh(c echo.Context) error {
	var payload dto.RefreshDTO

	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewInvalidInputError("Неверный формат данных"))
	}

	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	tokens, err := ctrl.authService.Refresh(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Refresh: не удалось обновить токены", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	ctrl.setAuthCookie(c, tokens.AccessToken, ctrl.jwtSvc.GetAccessTokenTTL())

	return utils.SuccessResponse(c, tokens, "Токены успешно обновлены", http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return utils.SuccessResponse(c, nil, "Вы успешно вышли из системы", http.StatusOK)
}

func (ctrl *AuthController) Me(c echo.Context) error {
	user, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
	}

	response := dto.ShortUserDTO{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	return utils.SuccessResponse(c, response, "Профиль пользователя успешно получен", http.StatusOK)
}
