package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

// errorStatusList — маппинг типизированных ошибок сервисов на HTTP-коды.
// Сервисы ничего не знают о транспорте: решение о коде принимается здесь.
var errorStatusList = map[error]int{
	apperrors.ErrInvalidCredentials:    http.StatusUnauthorized,
	apperrors.ErrUnauthorized:          http.StatusUnauthorized,
	apperrors.ErrInvalidToken:          http.StatusUnauthorized,
	apperrors.ErrTokenExpired:          http.StatusUnauthorized,
	apperrors.ErrTokenNotYetValid:      http.StatusUnauthorized,
	apperrors.ErrTokenNotFound:         http.StatusUnauthorized,
	apperrors.ErrTokenIsNotRefresh:     http.StatusUnauthorized,
	apperrors.ErrTokenIsNotAccess:      http.StatusUnauthorized,
	apperrors.ErrEmptyAuthHeader:       http.StatusUnauthorized,
	apperrors.ErrInvalidAuthHeader:     http.StatusUnauthorized,
	apperrors.ErrUserNotFoundInContext: http.StatusUnauthorized,

	apperrors.ErrForbidden:   http.StatusForbidden,
	apperrors.ErrUnknownRole: http.StatusForbidden,

	apperrors.ErrNotFound:          http.StatusNotFound,
	apperrors.ErrUserNotFound:      http.StatusNotFound,
	apperrors.ErrEquipmentNotFound: http.StatusNotFound,
	apperrors.ErrRequestNotFound:   http.StatusNotFound,

	apperrors.ErrBadRequest:        http.StatusBadRequest,
	apperrors.ErrUsernameTaken:     http.StatusBadRequest,
	apperrors.ErrDuplicateRequest:  http.StatusBadRequest,
	apperrors.ErrInvalidTransition: http.StatusBadRequest,

	apperrors.ErrAccountLocked: http.StatusTooManyRequests,
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HTTPResponse{Status: true, Message: message}
	if len(total) > 0 {
		filter := ParseFilterFromQuery(ctx.Request().URL.Query())
		pagination := types.Pagination{
			TotalCount: total[0],
			Page:       filter.Page,
			Limit:      filter.Limit,
		}
		if filter.Limit > 0 {
			pagination.TotalPages = int((total[0] + uint64(filter.Limit) - 1) / uint64(filter.Limit))
		}
		response.Body = map[string]interface{}{"list": body, "pagination": pagination}
	} else {
		response.Body = body
	}
	return ctx.JSON(code, response)
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, &HTTPResponse{Status: false, Message: httpErr.Message})
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, &HTTPResponse{Status: false, Message: invalidInput.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("Поле '%s' не прошло проверку '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, &HTTPResponse{
			Status:  false,
			Message: "Ошибка валидации: " + strings.Join(msgs, "; "),
		})
	}

	for sentinel, statusCode := range errorStatusList {
		if errors.Is(err, sentinel) {
			return c.JSON(statusCode, &HTTPResponse{Status: false, Message: sentinel.Error()})
		}
	}

	// Неожиданные ошибки не протекают наружу: клиенту — общий ответ, детали — в лог.
	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, &HTTPResponse{
		Status:  false,
		Message: "Внутренняя ошибка сервера",
	})
}
