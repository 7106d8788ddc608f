package utils

import (
	"context"

	"inventory-system/internal/entities"
	"inventory-system/pkg/contextkeys"
	apperrors "inventory-system/pkg/errors"
)

// GetUserFromCtx возвращает аутентифицированного пользователя,
// положенного в контекст middleware-ом авторизации.
func GetUserFromCtx(ctx context.Context) (*entities.User, error) {
	user, ok := ctx.Value(contextkeys.UserKey).(*entities.User)
	if !ok || user == nil {
		return nil, apperrors.ErrUserNotFoundInContext
	}
	return user, nil
}

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || id == 0 {
		return 0, apperrors.ErrUserNotFoundInContext
	}
	return id, nil
}
