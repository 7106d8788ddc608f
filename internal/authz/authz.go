package authz

import (
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
)

// CanDo — чистая функция авторизации: разрешает действие, если роль
// пользователя входит в набор требуемых. Роли по обе стороны
// нормализуются, поэтому "admin" и "Admin" эквивалентны.
// Пустой набор requiredRoles означает "любой аутентифицированный".
func CanDo(user *entities.User, requiredRoles ...string) bool {
	if user == nil {
		return false
	}
	if len(requiredRoles) == 0 {
		return true
	}

	userRole, ok := constants.ParseRole(user.Role)
	if !ok {
		return false
	}

	for _, required := range requiredRoles {
		requiredRole, ok := constants.ParseRole(required)
		if !ok {
			continue
		}
		if userRole == requiredRole {
			return true
		}
	}

	return false
}
