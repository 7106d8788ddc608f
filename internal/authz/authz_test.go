package authz

import (
	"testing"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"

	"github.com/stretchr/testify/assert"
)

func userWithRole(role string) *entities.User {
	return &entities.User{ID: 1, Username: "test", Role: role}
}

func TestCanDo_NilUser(t *testing.T) {
	assert.False(t, CanDo(nil))
	assert.False(t, CanDo(nil, constants.RoleAdmin))
}

func TestCanDo_EmptyRequiredMeansAnyAuthenticated(t *testing.T) {
	assert.True(t, CanDo(userWithRole(constants.RoleEngineer)))
	assert.True(t, CanDo(userWithRole(constants.RoleAdmin)))
}

func TestCanDo_ExactMatch(t *testing.T) {
	assert.True(t, CanDo(userWithRole(constants.RoleAdmin), constants.RoleAdmin))
	assert.False(t, CanDo(userWithRole(constants.RoleEngineer), constants.RoleAdmin))
	assert.True(t, CanDo(userWithRole(constants.RoleManager), constants.RoleAdmin, constants.RoleManager))
}

func TestCanDo_CaseInsensitiveRoles(t *testing.T) {
	// Роль из хранилища и требуемая роль могут отличаться регистром.
	assert.True(t, CanDo(userWithRole("admin"), "ADMIN"))
	assert.True(t, CanDo(userWithRole("Engineer"), "engineer"))
}

func TestCanDo_UnknownRole(t *testing.T) {
	assert.False(t, CanDo(userWithRole("Superuser"), constants.RoleAdmin))
	assert.False(t, CanDo(userWithRole(""), constants.RoleAdmin))
}

// Расширение набора требуемых ролей никогда не отнимает доступ.
func TestCanDo_MonotonicOverRequiredSet(t *testing.T) {
	user := userWithRole(constants.RoleManager)

	narrow := []string{constants.RoleManager}
	wide := []string{constants.RoleAdmin, constants.RoleManager, constants.RoleEngineer}

	assert.True(t, CanDo(user, narrow...))
	assert.True(t, CanDo(user, wide...))
}
