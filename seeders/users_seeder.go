package seeders

import (
	"context"
	"fmt"
	"log"

	"inventory-system/pkg/constants"
	"inventory-system/pkg/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedUser struct {
	Username string
	Password string
	Role     string
}

// Демонстрационные учетные записи: по одной на каждую роль.
var defaultUsers = []seedUser{
	{Username: "admin", Password: "admin123", Role: constants.RoleAdmin},
	{Username: "manager", Password: "manager123", Role: constants.RoleManager},
	{Username: "engineer", Password: "engineer123", Role: constants.RoleEngineer},
}

func seedUsers(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание пользователей...")

	for _, u := range defaultUsers {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", u.Username).Scan(&existingID)
		if err == nil {
			log.Printf("    - Пользователь %q уже существует.", u.Username)
			continue
		}

		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("ошибка хеширования пароля для %q: %w", u.Username, err)
		}

		_, err = db.Exec(ctx,
			"INSERT INTO users (username, password, role) VALUES ($1, $2, $3)",
			u.Username, hashedPassword, u.Role,
		)
		if err != nil {
			return fmt.Errorf("ошибка создания пользователя %q: %w", u.Username, err)
		}
		log.Printf("    - Пользователь %q (%s) успешно создан.", u.Username, u.Role)
	}

	return nil
}
