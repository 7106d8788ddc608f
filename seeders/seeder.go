package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedUsers создает демонстрационные учетные записи для каждой роли.
func SeedUsers(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения пользователей...")

	if err := seedUsers(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения пользователей: %v", err)
	}

	log.Println("✅ Наполнение пользователей завершено!")
}

// SeedEquipment наполняет инвентарь стартовым набором оборудования.
func SeedEquipment(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения оборудования...")

	if err := seedEquipmentItems(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения оборудования: %v", err)
	}

	log.Println("✅ Наполнение оборудования завершено!")
}
