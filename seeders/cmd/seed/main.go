package main

import (
	"context"
	"flag"
	"log"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runUsers := flag.Bool("users", false, "Создать демонстрационные учетные записи (admin, manager, engineer)")
	runEquipment := flag.Bool("equipment", false, "Наполнить инвентарь стартовым оборудованием")
	runAll := flag.Bool("all", false, "Запустить все сидеры (эквивалентно -users -equipment)")

	flag.Parse()

	if !*runUsers && !*runEquipment && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -users")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)

	dbPool, err := postgresql.Connect(context.Background(), cfg.Postgres.DSN, cfg.Postgres.ConnectTimeout)
	if err != nil {
		log.Fatalf("❌ Ошибка подключения к БД: %v", err)
	}
	defer dbPool.Close()

	log.Println("======================================================")

	if *runAll || *runUsers {
		seeders.SeedUsers(dbPool)
	}
	if *runAll || *runEquipment {
		seeders.SeedEquipment(dbPool)
	}

	log.Println("======================================================")
	log.Println("🏁 Все выбранные сидеры успешно отработали.")
}
