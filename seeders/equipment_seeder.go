package seeders

import (
	"context"
	"fmt"
	"log"

	"inventory-system/pkg/constants"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedEquipment struct {
	Name     string
	Category string
}

var defaultEquipment = []seedEquipment{
	{Name: "Fluke 87V Multimeter", Category: "Measurement"},
	{Name: "Dell Latitude 5540", Category: "Laptop"},
	{Name: "Hilti TE 70 Hammer Drill", Category: "Power Tools"},
}

// seedEquipment наполняет инвентарь стартовым набором: каждая позиция
// получает первую запись истории, как при обычном добавлении.
func seedEquipmentItems(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Создание стартового оборудования...")

	for _, item := range defaultEquipment {
		var existingID uint64
		err := db.QueryRow(ctx, "SELECT id FROM equipments WHERE name = $1", item.Name).Scan(&existingID)
		if err == nil {
			log.Printf("    - Оборудование %q уже существует.", item.Name)
			continue
		}

		var equipmentID uint64
		err = db.QueryRow(ctx,
			`INSERT INTO equipments (name, category, status, location_type)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			item.Name, item.Category,
			constants.EquipmentStatusAvailable, constants.LocationTypeBase,
		).Scan(&equipmentID)
		if err != nil {
			return fmt.Errorf("ошибка создания оборудования %q: %w", item.Name, err)
		}

		_, err = db.Exec(ctx,
			`INSERT INTO equipment_history (equipment_id, action, performed_by, notes)
			 VALUES ($1, $2, $3, $4)`,
			equipmentID, constants.HistoryActionAdded, "seeder", "",
		)
		if err != nil {
			return fmt.Errorf("ошибка записи истории для %q: %w", item.Name, err)
		}

		log.Printf("    - Оборудование %q успешно создано.", item.Name)
	}

	return nil
}
