package repositories

import (
	"context"

	"inventory-system/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EquipmentHistoryRepositoryInterface interface {
	AddEntry(ctx context.Context, entry *entities.EquipmentHistory) error
	GetByEquipmentID(ctx context.Context, equipmentID uint64) ([]entities.EquipmentHistory, error)
}

type EquipmentHistoryRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentHistoryRepository(storage *pgxpool.Pool) EquipmentHistoryRepositoryInterface {
	return &EquipmentHistoryRepository{storage: storage}
}

// AddEntry дописывает запись в журнал. Журнал append-only — методов
// изменения или удаления записей у репозитория нет.
func (r *EquipmentHistoryRepository) AddEntry(ctx context.Context, entry *entities.EquipmentHistory) error {
	query := `
		INSERT INTO equipment_history (equipment_id, action, performed_by, assigned_to, notes)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := queryEngine(ctx, r.storage).Exec(ctx, query,
		entry.EquipmentID,
		entry.Action,
		entry.PerformedBy,
		entry.AssignedTo,
		entry.Notes,
	)
	return err
}

func (r *EquipmentHistoryRepository) GetByEquipmentID(ctx context.Context, equipmentID uint64) ([]entities.EquipmentHistory, error) {
	query := `
		SELECT id, equipment_id, action, performed_by, assigned_to, notes, created_at
		FROM equipment_history
		WHERE equipment_id = $1
		ORDER BY id
	`

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []entities.EquipmentHistory
	for rows.Next() {
		var entry entities.EquipmentHistory
		if err := rows.Scan(
			&entry.ID,
			&entry.EquipmentID,
			&entry.Action,
			&entry.PerformedBy,
			&entry.AssignedTo,
			&entry.Notes,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	return history, rows.Err()
}
