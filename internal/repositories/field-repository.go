package repositories

import (
	"context"
	"errors"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FieldRepositoryInterface interface {
	GetFields(ctx context.Context) ([]entities.Field, error)
	FindField(ctx context.Context, id uint64) (*entities.Field, error)
	CreateField(ctx context.Context, field *entities.Field) (uint64, error)
	AttachEquipment(ctx context.Context, fieldID uint64, equipmentID uint64) error
	GetFieldEquipment(ctx context.Context, fieldID uint64) ([]entities.Equipment, error)
}

type FieldRepository struct {
	storage *pgxpool.Pool
}

func NewFieldRepository(storage *pgxpool.Pool) FieldRepositoryInterface {
	return &FieldRepository{storage: storage}
}

func (r *FieldRepository) GetFields(ctx context.Context) ([]entities.Field, error) {
	rows, err := queryEngine(ctx, r.storage).Query(ctx,
		"SELECT id, name, location, created_at, updated_at FROM fields ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []entities.Field
	for rows.Next() {
		var field entities.Field
		if err := rows.Scan(
			&field.ID,
			&field.Name,
			&field.Location,
			&field.CreatedAt,
			&field.UpdatedAt,
		); err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return fields, rows.Err()
}

func (r *FieldRepository) FindField(ctx context.Context, id uint64) (*entities.Field, error) {
	var field entities.Field
	err := queryEngine(ctx, r.storage).QueryRow(ctx,
		"SELECT id, name, location, created_at, updated_at FROM fields WHERE id = $1", id).Scan(
		&field.ID,
		&field.Name,
		&field.Location,
		&field.CreatedAt,
		&field.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &field, nil
}

func (r *FieldRepository) CreateField(ctx context.Context, field *entities.Field) (uint64, error) {
	var id uint64
	err := queryEngine(ctx, r.storage).QueryRow(ctx,
		"INSERT INTO fields (name, location) VALUES ($1, $2) RETURNING id",
		field.Name, field.Location).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AttachEquipment добавляет оборудование в конец списка объекта.
// Повторное добавление той же пары молча игнорируется.
func (r *FieldRepository) AttachEquipment(ctx context.Context, fieldID uint64, equipmentID uint64) error {
	query := `
		INSERT INTO field_equipments (field_id, equipment_id, position)
		SELECT $1, $2, COALESCE(MAX(position), 0) + 1
		FROM field_equipments
		WHERE field_id = $1
		ON CONFLICT (field_id, equipment_id) DO NOTHING
	`
	_, err := queryEngine(ctx, r.storage).Exec(ctx, query, fieldID, equipmentID)
	return err
}

func (r *FieldRepository) GetFieldEquipment(ctx context.Context, fieldID uint64) ([]entities.Equipment, error) {
	query := `
		SELECT ` + equipmentFields + `
		FROM field_equipments fe
			JOIN ` + equipmentTable + ` e ON e.id = fe.equipment_id
			LEFT JOIN users u ON u.id = e.assigned_to
		WHERE fe.field_id = $1
		ORDER BY fe.position
	`
	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, fieldID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entities.Equipment
	for rows.Next() {
		var equipment entities.Equipment
		if err := rows.Scan(
			&equipment.ID,
			&equipment.Name,
			&equipment.Category,
			&equipment.Status,
			&equipment.LocationType,
			&equipment.AssignedTo,
			&equipment.Notes,
			&equipment.AssignedToName,
			&equipment.CreatedAt,
			&equipment.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, equipment)
	}

	return list, rows.Err()
}
