package repositories

import (
	"context"
	"errors"

	"inventory-system/internal/entities"
	"inventory-system/internal/infrastructure/bd"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentTable = "equipments"
const equipmentFields = "e.id, e.name, e.category, e.status, e.location_type, e.assigned_to, e.notes, u.username AS assigned_to_name, e.created_at, e.updated_at"

// equipmentListAllowedFields — поля, по которым разрешена фильтрация
// и сортировка списка.
var equipmentListAllowedFields = map[string]string{
	"name":          "e.name",
	"category":      "e.category",
	"status":        "e.status",
	"location_type": "e.location_type",
	"assigned_to":   "e.assigned_to",
	"created_at":    "e.created_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindEquipmentByName(ctx context.Context, name string) (*entities.Equipment, error)
	FindByAssignee(ctx context.Context, userID uint64) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment *entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, equipment *entities.Equipment) error
	DeleteEquipment(ctx context.Context, id uint64) error
	LockEquipmentName(ctx context.Context, name string) error
	CountByStatus(ctx context.Context) (map[string]uint64, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
	}
}

func (r *EquipmentRepository) scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var equipment entities.Equipment
	err := row.Scan(
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
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, err
	}
	return &equipment, nil
}

func (r *EquipmentRepository) collectEquipments(rows pgx.Rows) ([]entities.Equipment, error) {
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

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	builder := bd.Psql.
		Select(equipmentFields).
		From(equipmentTable + " e").
		LeftJoin("users u ON u.id = e.assigned_to")

	builder = bd.ApplyListParams(builder, filter, equipmentListAllowedFields)
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("e.id")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	list, err := r.collectEquipments(rows)
	if err != nil {
		return nil, 0, err
	}

	countBuilder := bd.Psql.Select("COUNT(*)").From(equipmentTable + " e")
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, equipmentListAllowedFields)

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := queryEngine(ctx, r.storage).QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query := `
		SELECT ` + equipmentFields + `
		FROM ` + equipmentTable + ` e
			LEFT JOIN users u ON u.id = e.assigned_to
		WHERE e.id = $1
	`
	return r.scanEquipment(queryEngine(ctx, r.storage).QueryRow(ctx, query, id))
}

// FindEquipmentByName ищет оборудование по точному совпадению имени —
// используется при связывании заявок с инвентарем.
func (r *EquipmentRepository) FindEquipmentByName(ctx context.Context, name string) (*entities.Equipment, error) {
	query := `
		SELECT ` + equipmentFields + `
		FROM ` + equipmentTable + ` e
			LEFT JOIN users u ON u.id = e.assigned_to
		WHERE e.name = $1
		ORDER BY e.id
		LIMIT 1
	`
	return r.scanEquipment(queryEngine(ctx, r.storage).QueryRow(ctx, query, name))
}

func (r *EquipmentRepository) FindByAssignee(ctx context.Context, userID uint64) ([]entities.Equipment, error) {
	query := `
		SELECT ` + equipmentFields + `
		FROM ` + equipmentTable + ` e
			LEFT JOIN users u ON u.id = e.assigned_to
		WHERE e.assigned_to = $1
		ORDER BY e.id
	`
	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.collectEquipments(rows)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment *entities.Equipment) (uint64, error) {
	query := `
		INSERT INTO ` + equipmentTable + ` (name, category, status, location_type, assigned_to, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id uint64
	err := queryEngine(ctx, r.storage).QueryRow(ctx, query,
		equipment.Name,
		equipment.Category,
		equipment.Status,
		equipment.LocationType,
		equipment.AssignedTo,
		equipment.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, equipment *entities.Equipment) error {
	query := `
		UPDATE ` + equipmentTable + `
		SET status = $1, assigned_to = $2, notes = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`

	result, err := queryEngine(ctx, r.storage).Exec(ctx, query,
		equipment.Status,
		equipment.AssignedTo,
		equipment.Notes,
		id,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := queryEngine(ctx, r.storage).Exec(ctx, "DELETE FROM "+equipmentTable+" WHERE id = $1", id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}

	return nil
}

// LockEquipmentName берет advisory-блокировку на имя оборудования до конца
// текущей транзакции. Два конкурентных approve по одному имени
// сериализуются и не создают дубликаты.
func (r *EquipmentRepository) LockEquipmentName(ctx context.Context, name string) error {
	_, err := queryEngine(ctx, r.storage).Exec(ctx,
		"SELECT pg_advisory_xact_lock(hashtext(lower($1)))", name)
	return err
}

func (r *EquipmentRepository) CountByStatus(ctx context.Context) (map[string]uint64, error) {
	rows, err := queryEngine(ctx, r.storage).Query(ctx,
		"SELECT status, COUNT(*) FROM "+equipmentTable+" GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]uint64)
	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
