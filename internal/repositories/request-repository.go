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
	"go.uber.org/zap"
)

const requestTable = "requests"
const requestFields = "r.id, r.equipment_name, r.category, r.reason, r.priority, r.requested_by, r.status, r.rejection_reason, r.equipment_id, u.username AS requested_by_name, r.created_at, r.updated_at"

var requestListAllowedFields = map[string]string{
	"status":       "r.status",
	"priority":     "r.priority",
	"category":     "r.category",
	"requested_by": "r.requested_by",
	"created_at":   "r.created_at",
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.Request, error)
	FindRequestForUpdate(ctx context.Context, id uint64) (*entities.Request, error)
	GetByRequester(ctx context.Context, userID uint64) ([]entities.Request, error)
	GetByStatus(ctx context.Context, status string) ([]entities.Request, error)
	CreateRequest(ctx context.Context, request *entities.Request) (uint64, error)
	UpdateRequest(ctx context.Context, id uint64, request *entities.Request) error
	ExistsDuplicate(ctx context.Context, request *entities.Request) (bool, error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *RequestRepository) scanRequest(row pgx.Row) (*entities.Request, error) {
	var request entities.Request
	err := row.Scan(
		&request.ID,
		&request.EquipmentName,
		&request.Category,
		&request.Reason,
		&request.Priority,
		&request.RequestedBy,
		&request.Status,
		&request.RejectionReason,
		&request.EquipmentID,
		&request.RequestedByName,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepository) collectRequests(rows pgx.Rows) ([]entities.Request, error) {
	defer rows.Close()

	var list []entities.Request
	for rows.Next() {
		var request entities.Request
		if err := rows.Scan(
			&request.ID,
			&request.EquipmentName,
			&request.Category,
			&request.Reason,
			&request.Priority,
			&request.RequestedBy,
			&request.Status,
			&request.RejectionReason,
			&request.EquipmentID,
			&request.RequestedByName,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, request)
	}

	return list, rows.Err()
}

func (r *RequestRepository) GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error) {
	builder := bd.Psql.
		Select(requestFields).
		From(requestTable + " r").
		LeftJoin("users u ON u.id = r.requested_by")

	builder = bd.ApplyListParams(builder, filter, requestListAllowedFields)
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("r.created_at DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}

	list, err := r.collectRequests(rows)
	if err != nil {
		return nil, 0, err
	}

	countBuilder := bd.Psql.Select("COUNT(*)").From(requestTable + " r")
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, requestListAllowedFields)

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

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	query := `
		SELECT ` + requestFields + `
		FROM ` + requestTable + ` r
			LEFT JOIN users u ON u.id = r.requested_by
		WHERE r.id = $1
	`
	return r.scanRequest(queryEngine(ctx, r.storage).QueryRow(ctx, query, id))
}

// FindRequestForUpdate читает заявку с блокировкой строки. Вызывается
// только внутри транзакции: два конкурентных перехода статуса одной заявки
// выполняются последовательно.
func (r *RequestRepository) FindRequestForUpdate(ctx context.Context, id uint64) (*entities.Request, error) {
	query := `
		SELECT ` + requestFields + `
		FROM ` + requestTable + ` r
			LEFT JOIN users u ON u.id = r.requested_by
		WHERE r.id = $1
		FOR UPDATE OF r
	`
	return r.scanRequest(queryEngine(ctx, r.storage).QueryRow(ctx, query, id))
}

func (r *RequestRepository) GetByRequester(ctx context.Context, userID uint64) ([]entities.Request, error) {
	query := `
		SELECT ` + requestFields + `
		FROM ` + requestTable + ` r
			LEFT JOIN users u ON u.id = r.requested_by
		WHERE r.requested_by = $1
		ORDER BY r.created_at DESC
	`
	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.collectRequests(rows)
}

func (r *RequestRepository) GetByStatus(ctx context.Context, status string) ([]entities.Request, error) {
	query := `
		SELECT ` + requestFields + `
		FROM ` + requestTable + ` r
			LEFT JOIN users u ON u.id = r.requested_by
		WHERE r.status = $1
		ORDER BY r.created_at DESC
	`
	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	return r.collectRequests(rows)
}

func (r *RequestRepository) CreateRequest(ctx context.Context, request *entities.Request) (uint64, error) {
	query := `
		INSERT INTO ` + requestTable + ` (equipment_name, category, reason, priority, requested_by, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id uint64
	err := queryEngine(ctx, r.storage).QueryRow(ctx, query,
		request.EquipmentName,
		request.Category,
		request.Reason,
		request.Priority,
		request.RequestedBy,
		request.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateRequest пишет изменяемые поля заявки; updated_at обновляется
// при каждой мутации.
func (r *RequestRepository) UpdateRequest(ctx context.Context, id uint64, request *entities.Request) error {
	query := `
		UPDATE ` + requestTable + `
		SET status = $1, rejection_reason = $2, equipment_id = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`

	result, err := queryEngine(ctx, r.storage).Exec(ctx, query,
		request.Status,
		request.RejectionReason,
		request.EquipmentID,
		id,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

// ExistsDuplicate проверяет, есть ли у того же заявителя заявка
// с идентичными {equipment_name, category, reason, priority}.
func (r *RequestRepository) ExistsDuplicate(ctx context.Context, request *entities.Request) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ` + requestTable + `
			WHERE requested_by = $1
				AND equipment_name = $2
				AND category = $3
				AND reason = $4
				AND priority = $5
		)
	`

	var exists bool
	err := queryEngine(ctx, r.storage).QueryRow(ctx, query,
		request.RequestedBy,
		request.EquipmentName,
		request.Category,
		request.Reason,
		request.Priority,
	).Scan(&exists)
	return exists, err
}
