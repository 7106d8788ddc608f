package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/internal/entities"
	"inventory-system/internal/infrastructure/bd"
)

type ReportRepositoryInterface interface {
	GetEquipmentReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

func (r *ReportRepository) baseBuilder(filter entities.ReportFilter) sq.SelectBuilder {
	builder := bd.Psql.
		Select(
			"e.id AS equipment_id",
			"e.name",
			"e.category",
			"e.status",
			"e.location_type",
			"u.username AS assigned_to",
			"NULLIF(e.notes, '') AS notes",
			"COUNT(h.id) AS history_count",
			"(SELECT lh.action FROM equipment_history lh WHERE lh.equipment_id = e.id ORDER BY lh.id DESC LIMIT 1) AS last_action",
			"MAX(h.created_at) AS last_action_at",
			"e.created_at",
		).
		From("equipments e").
		LeftJoin("users u ON u.id = e.assigned_to").
		LeftJoin("equipment_history h ON h.equipment_id = e.id").
		GroupBy("e.id", "u.username")

	if len(filter.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"e.status": filter.Statuses})
	}
	if len(filter.Categories) > 0 {
		builder = builder.Where(sq.Eq{"e.category": filter.Categories})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(sq.GtOrEq{"e.created_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		builder = builder.Where(sq.LtOrEq{"e.created_at": *filter.DateTo})
	}

	return builder
}

func (r *ReportRepository) GetEquipmentReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, uint64, error) {
	builder := r.baseBuilder(filter).OrderBy("e.id")

	if filter.PerPage > 0 {
		builder = builder.Limit(uint64(filter.PerPage))
		if filter.Page > 1 {
			builder = builder.Offset(uint64((filter.Page - 1) * filter.PerPage))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []entities.ReportItem
	for rows.Next() {
		var item entities.ReportItem
		if err := rows.Scan(
			&item.EquipmentID,
			&item.Name,
			&item.Category,
			&item.Status,
			&item.LocationType,
			&item.AssignedTo,
			&item.Notes,
			&item.HistoryCount,
			&item.LastAction,
			&item.LastActionAt,
			&item.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := bd.Psql.
		Select("COUNT(*)").
		FromSelect(r.baseBuilder(filter), "report").
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := queryEngine(ctx, r.storage).QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
