package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// ReportItem — строка инвентаризационного отчета по оборудованию.
type ReportItem struct {
	EquipmentID  uint64      `json:"equipment_id" db:"equipment_id"`
	Name         string      `json:"name" db:"name"`
	Category     string      `json:"category" db:"category"`
	Status       string      `json:"status" db:"status"`
	LocationType string      `json:"location_type" db:"location_type"`
	AssignedTo   null.String `json:"assigned_to" db:"assigned_to"`
	Notes        null.String `json:"notes" db:"notes"`
	HistoryCount int64       `json:"history_count" db:"history_count"`
	LastAction   null.String `json:"last_action" db:"last_action"`
	LastActionAt null.Time   `json:"last_action_at" db:"last_action_at"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
}

type ReportFilter struct {
	Statuses   []string
	Categories []string
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	PerPage    int
}
