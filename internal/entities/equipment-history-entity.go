package entities

import "time"

// EquipmentHistory — запись журнала оборудования. Журнал append-only:
// записи никогда не изменяются и не удаляются (кроме каскадного удаления
// вместе с самим оборудованием).
type EquipmentHistory struct {
	ID          uint64    `json:"id" db:"id"`
	EquipmentID uint64    `json:"equipment_id" db:"equipment_id"`
	Action      string    `json:"action" db:"action"`
	PerformedBy string    `json:"performed_by" db:"performed_by"`
	AssignedTo  *uint64   `json:"assigned_to,omitempty" db:"assigned_to"`
	Notes       string    `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"date" db:"created_at"`
}
