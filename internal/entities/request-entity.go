package entities

import "inventory-system/pkg/types"

type Request struct {
	ID              uint64  `json:"id" db:"id"`
	EquipmentName   string  `json:"equipment_name" db:"equipment_name"`
	Category        string  `json:"category" db:"category"`
	Reason          string  `json:"reason" db:"reason"`
	Priority        string  `json:"priority" db:"priority"`
	RequestedBy     uint64  `json:"requested_by" db:"requested_by"`
	Status          string  `json:"status" db:"status"`
	RejectionReason string  `json:"rejection_reason" db:"rejection_reason"`
	EquipmentID     *uint64 `json:"equipment_id,omitempty" db:"equipment_id"`

	// Имя заявителя, подтягивается JOIN-ом при чтении.
	RequestedByName *string `json:"requested_by_name,omitempty" db:"requested_by_name"`

	types.BaseEntity
}
