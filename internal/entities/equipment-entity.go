package entities

import (
	"inventory-system/pkg/types"
)

type Equipment struct {
	ID           uint64  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Category     string  `json:"category" db:"category"`
	Status       string  `json:"status" db:"status"`
	LocationType string  `json:"location_type" db:"location_type"`
	AssignedTo   *uint64 `json:"assigned_to" db:"assigned_to"`
	Notes        string  `json:"notes" db:"notes"`

	// Имя назначенного инженера, подтягивается JOIN-ом при чтении.
	AssignedToName *string `json:"assigned_to_name,omitempty" db:"assigned_to_name"`

	History []EquipmentHistory `json:"history,omitempty" db:"-"`

	types.BaseEntity
}
