package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category" validate:"required"`
	Status       string  `json:"status" validate:"omitempty"`
	LocationType string  `json:"location_type" validate:"omitempty"`
	AssignedTo   *uint64 `json:"assigned_to" validate:"omitempty,gt=0"`
	Notes        string  `json:"notes"`
}

// UpdateEquipmentDTO — частичное обновление: изменяются только поля,
// присутствующие в теле запроса.
type UpdateEquipmentDTO struct {
	Status     null.String `json:"status"`
	AssignedTo null.Uint64 `json:"assigned_to"`
	Notes      null.String `json:"notes"`
}

type AssignEquipmentDTO struct {
	EquipmentID uint64 `json:"equipment_id" validate:"required,gt=0"`
	EngineerID  uint64 `json:"engineer_id" validate:"required,gt=0"`
}
