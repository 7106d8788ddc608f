package entities

import "inventory-system/pkg/types"

type Field struct {
	ID       uint64 `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location" db:"location"`

	Equipment []Equipment `json:"equipment,omitempty" db:"-"`

	types.BaseEntity
}
