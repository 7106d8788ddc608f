package dto

type CreateFieldDTO struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

type AttachEquipmentDTO struct {
	EquipmentID uint64 `json:"equipment_id" validate:"required,gt=0"`
}
