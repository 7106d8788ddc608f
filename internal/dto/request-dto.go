package dto

type CreateRequestDTO struct {
	EquipmentName string `json:"equipment_name" validate:"required"`
	Category      string `json:"category" validate:"required"`
	Reason        string `json:"reason" validate:"required"`
	Priority      string `json:"priority" validate:"required"`
}

type RejectRequestDTO struct {
	Reason string `json:"reason"`
}

type LinkEquipmentDTO struct {
	EquipmentName string `json:"equipment_name" validate:"required"`
}
