package dto

import "inventory-system/internal/entities"

// ManagerDashboardDTO — сводка для панелей администратора и менеджера:
// очередь ожидающих заявок и счетчики инвентаря по статусам.
type ManagerDashboardDTO struct {
	PendingRequests  []entities.Request `json:"pending_requests"`
	EquipmentByState map[string]uint64  `json:"equipment_by_status"`
	TotalEquipment   uint64             `json:"total_equipment"`
}

type EngineerDashboardDTO struct {
	AssignedEquipment []entities.Equipment `json:"assigned_equipment"`
	MyRequests        []entities.Request   `json:"my_requests"`
}
