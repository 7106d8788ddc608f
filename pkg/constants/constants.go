package constants

import "strings"

// Роли пользователей. Каноническое написание — с заглавной буквы,
// все входящие значения нормализуются через ParseRole.
const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEngineer = "Engineer"
)

var Roles = []string{RoleAdmin, RoleManager, RoleEngineer}

// ParseRole приводит строку роли к каноническому виду.
// Сравнение регистронезависимое: "admin" и "Admin" — одна и та же роль.
func ParseRole(raw string) (string, bool) {
	for _, role := range Roles {
		if strings.EqualFold(strings.TrimSpace(raw), role) {
			return role, true
		}
	}
	return "", false
}

// Статусы оборудования.
const (
	EquipmentStatusAvailable   = "Available"
	EquipmentStatusAssigned    = "Assigned"
	EquipmentStatusInUse       = "In Use"
	EquipmentStatusNeedsRepair = "Needs Repair"
	EquipmentStatusRetired     = "Retired"
)

var EquipmentStatuses = []string{
	EquipmentStatusAvailable,
	EquipmentStatusAssigned,
	EquipmentStatusInUse,
	EquipmentStatusNeedsRepair,
	EquipmentStatusRetired,
}

func IsValidEquipmentStatus(s string) bool {
	for _, st := range EquipmentStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Типы размещения оборудования.
const (
	LocationTypeBase  = "Base"
	LocationTypeField = "Field"
)

func IsValidLocationType(s string) bool {
	return s == LocationTypeBase || s == LocationTypeField
}

// Статусы заявок. Pending — начальный, остальные — терминальные.
// Denied и Rejected сознательно разделены: Denied — быстрый отказ администратора
// без указания причины, Rejected — отклонение менеджером с причиной.
const (
	RequestStatusPending  = "Pending"
	RequestStatusApproved = "Approved"
	RequestStatusDenied   = "Denied"
	RequestStatusRejected = "Rejected"
	RequestStatusLinked   = "Linked"
)

var RequestStatuses = []string{
	RequestStatusPending,
	RequestStatusApproved,
	RequestStatusDenied,
	RequestStatusRejected,
	RequestStatusLinked,
}

func IsValidRequestStatus(s string) bool {
	for _, st := range RequestStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// IsTerminalRequestStatus — любой статус кроме Pending терминальный,
// дальнейшие переходы из него запрещены.
func IsTerminalRequestStatus(s string) bool {
	return s != RequestStatusPending
}

// Приоритеты заявок (каноническая схема).
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
	PriorityNormal = "Normal"
)

var RequestPriorities = []string{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityUrgent,
	PriorityNormal,
}

func IsValidPriority(s string) bool {
	for _, p := range RequestPriorities {
		if s == p {
			return true
		}
	}
	return false
}

// Метки действий в истории оборудования. Значения фиксированы,
// по ним строятся отчеты и фильтры.
const (
	HistoryActionAdded           = "Added to Inventory"
	HistoryActionAssigned        = "Assigned"
	HistoryActionUpdated         = "Updated"
	HistoryActionAddedViaRequest = "Added via request approval"
	HistoryActionLinkedToRequest = "Linked to approved request"
)

// RejectionReasonFallback подставляется, если менеджер не указал причину отклонения.
const RejectionReasonFallback = "No reason provided"

// AuthCookieName — имя HTTP-only cookie с access-токеном для браузерных клиентов.
const AuthCookieName = "auth_token"
