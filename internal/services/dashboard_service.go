package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
)

type DashboardServiceInterface interface {
	GetManagerDashboard(ctx context.Context) (*dto.ManagerDashboardDTO, error)
	GetEngineerDashboard(ctx context.Context, actor *entities.User) (*dto.EngineerDashboardDTO, error)
}

type DashboardService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
}

func NewDashboardService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
) DashboardServiceInterface {
	return &DashboardService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
	}
}

// GetManagerDashboard — сводка для администратора и менеджера:
// очередь ожидающих заявок и распределение инвентаря по статусам.
func (s *DashboardService) GetManagerDashboard(ctx context.Context) (*dto.ManagerDashboardDTO, error) {
	pending, err := s.requestRepo.GetByStatus(ctx, constants.RequestStatusPending)
	if err != nil {
		return nil, err
	}

	counts, err := s.equipmentRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total uint64
	for _, count := range counts {
		total += count
	}

	return &dto.ManagerDashboardDTO{
		PendingRequests:  pending,
		EquipmentByState: counts,
		TotalEquipment:   total,
	}, nil
}

func (s *DashboardService) GetEngineerDashboard(ctx context.Context, actor *entities.User) (*dto.EngineerDashboardDTO, error) {
	assigned, err := s.equipmentRepo.FindByAssignee(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	myRequests, err := s.requestRepo.GetByRequester(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	return &dto.EngineerDashboardDTO{
		AssignedEquipment: assigned,
		MyRequests:        myRequests,
	}, nil
}
