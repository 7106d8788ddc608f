package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	GetAssignedEquipment(ctx context.Context, userID uint64) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO, actor *entities.User) (*entities.Equipment, error)
	AssignEquipment(ctx context.Context, payload dto.AssignEquipmentDTO, actor *entities.User) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, actor *entities.User) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	historyRepo   repositories.EquipmentHistoryRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	txManager     repositories.TxManagerInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	historyRepo repositories.EquipmentHistoryRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		historyRepo:   historyRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return s.equipmentRepo.GetEquipments(ctx, filter)
}

// FindEquipment возвращает карточку оборудования вместе с журналом.
func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.historyRepo.GetByEquipmentID(ctx, id)
	if err != nil {
		return nil, err
	}
	equipment.History = history

	return equipment, nil
}

func (s *EquipmentService) GetAssignedEquipment(ctx context.Context, userID uint64) ([]entities.Equipment, error) {
	return s.equipmentRepo.FindByAssignee(ctx, userID)
}

// CreateEquipment создает запись инвентаря. Журнал не бывает пустым:
// если оборудование создано без назначения, синтезируется запись
// "Added to Inventory", иначе — "Assigned".
func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO, actor *entities.User) (*entities.Equipment, error) {
	if payload.Name == "" || payload.Category == "" {
		return nil, apperrors.NewInvalidInputError("поля name и category обязательны")
	}

	status := payload.Status
	if status == "" {
		status = constants.EquipmentStatusAvailable
	}
	if !constants.IsValidEquipmentStatus(status) {
		return nil, apperrors.NewInvalidInputError("недопустимый статус оборудования: %q", status)
	}

	locationType := payload.LocationType
	if locationType == "" {
		locationType = constants.LocationTypeBase
	}
	if !constants.IsValidLocationType(locationType) {
		return nil, apperrors.NewInvalidInputError("недопустимый тип размещения: %q", locationType)
	}

	if payload.AssignedTo != nil {
		if _, err := s.userRepo.FindUserByID(ctx, *payload.AssignedTo); err != nil {
			return nil, apperrors.ErrUserNotFound
		}
		status = constants.EquipmentStatusAssigned
	}

	equipment := &entities.Equipment{
		Name:         payload.Name,
		Category:     payload.Category,
		Status:       status,
		LocationType: locationType,
		AssignedTo:   payload.AssignedTo,
		Notes:        payload.Notes,
	}

	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.equipmentRepo.CreateEquipment(txCtx, equipment)
		if err != nil {
			return err
		}
		equipment.ID = id

		entry := &entities.EquipmentHistory{
			EquipmentID: id,
			Action:      constants.HistoryActionAdded,
			PerformedBy: actor.Username,
		}
		if payload.AssignedTo != nil {
			entry.Action = constants.HistoryActionAssigned
			entry.AssignedTo = payload.AssignedTo
			entry.Notes = payload.Notes
		}

		return s.historyRepo.AddEntry(txCtx, entry)
	})
	if err != nil {
		s.logger.Error("CreateEquipment: не удалось создать оборудование", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Оборудование создано",
		zap.Uint64("equipmentID", equipment.ID),
		zap.String("name", equipment.Name),
		zap.String("performedBy", actor.Username))

	return s.FindEquipment(ctx, equipment.ID)
}

// AssignEquipment закрепляет оборудование за инженером и дописывает
// запись "Assigned" в журнал.
func (s *EquipmentService) AssignEquipment(ctx context.Context, payload dto.AssignEquipmentDTO, actor *entities.User) (*entities.Equipment, error) {
	if _, err := s.userRepo.FindUserByID(ctx, payload.EngineerID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		equipment, err := s.equipmentRepo.FindEquipment(txCtx, payload.EquipmentID)
		if err != nil {
			return err
		}

		equipment.Status = constants.EquipmentStatusAssigned
		equipment.AssignedTo = &payload.EngineerID

		if err := s.equipmentRepo.UpdateEquipment(txCtx, payload.EquipmentID, equipment); err != nil {
			return err
		}

		return s.historyRepo.AddEntry(txCtx, &entities.EquipmentHistory{
			EquipmentID: payload.EquipmentID,
			Action:      constants.HistoryActionAssigned,
			PerformedBy: actor.Username,
			AssignedTo:  &payload.EngineerID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Оборудование назначено",
		zap.Uint64("equipmentID", payload.EquipmentID),
		zap.Uint64("engineerID", payload.EngineerID),
		zap.String("performedBy", actor.Username))

	return s.FindEquipment(ctx, payload.EquipmentID)
}

// UpdateEquipment применяет частичное обновление {status, assigned_to, notes}.
// Каждая мутация сопровождается записью в журнале.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, actor *entities.User) (*entities.Equipment, error) {
	if payload.Status.Valid && !constants.IsValidEquipmentStatus(payload.Status.String) {
		return nil, apperrors.NewInvalidInputError("недопустимый статус оборудования: %q", payload.Status.String)
	}

	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		equipment, err := s.equipmentRepo.FindEquipment(txCtx, id)
		if err != nil {
			return err
		}

		entry := &entities.EquipmentHistory{
			EquipmentID: id,
			Action:      constants.HistoryActionUpdated,
			PerformedBy: actor.Username,
		}

		hasChanges := false

		if payload.AssignedTo.Valid && (equipment.AssignedTo == nil || *equipment.AssignedTo != payload.AssignedTo.Uint64) {
			if _, err := s.userRepo.FindUserByID(txCtx, payload.AssignedTo.Uint64); err != nil {
				return apperrors.ErrUserNotFound
			}
			assignee := payload.AssignedTo.Uint64
			equipment.AssignedTo = &assignee
			entry.Action = constants.HistoryActionAssigned
			entry.AssignedTo = &assignee
			hasChanges = true
			// Назначение без явного статуса переводит оборудование в Assigned.
			if !payload.Status.Valid {
				equipment.Status = constants.EquipmentStatusAssigned
			}
		}
		if payload.Status.Valid && equipment.Status != payload.Status.String {
			equipment.Status = payload.Status.String
			hasChanges = true
		}
		if payload.Notes.Valid && equipment.Notes != payload.Notes.String {
			equipment.Notes = payload.Notes.String
			entry.Notes = payload.Notes.String
			hasChanges = true
		}

		// Повторное обновление теми же значениями не раздувает журнал.
		if !hasChanges {
			return nil
		}

		if err := s.equipmentRepo.UpdateEquipment(txCtx, id, equipment); err != nil {
			return err
		}

		return s.historyRepo.AddEntry(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	return s.FindEquipment(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepo.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Оборудование удалено", zap.Uint64("equipmentID", id))
	return nil
}
