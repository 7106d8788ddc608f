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

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*entities.Request, error)
	GetRequestsByStatus(ctx context.Context, status string) ([]entities.Request, error)
	GetMyRequests(ctx context.Context, actor *entities.User) ([]entities.Request, error)
	SubmitRequest(ctx context.Context, payload dto.CreateRequestDTO, actor *entities.User) (*entities.Request, error)
	ApproveRequest(ctx context.Context, id uint64, actor *entities.User) (*entities.Request, error)
	RejectRequest(ctx context.Context, id uint64, reason string, actor *entities.User) (*entities.Request, error)
	DenyRequest(ctx context.Context, id uint64, actor *entities.User) (*entities.Request, error)
	LinkEquipment(ctx context.Context, id uint64, equipmentName string, actor *entities.User) (*entities.Request, error)
}

type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	historyRepo   repositories.EquipmentHistoryRepositoryInterface
	txManager     repositories.TxManagerInterface
	logger        *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	historyRepo repositories.EquipmentHistoryRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		historyRepo:   historyRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error) {
	return s.requestRepo.GetRequests(ctx, filter)
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	return s.requestRepo.FindRequest(ctx, id)
}

func (s *RequestService) GetRequestsByStatus(ctx context.Context, status string) ([]entities.Request, error) {
	if !constants.IsValidRequestStatus(status) {
		return nil, apperrors.NewInvalidInputError("недопустимый статус заявки: %q", status)
	}
	return s.requestRepo.GetByStatus(ctx, status)
}

func (s *RequestService) GetMyRequests(ctx context.Context, actor *entities.User) ([]entities.Request, error) {
	return s.requestRepo.GetByRequester(ctx, actor.ID)
}

// SubmitRequest создает заявку в статусе Pending. Дубликаты с идентичными
// {equipment_name, category, reason, priority} от того же заявителя
// отклоняются — политика единообразная для всех путей создания.
func (s *RequestService) SubmitRequest(ctx context.Context, payload dto.CreateRequestDTO, actor *entities.User) (*entities.Request, error) {
	if payload.EquipmentName == "" || payload.Category == "" || payload.Reason == "" || payload.Priority == "" {
		return nil, apperrors.NewInvalidInputError("поля equipment_name, category, reason и priority обязательны")
	}
	if !constants.IsValidPriority(payload.Priority) {
		return nil, apperrors.NewInvalidInputError("недопустимый приоритет: %q", payload.Priority)
	}

	request := &entities.Request{
		EquipmentName: payload.EquipmentName,
		Category:      payload.Category,
		Reason:        payload.Reason,
		Priority:      payload.Priority,
		RequestedBy:   actor.ID,
		Status:        constants.RequestStatusPending,
	}

	exists, err := s.requestRepo.ExistsDuplicate(ctx, request)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDuplicateRequest
	}

	id, err := s.requestRepo.CreateRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Подана заявка на оборудование",
		zap.Uint64("requestID", id),
		zap.String("equipmentName", payload.EquipmentName),
		zap.Uint64("requestedBy", actor.ID))

	return s.requestRepo.FindRequest(ctx, id)
}

// lockPending читает заявку с блокировкой строки и проверяет, что она
// еще не в терминальном статусе.
func (s *RequestService) lockPending(ctx context.Context, id uint64) (*entities.Request, error) {
	request, err := s.requestRepo.FindRequestForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if constants.IsTerminalRequestStatus(request.Status) {
		return nil, apperrors.ErrInvalidTransition
	}
	return request, nil
}

// ApproveRequest одобряет заявку и согласует ее с инвентарем:
// если оборудования с таким именем нет — создает запись, иначе дописывает
// в журнал существующей запись о связывании. Весь путь выполняется в одной
// транзакции под advisory-блокировкой имени, поэтому два конкурентных
// approve по одному имени не создадут дубликаты.
func (s *RequestService) ApproveRequest(ctx context.Context, id uint64, actor *entities.User) (*entities.Request, error) {
	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.lockPending(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.equipmentRepo.LockEquipmentName(txCtx, request.EquipmentName); err != nil {
			return err
		}

		equipment, err := s.equipmentRepo.FindEquipmentByName(txCtx, request.EquipmentName)
		switch {
		case err == nil:
			// Оборудование уже в инвентаре: только запись в журнале.
			if err := s.historyRepo.AddEntry(txCtx, &entities.EquipmentHistory{
				EquipmentID: equipment.ID,
				Action:      constants.HistoryActionLinkedToRequest,
				PerformedBy: actor.Username,
				Notes:       request.Reason,
			}); err != nil {
				return err
			}
			request.EquipmentID = &equipment.ID
		case err == apperrors.ErrEquipmentNotFound:
			newEquipment := &entities.Equipment{
				Name:         request.EquipmentName,
				Category:     request.Category,
				Status:       constants.EquipmentStatusAvailable,
				LocationType: constants.LocationTypeBase,
				Notes:        request.Reason,
			}
			equipmentID, err := s.equipmentRepo.CreateEquipment(txCtx, newEquipment)
			if err != nil {
				return err
			}
			if err := s.historyRepo.AddEntry(txCtx, &entities.EquipmentHistory{
				EquipmentID: equipmentID,
				Action:      constants.HistoryActionAddedViaRequest,
				PerformedBy: actor.Username,
				Notes:       request.Reason,
			}); err != nil {
				return err
			}
			request.EquipmentID = &equipmentID
		default:
			return err
		}

		request.Status = constants.RequestStatusApproved
		return s.requestRepo.UpdateRequest(txCtx, id, request)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Заявка одобрена",
		zap.Uint64("requestID", id), zap.String("performedBy", actor.Username))

	return s.requestRepo.FindRequest(ctx, id)
}

// RejectRequest отклоняет заявку с причиной. Пустая причина заменяется
// фиксированной заглушкой — поле rejection_reason терминальной заявки
// никогда не бывает пустым.
func (s *RequestService) RejectRequest(ctx context.Context, id uint64, reason string, actor *entities.User) (*entities.Request, error) {
	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.lockPending(txCtx, id)
		if err != nil {
			return err
		}

		if reason == "" {
			reason = constants.RejectionReasonFallback
		}

		request.Status = constants.RequestStatusRejected
		request.RejectionReason = reason
		return s.requestRepo.UpdateRequest(txCtx, id, request)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Заявка отклонена",
		zap.Uint64("requestID", id), zap.String("performedBy", actor.Username))

	return s.requestRepo.FindRequest(ctx, id)
}

// DenyRequest — быстрый отказ администратора без указания причины.
func (s *RequestService) DenyRequest(ctx context.Context, id uint64, actor *entities.User) (*entities.Request, error) {
	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.lockPending(txCtx, id)
		if err != nil {
			return err
		}

		request.Status = constants.RequestStatusDenied
		return s.requestRepo.UpdateRequest(txCtx, id, request)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Заявка отказана",
		zap.Uint64("requestID", id), zap.String("performedBy", actor.Username))

	return s.requestRepo.FindRequest(ctx, id)
}

// LinkEquipment связывает заявку с существующим оборудованием по имени.
func (s *RequestService) LinkEquipment(ctx context.Context, id uint64, equipmentName string, actor *entities.User) (*entities.Request, error) {
	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		request, err := s.lockPending(txCtx, id)
		if err != nil {
			return err
		}

		equipment, err := s.equipmentRepo.FindEquipmentByName(txCtx, equipmentName)
		if err != nil {
			return err
		}

		request.EquipmentID = &equipment.ID
		request.Status = constants.RequestStatusLinked
		return s.requestRepo.UpdateRequest(txCtx, id, request)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Заявка связана с оборудованием",
		zap.Uint64("requestID", id),
		zap.String("equipmentName", equipmentName),
		zap.String("performedBy", actor.Username))

	return s.requestRepo.FindRequest(ctx, id)
}
