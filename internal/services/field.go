package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type FieldServiceInterface interface {
	GetFields(ctx context.Context) ([]entities.Field, error)
	CreateField(ctx context.Context, payload dto.CreateFieldDTO) (*entities.Field, error)
	AttachEquipment(ctx context.Context, fieldID uint64, payload dto.AttachEquipmentDTO) (*entities.Field, error)
}

type FieldService struct {
	fieldRepo     repositories.FieldRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewFieldService(
	fieldRepo repositories.FieldRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) FieldServiceInterface {
	return &FieldService{
		fieldRepo:     fieldRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// GetFields возвращает объекты вместе с привязанным оборудованием.
func (s *FieldService) GetFields(ctx context.Context) ([]entities.Field, error) {
	fields, err := s.fieldRepo.GetFields(ctx)
	if err != nil {
		return nil, err
	}

	for i := range fields {
		equipment, err := s.fieldRepo.GetFieldEquipment(ctx, fields[i].ID)
		if err != nil {
			return nil, err
		}
		fields[i].Equipment = equipment
	}

	return fields, nil
}

func (s *FieldService) CreateField(ctx context.Context, payload dto.CreateFieldDTO) (*entities.Field, error) {
	field := &entities.Field{
		Name:     payload.Name,
		Location: payload.Location,
	}

	id, err := s.fieldRepo.CreateField(ctx, field)
	if err != nil {
		s.logger.Error("CreateField: не удалось создать объект", zap.Error(err))
		return nil, err
	}

	return s.fieldRepo.FindField(ctx, id)
}

func (s *FieldService) AttachEquipment(ctx context.Context, fieldID uint64, payload dto.AttachEquipmentDTO) (*entities.Field, error) {
	field, err := s.fieldRepo.FindField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	if _, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}

	if err := s.fieldRepo.AttachEquipment(ctx, fieldID, payload.EquipmentID); err != nil {
		return nil, err
	}

	equipment, err := s.fieldRepo.GetFieldEquipment(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	field.Equipment = equipment

	return field, nil
}
