package controllers

import (
	"net/http"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type FieldController struct {
	fieldService services.FieldServiceInterface
	logger       *zap.Logger
}

func NewFieldController(fieldService services.FieldServiceInterface, logger *zap.Logger) *FieldController {
	return &FieldController{
		fieldService: fieldService,
		logger:       logger,
	}
}

func (ctrl *FieldController) GetFields(c echo.Context) error {
	fields, err := ctrl.fieldService.GetFields(c.Request().Context())
	if err != nil {
		ctrl.logger.Error("GetFields: ошибка получения списка", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, fields, "Список объектов успешно получен", http.StatusOK)
}

func (ctrl *FieldController) CreateField(c echo.Context) error {
	var payload dto.CreateFieldDTO

	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("Неверный формат данных"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	field, err := ctrl.fieldService.CreateField(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Error("CreateField: ошибка создания", zap.String("name", payload.Name), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, field, "Объект успешно создан", http.StatusCreated)
}

func (ctrl *FieldController) AttachEquipment(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.AttachEquipmentDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("Неверный формат данных"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	field, err := ctrl.fieldService.AttachEquipment(c.Request().Context(), id, payload)
	if err != nil {
		ctrl.logger.Error("AttachEquipment: ошибка привязки оборудования",
			zap.Uint64("fieldID", id),
			zap.Uint64("equipmentID", payload.EquipmentID),
			zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, field, "Оборудование добавлено на объект", http.StatusOK)
}
