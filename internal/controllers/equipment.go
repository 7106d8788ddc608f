package controllers

import (
	"net/http"
	"strconv"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		logger:           logger,
	}
}

func parseIDParam(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewInvalidInputError("Некорректный ID в пути запроса")
	}
	return id, nil
}

func (ctrl *EquipmentController) GetEquipments(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams())

	equipments, total, err := ctrl.equipmentService.GetEquipments(c.Request().Context(), filter)
	if err != nil {
		ctrl.logger.Error("GetEquipments: ошибка получения списка", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, equipments, "Список оборудования успешно получен", http.StatusOK, total)
}

func (ctrl *EquipmentController) FindEquipment(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	equipment, err := ctrl.equipmentService.FindEquipment(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, equipment, "Оборудование успешно получено", http.StatusOK)
}

func (ctrl *EquipmentController) CreateEquipment(c echo.Context) error {
	var payload dto.CreateEquipmentDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("CreateEquipment: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("Неверный формат данных"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	actor, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	equipment, err := ctrl.equipmentService.CreateEquipment(c.Request().Context(), payload, actor)
	if err != nil {
		ctrl.logger.Error("CreateEquipment: ошибка создания",
			zap.String("name", payload.Name), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, equipment, "Оборудование успешно добавлено", http.StatusCreated)
}

func (ctrl *EquipmentController) AssignEquipment(c echo.Context) error {
	var payload dto.AssignEquipmentDTO

	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("Неверный формат данных"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	actor, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	equipment, err := ctrl.equipmentService.AssignEquipment(c.Request().Context(), payload, actor)
	if err != nil {
		ctrl.logger.Error("AssignEquipment: ошибка назначения",
			zap.Uint64("equipmentID", payload.EquipmentID),
			zap.Uint64("engineerID", payload.EngineerID),
			zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, equipment, "Оборудование успешно назначено", http.StatusOK)
}

func (ctrl *EquipmentController) UpdateEquipment(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("Неверный формат данных"), ctrl.logger)
	}

	actor, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	equipment, err := ctrl.equipmentService.UpdateEquipment(c.Request().Context(), id, payload, actor)
	if err != nil {
		ctrl.logger.Error("UpdateEquipment: ошибка обновления", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, equipment, "Оборудование успешно обновлено", http.StatusOK)
}

func (ctrl *EquipmentController) DeleteEquipment(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if err := ctrl.equipmentService.DeleteEquipment(c.Request().Context(), id); err != nil {
		ctrl.logger.Error("DeleteEquipment: ошибка удаления", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, nil, "Оборудование успешно удалено", http.StatusOK)
}

// GetMyEquipment возвращает оборудование, закрепленное за текущим инженером.
func (ctrl *EquipmentController) GetMyEquipment(c echo.Context) error {
	actor, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	equipments, err := ctrl.equipmentService.GetAssignedEquipment(c.Request().Context(), actor.ID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, equipments, "Закрепленное оборудование успешно получено", http.StatusOK)
}
