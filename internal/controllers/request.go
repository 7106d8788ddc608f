package controllers

import (
	"net/http"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(
	requestService services.RequestServiceInterface,
	logger *zap.Logger,
) *RequestController {
	return &RequestController{
		requestService: requestService,
		logger:         logger,
	}
}

func (ctrl *RequestController) GetRequests(c echo.Context) error {
	filter := utils.ParseFilterFromQuery(c.QueryParams())

	requests, total, err := ctrl.requestService.GetRequests(c.Request().Context(), filter)
	if err != nil {
		ctrl.logger.Error("GetRequests: ошибка получения списка", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, requests, "Список заявок успешно получен", http.StatusOK, total)
}

func (ctrl *RequestController) GetPendingRequests(c echo.Context) error {
	requests, err := ctrl.requestService.GetRequestsByStatus(c.Request().Context(), constants.RequestStatusPending)
	if err != nil {
		ctrl.logger.Error("GetPendingRequests: ошибка получения списка", zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, requests, "Ожидающие заявки успешно получены", http.StatusOK)
}

// GetMyRequests возвращает заявки текущего пользователя, новые первыми.
func (ctrl *RequestController) GetMyRequests(c echo.Context) error {
	actor, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	requests, err := ctrl.requestService.GetMyRequests(c.Request().Context(), actor)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, requests, "Ваши заявки успешно получены", http.StatusOK)
}

func (ctrl *RequestController) FindRequest(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.requestService.FindRequest(c.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, request, "Заявка успешно получена", http.StatusOK)
}

func (ctrl *RequestController) SubmitRequest(c echo.Context) error {
	var payload dto.CreateRequestDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("SubmitRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("Неверный формат данных заявки"), ctrl.logger)
	}

	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	actor, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.requestService.SubmitRequest(c.Request().Context(), payload, actor)
	if err != nil {
		ctrl.logger.Error("SubmitRequest: ошибка создания заявки",
			zap.Uint64("userID", actor.ID), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, request, "Заявка успешно создана", http.StatusCreated)
}

func (ctrl *RequestController) ApproveRequest(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	actor, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.requestService.ApproveRequest(c.Request().Context(), id, actor)
	if err != nil {
		ctrl.logger.Error("ApproveRequest: ошибка одобрения заявки",
			zap.Uint64("requestID", id), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, request, "Заявка успешно одобрена", http.StatusOK)
}

func (ctrl *RequestController) RejectRequest(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.RejectRequestDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("Неверный формат данных"), ctrl.logger)
	}

	actor, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.requestService.RejectRequest(c.Request().Context(), id, payload.Reason, actor)
	if err != nil {
		ctrl.logger.Error("RejectRequest: ошибка отклонения заявки",
			zap.Uint64("requestID", id), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, request, "Заявка отклонена", http.StatusOK)
}

func (ctrl *RequestController) DenyRequest(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	actor, err := utils.GetUserFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	request, err := ctrl.requestService.DenyRequest(c.Request().Context(), id, actor)
	if err != nil {
		ctrl.logger.Error("DenyRequest: ошибка отказа по заявке",
			zap.Uint64("requestID", id), zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, request, "По заявке принят отказ", http.StatusOK)
}

func (ctrl *RequestController) LinkEquipment(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var payload dto.LinkEquipmentDTO
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

	request, err := ctrl.requestService.LinkEquipment(c.Request().Context(), id, payload.EquipmentName, actor)
	if err != nil {
		ctrl.logger.Error("LinkEquipment: ошибка привязки оборудования",
			zap.Uint64("requestID", id),
			zap.String("equipmentName", payload.EquipmentName),
			zap.Error(err))
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, request, "Оборудование привязано к заявке", http.StatusOK)
}
