package services

import (
	"context"
	"testing"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRequestServiceForTest(requestRepo *fakeRequestRepo, equipmentRepo *fakeEquipmentRepo, historyRepo *fakeHistoryRepo) RequestServiceInterface {
	return NewRequestService(requestRepo, equipmentRepo, historyRepo, &fakeTxManager{}, zap.NewNop())
}

func engineerActor() *entities.User {
	return &entities.User{ID: 3, Username: "engineer", Role: constants.RoleEngineer}
}

func managerActor() *entities.User {
	return &entities.User{ID: 2, Username: "manager", Role: constants.RoleManager}
}

func TestSubmitRequest_CreatesPending(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	svc := newRequestServiceForTest(requestRepo, newFakeEquipmentRepo(), newFakeHistoryRepo())

	request, err := svc.SubmitRequest(context.Background(), dto.CreateRequestDTO{
		EquipmentName: "Осциллограф Rigol DS1054Z",
		Category:      "Measurement",
		Reason:        "Диагностика контроллеров на объекте",
		Priority:      "High",
	}, engineerActor())

	require.NoError(t, err)
	assert.Equal(t, constants.RequestStatusPending, request.Status)
	assert.Equal(t, uint64(3), request.RequestedBy)
	assert.Empty(t, request.RejectionReason)
	assert.Nil(t, request.EquipmentID)
}

func TestSubmitRequest_MissingFields(t *testing.T) {
	svc := newRequestServiceForTest(newFakeRequestRepo(), newFakeEquipmentRepo(), newFakeHistoryRepo())

	_, err := svc.SubmitRequest(context.Background(), dto.CreateRequestDTO{
		EquipmentName: "Мультиметр",
		Category:      "",
		Reason:        "нужен",
		Priority:      "High",
	}, engineerActor())

	require.Error(t, err)
	assert.IsType(t, &apperrors.InvalidInputError{}, err)
}

func TestSubmitRequest_InvalidPriority(t *testing.T) {
	svc := newRequestServiceForTest(newFakeRequestRepo(), newFakeEquipmentRepo(), newFakeHistoryRepo())

	_, err := svc.SubmitRequest(context.Background(), dto.CreateRequestDTO{
		EquipmentName: "Мультиметр",
		Category:      "Measurement",
		Reason:        "нужен",
		Priority:      "Critical",
	}, engineerActor())

	require.Error(t, err)
	assert.IsType(t, &apperrors.InvalidInputError{}, err)
}

func TestSubmitRequest_Duplicate(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	svc := newRequestServiceForTest(requestRepo, newFakeEquipmentRepo(), newFakeHistoryRepo())

	payload := dto.CreateRequestDTO{
		EquipmentName: "Мультиметр",
		Category:      "Measurement",
		Reason:        "нужен",
		Priority:      "Low",
	}

	_, err := svc.SubmitRequest(context.Background(), payload, engineerActor())
	require.NoError(t, err)

	_, err = svc.SubmitRequest(context.Background(), payload, engineerActor())
	assert.ErrorIs(t, err, apperrors.ErrDuplicateRequest)
}

func TestApproveRequest_CreatesEquipmentWhenMissing(t *testing.T) {
	requestRepo := newFakeRequestRepo(&entities.Request{
		EquipmentName: "Тепловизор FLIR E8",
		Category:      "Measurement",
		Reason:        "Обследование теплотрасс",
		Priority:      "High",
		RequestedBy:   3,
		Status:        constants.RequestStatusPending,
	})
	equipmentRepo := newFakeEquipmentRepo()
	historyRepo := newFakeHistoryRepo()
	svc := newRequestServiceForTest(requestRepo, equipmentRepo, historyRepo)

	request, err := svc.ApproveRequest(context.Background(), 1, managerActor())
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusApproved, request.Status)
	require.NotNil(t, request.EquipmentID)

	// Создана ровно одна запись инвентаря.
	assert.Equal(t, 1, equipmentRepo.created)
	created, err := equipmentRepo.FindEquipment(context.Background(), *request.EquipmentID)
	require.NoError(t, err)
	assert.Equal(t, "Тепловизор FLIR E8", created.Name)
	assert.Equal(t, constants.EquipmentStatusAvailable, created.Status)
	assert.Equal(t, constants.LocationTypeBase, created.LocationType)
	assert.Equal(t, "Обследование теплотрасс", created.Notes)

	history, err := historyRepo.GetByEquipmentID(context.Background(), *request.EquipmentID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, constants.HistoryActionAddedViaRequest, history[0].Action)
	assert.Equal(t, "manager", history[0].PerformedBy)
}

func TestApproveRequest_LinksExistingEquipment(t *testing.T) {
	requestRepo := newFakeRequestRepo(&entities.Request{
		EquipmentName: "Тепловизор FLIR E8",
		Category:      "Measurement",
		Reason:        "Обследование теплотрасс",
		Priority:      "High",
		RequestedBy:   3,
		Status:        constants.RequestStatusPending,
	})
	equipmentRepo := newFakeEquipmentRepo(&entities.Equipment{
		ID:           7,
		Name:         "Тепловизор FLIR E8",
		Category:     "Measurement",
		Status:       constants.EquipmentStatusAvailable,
		LocationType: constants.LocationTypeBase,
	})
	historyRepo := newFakeHistoryRepo()
	svc := newRequestServiceForTest(requestRepo, equipmentRepo, historyRepo)

	request, err := svc.ApproveRequest(context.Background(), 1, managerActor())
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusApproved, request.Status)
	require.NotNil(t, request.EquipmentID)
	assert.Equal(t, uint64(7), *request.EquipmentID)

	// Дубликат не создан: только запись в журнале существующей единицы.
	assert.Equal(t, 0, equipmentRepo.created)
	history, err := historyRepo.GetByEquipmentID(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, constants.HistoryActionLinkedToRequest, history[0].Action)
	assert.Equal(t, "Обследование теплотрасс", history[0].Notes)
}

func TestApproveRequest_TerminalStatus(t *testing.T) {
	for _, status := range []string{
		constants.RequestStatusApproved,
		constants.RequestStatusDenied,
		constants.RequestStatusRejected,
		constants.RequestStatusLinked,
	} {
		t.Run(status, func(t *testing.T) {
			requestRepo := newFakeRequestRepo(&entities.Request{
				EquipmentName: "Мультиметр",
				Category:      "Measurement",
				Reason:        "нужен",
				Priority:      "Low",
				RequestedBy:   3,
				Status:        status,
			})
			svc := newRequestServiceForTest(requestRepo, newFakeEquipmentRepo(), newFakeHistoryRepo())

			_, err := svc.ApproveRequest(context.Background(), 1, managerActor())
			assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
		})
	}
}

func TestRejectRequest_WithReason(t *testing.T) {
	requestRepo := newFakeRequestRepo(&entities.Request{
		EquipmentName: "Мультиметр",
		Category:      "Measurement",
		Reason:        "нужен",
		Priority:      "Low",
		RequestedBy:   3,
		Status:        constants.RequestStatusPending,
	})
	svc := newRequestServiceForTest(requestRepo, newFakeEquipmentRepo(), newFakeHistoryRepo())

	request, err := svc.RejectRequest(context.Background(), 1, "Аналог уже есть на складе", managerActor())
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusRejected, request.Status)
	assert.Equal(t, "Аналог уже есть на складе", request.RejectionReason)
}

func TestRejectRequest_EmptyReasonFallback(t *testing.T) {
	requestRepo := newFakeRequestRepo(&entities.Request{
		EquipmentName: "Мультиметр",
		Category:      "Measurement",
		Reason:        "нужен",
		Priority:      "Low",
		RequestedBy:   3,
		Status:        constants.RequestStatusPending,
	})
	svc := newRequestServiceForTest(requestRepo, newFakeEquipmentRepo(), newFakeHistoryRepo())

	request, err := svc.RejectRequest(context.Background(), 1, "", managerActor())
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusRejected, request.Status)
	assert.Equal(t, constants.RejectionReasonFallback, request.RejectionReason)
}

func TestDenyRequest(t *testing.T) {
	requestRepo := newFakeRequestRepo(&entities.Request{
		EquipmentName: "Мультиметр",
		Category:      "Measurement",
		Reason:        "нужен",
		Priority:      "Low",
		RequestedBy:   3,
		Status:        constants.RequestStatusPending,
	})
	svc := newRequestServiceForTest(requestRepo, newFakeEquipmentRepo(), newFakeHistoryRepo())

	request, err := svc.DenyRequest(context.Background(), 1, &entities.User{ID: 1, Username: "admin", Role: constants.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusDenied, request.Status)
	assert.Empty(t, request.RejectionReason)
}

func TestLinkEquipment(t *testing.T) {
	requestRepo := newFakeRequestRepo(&entities.Request{
		EquipmentName: "Мультиметр",
		Category:      "Measurement",
		Reason:        "нужен",
		Priority:      "Low",
		RequestedBy:   3,
		Status:        constants.RequestStatusPending,
	})
	equipmentRepo := newFakeEquipmentRepo(&entities.Equipment{
		ID:   4,
		Name: "Fluke 87V",
	})
	svc := newRequestServiceForTest(requestRepo, equipmentRepo, newFakeHistoryRepo())

	request, err := svc.LinkEquipment(context.Background(), 1, "Fluke 87V", managerActor())
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusLinked, request.Status)
	require.NotNil(t, request.EquipmentID)
	assert.Equal(t, uint64(4), *request.EquipmentID)
}

func TestLinkEquipment_UnknownName(t *testing.T) {
	requestRepo := newFakeRequestRepo(&entities.Request{
		EquipmentName: "Мультиметр",
		Category:      "Measurement",
		Reason:        "нужен",
		Priority:      "Low",
		RequestedBy:   3,
		Status:        constants.RequestStatusPending,
	})
	svc := newRequestServiceForTest(requestRepo, newFakeEquipmentRepo(), newFakeHistoryRepo())

	_, err := svc.LinkEquipment(context.Background(), 1, "Несуществующее имя", managerActor())
	assert.ErrorIs(t, err, apperrors.ErrEquipmentNotFound)

	// Заявка осталась нетронутой.
	request, findErr := requestRepo.FindRequest(context.Background(), 1)
	require.NoError(t, findErr)
	assert.Equal(t, constants.RequestStatusPending, request.Status)
}

func TestGetRequestsByStatus_InvalidStatus(t *testing.T) {
	svc := newRequestServiceForTest(newFakeRequestRepo(), newFakeEquipmentRepo(), newFakeHistoryRepo())

	_, err := svc.GetRequestsByStatus(context.Background(), "Unknown")
	require.Error(t, err)
	assert.IsType(t, &apperrors.InvalidInputError{}, err)
}
