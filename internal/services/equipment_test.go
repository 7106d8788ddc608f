package services

import (
	"context"
	"testing"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEquipmentServiceForTest(equipmentRepo *fakeEquipmentRepo, historyRepo *fakeHistoryRepo, userRepo *fakeUserRepo) EquipmentServiceInterface {
	return NewEquipmentService(equipmentRepo, historyRepo, userRepo, &fakeTxManager{}, zap.NewNop())
}

func adminActor() *entities.User {
	return &entities.User{ID: 1, Username: "admin", Role: constants.RoleAdmin}
}

func TestCreateEquipment_Defaults(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	historyRepo := newFakeHistoryRepo()
	svc := newEquipmentServiceForTest(equipmentRepo, historyRepo, newFakeUserRepo())

	equipment, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:     "Fluke 87V",
		Category: "Measurement",
	}, adminActor())

	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusAvailable, equipment.Status)
	assert.Equal(t, constants.LocationTypeBase, equipment.LocationType)
	assert.Nil(t, equipment.AssignedTo)

	// Журнал никогда не пустой: первая запись появляется при создании.
	require.Len(t, equipment.History, 1)
	assert.Equal(t, constants.HistoryActionAdded, equipment.History[0].Action)
	assert.Equal(t, "admin", equipment.History[0].PerformedBy)
}

func TestCreateEquipment_WithAssignee(t *testing.T) {
	engineer := &entities.User{ID: 3, Username: "engineer", Role: constants.RoleEngineer}
	equipmentRepo := newFakeEquipmentRepo()
	historyRepo := newFakeHistoryRepo()
	svc := newEquipmentServiceForTest(equipmentRepo, historyRepo, newFakeUserRepo(engineer))

	assignee := uint64(3)
	equipment, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:       "Dell Latitude 5540",
		Category:   "Laptop",
		AssignedTo: &assignee,
		Notes:      "Выдан для выезда на объект",
	}, adminActor())

	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusAssigned, equipment.Status)
	require.NotNil(t, equipment.AssignedTo)
	assert.Equal(t, assignee, *equipment.AssignedTo)

	require.Len(t, equipment.History, 1)
	assert.Equal(t, constants.HistoryActionAssigned, equipment.History[0].Action)
	assert.Equal(t, "Выдан для выезда на объект", equipment.History[0].Notes)
}

func TestCreateEquipment_UnknownAssignee(t *testing.T) {
	svc := newEquipmentServiceForTest(newFakeEquipmentRepo(), newFakeHistoryRepo(), newFakeUserRepo())

	assignee := uint64(99)
	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:       "Dell Latitude 5540",
		Category:   "Laptop",
		AssignedTo: &assignee,
	}, adminActor())

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCreateEquipment_InvalidStatus(t *testing.T) {
	svc := newEquipmentServiceForTest(newFakeEquipmentRepo(), newFakeHistoryRepo(), newFakeUserRepo())

	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:     "Fluke 87V",
		Category: "Measurement",
		Status:   "Broken",
	}, adminActor())

	require.Error(t, err)
	assert.IsType(t, &apperrors.InvalidInputError{}, err)
}

func TestAssignEquipment(t *testing.T) {
	engineer := &entities.User{ID: 3, Username: "engineer", Role: constants.RoleEngineer}
	equipmentRepo := newFakeEquipmentRepo(&entities.Equipment{
		ID:           5,
		Name:         "Fluke 87V",
		Category:     "Measurement",
		Status:       constants.EquipmentStatusAvailable,
		LocationType: constants.LocationTypeBase,
	})
	historyRepo := newFakeHistoryRepo()
	svc := newEquipmentServiceForTest(equipmentRepo, historyRepo, newFakeUserRepo(engineer))

	equipment, err := svc.AssignEquipment(context.Background(), dto.AssignEquipmentDTO{
		EquipmentID: 5,
		EngineerID:  3,
	}, adminActor())

	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusAssigned, equipment.Status)
	require.NotNil(t, equipment.AssignedTo)
	assert.Equal(t, uint64(3), *equipment.AssignedTo)

	require.Len(t, equipment.History, 1)
	assert.Equal(t, constants.HistoryActionAssigned, equipment.History[0].Action)
}

func TestAssignEquipment_UnknownEngineer(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(&entities.Equipment{ID: 5, Name: "Fluke 87V"})
	svc := newEquipmentServiceForTest(equipmentRepo, newFakeHistoryRepo(), newFakeUserRepo())

	_, err := svc.AssignEquipment(context.Background(), dto.AssignEquipmentDTO{
		EquipmentID: 5,
		EngineerID:  42,
	}, adminActor())

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateEquipment_ChangesStatusAndAppendsHistory(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(&entities.Equipment{
		ID:           5,
		Name:         "Fluke 87V",
		Status:       constants.EquipmentStatusAvailable,
		LocationType: constants.LocationTypeBase,
	})
	historyRepo := newFakeHistoryRepo()
	svc := newEquipmentServiceForTest(equipmentRepo, historyRepo, newFakeUserRepo())

	equipment, err := svc.UpdateEquipment(context.Background(), 5, dto.UpdateEquipmentDTO{
		Status: null.StringFrom(constants.EquipmentStatusNeedsRepair),
		Notes:  null.StringFrom("Не держит калибровку"),
	}, adminActor())

	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusNeedsRepair, equipment.Status)
	assert.Equal(t, "Не держит калибровку", equipment.Notes)
	require.Len(t, equipment.History, 1)
	assert.Equal(t, constants.HistoryActionUpdated, equipment.History[0].Action)
}

func TestUpdateEquipment_NoopDoesNotGrowHistory(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo(&entities.Equipment{
		ID:           5,
		Name:         "Fluke 87V",
		Status:       constants.EquipmentStatusAvailable,
		LocationType: constants.LocationTypeBase,
		Notes:        "Исправен",
	})
	historyRepo := newFakeHistoryRepo()
	svc := newEquipmentServiceForTest(equipmentRepo, historyRepo, newFakeUserRepo())

	// Обновление теми же значениями не должно плодить записи журнала.
	payload := dto.UpdateEquipmentDTO{
		Status: null.StringFrom(constants.EquipmentStatusAvailable),
		Notes:  null.StringFrom("Исправен"),
	}

	first, err := svc.UpdateEquipment(context.Background(), 5, payload, adminActor())
	require.NoError(t, err)
	second, err := svc.UpdateEquipment(context.Background(), 5, payload, adminActor())
	require.NoError(t, err)

	assert.Len(t, first.History, 0)
	assert.Len(t, second.History, 0)
	assert.Equal(t, first.Status, second.Status)
}

func TestUpdateEquipment_AssignWithoutStatusForcesAssigned(t *testing.T) {
	engineer := &entities.User{ID: 3, Username: "engineer", Role: constants.RoleEngineer}
	equipmentRepo := newFakeEquipmentRepo(&entities.Equipment{
		ID:     5,
		Name:   "Fluke 87V",
		Status: constants.EquipmentStatusAvailable,
	})
	svc := newEquipmentServiceForTest(equipmentRepo, newFakeHistoryRepo(), newFakeUserRepo(engineer))

	equipment, err := svc.UpdateEquipment(context.Background(), 5, dto.UpdateEquipmentDTO{
		AssignedTo: null.Uint64From(3),
	}, adminActor())

	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusAssigned, equipment.Status)
	require.NotNil(t, equipment.AssignedTo)
	assert.Equal(t, uint64(3), *equipment.AssignedTo)
	require.Len(t, equipment.History, 1)
	assert.Equal(t, constants.HistoryActionAssigned, equipment.History[0].Action)
}

func TestUpdateEquipment_NotFound(t *testing.T) {
	svc := newEquipmentServiceForTest(newFakeEquipmentRepo(), newFakeHistoryRepo(), newFakeUserRepo())

	_, err := svc.UpdateEquipment(context.Background(), 99, dto.UpdateEquipmentDTO{
		Status: null.StringFrom(constants.EquipmentStatusRetired),
	}, adminActor())

	assert.ErrorIs(t, err, apperrors.ErrEquipmentNotFound)
}

func TestDeleteEquipment_NotFound(t *testing.T) {
	svc := newEquipmentServiceForTest(newFakeEquipmentRepo(), newFakeHistoryRepo(), newFakeUserRepo())

	err := svc.DeleteEquipment(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrEquipmentNotFound)
}
