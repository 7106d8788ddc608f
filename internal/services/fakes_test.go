package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

// Фейковые репозитории держат состояние в памяти: сервисы тестируются
// на настоящей бизнес-логике без поднятия Postgres и Redis.

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users map[uint64]*entities.User
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint64]*entities.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entities.User) (uint64, error) {
	for _, u := range f.users {
		if u.Username == user.Username {
			return 0, apperrors.ErrUsernameTaken
		}
	}
	id := uint64(len(f.users) + 1)
	user.ID = id
	f.users[id] = user
	return id, nil
}

func (f *fakeUserRepo) GetEngineers(ctx context.Context, search string) ([]entities.User, error) {
	var out []entities.User
	for _, u := range f.users {
		if u.Role != "Engineer" {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Username), strings.ToLower(search)) {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

type fakeEquipmentRepo struct {
	nextID     uint64
	equipments map[uint64]*entities.Equipment
	created    int // счетчик вызовов CreateEquipment
}

func newFakeEquipmentRepo(items ...*entities.Equipment) *fakeEquipmentRepo {
	repo := &fakeEquipmentRepo{nextID: 1, equipments: make(map[uint64]*entities.Equipment)}
	for _, e := range items {
		if e.ID == 0 {
			e.ID = repo.nextID
		}
		repo.equipments[e.ID] = e
		if e.ID >= repo.nextID {
			repo.nextID = e.ID + 1
		}
	}
	return repo
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	var out []entities.Equipment
	for _, e := range f.equipments {
		out = append(out, *e)
	}
	return out, uint64(len(out)), nil
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	e, ok := f.equipments[id]
	if !ok {
		return nil, apperrors.ErrEquipmentNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEquipmentRepo) FindEquipmentByName(ctx context.Context, name string) (*entities.Equipment, error) {
	for _, e := range f.equipments {
		if e.Name == name {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperrors.ErrEquipmentNotFound
}

func (f *fakeEquipmentRepo) FindByAssignee(ctx context.Context, userID uint64) ([]entities.Equipment, error) {
	var out []entities.Equipment
	for _, e := range f.equipments {
		if e.AssignedTo != nil && *e.AssignedTo == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, equipment *entities.Equipment) (uint64, error) {
	id := f.nextID
	f.nextID++
	copied := *equipment
	copied.ID = id
	f.equipments[id] = &copied
	f.created++
	return id, nil
}

func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, equipment *entities.Equipment) error {
	if _, ok := f.equipments[id]; !ok {
		return apperrors.ErrEquipmentNotFound
	}
	copied := *equipment
	copied.ID = id
	f.equipments[id] = &copied
	return nil
}

func (f *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id uint64) error {
	if _, ok := f.equipments[id]; !ok {
		return apperrors.ErrEquipmentNotFound
	}
	delete(f.equipments, id)
	return nil
}

func (f *fakeEquipmentRepo) LockEquipmentName(ctx context.Context, name string) error {
	return nil
}

func (f *fakeEquipmentRepo) CountByStatus(ctx context.Context) (map[string]uint64, error) {
	out := make(map[string]uint64)
	for _, e := range f.equipments {
		out[e.Status]++
	}
	return out, nil
}

type fakeHistoryRepo struct {
	nextID  uint64
	entries []entities.EquipmentHistory
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{nextID: 1}
}

func (f *fakeHistoryRepo) AddEntry(ctx context.Context, entry *entities.EquipmentHistory) error {
	copied := *entry
	copied.ID = f.nextID
	copied.CreatedAt = time.Now()
	f.nextID++
	f.entries = append(f.entries, copied)
	return nil
}

func (f *fakeHistoryRepo) GetByEquipmentID(ctx context.Context, equipmentID uint64) ([]entities.EquipmentHistory, error) {
	var out []entities.EquipmentHistory
	for _, e := range f.entries {
		if e.EquipmentID == equipmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeRequestRepo struct {
	nextID   uint64
	requests map[uint64]*entities.Request
}

func newFakeRequestRepo(items ...*entities.Request) *fakeRequestRepo {
	repo := &fakeRequestRepo{nextID: 1, requests: make(map[uint64]*entities.Request)}
	for _, r := range items {
		if r.ID == 0 {
			r.ID = repo.nextID
		}
		repo.requests[r.ID] = r
		if r.ID >= repo.nextID {
			repo.nextID = r.ID + 1
		}
	}
	return repo
}

func (f *fakeRequestRepo) GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error) {
	var out []entities.Request
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, uint64(len(out)), nil
}

func (f *fakeRequestRepo) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRequestRepo) FindRequestForUpdate(ctx context.Context, id uint64) (*entities.Request, error) {
	return f.FindRequest(ctx, id)
}

func (f *fakeRequestRepo) GetByRequester(ctx context.Context, userID uint64) ([]entities.Request, error) {
	var out []entities.Request
	for _, r := range f.requests {
		if r.RequestedBy == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) GetByStatus(ctx context.Context, status string) ([]entities.Request, error) {
	var out []entities.Request
	for _, r := range f.requests {
		if r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) CreateRequest(ctx context.Context, request *entities.Request) (uint64, error) {
	id := f.nextID
	f.nextID++
	copied := *request
	copied.ID = id
	f.requests[id] = &copied
	return id, nil
}

func (f *fakeRequestRepo) UpdateRequest(ctx context.Context, id uint64, request *entities.Request) error {
	if _, ok := f.requests[id]; !ok {
		return apperrors.ErrRequestNotFound
	}
	copied := *request
	copied.ID = id
	f.requests[id] = &copied
	return nil
}

func (f *fakeRequestRepo) ExistsDuplicate(ctx context.Context, request *entities.Request) (bool, error) {
	for _, r := range f.requests {
		if r.RequestedBy == request.RequestedBy &&
			r.EquipmentName == request.EquipmentName &&
			r.Category == request.Category &&
			r.Reason == request.Reason &&
			r.Priority == request.Priority {
			return true, nil
		}
	}
	return false, nil
}

type fakeCacheRepo struct {
	values map[string]string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: make(map[string]string)}
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (f *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.values[key] = fmt.Sprintf("%v", value)
	return nil
}

func (f *fakeCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func (f *fakeCacheRepo) Incr(ctx context.Context, key string) (int64, error) {
	var current int64
	fmt.Sscanf(f.values[key], "%d", &current)
	current++
	f.values[key] = fmt.Sprintf("%d", current)
	return current, nil
}

func (f *fakeCacheRepo) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return nil
}
