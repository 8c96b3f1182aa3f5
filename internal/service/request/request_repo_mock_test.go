package request

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

var _ requestRepo = &requestRepoMock{}

type requestRepoMock struct {
	CreateFunc           func(ctx context.Context, req *domain.Request) (*domain.Request, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	ListFunc             func(ctx context.Context, filter domain.RequestFilter) ([]*domain.Request, int, error)
	SaveFunc             func(ctx context.Context, req *domain.Request) (*domain.Request, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Req *domain.Request
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.RequestFilter
		}
		Save []struct {
			Ctx context.Context
			Req *domain.Request
		}
	}
	lockCreate           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockSave             sync.RWMutex
}

func (mock *requestRepoMock) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	if mock.CreateFunc == nil {
		panic("requestRepoMock.CreateFunc: method is nil but requestRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req *domain.Request
	}{Ctx: ctx, Req: req}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, req)
}

func (mock *requestRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Req *domain.Request
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *requestRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	if mock.GetByIDFunc == nil {
		panic("requestRepoMock.GetByIDFunc: method is nil but requestRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *requestRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *requestRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("requestRepoMock.GetByIDForUpdateFunc: method is nil but requestRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *requestRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *requestRepoMock) List(ctx context.Context, filter domain.RequestFilter) ([]*domain.Request, int, error) {
	if mock.ListFunc == nil {
		panic("requestRepoMock.ListFunc: method is nil but requestRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.RequestFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *requestRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.RequestFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *requestRepoMock) Save(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	if mock.SaveFunc == nil {
		panic("requestRepoMock.SaveFunc: method is nil but requestRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req *domain.Request
	}{Ctx: ctx, Req: req}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, req)
}

func (mock *requestRepoMock) SaveCalls() []struct {
	Ctx context.Context
	Req *domain.Request
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
