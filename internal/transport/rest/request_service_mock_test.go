package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/request"
)

var _ requestService = &requestServiceMock{}

type requestServiceMock struct {
	CreateRequestFunc    func(ctx context.Context, actor domain.Actor, input request.CreateRequestInput) (*domain.Request, error)
	GetRequestFunc       func(ctx context.Context, actor domain.Actor, id uuid.UUID) (*request.RequestDetails, error)
	ListRequestsFunc     func(ctx context.Context, actor domain.Actor, input request.ListRequestsInput) ([]*domain.Request, int, error)
	UpdateStatusFunc     func(ctx context.Context, actor domain.Actor, input request.UpdateStatusInput) (*domain.Request, error)
	AddCommentFunc       func(ctx context.Context, actor domain.Actor, input request.AddCommentInput) (*domain.Comment, error)
	MarkCommentsReadFunc func(ctx context.Context, actor domain.Actor, input request.MarkReadInput) (int, error)
	ReceiveOrReturnFunc  func(ctx context.Context, actor domain.Actor, input request.QuantityChangeInput) (*domain.Request, error)
	UpdateWorkDataFunc   func(ctx context.Context, actor domain.Actor, input request.UpdateWorkDataInput) (*domain.Request, error)
	ListHistoryFunc      func(ctx context.Context, actor domain.Actor, input request.HistoryInput) ([]domain.HistoryEntry, error)
	FulfillmentFunc      func(ctx context.Context, actor domain.Actor, id uuid.UUID) (*request.FulfillmentSummary, error)

	calls struct {
		CreateRequest []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input request.CreateRequestInput
		}
		GetRequest []struct {
			Ctx   context.Context
			Actor domain.Actor
			ID    uuid.UUID
		}
		ListRequests []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input request.ListRequestsInput
		}
		UpdateStatus []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input request.UpdateStatusInput
		}
		AddComment []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input request.AddCommentInput
		}
		MarkCommentsRead []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input request.MarkReadInput
		}
		ReceiveOrReturn []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input request.QuantityChangeInput
		}
		UpdateWorkData []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input request.UpdateWorkDataInput
		}
		ListHistory []struct {
			Ctx   context.Context
			Actor domain.Actor
			Input request.HistoryInput
		}
		Fulfillment []struct {
			Ctx   context.Context
			Actor domain.Actor
			ID    uuid.UUID
		}
	}
	lockCreateRequest    sync.RWMutex
	lockGetRequest       sync.RWMutex
	lockListRequests     sync.RWMutex
	lockUpdateStatus     sync.RWMutex
	lockAddComment       sync.RWMutex
	lockMarkCommentsRead sync.RWMutex
	lockReceiveOrReturn  sync.RWMutex
	lockUpdateWorkData   sync.RWMutex
	lockListHistory      sync.RWMutex
	lockFulfillment      sync.RWMutex
}

func (mock *requestServiceMock) CreateRequest(ctx context.Context, actor domain.Actor, input request.CreateRequestInput) (*domain.Request, error) {
	if mock.CreateRequestFunc == nil {
		panic("requestServiceMock.CreateRequestFunc: method is nil but requestService.CreateRequest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.CreateRequestInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockCreateRequest.Lock()
	mock.calls.CreateRequest = append(mock.calls.CreateRequest, callInfo)
	mock.lockCreateRequest.Unlock()
	return mock.CreateRequestFunc(ctx, actor, input)
}

func (mock *requestServiceMock) CreateRequestCalls() []struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.CreateRequestInput
} {
	mock.lockCreateRequest.RLock()
	calls := mock.calls.CreateRequest
	mock.lockCreateRequest.RUnlock()
	return calls
}

func (mock *requestServiceMock) GetRequest(ctx context.Context, actor domain.Actor, id uuid.UUID) (*request.RequestDetails, error) {
	if mock.GetRequestFunc == nil {
		panic("requestServiceMock.GetRequestFunc: method is nil but requestService.GetRequest was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		ID    uuid.UUID
	}{Ctx: ctx, Actor: actor, ID: id}
	mock.lockGetRequest.Lock()
	mock.calls.GetRequest = append(mock.calls.GetRequest, callInfo)
	mock.lockGetRequest.Unlock()
	return mock.GetRequestFunc(ctx, actor, id)
}

func (mock *requestServiceMock) GetRequestCalls() []struct {
		Ctx   context.Context
		Actor domain.Actor
		ID    uuid.UUID
} {
	mock.lockGetRequest.RLock()
	calls := mock.calls.GetRequest
	mock.lockGetRequest.RUnlock()
	return calls
}

func (mock *requestServiceMock) ListRequests(ctx context.Context, actor domain.Actor, input request.ListRequestsInput) ([]*domain.Request, int, error) {
	if mock.ListRequestsFunc == nil {
		panic("requestServiceMock.ListRequestsFunc: method is nil but requestService.ListRequests was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.ListRequestsInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockListRequests.Lock()
	mock.calls.ListRequests = append(mock.calls.ListRequests, callInfo)
	mock.lockListRequests.Unlock()
	return mock.ListRequestsFunc(ctx, actor, input)
}

func (mock *requestServiceMock) ListRequestsCalls() []struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.ListRequestsInput
} {
	mock.lockListRequests.RLock()
	calls := mock.calls.ListRequests
	mock.lockListRequests.RUnlock()
	return calls
}

func (mock *requestServiceMock) UpdateStatus(ctx context.Context, actor domain.Actor, input request.UpdateStatusInput) (*domain.Request, error) {
	if mock.UpdateStatusFunc == nil {
		panic("requestServiceMock.UpdateStatusFunc: method is nil but requestService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.UpdateStatusInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, actor, input)
}

func (mock *requestServiceMock) UpdateStatusCalls() []struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.UpdateStatusInput
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *requestServiceMock) AddComment(ctx context.Context, actor domain.Actor, input request.AddCommentInput) (*domain.Comment, error) {
	if mock.AddCommentFunc == nil {
		panic("requestServiceMock.AddCommentFunc: method is nil but requestService.AddComment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.AddCommentInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockAddComment.Lock()
	mock.calls.AddComment = append(mock.calls.AddComment, callInfo)
	mock.lockAddComment.Unlock()
	return mock.AddCommentFunc(ctx, actor, input)
}

func (mock *requestServiceMock) AddCommentCalls() []struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.AddCommentInput
} {
	mock.lockAddComment.RLock()
	calls := mock.calls.AddComment
	mock.lockAddComment.RUnlock()
	return calls
}

func (mock *requestServiceMock) MarkCommentsRead(ctx context.Context, actor domain.Actor, input request.MarkReadInput) (int, error) {
	if mock.MarkCommentsReadFunc == nil {
		panic("requestServiceMock.MarkCommentsReadFunc: method is nil but requestService.MarkCommentsRead was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.MarkReadInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockMarkCommentsRead.Lock()
	mock.calls.MarkCommentsRead = append(mock.calls.MarkCommentsRead, callInfo)
	mock.lockMarkCommentsRead.Unlock()
	return mock.MarkCommentsReadFunc(ctx, actor, input)
}

func (mock *requestServiceMock) MarkCommentsReadCalls() []struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.MarkReadInput
} {
	mock.lockMarkCommentsRead.RLock()
	calls := mock.calls.MarkCommentsRead
	mock.lockMarkCommentsRead.RUnlock()
	return calls
}

func (mock *requestServiceMock) ReceiveOrReturn(ctx context.Context, actor domain.Actor, input request.QuantityChangeInput) (*domain.Request, error) {
	if mock.ReceiveOrReturnFunc == nil {
		panic("requestServiceMock.ReceiveOrReturnFunc: method is nil but requestService.ReceiveOrReturn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.QuantityChangeInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockReceiveOrReturn.Lock()
	mock.calls.ReceiveOrReturn = append(mock.calls.ReceiveOrReturn, callInfo)
	mock.lockReceiveOrReturn.Unlock()
	return mock.ReceiveOrReturnFunc(ctx, actor, input)
}

func (mock *requestServiceMock) ReceiveOrReturnCalls() []struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.QuantityChangeInput
} {
	mock.lockReceiveOrReturn.RLock()
	calls := mock.calls.ReceiveOrReturn
	mock.lockReceiveOrReturn.RUnlock()
	return calls
}

func (mock *requestServiceMock) UpdateWorkData(ctx context.Context, actor domain.Actor, input request.UpdateWorkDataInput) (*domain.Request, error) {
	if mock.UpdateWorkDataFunc == nil {
		panic("requestServiceMock.UpdateWorkDataFunc: method is nil but requestService.UpdateWorkData was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.UpdateWorkDataInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockUpdateWorkData.Lock()
	mock.calls.UpdateWorkData = append(mock.calls.UpdateWorkData, callInfo)
	mock.lockUpdateWorkData.Unlock()
	return mock.UpdateWorkDataFunc(ctx, actor, input)
}

func (mock *requestServiceMock) UpdateWorkDataCalls() []struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.UpdateWorkDataInput
} {
	mock.lockUpdateWorkData.RLock()
	calls := mock.calls.UpdateWorkData
	mock.lockUpdateWorkData.RUnlock()
	return calls
}

func (mock *requestServiceMock) ListHistory(ctx context.Context, actor domain.Actor, input request.HistoryInput) ([]domain.HistoryEntry, error) {
	if mock.ListHistoryFunc == nil {
		panic("requestServiceMock.ListHistoryFunc: method is nil but requestService.ListHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.HistoryInput
	}{Ctx: ctx, Actor: actor, Input: input}
	mock.lockListHistory.Lock()
	mock.calls.ListHistory = append(mock.calls.ListHistory, callInfo)
	mock.lockListHistory.Unlock()
	return mock.ListHistoryFunc(ctx, actor, input)
}

func (mock *requestServiceMock) ListHistoryCalls() []struct {
		Ctx   context.Context
		Actor domain.Actor
		Input request.HistoryInput
} {
	mock.lockListHistory.RLock()
	calls := mock.calls.ListHistory
	mock.lockListHistory.RUnlock()
	return calls
}

func (mock *requestServiceMock) Fulfillment(ctx context.Context, actor domain.Actor, id uuid.UUID) (*request.FulfillmentSummary, error) {
	if mock.FulfillmentFunc == nil {
		panic("requestServiceMock.FulfillmentFunc: method is nil but requestService.Fulfillment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Actor domain.Actor
		ID    uuid.UUID
	}{Ctx: ctx, Actor: actor, ID: id}
	mock.lockFulfillment.Lock()
	mock.calls.Fulfillment = append(mock.calls.Fulfillment, callInfo)
	mock.lockFulfillment.Unlock()
	return mock.FulfillmentFunc(ctx, actor, id)
}

func (mock *requestServiceMock) FulfillmentCalls() []struct {
		Ctx   context.Context
		Actor domain.Actor
		ID    uuid.UUID
} {
	mock.lockFulfillment.RLock()
	calls := mock.calls.Fulfillment
	mock.lockFulfillment.RUnlock()
	return calls
}
