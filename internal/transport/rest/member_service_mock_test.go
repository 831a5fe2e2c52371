package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/joinrss-backend/internal/domain"
	"github.com/heartmarshall/joinrss-backend/internal/service/member"
	"github.com/heartmarshall/joinrss-backend/internal/service/member/export"
)

var _ memberService = &memberServiceMock{}

type memberServiceMock struct {
	ListFunc   func(ctx context.Context, input member.ListInput) ([]domain.Member, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	CreateFunc func(ctx context.Context, input member.CreateInput) (*domain.Member, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input member.UpdateInput) (*domain.Member, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
	ExportFunc func(ctx context.Context, input member.ExportInput) (*export.Document, error)

	calls struct {
		List []struct {
			Ctx   context.Context
			Input member.ListInput
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Input member.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input member.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Export []struct {
			Ctx   context.Context
			Input member.ExportInput
		}
	}
	lockList   sync.RWMutex
	lockGet    sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
	lockExport sync.RWMutex
}

func (mock *memberServiceMock) List(ctx context.Context, input member.ListInput) ([]domain.Member, error) {
	if mock.ListFunc == nil {
		panic("memberServiceMock.ListFunc: method is nil but memberService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input member.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *memberServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input member.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *memberServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	if mock.GetFunc == nil {
		panic("memberServiceMock.GetFunc: method is nil but memberService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *memberServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *memberServiceMock) Create(ctx context.Context, input member.CreateInput) (*domain.Member, error) {
	if mock.CreateFunc == nil {
		panic("memberServiceMock.CreateFunc: method is nil but memberService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input member.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *memberServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input member.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *memberServiceMock) Update(ctx context.Context, id uuid.UUID, input member.UpdateInput) (*domain.Member, error) {
	if mock.UpdateFunc == nil {
		panic("memberServiceMock.UpdateFunc: method is nil but memberService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input member.UpdateInput
	}{
		Ctx:   ctx,
		Id:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *memberServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input member.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *memberServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("memberServiceMock.DeleteFunc: method is nil but memberService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *memberServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *memberServiceMock) Export(ctx context.Context, input member.ExportInput) (*export.Document, error) {
	if mock.ExportFunc == nil {
		panic("memberServiceMock.ExportFunc: method is nil but memberService.Export was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input member.ExportInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, input)
}

func (mock *memberServiceMock) ExportCalls() []struct {
	Ctx   context.Context
	Input member.ExportInput
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}
