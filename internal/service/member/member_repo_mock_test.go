package member

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

var _ memberRepo = &memberRepoMock{}

type memberRepoMock struct {
	CreateFunc  func(ctx context.Context, m domain.Member) (*domain.Member, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	ListAllFunc func(ctx context.Context, scope *string) ([]domain.Member, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, p domain.MemberPatch) (*domain.Member, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   domain.Member
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListAll []struct {
			Ctx   context.Context
			Scope *string
		}
		Update []struct {
			Ctx context.Context
			Id  uuid.UUID
			P   domain.MemberPatch
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockListAll sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *memberRepoMock) Create(ctx context.Context, m domain.Member) (*domain.Member, error) {
	if mock.CreateFunc == nil {
		panic("memberRepoMock.CreateFunc: method is nil but memberRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.Member
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *memberRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   domain.Member
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *memberRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("memberRepoMock.DeleteFunc: method is nil but memberRepo.Delete was just called")
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

func (mock *memberRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *memberRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	if mock.GetByIDFunc == nil {
		panic("memberRepoMock.GetByIDFunc: method is nil but memberRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *memberRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *memberRepoMock) ListAll(ctx context.Context, scope *string) ([]domain.Member, error) {
	if mock.ListAllFunc == nil {
		panic("memberRepoMock.ListAllFunc: method is nil but memberRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Scope *string
	}{
		Ctx:   ctx,
		Scope: scope,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, scope)
}

func (mock *memberRepoMock) ListAllCalls() []struct {
	Ctx   context.Context
	Scope *string
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *memberRepoMock) Update(ctx context.Context, id uuid.UUID, p domain.MemberPatch) (*domain.Member, error) {
	if mock.UpdateFunc == nil {
		panic("memberRepoMock.UpdateFunc: method is nil but memberRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		P   domain.MemberPatch
	}{
		Ctx: ctx,
		Id:  id,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, p)
}

func (mock *memberRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	P   domain.MemberPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
