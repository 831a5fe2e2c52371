package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc         func(ctx context.Context, s domain.Session) error
	DeleteInactiveFunc func(ctx context.Context, now time.Time) (int, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	RevokeFunc         func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		Create []struct {
			Ctx context.Context
			S   domain.Session
		}
		DeleteInactive []struct {
			Ctx context.Context
			Now time.Time
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Revoke []struct {
			Ctx context.Context
			Id  uuid.UUID
			At  time.Time
		}
	}
	lockCreate         sync.RWMutex
	lockDeleteInactive sync.RWMutex
	lockGetByID        sync.RWMutex
	lockRevoke         sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s domain.Session) error {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Session
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Session
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteInactive(ctx context.Context, now time.Time) (int, error) {
	if mock.DeleteInactiveFunc == nil {
		panic("sessionRepoMock.DeleteInactiveFunc: method is nil but sessionRepo.DeleteInactive was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{
		Ctx: ctx,
		Now: now,
	}
	mock.lockDeleteInactive.Lock()
	mock.calls.DeleteInactive = append(mock.calls.DeleteInactive, callInfo)
	mock.lockDeleteInactive.Unlock()
	return mock.DeleteInactiveFunc(ctx, now)
}

func (mock *sessionRepoMock) DeleteInactiveCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockDeleteInactive.RLock()
	calls := mock.calls.DeleteInactive
	mock.lockDeleteInactive.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
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

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.RevokeFunc == nil {
		panic("sessionRepoMock.RevokeFunc: method is nil but sessionRepo.Revoke was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		Id:  id,
		At:  at,
	}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, id, at)
}

func (mock *sessionRepoMock) RevokeCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	At  time.Time
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}
