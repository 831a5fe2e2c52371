package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc     func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateBhagFunc func(ctx context.Context, username string, bhag *string) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
		UpdateBhag []struct {
			Ctx      context.Context
			Username string
			Bhag     *string
		}
	}
	lockCreate     sync.RWMutex
	lockUpdateBhag sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateBhag(ctx context.Context, username string, bhag *string) (*domain.User, error) {
	if mock.UpdateBhagFunc == nil {
		panic("userRepoMock.UpdateBhagFunc: method is nil but userRepo.UpdateBhag was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		Bhag     *string
	}{
		Ctx:      ctx,
		Username: username,
		Bhag:     bhag,
	}
	mock.lockUpdateBhag.Lock()
	mock.calls.UpdateBhag = append(mock.calls.UpdateBhag, callInfo)
	mock.lockUpdateBhag.Unlock()
	return mock.UpdateBhagFunc(ctx, username, bhag)
}

func (mock *userRepoMock) UpdateBhagCalls() []struct {
	Ctx      context.Context
	Username string
	Bhag     *string
} {
	mock.lockUpdateBhag.RLock()
	calls := mock.calls.UpdateBhag
	mock.lockUpdateBhag.RUnlock()
	return calls
}
