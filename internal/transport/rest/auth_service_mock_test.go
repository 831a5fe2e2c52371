package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
	"github.com/heartmarshall/joinrss-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginFunc          func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	CurrentSessionFunc func(ctx context.Context) (domain.Session, error)
	LogoutFunc         func(ctx context.Context) error

	calls struct {
		Login []struct {
			Ctx   context.Context
			Input auth.LoginInput
		}
		CurrentSession []struct {
			Ctx context.Context
		}
		Logout []struct {
			Ctx context.Context
		}
	}
	lockLogin          sync.RWMutex
	lockCurrentSession sync.RWMutex
	lockLogout         sync.RWMutex
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input auth.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) CurrentSession(ctx context.Context) (domain.Session, error) {
	if mock.CurrentSessionFunc == nil {
		panic("authServiceMock.CurrentSessionFunc: method is nil but authService.CurrentSession was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCurrentSession.Lock()
	mock.calls.CurrentSession = append(mock.calls.CurrentSession, callInfo)
	mock.lockCurrentSession.Unlock()
	return mock.CurrentSessionFunc(ctx)
}

func (mock *authServiceMock) CurrentSessionCalls() []struct {
	Ctx context.Context
} {
	mock.lockCurrentSession.RLock()
	calls := mock.calls.CurrentSession
	mock.lockCurrentSession.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}
