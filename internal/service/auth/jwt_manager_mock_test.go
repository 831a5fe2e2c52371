package auth

import (
	"sync"

	"github.com/heartmarshall/joinrss-backend/internal/auth"
	"github.com/heartmarshall/joinrss-backend/internal/domain"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateTokenFunc func(s domain.Session) (string, error)
	ValidateTokenFunc func(token string) (auth.Claims, error)

	calls struct {
		GenerateToken []struct {
			S domain.Session
		}
		ValidateToken []struct {
			Token string
		}
	}
	lockGenerateToken sync.RWMutex
	lockValidateToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateToken(s domain.Session) (string, error) {
	if mock.GenerateTokenFunc == nil {
		panic("jwtManagerMock.GenerateTokenFunc: method is nil but jwtManager.GenerateToken was just called")
	}
	callInfo := struct {
		S domain.Session
	}{
		S: s,
	}
	mock.lockGenerateToken.Lock()
	mock.calls.GenerateToken = append(mock.calls.GenerateToken, callInfo)
	mock.lockGenerateToken.Unlock()
	return mock.GenerateTokenFunc(s)
}

func (mock *jwtManagerMock) GenerateTokenCalls() []struct {
	S domain.Session
} {
	mock.lockGenerateToken.RLock()
	calls := mock.calls.GenerateToken
	mock.lockGenerateToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateToken(token string) (auth.Claims, error) {
	if mock.ValidateTokenFunc == nil {
		panic("jwtManagerMock.ValidateTokenFunc: method is nil but jwtManager.ValidateToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, callInfo)
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateTokenCalls() []struct {
	Token string
} {
	mock.lockValidateToken.RLock()
	calls := mock.calls.ValidateToken
	mock.lockValidateToken.RUnlock()
	return calls
}
