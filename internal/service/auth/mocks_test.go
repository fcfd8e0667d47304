package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	CreateFunc        func(ctx context.Context, user *domain.User) (*domain.User, error)

	calls struct {
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
	}
	lockGetByUsername sync.RWMutex
	lockCreate        sync.RWMutex
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, role string) (string, time.Time, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID uuid.UUID
			Role   string
		}
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(userID uuid.UUID, role string) (string, time.Time, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Role   string
	}{UserID: userID, Role: role}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, role)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	UserID uuid.UUID
	Role   string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but jwtManager.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}
