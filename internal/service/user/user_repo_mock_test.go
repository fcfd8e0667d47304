package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFunc                 func(ctx context.Context, limit int, offset int) ([]*domain.User, error)
	CountFunc                func(ctx context.Context) (int, error)
	UpdateRoleByUsernameFunc func(ctx context.Context, username string, role domain.UserRole) (*domain.User, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		UpdateRoleByUsername []struct {
			Ctx      context.Context
			Username string
			Role     domain.UserRole
		}
	}
	lockList                 sync.RWMutex
	lockUpdateRoleByUsername sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) List(ctx context.Context, limit int, offset int) ([]*domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	return mock.CountFunc(ctx)
}

func (mock *userRepoMock) UpdateRoleByUsername(ctx context.Context, username string, role domain.UserRole) (*domain.User, error) {
	if mock.UpdateRoleByUsernameFunc == nil {
		panic("userRepoMock.UpdateRoleByUsernameFunc: method is nil but userRepo.UpdateRoleByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		Role     domain.UserRole
	}{Ctx: ctx, Username: username, Role: role}
	mock.lockUpdateRoleByUsername.Lock()
	mock.calls.UpdateRoleByUsername = append(mock.calls.UpdateRoleByUsername, callInfo)
	mock.lockUpdateRoleByUsername.Unlock()
	return mock.UpdateRoleByUsernameFunc(ctx, username, role)
}

func (mock *userRepoMock) UpdateRoleByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
	Role     domain.UserRole
} {
	mock.lockUpdateRoleByUsername.RLock()
	calls := mock.calls.UpdateRoleByUsername
	mock.lockUpdateRoleByUsername.RUnlock()
	return calls
}

var _ counter = &counterMock{}

type counterMock struct {
	CountFunc func(ctx context.Context) (int, error)
}

func (mock *counterMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("counterMock.CountFunc: method is nil but counter.Count was just called")
	}
	return mock.CountFunc(ctx)
}
