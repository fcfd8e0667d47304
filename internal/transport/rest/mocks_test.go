package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
	"github.com/heartmarshall/curator-backend/internal/service/auth"
	"github.com/heartmarshall/curator-backend/internal/service/category"
	"github.com/heartmarshall/curator-backend/internal/service/content"
)

var _ contentService = &contentServiceMock{}

type contentServiceMock struct {
	CreateFunc func(ctx context.Context, input content.CreateInput) (*domain.Content, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Content, error)
	ListFunc   func(ctx context.Context, input content.ListInput) ([]*domain.Content, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input content.UpdateInput) (*domain.Content, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		List   []content.ListInput
		Update []content.UpdateInput
	}
	lock sync.RWMutex
}

func (m *contentServiceMock) Create(ctx context.Context, input content.CreateInput) (*domain.Content, error) {
	if m.CreateFunc == nil {
		panic("contentServiceMock.CreateFunc: method is nil but contentService.Create was just called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *contentServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	if m.GetFunc == nil {
		panic("contentServiceMock.GetFunc: method is nil but contentService.Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *contentServiceMock) List(ctx context.Context, input content.ListInput) ([]*domain.Content, error) {
	if m.ListFunc == nil {
		panic("contentServiceMock.ListFunc: method is nil but contentService.List was just called")
	}
	m.lock.Lock()
	m.calls.List = append(m.calls.List, input)
	m.lock.Unlock()
	return m.ListFunc(ctx, input)
}

func (m *contentServiceMock) ListCalls() []content.ListInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.List
}

func (m *contentServiceMock) Update(ctx context.Context, id uuid.UUID, input content.UpdateInput) (*domain.Content, error) {
	if m.UpdateFunc == nil {
		panic("contentServiceMock.UpdateFunc: method is nil but contentService.Update was just called")
	}
	m.lock.Lock()
	m.calls.Update = append(m.calls.Update, input)
	m.lock.Unlock()
	return m.UpdateFunc(ctx, id, input)
}

func (m *contentServiceMock) UpdateCalls() []content.UpdateInput {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.calls.Update
}

func (m *contentServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("contentServiceMock.DeleteFunc: method is nil but contentService.Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

var _ categoryLookup = &categoryLookupMock{}

type categoryLookupMock struct {
	categories []*domain.Category

	mu    sync.Mutex
	calls int
}

func (m *categoryLookupMock) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Category, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	var out []*domain.Category
	for _, c := range m.categories {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

var _ categoryService = &categoryServiceMock{}

type categoryServiceMock struct {
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListFunc   func(ctx context.Context, search string, limit, offset int) ([]*domain.Category, error)
	CreateFunc func(ctx context.Context, input category.Input) (*domain.Category, error)
	UpdateFunc func(ctx context.Context, id uuid.UUID, input category.Input) (*domain.Category, error)
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *categoryServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return m.GetFunc(ctx, id)
}

func (m *categoryServiceMock) List(ctx context.Context, search string, limit, offset int) ([]*domain.Category, error) {
	return m.ListFunc(ctx, search, limit, offset)
}

func (m *categoryServiceMock) Create(ctx context.Context, input category.Input) (*domain.Category, error) {
	return m.CreateFunc(ctx, input)
}

func (m *categoryServiceMock) Update(ctx context.Context, id uuid.UUID, input category.Input) (*domain.Category, error) {
	return m.UpdateFunc(ctx, id, input)
}

func (m *categoryServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error) {
	return m.LoginFunc(ctx, input)
}

var _ userService = &userServiceMock{}

type userServiceMock struct {
	ListUsersFunc func(ctx context.Context, limit, offset int) ([]*domain.User, int, error)
	GetUserFunc   func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AnalyticsFunc func(ctx context.Context) (*domain.Analytics, error)
}

func (m *userServiceMock) ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, int, error) {
	return m.ListUsersFunc(ctx, limit, offset)
}

func (m *userServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetUserFunc(ctx, id)
}

func (m *userServiceMock) Analytics(ctx context.Context) (*domain.Analytics, error) {
	return m.AnalyticsFunc(ctx)
}

var _ analysisService = analysisServiceFunc(nil)

type analysisServiceFunc func(ctx context.Context, text string) (string, error)

func (f analysisServiceFunc) Analyze(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}
