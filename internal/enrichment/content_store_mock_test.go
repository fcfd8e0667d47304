package enrichment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/curator-backend/internal/domain"
)

var _ contentStore = &contentStoreMock{}

type contentStoreMock struct {
	CreateFunc         func(ctx context.Context, c *domain.Content) (*domain.Content, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, patch domain.ContentPatch, analysis domain.Analysis) (*domain.Content, error)
	UpdateAnalysisFunc func(ctx context.Context, id uuid.UUID, analysis domain.Analysis) error

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Content
		}
		Update []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Patch    domain.ContentPatch
			Analysis domain.Analysis
		}
		UpdateAnalysis []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Analysis domain.Analysis
		}
	}
	lockCreate         sync.RWMutex
	lockUpdate         sync.RWMutex
	lockUpdateAnalysis sync.RWMutex
}

func (mock *contentStoreMock) Create(ctx context.Context, c *domain.Content) (*domain.Content, error) {
	if mock.CreateFunc == nil {
		panic("contentStoreMock.CreateFunc: method is nil but contentStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Content
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *contentStoreMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Content
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contentStoreMock) Update(ctx context.Context, id uuid.UUID, patch domain.ContentPatch, analysis domain.Analysis) (*domain.Content, error) {
	if mock.UpdateFunc == nil {
		panic("contentStoreMock.UpdateFunc: method is nil but contentStore.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Patch    domain.ContentPatch
		Analysis domain.Analysis
	}{Ctx: ctx, ID: id, Patch: patch, Analysis: analysis}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, patch, analysis)
}

func (mock *contentStoreMock) UpdateCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Patch    domain.ContentPatch
	Analysis domain.Analysis
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *contentStoreMock) UpdateAnalysis(ctx context.Context, id uuid.UUID, analysis domain.Analysis) error {
	if mock.UpdateAnalysisFunc == nil {
		panic("contentStoreMock.UpdateAnalysisFunc: method is nil but contentStore.UpdateAnalysis was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Analysis domain.Analysis
	}{Ctx: ctx, ID: id, Analysis: analysis}
	mock.lockUpdateAnalysis.Lock()
	mock.calls.UpdateAnalysis = append(mock.calls.UpdateAnalysis, callInfo)
	mock.lockUpdateAnalysis.Unlock()
	return mock.UpdateAnalysisFunc(ctx, id, analysis)
}

func (mock *contentStoreMock) UpdateAnalysisCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Analysis domain.Analysis
} {
	mock.lockUpdateAnalysis.RLock()
	calls := mock.calls.UpdateAnalysis
	mock.lockUpdateAnalysis.RUnlock()
	return calls
}
