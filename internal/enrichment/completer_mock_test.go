package enrichment

import (
	"context"
	"sync"
)

var _ Completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	calls struct {
		Complete []struct {
			Ctx          context.Context
			SystemPrompt string
			UserPrompt   string
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but Completer.Complete was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SystemPrompt string
		UserPrompt   string
	}{Ctx: ctx, SystemPrompt: systemPrompt, UserPrompt: userPrompt}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, systemPrompt, userPrompt)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx          context.Context
	SystemPrompt string
	UserPrompt   string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

type recorderMock struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *recorderMock) EnrichmentAttempt(outcome string) {
	r.mu.Lock()
	r.outcomes = append(r.outcomes, outcome)
	r.mu.Unlock()
}

func (r *recorderMock) Outcomes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.outcomes...)
}
