package export

import "mixget/internal/domain"

// ObserverFuncs adapts plain functions to domain.ProgressObserver. Nil fields
// are skipped.
type ObserverFuncs struct {
	OnTotal     func(n int)
	OnCompleted func(index int)
	OnDone      func()
}

var _ domain.ProgressObserver = ObserverFuncs{}

func (o ObserverFuncs) TotalCount(n int) {
	if o.OnTotal != nil {
		o.OnTotal(n)
	}
}

func (o ObserverFuncs) TaskCompleted(index int) {
	if o.OnCompleted != nil {
		o.OnCompleted(index)
	}
}

func (o ObserverFuncs) Done() {
	if o.OnDone != nil {
		o.OnDone()
	}
}
