package request

import (
	"sync"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	CommandFailedFunc   func(command string, err error)
	QuantityChangedFunc func(delta int)
	TransitionFunc      func(kind domain.RequestKind, from domain.Status, to domain.Status)

	calls struct {
		CommandFailed []struct {
			Command string
			Err     error
		}
		QuantityChanged []struct {
			Delta int
		}
		Transition []struct {
			Kind domain.RequestKind
			From domain.Status
			To   domain.Status
		}
	}
	lockCommandFailed   sync.RWMutex
	lockQuantityChanged sync.RWMutex
	lockTransition      sync.RWMutex
}

func (mock *metricsRecorderMock) CommandFailed(command string, err error) {
	if mock.CommandFailedFunc == nil {
		panic("metricsRecorderMock.CommandFailedFunc: method is nil but metricsRecorder.CommandFailed was just called")
	}
	callInfo := struct {
		Command string
		Err     error
	}{Command: command, Err: err}
	mock.lockCommandFailed.Lock()
	mock.calls.CommandFailed = append(mock.calls.CommandFailed, callInfo)
	mock.lockCommandFailed.Unlock()
	mock.CommandFailedFunc(command, err)
}

func (mock *metricsRecorderMock) CommandFailedCalls() []struct {
	Command string
	Err     error
} {
	mock.lockCommandFailed.RLock()
	calls := mock.calls.CommandFailed
	mock.lockCommandFailed.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) QuantityChanged(delta int) {
	if mock.QuantityChangedFunc == nil {
		panic("metricsRecorderMock.QuantityChangedFunc: method is nil but metricsRecorder.QuantityChanged was just called")
	}
	callInfo := struct {
		Delta int
	}{Delta: delta}
	mock.lockQuantityChanged.Lock()
	mock.calls.QuantityChanged = append(mock.calls.QuantityChanged, callInfo)
	mock.lockQuantityChanged.Unlock()
	mock.QuantityChangedFunc(delta)
}

func (mock *metricsRecorderMock) QuantityChangedCalls() []struct {
	Delta int
} {
	mock.lockQuantityChanged.RLock()
	calls := mock.calls.QuantityChanged
	mock.lockQuantityChanged.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) Transition(kind domain.RequestKind, from domain.Status, to domain.Status) {
	if mock.TransitionFunc == nil {
		panic("metricsRecorderMock.TransitionFunc: method is nil but metricsRecorder.Transition was just called")
	}
	callInfo := struct {
		Kind domain.RequestKind
		From domain.Status
		To   domain.Status
	}{Kind: kind, From: from, To: to}
	mock.lockTransition.Lock()
	mock.calls.Transition = append(mock.calls.Transition, callInfo)
	mock.lockTransition.Unlock()
	mock.TransitionFunc(kind, from, to)
}

func (mock *metricsRecorderMock) TransitionCalls() []struct {
	Kind domain.RequestKind
	From domain.Status
	To   domain.Status
} {
	mock.lockTransition.RLock()
	calls := mock.calls.Transition
	mock.lockTransition.RUnlock()
	return calls
}
