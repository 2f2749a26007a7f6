// Mocks for internal/usecase/queries/pricing.go, maintained by hand in mockgen's layout.
// `go generate ./internal/usecase/...` replaces this file with mockgen output.

package queriesmock

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
	queries "petsitter-booking/internal/usecase/queries"
)

// MockPricingQueries is a mock of PricingQueries interface.
type MockPricingQueries struct {
	ctrl     *gomock.Controller
	recorder *MockPricingQueriesMockRecorder
	isgomock struct{}
}

// MockPricingQueriesMockRecorder is the mock recorder for MockPricingQueries.
type MockPricingQueriesMockRecorder struct {
	mock *MockPricingQueries
}

// NewMockPricingQueries creates a new mock instance.
func NewMockPricingQueries(ctrl *gomock.Controller) *MockPricingQueries {
	mock := &MockPricingQueries{ctrl: ctrl}
	mock.recorder = &MockPricingQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPricingQueries) EXPECT() *MockPricingQueriesMockRecorder {
	return m.recorder
}

// Quote mocks base method.
func (m *MockPricingQueries) Quote(in queries.QuoteInput) (*queries.QuoteView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Quote", in)
	ret0, _ := ret[0].(*queries.QuoteView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Quote indicates an expected call of Quote.
func (mr *MockPricingQueriesMockRecorder) Quote(in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Quote", reflect.TypeOf((*MockPricingQueries)(nil).Quote), in)
}

// Services mocks base method.
func (m *MockPricingQueries) Services() []queries.ServiceView {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Services")
	ret0, _ := ret[0].([]queries.ServiceView)
	return ret0
}

// Services indicates an expected call of Services.
func (mr *MockPricingQueriesMockRecorder) Services() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Services", reflect.TypeOf((*MockPricingQueries)(nil).Services))
}
