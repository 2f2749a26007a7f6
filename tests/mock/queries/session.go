// Mocks for internal/usecase/queries/session.go, maintained by hand in mockgen's layout.
// `go generate ./internal/usecase/...` replaces this file with mockgen output.

package queriesmock

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
	session "petsitter-booking/internal/domain/session"
	queries "petsitter-booking/internal/usecase/queries"
)

// MockSessionReadStore is a mock of SessionReadStore interface.
type MockSessionReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockSessionReadStoreMockRecorder
	isgomock struct{}
}

// MockSessionReadStoreMockRecorder is the mock recorder for MockSessionReadStore.
type MockSessionReadStoreMockRecorder struct {
	mock *MockSessionReadStore
}

// NewMockSessionReadStore creates a new mock instance.
func NewMockSessionReadStore(ctrl *gomock.Controller) *MockSessionReadStore {
	mock := &MockSessionReadStore{ctrl: ctrl}
	mock.recorder = &MockSessionReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionReadStore) EXPECT() *MockSessionReadStoreMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockSessionReadStore) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(*session.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockSessionReadStoreMockRecorder) Get(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockSessionReadStore)(nil).Get), ctx, id)
}

// MockSessionQueries is a mock of SessionQueries interface.
type MockSessionQueries struct {
	ctrl     *gomock.Controller
	recorder *MockSessionQueriesMockRecorder
	isgomock struct{}
}

// MockSessionQueriesMockRecorder is the mock recorder for MockSessionQueries.
type MockSessionQueriesMockRecorder struct {
	mock *MockSessionQueries
}

// NewMockSessionQueries creates a new mock instance.
func NewMockSessionQueries(ctrl *gomock.Controller) *MockSessionQueries {
	mock := &MockSessionQueries{ctrl: ctrl}
	mock.recorder = &MockSessionQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionQueries) EXPECT() *MockSessionQueriesMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockSessionQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*queries.SessionView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockSessionQueriesMockRecorder) GetByID(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockSessionQueries)(nil).GetByID), ctx, id)
}
