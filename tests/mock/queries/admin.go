// Mocks for internal/usecase/queries/admin.go, maintained by hand in mockgen's layout.
// `go generate ./internal/usecase/...` replaces this file with mockgen output.

// Package queriesmock holds GoMock doubles for the query use cases.
package queriesmock

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
	appointment "petsitter-booking/internal/domain/appointment"
	queries "petsitter-booking/internal/usecase/queries"
)

// MockRequestReadStore is a mock of RequestReadStore interface.
type MockRequestReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockRequestReadStoreMockRecorder
	isgomock struct{}
}

// MockRequestReadStoreMockRecorder is the mock recorder for MockRequestReadStore.
type MockRequestReadStoreMockRecorder struct {
	mock *MockRequestReadStore
}

// NewMockRequestReadStore creates a new mock instance.
func NewMockRequestReadStore(ctrl *gomock.Controller) *MockRequestReadStore {
	mock := &MockRequestReadStore{ctrl: ctrl}
	mock.recorder = &MockRequestReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRequestReadStore) EXPECT() *MockRequestReadStoreMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockRequestReadStore) Get(ctx context.Context, id uuid.UUID) (*appointment.Request, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, id)
	ret0, _ := ret[0].(*appointment.Request)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockRequestReadStoreMockRecorder) Get(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockRequestReadStore)(nil).Get), ctx, id)
}

// HasPending mocks base method.
func (m *MockRequestReadStore) HasPending(ctx context.Context) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasPending", ctx)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasPending indicates an expected call of HasPending.
func (mr *MockRequestReadStoreMockRecorder) HasPending(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasPending", reflect.TypeOf((*MockRequestReadStore)(nil).HasPending), ctx)
}

// List mocks base method.
func (m *MockRequestReadStore) List(ctx context.Context) ([]*appointment.Request, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "List", ctx)
	ret0, _ := ret[0].([]*appointment.Request)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// List indicates an expected call of List.
func (mr *MockRequestReadStoreMockRecorder) List(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "List", reflect.TypeOf((*MockRequestReadStore)(nil).List), ctx)
}

// MockAdminQueries is a mock of AdminQueries interface.
type MockAdminQueries struct {
	ctrl     *gomock.Controller
	recorder *MockAdminQueriesMockRecorder
	isgomock struct{}
}

// MockAdminQueriesMockRecorder is the mock recorder for MockAdminQueries.
type MockAdminQueriesMockRecorder struct {
	mock *MockAdminQueries
}

// NewMockAdminQueries creates a new mock instance.
func NewMockAdminQueries(ctrl *gomock.Controller) *MockAdminQueries {
	mock := &MockAdminQueries{ctrl: ctrl}
	mock.recorder = &MockAdminQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAdminQueries) EXPECT() *MockAdminQueriesMockRecorder {
	return m.recorder
}

// Badge mocks base method.
func (m *MockAdminQueries) Badge(ctx context.Context) (*queries.BadgeView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Badge", ctx)
	ret0, _ := ret[0].(*queries.BadgeView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Badge indicates an expected call of Badge.
func (mr *MockAdminQueriesMockRecorder) Badge(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Badge", reflect.TypeOf((*MockAdminQueries)(nil).Badge), ctx)
}

// GetRequest mocks base method.
func (m *MockAdminQueries) GetRequest(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRequest", ctx, id)
	ret0, _ := ret[0].(*queries.RequestView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRequest indicates an expected call of GetRequest.
func (mr *MockAdminQueriesMockRecorder) GetRequest(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRequest", reflect.TypeOf((*MockAdminQueries)(nil).GetRequest), ctx, id)
}

// ListRequests mocks base method.
func (m *MockAdminQueries) ListRequests(ctx context.Context) ([]*queries.RequestView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListRequests", ctx)
	ret0, _ := ret[0].([]*queries.RequestView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListRequests indicates an expected call of ListRequests.
func (mr *MockAdminQueriesMockRecorder) ListRequests(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListRequests", reflect.TypeOf((*MockAdminQueries)(nil).ListRequests), ctx)
}
