// Mocks for internal/usecase/shared/ports.go, maintained by hand in mockgen's layout.
// `go generate ./internal/usecase/...` replaces this file with mockgen output.

// Package sharedmock holds GoMock doubles for the shared use case ports.
package sharedmock

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
	appointment "petsitter-booking/internal/domain/appointment"
	session "petsitter-booking/internal/domain/session"
)

// MockRequestRepository is a mock of RequestRepository interface.
type MockRequestRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRequestRepositoryMockRecorder
	isgomock struct{}
}

// MockRequestRepositoryMockRecorder is the mock recorder for MockRequestRepository.
type MockRequestRepositoryMockRecorder struct {
	mock *MockRequestRepository
}

// NewMockRequestRepository creates a new mock instance.
func NewMockRequestRepository(ctrl *gomock.Controller) *MockRequestRepository {
	mock := &MockRequestRepository{ctrl: ctrl}
	mock.recorder = &MockRequestRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRequestRepository) EXPECT() *MockRequestRepositoryMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockRequestRepository) Append(ctx context.Context, req *appointment.Request) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", ctx, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// Append indicates an expected call of Append.
func (mr *MockRequestRepositoryMockRecorder) Append(ctx any, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockRequestRepository)(nil).Append), ctx, req)
}

// SetAllSlotStatuses mocks base method.
func (m *MockRequestRepository) SetAllSlotStatuses(ctx context.Context, requestID uuid.UUID, status appointment.Status) (*appointment.Request, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetAllSlotStatuses", ctx, requestID, status)
	ret0, _ := ret[0].(*appointment.Request)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetAllSlotStatuses indicates an expected call of SetAllSlotStatuses.
func (mr *MockRequestRepositoryMockRecorder) SetAllSlotStatuses(ctx any, requestID any, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetAllSlotStatuses", reflect.TypeOf((*MockRequestRepository)(nil).SetAllSlotStatuses), ctx, requestID, status)
}

// SetSlotStatus mocks base method.
func (m *MockRequestRepository) SetSlotStatus(ctx context.Context, requestID uuid.UUID, slotID uuid.UUID, status appointment.Status) (*appointment.Request, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetSlotStatus", ctx, requestID, slotID, status)
	ret0, _ := ret[0].(*appointment.Request)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetSlotStatus indicates an expected call of SetSlotStatus.
func (mr *MockRequestRepositoryMockRecorder) SetSlotStatus(ctx any, requestID any, slotID any, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetSlotStatus", reflect.TypeOf((*MockRequestRepository)(nil).SetSlotStatus), ctx, requestID, slotID, status)
}

// MockSessionRepository is a mock of SessionRepository interface.
type MockSessionRepository struct {
	ctrl     *gomock.Controller
	recorder *MockSessionRepositoryMockRecorder
	isgomock struct{}
}

// MockSessionRepositoryMockRecorder is the mock recorder for MockSessionRepository.
type MockSessionRepositoryMockRecorder struct {
	mock *MockSessionRepository
}

// NewMockSessionRepository creates a new mock instance.
func NewMockSessionRepository(ctrl *gomock.Controller) *MockSessionRepository {
	mock := &MockSessionRepository{ctrl: ctrl}
	mock.recorder = &MockSessionRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionRepository) EXPECT() *MockSessionRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockSessionRepository) Create(ctx context.Context, s *session.Session) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, s)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockSessionRepositoryMockRecorder) Create(ctx any, s any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockSessionRepository)(nil).Create), ctx, s)
}

// Update mocks base method.
func (m *MockSessionRepository) Update(ctx context.Context, id uuid.UUID, fn func(context.Context, *session.Session) error) (*session.Session, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, id, fn)
	ret0, _ := ret[0].(*session.Session)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockSessionRepositoryMockRecorder) Update(ctx any, id any, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockSessionRepository)(nil).Update), ctx, id, fn)
}

// MockNotifier is a mock of Notifier interface.
type MockNotifier struct {
	ctrl     *gomock.Controller
	recorder *MockNotifierMockRecorder
	isgomock struct{}
}

// MockNotifierMockRecorder is the mock recorder for MockNotifier.
type MockNotifierMockRecorder struct {
	mock *MockNotifier
}

// NewMockNotifier creates a new mock instance.
func NewMockNotifier(ctrl *gomock.Controller) *MockNotifier {
	mock := &MockNotifier{ctrl: ctrl}
	mock.recorder = &MockNotifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotifier) EXPECT() *MockNotifierMockRecorder {
	return m.recorder
}

// Notify mocks base method.
func (m *MockNotifier) Notify(ctx context.Context, req *appointment.Request) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Notify", ctx, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// Notify indicates an expected call of Notify.
func (mr *MockNotifierMockRecorder) Notify(ctx any, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Notify", reflect.TypeOf((*MockNotifier)(nil).Notify), ctx, req)
}
