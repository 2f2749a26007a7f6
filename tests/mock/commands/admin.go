// Mocks for internal/usecase/commands/admin.go, maintained by hand in mockgen's layout.
// `go generate ./internal/usecase/...` replaces this file with mockgen output.

// Package commandsmock holds GoMock doubles for the command use cases.
package commandsmock

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockAdminCommands is a mock of AdminCommands interface.
type MockAdminCommands struct {
	ctrl     *gomock.Controller
	recorder *MockAdminCommandsMockRecorder
	isgomock struct{}
}

// MockAdminCommandsMockRecorder is the mock recorder for MockAdminCommands.
type MockAdminCommandsMockRecorder struct {
	mock *MockAdminCommands
}

// NewMockAdminCommands creates a new mock instance.
func NewMockAdminCommands(ctrl *gomock.Controller) *MockAdminCommands {
	mock := &MockAdminCommands{ctrl: ctrl}
	mock.recorder = &MockAdminCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAdminCommands) EXPECT() *MockAdminCommandsMockRecorder {
	return m.recorder
}

// SetAllSlotStatuses mocks base method.
func (m *MockAdminCommands) SetAllSlotStatuses(ctx context.Context, requestID uuid.UUID, status string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetAllSlotStatuses", ctx, requestID, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetAllSlotStatuses indicates an expected call of SetAllSlotStatuses.
func (mr *MockAdminCommandsMockRecorder) SetAllSlotStatuses(ctx any, requestID any, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetAllSlotStatuses", reflect.TypeOf((*MockAdminCommands)(nil).SetAllSlotStatuses), ctx, requestID, status)
}

// SetSlotStatus mocks base method.
func (m *MockAdminCommands) SetSlotStatus(ctx context.Context, requestID uuid.UUID, slotID uuid.UUID, status string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetSlotStatus", ctx, requestID, slotID, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetSlotStatus indicates an expected call of SetSlotStatus.
func (mr *MockAdminCommandsMockRecorder) SetSlotStatus(ctx any, requestID any, slotID any, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetSlotStatus", reflect.TypeOf((*MockAdminCommands)(nil).SetSlotStatus), ctx, requestID, slotID, status)
}
