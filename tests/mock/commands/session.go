// Mocks for internal/usecase/commands/session.go, maintained by hand in mockgen's layout.
// `go generate ./internal/usecase/...` replaces this file with mockgen output.

package commandsmock

import (
	context "context"
	reflect "reflect"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
	draft "petsitter-booking/internal/domain/draft"
	commands "petsitter-booking/internal/usecase/commands"
)

// MockSessionCommands is a mock of SessionCommands interface.
type MockSessionCommands struct {
	ctrl     *gomock.Controller
	recorder *MockSessionCommandsMockRecorder
	isgomock struct{}
}

// MockSessionCommandsMockRecorder is the mock recorder for MockSessionCommands.
type MockSessionCommandsMockRecorder struct {
	mock *MockSessionCommands
}

// NewMockSessionCommands creates a new mock instance.
func NewMockSessionCommands(ctrl *gomock.Controller) *MockSessionCommands {
	mock := &MockSessionCommands{ctrl: ctrl}
	mock.recorder = &MockSessionCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSessionCommands) EXPECT() *MockSessionCommandsMockRecorder {
	return m.recorder
}

// Acknowledge mocks base method.
func (m *MockSessionCommands) Acknowledge(ctx context.Context, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Acknowledge", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// Acknowledge indicates an expected call of Acknowledge.
func (mr *MockSessionCommandsMockRecorder) Acknowledge(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Acknowledge", reflect.TypeOf((*MockSessionCommands)(nil).Acknowledge), ctx, id)
}

// Create mocks base method.
func (m *MockSessionCommands) Create(ctx context.Context) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockSessionCommandsMockRecorder) Create(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockSessionCommands)(nil).Create), ctx)
}

// RemoveSlot mocks base method.
func (m *MockSessionCommands) RemoveSlot(ctx context.Context, id uuid.UUID, slotID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveSlot", ctx, id, slotID)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveSlot indicates an expected call of RemoveSlot.
func (mr *MockSessionCommandsMockRecorder) RemoveSlot(ctx any, id any, slotID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveSlot", reflect.TypeOf((*MockSessionCommands)(nil).RemoveSlot), ctx, id, slotID)
}

// SelectTab mocks base method.
func (m *MockSessionCommands) SelectTab(ctx context.Context, id uuid.UUID, tab string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SelectTab", ctx, id, tab)
	ret0, _ := ret[0].(error)
	return ret0
}

// SelectTab indicates an expected call of SelectTab.
func (mr *MockSessionCommandsMockRecorder) SelectTab(ctx any, id any, tab any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SelectTab", reflect.TypeOf((*MockSessionCommands)(nil).SelectTab), ctx, id, tab)
}

// Submit mocks base method.
func (m *MockSessionCommands) Submit(ctx context.Context, id uuid.UUID) (*commands.SubmitResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Submit", ctx, id)
	ret0, _ := ret[0].(*commands.SubmitResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Submit indicates an expected call of Submit.
func (mr *MockSessionCommandsMockRecorder) Submit(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Submit", reflect.TypeOf((*MockSessionCommands)(nil).Submit), ctx, id)
}

// ToggleFullDay mocks base method.
func (m *MockSessionCommands) ToggleFullDay(ctx context.Context, id uuid.UUID) (draft.ToggleResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ToggleFullDay", ctx, id)
	ret0, _ := ret[0].(draft.ToggleResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ToggleFullDay indicates an expected call of ToggleFullDay.
func (mr *MockSessionCommandsMockRecorder) ToggleFullDay(ctx any, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ToggleFullDay", reflect.TypeOf((*MockSessionCommands)(nil).ToggleFullDay), ctx, id)
}

// ToggleTimeSlot mocks base method.
func (m *MockSessionCommands) ToggleTimeSlot(ctx context.Context, id uuid.UUID, category string) (draft.ToggleResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ToggleTimeSlot", ctx, id, category)
	ret0, _ := ret[0].(draft.ToggleResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ToggleTimeSlot indicates an expected call of ToggleTimeSlot.
func (mr *MockSessionCommandsMockRecorder) ToggleTimeSlot(ctx any, id any, category any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ToggleTimeSlot", reflect.TypeOf((*MockSessionCommands)(nil).ToggleTimeSlot), ctx, id, category)
}

// UpdateContact mocks base method.
func (m *MockSessionCommands) UpdateContact(ctx context.Context, id uuid.UUID, in commands.ContactInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateContact", ctx, id, in)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateContact indicates an expected call of UpdateContact.
func (mr *MockSessionCommandsMockRecorder) UpdateContact(ctx any, id any, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateContact", reflect.TypeOf((*MockSessionCommands)(nil).UpdateContact), ctx, id, in)
}

// UpdateSelection mocks base method.
func (m *MockSessionCommands) UpdateSelection(ctx context.Context, id uuid.UUID, in commands.SelectionInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateSelection", ctx, id, in)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateSelection indicates an expected call of UpdateSelection.
func (mr *MockSessionCommandsMockRecorder) UpdateSelection(ctx any, id any, in any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateSelection", reflect.TypeOf((*MockSessionCommands)(nil).UpdateSelection), ctx, id, in)
}
