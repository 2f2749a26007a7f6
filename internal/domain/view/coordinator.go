package view

import "petsitter-booking/internal/pkg/errs"

var (
	ErrInvalidState = errs.New("action not allowed in current view")
	ErrInvalidTab   = errs.New("invalid tab")
)

type State string

const (
	CustomerForm    State = "customer_form"
	CustomerSuccess State = "customer_success"
	Admin           State = "admin"
)

func (s State) String() string {
	return string(s)
}

type Tab string

const (
	TabCustomer Tab = "customer"
	TabAdmin    Tab = "admin"
)

func NewTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case TabCustomer, TabAdmin:
		return t, nil
	default:
		return "", ErrInvalidTab
	}
}

// Coordinator tracks which screen a session is on.
type Coordinator struct {
	state State
}

func NewCoordinator() *Coordinator {
	return &Coordinator{state: CustomerForm}
}

func (c *Coordinator) State() State {
	return c.state
}

func (c *Coordinator) CanSubmit() error {
	if c.state != CustomerForm {
		return ErrInvalidState
	}
	return nil
}

// Submitted moves the form to its success screen after a request was stored.
func (c *Coordinator) Submitted() error {
	if err := c.CanSubmit(); err != nil {
		return err
	}
	c.state = CustomerSuccess
	return nil
}

// Acknowledge returns to the form. It does nothing outside the success screen.
func (c *Coordinator) Acknowledge() {
	if c.state == CustomerSuccess {
		c.state = CustomerForm
	}
}

// SelectTab always resets the customer side to the form.
func (c *Coordinator) SelectTab(t Tab) error {
	switch t {
	case TabAdmin:
		c.state = Admin
	case TabCustomer:
		c.state = CustomerForm
	default:
		return ErrInvalidTab
	}
	return nil
}
