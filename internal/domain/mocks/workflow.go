// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/tick/internal/domain"
)

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow bound to the test's lifecycle.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWorkflow) List(args domain.ListArgs) error {
	ret := m.Called(args)

	return ret.Error(0)
}

func (m *MockWorkflow) Add(args domain.AddArgs) error {
	ret := m.Called(args)

	return ret.Error(0)
}

func (m *MockWorkflow) Do(numbers ...int) error {
	ret := m.Called(numbers)

	return ret.Error(0)
}

func (m *MockWorkflow) Undo(numbers ...int) error {
	ret := m.Called(numbers)

	return ret.Error(0)
}

func (m *MockWorkflow) Pri(number int, priority string) error {
	ret := m.Called(number, priority)

	return ret.Error(0)
}

func (m *MockWorkflow) Depri(numbers ...int) error {
	ret := m.Called(numbers)

	return ret.Error(0)
}

func (m *MockWorkflow) Remove(numbers ...int) error {
	ret := m.Called(numbers)

	return ret.Error(0)
}

func (m *MockWorkflow) Archive() error {
	ret := m.Called()

	return ret.Error(0)
}
