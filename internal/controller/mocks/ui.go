// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/tick/internal/controller"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI bound to the test's lifecycle.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	m := &MockUI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUI) DisplayList(entries []controller.ListEntry, total int) error {
	ret := m.Called(entries, total)

	return ret.Error(0)
}

func (m *MockUI) DisplayMessage(format string, args ...any) {
	m.Called(format, args)
}
