// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/tick/internal/model"
)

// MockTaskFileAdapter is a mock implementation of adapter.TaskFileAdapter.
type MockTaskFileAdapter struct {
	mock.Mock
}

// NewMockTaskFileAdapter creates a MockTaskFileAdapter bound to the test's
// lifecycle.
func NewMockTaskFileAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTaskFileAdapter {
	a := &MockTaskFileAdapter{}
	a.Mock.Test(t)

	t.Cleanup(func() { a.AssertExpectations(t) })

	return a
}

func (a *MockTaskFileAdapter) ReadLines(path m.Path) ([]string, error) {
	ret := a.Called(path)

	var lines []string
	if ret.Get(0) != nil {
		lines = ret.Get(0).([]string)
	}

	return lines, ret.Error(1)
}

func (a *MockTaskFileAdapter) WriteFile(path m.Path, content string) error {
	ret := a.Called(path, content)

	return ret.Error(0)
}

func (a *MockTaskFileAdapter) Exists(path m.Path) (bool, error) {
	ret := a.Called(path)

	return ret.Bool(0), ret.Error(1)
}
