// Package toolkit provides the host widget abstraction for the overlay.
package toolkit

import (
	"github.com/stretchr/testify/mock"

	"github.com/cristianoliveira/tabstrip/internal/ports"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// MockToolkit is a mock implementation of ports.Toolkit for testing.
// It uses testify/mock to provide flexible behavior configuration and
// method call tracking for assertions.
//
// Example usage:
//
//	mockToolkit := new(MockToolkit)
//	mockToolkit.On("ApplyTabs", mock.Anything).Return(nil)
//	mockToolkit.On("SetHighlight", 0).Return(nil)
//
//	err := mockToolkit.ApplyTabs(views)
//	assert.NoError(t, err)
//
//	// Assert that the method was called
//	mockToolkit.AssertCalled(t, "ApplyTabs", views)
type MockToolkit struct {
	mock.Mock
}

// ApplyTabs returns a mocked error when replacing the tab views.
// Configure the return value using:
//
//	mock.On("ApplyTabs", mock.Anything).Return(nil)
func (m *MockToolkit) ApplyTabs(views []ports.TabView) error {
	args := m.Called(views)
	return args.Error(0)
}

// SetHighlight returns a mocked error when moving the highlight.
// Configure the return value using:
//
//	mock.On("SetHighlight", 1).Return(nil)
func (m *MockToolkit) SetHighlight(index int) error {
	args := m.Called(index)
	return args.Error(0)
}

// ClearHighlight returns a mocked error when clearing the highlight.
// Configure the return value using:
//
//	mock.On("ClearHighlight").Return(nil)
func (m *MockToolkit) ClearHighlight() error {
	args := m.Called()
	return args.Error(0)
}

// SetBadge returns a mocked error when updating a badge.
// Configure the return value using:
//
//	mock.On("SetBadge", 0, "dot").Return(nil)
func (m *MockToolkit) SetBadge(index int, badge string) error {
	args := m.Called(index, badge)
	return args.Error(0)
}

// SetVisible returns a mocked error when toggling visibility.
// Configure the return value using:
//
//	mock.On("SetVisible", true).Return(nil)
func (m *MockToolkit) SetVisible(visible bool) error {
	args := m.Called(visible)
	return args.Error(0)
}

// SetIconImage returns a mocked error when installing icon variants.
// Configure the return value using:
//
//	mock.On("SetIconImage", 0, mock.Anything, mock.Anything).Return(nil)
func (m *MockToolkit) SetIconImage(index int, selected, unselected []byte) error {
	args := m.Called(index, selected, unselected)
	return args.Error(0)
}

// SetSymbolicIcon returns a mocked error when installing a glyph.
// Configure the return value using:
//
//	mock.On("SetSymbolicIcon", 0, "house").Return(nil)
func (m *MockToolkit) SetSymbolicIcon(index int, glyph string) error {
	args := m.Called(index, glyph)
	return args.Error(0)
}

// SafeAreaInsets returns mocked insets.
// Configure the return value using:
//
//	mock.On("SafeAreaInsets").Return(tabs.Insets{Top: 44}, nil)
func (m *MockToolkit) SafeAreaInsets() (tabs.Insets, error) {
	args := m.Called()
	return args.Get(0).(tabs.Insets), args.Error(1)
}
