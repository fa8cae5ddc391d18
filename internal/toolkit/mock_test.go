package toolkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/tabstrip/internal/ports"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

func TestMockToolkit_ApplyTabs(t *testing.T) {
	mockToolkit := new(MockToolkit)
	views := []ports.TabView{{ID: "home", Glyph: "house"}}
	mockToolkit.On("ApplyTabs", views).Return(nil)

	err := mockToolkit.ApplyTabs(views)

	require.NoError(t, err)
	mockToolkit.AssertCalled(t, "ApplyTabs", views)
}

func TestMockToolkit_SetHighlightError(t *testing.T) {
	mockToolkit := new(MockToolkit)
	mockToolkit.On("SetHighlight", 3).Return(errors.New("out of range"))

	err := mockToolkit.SetHighlight(3)

	assert.Error(t, err)
	mockToolkit.AssertExpectations(t)
}

func TestMockToolkit_SafeAreaInsets(t *testing.T) {
	mockToolkit := new(MockToolkit)
	mockToolkit.On("SafeAreaInsets").Return(tabs.Insets{Top: 44}, nil)

	insets, err := mockToolkit.SafeAreaInsets()

	require.NoError(t, err)
	assert.Equal(t, 44.0, insets.Top)
}

func TestMockToolkit_SetIconImage(t *testing.T) {
	mockToolkit := new(MockToolkit)
	mockToolkit.On("SetIconImage", 0, mock.Anything, mock.Anything).Return(nil)

	err := mockToolkit.SetIconImage(0, []byte("sel"), []byte("unsel"))

	require.NoError(t, err)
	mockToolkit.AssertNumberOfCalls(t, "SetIconImage", 1)
}
