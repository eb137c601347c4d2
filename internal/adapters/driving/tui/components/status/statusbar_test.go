package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 0, bar.Completion())
	assert.Equal(t, 80, bar.Width())
	assert.Nil(t, bar.Init())
}

func TestBar_SetState(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateGenerating)
	assert.Equal(t, StateGenerating, bar.State())
}

func TestBar_SetCompletion(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetCompletion(76)
	assert.Equal(t, 76, bar.Completion())
	assert.Contains(t, bar.View(), "76% complete")
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)
	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_View_Generating(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateGenerating)
	assert.Contains(t, bar.View(), "Generating...")
}

func TestBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	assert.Contains(t, bar.View(), "Error")

	bar.SetMessage("generation failed")
	assert.Contains(t, bar.View(), "Error: generation failed")
}

func TestBar_View_SelectionHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateSelecting)

	out := bar.View()
	assert.Contains(t, out, "space: toggle")
	assert.Contains(t, out, "enter: next")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetCompletion(42)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Equal(t, 0, bar.Completion())
}
