package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driving/tui/messages"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(newTestPorts(t))
	require.NoError(t, err)
	return app
}

func TestNewApp(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, messages.ViewMenu, app.CurrentView())
	assert.False(t, app.Ready())
	assert.NoError(t, app.Err())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	ports := newTestPorts(t)
	ports.Export = nil

	_, err := NewApp(ports)
	assert.ErrorIs(t, err, ErrMissingExportService)
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)
	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app := newTestApp(t)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Nil(t, cmd)
	updated := model.(*App)
	assert.True(t, updated.Ready())
	assert.Equal(t, 120, updated.width)
	assert.Equal(t, 40, updated.height)
}

func TestApp_Update_CtrlCQuits(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_ViewChanged(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewPolicy})
	assert.Equal(t, messages.ViewPolicy, model.(*App).CurrentView())

	model, _ = app.Update(messages.ViewChanged{View: messages.ViewTerms})
	assert.Equal(t, messages.ViewTerms, model.(*App).CurrentView())

	model, _ = app.Update(messages.ViewChanged{View: messages.ViewMenu})
	assert.Equal(t, messages.ViewMenu, model.(*App).CurrentView())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)

	boom := errors.New("boom")
	model, _ := app.Update(messages.ErrorOccurred{Err: boom})

	assert.Equal(t, boom, model.(*App).Err())
}

func TestApp_Update_HelpEscReturnsToMenu(t *testing.T) {
	app := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewHelp})
	app = model.(*App)
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMenu, model.(*App).CurrentView())
}

func TestApp_View_BeforeReady(t *testing.T) {
	app := newTestApp(t)
	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_View_RendersCurrentView(t *testing.T) {
	app := newTestApp(t)
	app.SetDimensions(120, 40)
	app.menuView.SetDimensions(120, 40)

	out := app.View()
	assert.Contains(t, out, "lawkit")

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewHelp})
	assert.Contains(t, model.(*App).View(), "Help")
}
