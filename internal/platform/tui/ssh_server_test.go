package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-sidescroller/internal/logging"
)

func TestSessionOptionsDisableScreenshots(t *testing.T) {
	rec := &recorderStub{}
	s := &SSHServer{config: DefaultSSHServerConfig(), recorder: rec, logger: logging.Discard()}

	opts := s.sessionOptions("ada", 100, 30)
	assert.False(t, opts.Screenshots)
	assert.Equal(t, "ada", opts.Player)
	assert.Equal(t, 100, opts.Runtime.ScreenW)
	assert.Equal(t, 30, opts.Runtime.ScreenH)
	assert.Equal(t, 60, opts.Runtime.TickRate)
	assert.Same(t, rec, opts.Recorder)

	dir := t.TempDir()
	opts.ScreenshotDir = dir
	m := NewModel(&scriptedGame{}, opts)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Empty(t, m.status)
}
