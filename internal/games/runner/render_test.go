package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mode-runner/internal/core"
)

func TestRenderPlayerAndGround(t *testing.T) {
	s := newTestSession(t, flatLevel())
	dst := core.NewScreen(80, 24)

	s.Render(dst)

	// 10 units per column, 480/24 = 20 units per row, camera at y=140
	cell := dst.GetCell(15, 11)
	assert.Equal(t, PlayerChar, cell.Rune)
	assert.Equal(t, core.ColorRed, cell.Color)
	assert.Equal(t, PlayerChar, dst.Get(18, 12))
	assert.NotEqual(t, PlayerChar, dst.Get(19, 11))

	assert.Equal(t, GroundChar, dst.Get(0, 13))
	assert.Equal(t, GroundChar, dst.Get(79, 23))
	assert.Equal(t, ' ', dst.Get(0, 12))

	assert.Contains(t, dst.Row(0), "Score: 0")
	assert.Contains(t, dst.Row(0), "Mode: StandardRunner")
}

func TestRenderPortalsAndObstacles(t *testing.T) {
	l := flatLevel(ModeTrigger{AtDistance: 500, Mode: KindFlapFly})
	l.Obstacles = []core.Rect{core.NewRect(300, 380, 20, 20)}
	s := newTestSession(t, l)
	dst := core.NewScreen(80, 24)

	s.Render(dst)

	portal := dst.GetCell(50, 5)
	assert.Equal(t, PortalChar, portal.Rune)
	assert.Equal(t, core.ColorYellow, portal.Color)
	assert.Contains(t, dst.Row(1), "FlapFly")

	assert.Equal(t, ObstacleChar, dst.Get(30, 12))
	assert.Equal(t, ObstacleChar, dst.Get(31, 12))
}

func TestRenderDeadMessage(t *testing.T) {
	l := flatLevel()
	l.Obstacles = []core.Rect{core.NewRect(200, 300, 40, 100)}
	s := newTestSession(t, l)
	runUntil(s, 1000)

	dst := core.NewScreen(80, 24)
	s.Render(dst)

	assert.Contains(t, dst.Row(12), "DEAD - press jump to restart")
	assert.NotContains(t, dst.Row(0), "Mode:")
}

func TestRenderDebugOverlay(t *testing.T) {
	s := newTestSession(t, flatLevel())
	s.Frame(0, core.InputSnapshot{DebugToggled: true})

	dst := core.NewScreen(80, 24)
	s.Render(dst)

	assert.True(t, strings.HasPrefix(strings.TrimSpace(dst.Row(2)), "Distance: 0"))
	assert.Contains(t, dst.String(), "OnGround: true")
	assert.Equal(t, ProbeChar, dst.Get(15, 13))
	assert.NotContains(t, dst.String(), "Wave:")
}

func TestRenderDebugShowsWaveDirection(t *testing.T) {
	s := newTestSession(t, flatLevel(ModeTrigger{AtDistance: 100, Mode: KindWaveToggle}))
	s.Frame(dt, core.InputSnapshot{DebugToggled: true})
	require.Equal(t, KindWaveToggle, s.Mode())

	dst := core.NewScreen(80, 24)
	s.Render(dst)
	assert.Contains(t, dst.String(), "Wave: up")

	s.Frame(dt, jumpPress)
	s.Render(dst)
	assert.Contains(t, dst.String(), "Wave: down")
}

func TestRenderEmptyScreen(t *testing.T) {
	s := newTestSession(t, flatLevel())
	assert.NotPanics(t, func() { s.Render(core.NewScreen(0, 0)) })
}
