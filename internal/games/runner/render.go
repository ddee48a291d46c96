package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mode-runner/internal/core"
)

// Rendering characters.
const (
	GroundChar   = '█'
	CeilingChar  = '█'
	ObstacleChar = '▒'
	PlayerChar   = '█'
	PortalChar   = '┊'
	ProbeChar    = '•'
)

// cellWidth is the number of world units per terminal column.
const cellWidth = 10.0

// viewport maps world coordinates onto screen cells for one frame.
type viewport struct {
	scrollX   float64
	cameraY   float64
	rowHeight float64
}

func (v viewport) col(worldX float64) int {
	return int(math.Floor((worldX - v.scrollX) / cellWidth))
}

func (v viewport) row(worldY float64) int {
	return int(math.Floor((worldY - v.cameraY) / v.rowHeight))
}

// cells converts a world rectangle to a cell rectangle at least one cell wide and tall.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x, y = v.col(r.X), v.row(r.Y)
	x1 := int(math.Ceil((r.Right() - v.scrollX) / cellWidth))
	y1 := int(math.Ceil((r.Bottom() - v.cameraY) / v.rowHeight))
	return x, y, max(1, x1-x), max(1, y1-y)
}

// Render draws the session as seen by the camera.
// The view spans Camera.ViewHeight world units vertically and cellWidth
// units per column horizontally.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Height() == 0 || dst.Width() == 0 {
		return
	}

	v := viewport{
		scrollX:   s.distance,
		cameraY:   s.cameraY,
		rowHeight: s.cfg.Camera.ViewHeight / float64(dst.Height()),
	}

	s.drawTerrain(dst, v)
	s.drawPortals(dst, v)

	for _, o := range s.level.Obstacles {
		if v.col(o.Right()) < 0 || v.col(o.X) >= dst.Width() {
			continue
		}
		x, y, w, h := v.cells(o)
		dst.FillRect(x, y, w, h, ObstacleChar, core.ColorBrightRed)
	}

	p := s.world.Player
	x, y, w, h := v.cells(p.Box())
	dst.FillRect(x, y, w, h, PlayerChar, s.Mode().Color())

	if s.debug {
		s.drawDebug(dst, v)
	}

	s.drawHUD(dst)
}

func (s *Session) drawTerrain(dst *core.Screen, v viewport) {
	for c := 0; c < dst.Width(); c++ {
		worldX := v.scrollX + (float64(c)+0.5)*cellWidth

		top := v.row(s.level.FloorAt(worldX))
		if top < dst.Height() {
			dst.DrawVLine(c, top, dst.Height()-top, GroundChar, core.ColorSlate)
		}

		if len(s.level.Ceiling) > 0 {
			bottom := v.row(s.level.CeilingAt(worldX))
			if bottom > 0 {
				dst.DrawVLine(c, 0, bottom, CeilingChar, core.ColorGray)
			}
		}
	}
}

func (s *Session) drawPortals(dst *core.Screen, v viewport) {
	for _, tr := range s.level.Triggers {
		c := v.col(tr.AtDistance)
		if c < 0 || c >= dst.Width() {
			continue
		}
		color := tr.Mode.Color()
		dst.DrawVLine(c, 1, dst.Height()-1, PortalChar, color)
		dst.DrawTextColor(c+1, 1, tr.Mode.String(), color)
	}
}

func (s *Session) drawDebug(dst *core.Screen, v viewport) {
	p := s.world.Player

	leftX := p.X + p.Width*footLeft
	rightX := p.X + p.Width*footRight
	for _, px := range []float64{leftX, rightX} {
		surface := s.level.FloorAt(px)
		if s.world.GravityFlipped {
			surface = s.level.CeilingAt(px)
		}
		if math.IsInf(surface, 0) {
			continue
		}
		dst.SetColor(v.col(px), v.row(surface), ProbeChar, core.ColorGreen)
	}

	lines := []string{
		fmt.Sprintf("Distance: %d", int(s.distance)),
		fmt.Sprintf("Player: %.0f, %.0f", p.X, p.Y),
		fmt.Sprintf("VY: %.1f", p.VY),
		fmt.Sprintf("OnGround: %t", p.OnGround),
		fmt.Sprintf("Coyote: %.3f", p.CoyoteTimer),
		fmt.Sprintf("Buffer: %.3f", p.JumpBufferTimer),
		fmt.Sprintf("Flipped: %t", s.world.GravityFlipped),
		fmt.Sprintf("Trigger: %d/%d", s.triggerIndex, len(s.level.Triggers)),
	}
	if wave, ok := s.modes.Active().(*WaveToggle); ok {
		dir := "down"
		if wave.Direction() < 0 {
			dir = "up"
		}
		lines = append(lines, "Wave: "+dir)
	}
	for i, line := range lines {
		dst.DrawTextColor(1, 2+i, line, core.ColorGreen)
	}
}

func (s *Session) drawHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", s.score))

	if s.dead {
		dst.DrawTextCentered(dst.Height()/2, " DEAD - press jump to restart ")
		return
	}

	mode := fmt.Sprintf(" Mode: %s ", s.Mode())
	dst.DrawTextColor(dst.Width()-len(mode)-1, 0, mode, s.Mode().Color())
}
