package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
	"github.com/milk9111/roomscroller/physics"
	"golang.org/x/image/colornames"
)

// Projection maps Y-up world coordinates to screen pixels for a camera
// centered on Center showing a View sized area.
type Projection struct {
	Center common.Vec2
	View   common.Vec2
	Screen common.Vec2
}

func (p Projection) scale() (float64, float64) {
	sx, sy := 1.0, 1.0
	if p.View.X > 0 {
		sx = p.Screen.X / p.View.X
	}
	if p.View.Y > 0 {
		sy = p.Screen.Y / p.View.Y
	}
	return sx, sy
}

// Point projects a world point. Screen Y grows downward.
func (p Projection) Point(v common.Vec2) (float64, float64) {
	sx, sy := p.scale()
	x := (v.X - p.Center.X + p.View.X/2) * sx
	y := (p.View.Y/2 - (v.Y - p.Center.Y)) * sy
	return x, y
}

// Rect projects a world rectangle to its screen top-left corner and size.
func (p Projection) Rect(r common.Rect) (x, y, w, h float64) {
	sx, sy := p.scale()
	x, y = p.Point(common.Vec2{X: r.X, Y: r.MaxY()})
	return x, y, r.W * sx, r.H * sy
}

// DebugRenderer draws level geometry, rooms and the player as flat shapes.
type DebugRenderer struct {
	View     common.Vec2
	ShowInfo bool
}

func NewDebugRenderer(view common.Vec2) *DebugRenderer {
	return &DebugRenderer{View: view}
}

func (r *DebugRenderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)

	camEnt, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent)
	b := screen.Bounds()
	proj := Projection{
		Center: cam.Position,
		View:   r.View,
		Screen: common.Vec2{X: float64(b.Dx()), Y: float64(b.Dy())},
	}

	if levelEnt, ok := w.First(component.LevelComponent.Kind()); ok {
		level, _ := ecs.Get(w, levelEnt, component.LevelComponent)
		for _, room := range level.Rooms {
			clr := colornames.Slategray
			if room.Name == cam.Room {
				clr = colornames.Gold
			}
			strokeRect(screen, proj, room.Bounds, 2, clr)
		}
	}

	ecs.ForEach2(w, component.WorldBlockComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.WorldBlock, pb *component.PhysicsBody) {
		if pb.Body == nil {
			return
		}
		clr := colornames.Dimgray
		if ecs.Has(w, e, component.MovingPlatformComponent) {
			clr = colornames.Teal
		}
		fillRect(screen, proj, pb.Body.Bounds(), clr)
	})

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, pb *component.PhysicsBody) {
		if pb.Body == nil {
			return
		}
		fillRect(screen, proj, pb.Body.Bounds(), colornames.Crimson)
		for _, f := range pb.Body.Fixtures() {
			if f.Type == physics.FixtureBody {
				continue
			}
			strokeRect(screen, proj, f.Bounds(), 1, fixtureColor(pb.Body, f))
		}
		if r.ShowInfo {
			anim := ""
			if a, ok := ecs.Get(w, e, component.AnimationComponent); ok {
				anim = a.Current
			}
			text := fmt.Sprintf("room: %s\ntransitioning: %v %s\nsenses: %s\nanim: %s\npos: %s",
				cam.Room, cam.Transitioning, cam.Direction, pb.Body.Senses(), anim, pb.Body.Position())
			ebitenutil.DebugPrintAt(screen, text, 10, 10)
		}
	})
}

func fixtureColor(body *physics.Body, f *physics.Fixture) color.Color {
	var s physics.Sense
	switch f.Type {
	case physics.FixtureFeet:
		s = physics.FeetOnGround
	case physics.FixtureHead:
		s = physics.HeadTouchingBlock
	case physics.FixtureSide:
		switch f.Side {
		case physics.SideLeft:
			s = physics.SideTouchingBlockLeft
		case physics.SideRight:
			s = physics.SideTouchingBlockRight
		}
	}
	if s != 0 && body.IsSensing(s) {
		return colornames.Lime
	}
	return colornames.White
}

func fillRect(screen *ebiten.Image, proj Projection, r common.Rect, clr color.Color) {
	x, y, w, h := proj.Rect(r)
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func strokeRect(screen *ebiten.Image, proj Projection, r common.Rect, width float32, clr color.Color) {
	x, y, w, h := proj.Rect(r)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), width, clr, false)
}
