package camera

import (
	"errors"
	"testing"

	"github.com/milk9111/roomscroller/common"
)

type fakeFocus struct {
	r common.Rect
}

func (f *fakeFocus) Bounds() common.Rect { return f.r }

func (f *fakeFocus) moveTo(x, y float64) {
	f.r = common.RectAround(common.Vec2{X: x, Y: y}, 32, 32)
}

type recorder struct {
	cam        *RoomCamera
	begins     int
	continues  int
	ends       int
	delayFlags []bool
}

func (r *recorder) BeginTransition() { r.begins++ }

func (r *recorder) ContinueTransition(dt float64) {
	r.continues++
	r.delayFlags = append(r.delayFlags, r.cam.DelayJustFinished())
}

func (r *recorder) EndTransition() { r.ends++ }

const dt = 0.125

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ViewportWidth = 320
	cfg.ViewportHeight = 240
	cfg.DelayDuration = 0.25
	cfg.TransitionDuration = 0.5
	return cfg
}

func horizontalRooms() []Room {
	return []Room{
		{Name: "A", Bounds: common.Rect{X: 0, Y: 0, W: 500, H: 240}},
		{Name: "B", Bounds: common.Rect{X: 500, Y: 0, W: 500, H: 240}, Event: "checkpoint"},
	}
}

func newTestCamera(rooms []Room, x, y float64) (*RoomCamera, *fakeFocus, *recorder) {
	cam := NewRoomCamera(testConfig())
	rec := &recorder{cam: cam}
	cam.SetListener(rec)
	cam.SetRooms(rooms)
	focus := &fakeFocus{}
	focus.moveTo(x, y)
	cam.SetFocus(focus)
	return cam, focus, rec
}

func TestRoomCameraAssignsContainingRoom(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want string
	}{
		{"inside_a", 100, "A"},
		{"inside_b", 900, "B"},
		{"outside_all", 2000, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam, _, _ := newTestCamera(horizontalRooms(), tc.x, 120)
			cam.Update(dt)
			if got := cam.CurrentRoomName(); got != tc.want {
				t.Fatalf("current room = %q, want %q", got, tc.want)
			}
			if cam.Transitioning() {
				t.Fatalf("no transition expected after reset")
			}
		})
	}

	t.Run("search_without_reset", func(t *testing.T) {
		cam, focus, _ := newTestCamera(horizontalRooms(), 2000, 120)
		cam.Update(dt)
		focus.moveTo(100, 120)
		cam.Update(dt)
		if got := cam.CurrentRoomName(); got != "A" {
			t.Fatalf("current room = %q, want A", got)
		}
	})
}

func TestRoomCameraRightTransition(t *testing.T) {
	cam, focus, rec := newTestCamera(horizontalRooms(), 400, 120)
	cam.Update(dt)

	focus.moveTo(490, 120)
	cam.Update(dt)

	if !cam.Transitioning() || cam.State() != StateBegin {
		t.Fatalf("expected transition to begin, state=%s", cam.State())
	}
	if cam.Direction() != DirRight {
		t.Fatalf("direction = %s, want right", cam.Direction())
	}
	if cam.CurrentRoomName() != "B" {
		t.Fatalf("current = %q, want B", cam.CurrentRoomName())
	}
	if prior, ok := cam.PriorRoom(); !ok || prior.Name != "A" {
		t.Fatalf("prior = %v ok=%v, want A", prior, ok)
	}
	target, ok := cam.TransitionTarget()
	if !ok || target.X != 660 || target.Y != 120 {
		t.Fatalf("target = %v, want (660, 120)", target)
	}
	start := cam.Position()
	if start.X != 340 {
		t.Fatalf("start x = %v, want clamped 340", start.X)
	}

	// delay phase holds the camera at the start
	cam.Update(dt)
	if rec.begins != 1 || cam.Position() != start {
		t.Fatalf("begins=%d pos=%v, want hold at %v", rec.begins, cam.Position(), start)
	}

	lastX := start.X
	for i := 0; i < 4; i++ {
		cam.Update(dt)
		if x := cam.Position().X; x < lastX {
			t.Fatalf("camera moved backwards: %v -> %v", lastX, x)
		} else {
			lastX = x
		}
	}
	if cam.Position() != target {
		t.Fatalf("pos = %v, want target %v", cam.Position(), target)
	}
	if cam.State() != StateEnd || rec.ends != 0 {
		t.Fatalf("state=%s ends=%d, want END held without callback", cam.State(), rec.ends)
	}
	lead, ok := cam.TransitionInterpolation()
	if !ok || lead.X != 500+1.5*common.PPM || lead.Y != 120 {
		t.Fatalf("lead-in = %v, want (%v, 120)", lead, 500+1.5*common.PPM)
	}

	cam.Update(dt)
	if cam.Transitioning() || rec.ends != 1 {
		t.Fatalf("transitioning=%v ends=%d, want finished", cam.Transitioning(), rec.ends)
	}
	if rec.continues != 4 {
		t.Fatalf("continues = %d, want 4", rec.continues)
	}
	// the delay finished during the second transition update, so the third
	// one observes it
	want := []bool{false, true, false, false}
	for i, got := range rec.delayFlags {
		if got != want[i] {
			t.Fatalf("delayJustFinished[%d] = %v, want %v", i, got, want[i])
		}
	}
	if _, ok := cam.TransitionInterpolation(); ok {
		t.Fatalf("interpolation must be unavailable after the transition")
	}
}

func TestRoomCameraTransitionDirections(t *testing.T) {
	tests := []struct {
		name       string
		rooms      []Room
		startX     float64
		startY     float64
		crossX     float64
		crossY     float64
		dir        Direction
		dest       string
		target     common.Vec2
		leadTarget common.Vec2
	}{
		{
			name:       "left",
			rooms:      horizontalRooms(),
			startX:     600,
			startY:     120,
			crossX:     510,
			crossY:     120,
			dir:        DirLeft,
			dest:       "A",
			target:     common.Vec2{X: 500 - 160, Y: 120},
			leadTarget: common.Vec2{X: 500 - 1.5*common.PPM, Y: 120},
		},
		{
			name: "up",
			rooms: []Room{
				{Name: "A", Bounds: common.Rect{X: 0, Y: 0, W: 500, H: 240}},
				{Name: "C", Bounds: common.Rect{X: 0, Y: 240, W: 500, H: 240}},
			},
			startX:     250,
			startY:     120,
			crossX:     250,
			crossY:     230,
			dir:        DirUp,
			dest:       "C",
			target:     common.Vec2{X: 250, Y: 360},
			leadTarget: common.Vec2{X: 250, Y: 240 + 1.5*common.PPM},
		},
		{
			name: "down",
			rooms: []Room{
				{Name: "C", Bounds: common.Rect{X: 0, Y: 240, W: 500, H: 240}},
				{Name: "A", Bounds: common.Rect{X: 0, Y: 0, W: 500, H: 240}},
			},
			startX:     250,
			startY:     360,
			crossX:     250,
			crossY:     250,
			dir:        DirDown,
			dest:       "A",
			target:     common.Vec2{X: 250, Y: 120},
			leadTarget: common.Vec2{X: 250, Y: 240 - 1.5*common.PPM},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam, focus, _ := newTestCamera(tc.rooms, tc.startX, tc.startY)
			cam.Update(dt)
			focus.moveTo(tc.crossX, tc.crossY)
			cam.Update(dt)

			if cam.Direction() != tc.dir {
				t.Fatalf("direction = %s, want %s", cam.Direction(), tc.dir)
			}
			if cam.CurrentRoomName() != tc.dest {
				t.Fatalf("destination = %q, want %q", cam.CurrentRoomName(), tc.dest)
			}
			for i := 0; i < 5; i++ {
				cam.Update(dt)
			}
			if cam.State() != StateEnd {
				t.Fatalf("state = %s, want end", cam.State())
			}
			if cam.Position() != tc.target {
				t.Fatalf("camera = %v, want %v", cam.Position(), tc.target)
			}
			if lead, _ := cam.TransitionInterpolation(); lead != tc.leadTarget {
				t.Fatalf("lead-in = %v, want %v", lead, tc.leadTarget)
			}
		})
	}
}

func TestRoomCameraResetDuringTransition(t *testing.T) {
	cam, focus, rec := newTestCamera(horizontalRooms(), 400, 120)
	cam.Update(dt)
	focus.moveTo(490, 120)
	cam.Update(dt)
	cam.Update(dt)
	if !cam.Transitioning() {
		t.Fatalf("expected an active transition")
	}

	cam.Reset()
	cam.Update(dt)

	if cam.Transitioning() {
		t.Fatalf("reset must clear the transition")
	}
	if cam.CurrentRoomName() != "A" {
		t.Fatalf("current = %q, want A (contains focus center)", cam.CurrentRoomName())
	}
	if _, ok := cam.PriorRoom(); ok {
		t.Fatalf("prior room should be cleared")
	}
	if rec.ends != 0 {
		t.Fatalf("reset must not fire end callbacks, got %d", rec.ends)
	}
	if cam.TransitionRatio() != 0 || cam.DelayJustFinished() {
		t.Fatalf("timers should be reset")
	}
}

func TestRoomCameraClampsSmallRoom(t *testing.T) {
	rooms := []Room{{Name: "short", Bounds: common.Rect{X: 0, Y: 0, W: 500, H: 200}}}
	cam, _, _ := newTestCamera(rooms, 250, 100)
	cam.Update(dt)
	cam.Update(dt)

	// max clamp gives 80, min clamp runs after and gives 120
	if got := cam.Position(); got.Y != 120 || got.X != 250 {
		t.Fatalf("camera = %v, want (250, 120)", got)
	}
}

func TestRoomCameraFallbacks(t *testing.T) {
	t.Run("no_focus", func(t *testing.T) {
		cam := NewRoomCamera(testConfig())
		cam.SetRooms(horizontalRooms())
		cam.SetPosition(common.Vec2{X: 7, Y: 9})
		cam.Update(dt)
		cam.Update(dt)
		if cam.Position() != (common.Vec2{X: 7, Y: 9}) {
			t.Fatalf("camera moved without focus: %v", cam.Position())
		}
		if _, ok := cam.CurrentRoom(); ok {
			t.Fatalf("no current room expected")
		}
	})

	t.Run("no_room_tracks_horizontally", func(t *testing.T) {
		cam, focus, _ := newTestCamera(horizontalRooms(), 2000, 800)
		cam.Update(dt)
		before := cam.Position()
		focus.moveTo(2100, 900)
		cam.Update(dt)
		if got := cam.Position(); got.X != 2100 || got.Y != before.Y {
			t.Fatalf("camera = %v, want x=2100 y=%v", got, before.Y)
		}
	})

	t.Run("empty_registry", func(t *testing.T) {
		cam, focus, rec := newTestCamera(nil, 100, 100)
		for i := 0; i < 3; i++ {
			focus.moveTo(100+float64(i)*300, 100)
			cam.Update(dt)
		}
		if cam.Transitioning() || rec.begins != 0 {
			t.Fatalf("empty registry must never transition")
		}
	})

	t.Run("leaving_current_room_clears_it", func(t *testing.T) {
		cam, focus, _ := newTestCamera(horizontalRooms(), 100, 120)
		cam.Update(dt)
		focus.moveTo(100, 900)
		cam.Update(dt)
		if _, ok := cam.CurrentRoom(); ok {
			t.Fatalf("current room should be cleared when focus center leaves it")
		}
	})
}

func TestRoomCameraFirstCandidateWins(t *testing.T) {
	rooms := append(horizontalRooms(), Room{Name: "B2", Bounds: common.Rect{X: 500, Y: 0, W: 200, H: 240}})
	cam, focus, _ := newTestCamera(rooms, 400, 120)
	cam.Update(dt)
	focus.moveTo(490, 120)
	cam.Update(dt)
	if cam.CurrentRoomName() != "B" {
		t.Fatalf("destination = %q, want first registered candidate B", cam.CurrentRoomName())
	}
}

func TestRoomCameraTransitionTo(t *testing.T) {
	cam, _, rec := newTestCamera(horizontalRooms(), 100, 120)
	if _, err := cam.TransitionTo("B"); !errors.Is(err, ErrNoCurrentRoom) {
		t.Fatalf("expected ErrNoCurrentRoom, got %v", err)
	}
	cam.Update(dt)

	ok, err := cam.TransitionTo("missing")
	if err != nil || ok {
		t.Fatalf("unknown room: ok=%v err=%v", ok, err)
	}

	ok, err = cam.TransitionTo("B")
	if err != nil || !ok {
		t.Fatalf("TransitionTo(B): ok=%v err=%v", ok, err)
	}
	if cam.Direction() != DirRight || cam.CurrentRoomName() != "B" {
		t.Fatalf("direction=%s current=%q", cam.Direction(), cam.CurrentRoomName())
	}
	if _, err := cam.TransitionTo("A"); !errors.Is(err, ErrTransitionActive) {
		t.Fatalf("expected ErrTransitionActive, got %v", err)
	}
	for i := 0; i < 7; i++ {
		cam.Update(dt)
	}
	if rec.begins != 1 || rec.ends != 1 {
		t.Fatalf("begins=%d ends=%d", rec.begins, rec.ends)
	}
}

func TestRoomCameraSetConfigDeferredDuringTransition(t *testing.T) {
	cam, focus, _ := newTestCamera(horizontalRooms(), 400, 120)
	cam.Update(dt)
	focus.moveTo(490, 120)
	cam.Update(dt)

	cfg := testConfig()
	cfg.TransitionDuration = 2
	cam.SetConfig(cfg)
	if cam.Config().TransitionDuration != 0.5 {
		t.Fatalf("config applied mid-transition")
	}
	for i := 0; i < 6; i++ {
		cam.Update(dt)
	}
	if cam.Transitioning() {
		t.Fatalf("transition should have ended")
	}
	if cam.Config().TransitionDuration != 2 {
		t.Fatalf("pending config not applied at end")
	}
}

func TestValidateRooms(t *testing.T) {
	tests := []struct {
		name  string
		rooms []Room
		want  error
	}{
		{"adjacent_ok", horizontalRooms(), nil},
		{"overlap", []Room{
			{Name: "A", Bounds: common.Rect{W: 100, H: 100}},
			{Name: "B", Bounds: common.Rect{X: 50, W: 100, H: 100}},
		}, ErrOverlappingRooms},
		{"duplicate", []Room{
			{Name: "A", Bounds: common.Rect{W: 100, H: 100}},
			{Name: "A", Bounds: common.Rect{X: 100, W: 100, H: 100}},
		}, ErrDuplicateRoom},
		{"empty", []Room{{Name: "A"}}, ErrInvalidRoom},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRooms(tc.rooms)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestPushDirection(t *testing.T) {
	room := common.Rect{X: 0, Y: 0, W: 500, H: 240}
	tests := []struct {
		name  string
		probe common.Rect
		want  Direction
	}{
		{"right_edge", common.RectAround(common.Vec2{X: 490, Y: 120}, 160, 160), DirRight},
		{"left_edge", common.RectAround(common.Vec2{X: 10, Y: 120}, 160, 160), DirLeft},
		{"top_edge", common.RectAround(common.Vec2{X: 250, Y: 230}, 160, 160), DirUp},
		{"bottom_edge", common.RectAround(common.Vec2{X: 250, Y: 10}, 160, 160), DirDown},
		{"disjoint", common.RectAround(common.Vec2{X: 2000, Y: 120}, 160, 160), DirNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PushDirection(tc.probe, room); got != tc.want {
				t.Fatalf("PushDirection = %s, want %s", got, tc.want)
			}
		})
	}
}
