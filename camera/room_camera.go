package camera

import (
	"log"

	"github.com/milk9111/roomscroller/common"
)

// Config holds the tuning of a RoomCamera. Distances are in world units.
type Config struct {
	DelayDuration       float64
	TransitionDuration  float64
	LeadInDistance      float64
	InterpolationScalar float64
	ProbeSize           float64
	ViewportWidth       float64
	ViewportHeight      float64
}

func DefaultConfig() Config {
	return Config{
		DelayDuration:       0.35,
		TransitionDuration:  1,
		LeadInDistance:      1.5 * common.PPM,
		InterpolationScalar: 3,
		ProbeSize:           5 * common.PPM,
		ViewportWidth:       common.ViewWidth * common.PPM,
		ViewportHeight:      common.ViewHeight * common.PPM,
	}
}

// RoomCamera frames the room containing its focus and animates a two phase
// transition (hold, then interpolate) when the focus crosses into another
// room.
type RoomCamera struct {
	cfg     Config
	pending *Config

	pos common.Vec2

	delayTimer *common.Timer
	transTimer *common.Timer

	transStart  common.Vec2
	transTarget common.Vec2
	focusStart  common.Vec2
	focusTarget common.Vec2

	rooms    []Room
	focus    FocusProvider
	listener TransitionListener

	prior   *Room
	current *Room

	direction Direction
	state     TransitionState

	reset bool
}

func NewRoomCamera(cfg Config) *RoomCamera {
	return &RoomCamera{
		cfg:        cfg,
		delayTimer: common.NewTimer(cfg.DelayDuration),
		transTimer: common.NewTimer(cfg.TransitionDuration),
	}
}

func (c *RoomCamera) Config() Config {
	return c.cfg
}

// SetConfig replaces the tuning. While a transition is running the new
// values are held back until it ends so the timers stay consistent.
func (c *RoomCamera) SetConfig(cfg Config) {
	if c.Transitioning() {
		c.pending = &cfg
		return
	}
	c.applyConfig(cfg)
}

func (c *RoomCamera) applyConfig(cfg Config) {
	c.cfg = cfg
	c.pending = nil
	c.delayTimer = common.NewTimer(cfg.DelayDuration)
	c.transTimer = common.NewTimer(cfg.TransitionDuration)
}

func (c *RoomCamera) SetListener(l TransitionListener) {
	c.listener = l
}

// SetRooms installs the room registry. Order matters: the first matching
// room wins wherever several qualify.
func (c *RoomCamera) SetRooms(rooms []Room) {
	c.rooms = append([]Room(nil), rooms...)
}

func (c *RoomCamera) Rooms() []Room {
	return c.rooms
}

// SetFocus installs the tracked entity and snaps the camera to its center.
// Room logic waits for the next Update.
func (c *RoomCamera) SetFocus(focus FocusProvider) {
	c.focus = focus
	c.reset = true
	if focus == nil {
		return
	}
	c.pos = focus.Bounds().Center()
}

func (c *RoomCamera) Focus() FocusProvider {
	return c.focus
}

// Reset clears room tracking on the next Update. It never fires the end
// transition callback.
func (c *RoomCamera) Reset() {
	c.reset = true
}

func (c *RoomCamera) Position() common.Vec2 {
	return c.pos
}

func (c *RoomCamera) SetPosition(p common.Vec2) {
	c.pos = p
}

func (c *RoomCamera) CurrentRoom() (Room, bool) {
	if c.current == nil {
		return Room{}, false
	}
	return *c.current, true
}

func (c *RoomCamera) PriorRoom() (Room, bool) {
	if c.prior == nil {
		return Room{}, false
	}
	return *c.prior, true
}

func (c *RoomCamera) CurrentRoomName() string {
	if c.current == nil {
		return ""
	}
	return c.current.Name
}

func (c *RoomCamera) Transitioning() bool {
	return c.state != StateNone
}

func (c *RoomCamera) State() TransitionState {
	return c.state
}

func (c *RoomCamera) Direction() Direction {
	return c.direction
}

func (c *RoomCamera) DelayJustFinished() bool {
	return c.delayTimer.JustFinished()
}

func (c *RoomCamera) TransitionRatio() float64 {
	return c.transTimer.Ratio()
}

// TransitionTarget returns the camera destination of the active transition.
func (c *RoomCamera) TransitionTarget() (common.Vec2, bool) {
	if !c.Transitioning() {
		return common.Vec2{}, false
	}
	return c.transTarget, true
}

// TransitionInterpolation returns the lead-in focus position for the active
// transition. It moves on its own, shorter path from the focus center at the
// start toward a point just inside the destination room.
func (c *RoomCamera) TransitionInterpolation() (common.Vec2, bool) {
	if !c.Transitioning() {
		return common.Vec2{}, false
	}
	return c.focusStart.Lerp(c.focusTarget, c.TransitionRatio()), true
}

// TransitionTo starts a transition to the named room regardless of where the
// focus is. The direction follows the dominant axis between room centers.
func (c *RoomCamera) TransitionTo(name string) (bool, error) {
	if c.current == nil {
		return false, ErrNoCurrentRoom
	}
	if c.Transitioning() {
		return false, ErrTransitionActive
	}
	for i := range c.rooms {
		next := &c.rooms[i]
		if next.Name != name {
			continue
		}
		c.direction = DominantDirection(c.current.Bounds.Center(), next.Bounds.Center())
		c.setTransitionValues(next.Bounds)
		c.prior = c.current
		c.current = next
		log.Printf("camera: transition to %q forced, direction=%s", name, c.direction)
		return true, nil
	}
	return false, nil
}

// Update runs exactly one of the reset, transitioning or tracking branches.
func (c *RoomCamera) Update(dt float64) {
	switch {
	case c.reset:
		c.reset = false
		c.prior = nil
		c.current = nil
		c.direction = DirNone
		c.state = StateNone
		c.delayTimer.Reset()
		c.transTimer.Reset()
		c.transStart = common.Vec2{}
		c.transTarget = common.Vec2{}
		c.setCameraToFocus(dt)
		c.current = c.nextRoom()
	case c.Transitioning():
		c.onTransition(dt)
	default:
		c.onNoTransition(dt)
	}
}

func (c *RoomCamera) onNoTransition(dt float64) {
	if c.focus == nil {
		return
	}
	bounds := c.focus.Bounds()
	center := bounds.Center()

	if c.current == nil {
		if next := c.nextRoom(); next != nil {
			c.prior = c.current
			c.current = next
		}
		// no room yet: follow horizontally only
		c.pos.X = center.X
		return
	}

	room := c.current.Bounds
	if !room.Contains(center) {
		c.current = nil
		return
	}

	c.setCameraToFocus(dt)

	// Order is load-bearing: when the room is smaller than the viewport the
	// min clamp runs last and wins.
	halfW := c.cfg.ViewportWidth / 2
	halfH := c.cfg.ViewportHeight / 2
	if c.pos.Y > room.MaxY()-halfH {
		c.pos.Y = room.MaxY() - halfH
	}
	if c.pos.Y < room.Y+halfH {
		c.pos.Y = room.Y + halfH
	}
	if c.pos.X > room.MaxX()-halfW {
		c.pos.X = room.MaxX() - halfW
	}
	if c.pos.X < room.X+halfW {
		c.pos.X = room.X + halfW
	}

	for i := range c.rooms {
		next := &c.rooms[i]
		if next.Name == c.current.Name || !next.Bounds.Overlaps(bounds) {
			continue
		}
		probe := common.RectAround(center, c.cfg.ProbeSize, c.cfg.ProbeSize)
		c.direction = PushDirection(probe, room)
		c.prior = c.current
		c.current = next
		c.setTransitionValues(next.Bounds)
		log.Printf("camera: transition %q -> %q direction=%s", c.prior.Name, next.Name, c.direction)
		break
	}
}

func (c *RoomCamera) setTransitionValues(next common.Rect) {
	c.state = StateBegin
	c.transStart = c.pos
	c.transTarget = c.transStart
	if c.focus != nil {
		c.focusStart = c.focus.Bounds().Center()
	} else {
		c.focusStart = c.pos
	}
	c.focusTarget = c.focusStart

	halfW := c.cfg.ViewportWidth / 2
	halfH := c.cfg.ViewportHeight / 2
	lead := c.cfg.LeadInDistance
	switch c.direction {
	case DirLeft:
		c.transTarget.X = next.MaxX() - min(next.W/2, halfW)
		c.focusTarget.X = next.MaxX() - lead
	case DirRight:
		c.transTarget.X = next.X + min(next.W/2, halfW)
		c.focusTarget.X = next.X + lead
	case DirUp:
		c.transTarget.Y = next.Y + min(next.H/2, halfH)
		c.focusTarget.Y = next.Y + lead
	case DirDown:
		c.transTarget.Y = next.MaxY() - min(next.H/2, halfH)
		c.focusTarget.Y = next.MaxY() - lead
	}
}

// onTransition advances the phase machine. END is observed one Update after
// the interpolation reaches the target; listeners are timed against that lag.
func (c *RoomCamera) onTransition(dt float64) {
	switch c.state {
	case StateEnd:
		c.direction = DirNone
		c.state = StateNone
		c.delayTimer.Reset()
		c.transTimer.Reset()
		c.transStart = common.Vec2{}
		c.transTarget = common.Vec2{}
		if c.pending != nil {
			c.applyConfig(*c.pending)
		}
		if c.listener != nil {
			c.listener.EndTransition()
		}
	case StateBegin, StateContinue:
		if c.listener != nil {
			if c.state == StateBegin {
				c.listener.BeginTransition()
			} else {
				c.listener.ContinueTransition(dt)
			}
		}
		c.state = StateContinue

		c.delayTimer.Update(dt)
		if !c.delayTimer.Finished() {
			return
		}
		c.transTimer.Update(dt)
		c.pos = c.transStart.Lerp(c.transTarget, c.TransitionRatio())
		if c.transTimer.Finished() {
			c.state = StateEnd
		}
	}
}

func (c *RoomCamera) nextRoom() *Room {
	if c.focus == nil || len(c.rooms) == 0 {
		return nil
	}
	center := c.focus.Bounds().Center()
	for i := range c.rooms {
		if c.rooms[i].Bounds.Contains(center) {
			return &c.rooms[i]
		}
	}
	return nil
}

func (c *RoomCamera) setCameraToFocus(dt float64) {
	if c.focus == nil {
		return
	}
	c.pos = c.pos.Lerp(c.focus.Bounds().Center(), dt*c.cfg.InterpolationScalar)
}
