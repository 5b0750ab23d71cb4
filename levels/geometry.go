package levels

import (
	"github.com/milk9111/roomscroller/camera"
	"github.com/milk9111/roomscroller/common"
)

const tileSolid = 1

func tileRect(x, y, w, h float64) common.Rect {
	return common.Rect{X: x * common.PPM, Y: y * common.PPM, W: w * common.PPM, H: h * common.PPM}
}

// Bounds is the level rectangle in world units.
func (l *Level) Bounds() common.Rect {
	return tileRect(0, 0, float64(l.Width), float64(l.Height))
}

// CameraRooms converts the rooms layer to world units, keeping file order.
func (l *Level) CameraRooms() []camera.Room {
	rooms := make([]camera.Room, 0, len(l.Rooms))
	for _, r := range l.Rooms {
		rooms = append(rooms, camera.Room{
			Name:   r.Name,
			Bounds: tileRect(float64(r.X), float64(r.Y), float64(r.W), float64(r.H)),
			Event:  r.Event,
		})
	}
	return rooms
}

// TileCenter returns the world position of the center of tile (x, y).
func TileCenter(x, y float64) common.Vec2 {
	return common.Vec2{X: (x + 0.5) * common.PPM, Y: (y + 0.5) * common.PPM}
}

// SpawnPoint returns the first player spawn, or the level center.
func (l *Level) SpawnPoint() common.Vec2 {
	for _, e := range l.EntitiesOf(EntityPlayerSpawn) {
		return TileCenter(float64(e.X), float64(e.Y))
	}
	return l.Bounds().Center()
}

// Platform is a moving block: it starts at Bounds and travels to the
// center To and back at Speed world units per second.
type Platform struct {
	Bounds common.Rect
	To     common.Vec2
	Speed  float64
}

func (l *Level) Platforms() []Platform {
	var out []Platform
	for _, e := range l.EntitiesOf(EntityPlatform) {
		w := e.PropFloat("w", 3)
		h := e.PropFloat("h", 1)
		bounds := tileRect(float64(e.X), float64(e.Y), w, h)
		toX := e.PropFloat("to_x", float64(e.X))
		toY := e.PropFloat("to_y", float64(e.Y))
		out = append(out, Platform{
			Bounds: bounds,
			To:     tileRect(toX, toY, w, h).Center(),
			Speed:  e.PropFloat("speed", 2) * common.PPM,
		})
	}
	return out
}

// Solids merges the solid tiles of every physics layer into as few
// rectangles as possible, expanding greedily along x then y.
func (l *Level) Solids() []common.Rect {
	var out []common.Rect
	for i, layer := range l.Layers {
		if i >= len(l.LayerMeta) || !l.LayerMeta[i].Physics {
			continue
		}
		out = append(out, mergeSolids(layer, l.Width, l.Height)...)
	}
	return out
}

func mergeSolids(layer []int, width, height int) []common.Rect {
	var out []common.Rect
	processed := make([]bool, width*height)
	solid := func(idx int) bool {
		return !processed[idx] && layer[idx] == tileSolid
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if !solid(idx) {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < width && solid(y*width+x+w) {
				w++
			}

			h := 1
		heightLoop:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					if !solid((y+h)*width + xi) {
						break heightLoop
					}
				}
				h++
			}

			out = append(out, tileRect(float64(x), float64(y), float64(w), float64(h)))
			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}
		}
	}
	return out
}
