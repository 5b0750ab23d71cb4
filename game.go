package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/roomscroller/camera"
	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/entity"
	"github.com/milk9111/roomscroller/ecs/system"
	"github.com/milk9111/roomscroller/levels"
	"github.com/milk9111/roomscroller/physics"
	"github.com/milk9111/roomscroller/prefabs"
	"github.com/milk9111/roomscroller/telemetry"
)

const (
	baseWidth  = 1024
	baseHeight = 768

	prefabDir = "prefabs"
	scriptDir = "prefabs/scripts"
)

type Game struct {
	frames int

	world    *ecs.World
	sched    *ecs.Scheduler
	renderer *system.DebugRenderer
	watcher  *prefabs.Watcher
	debug    bool
}

func NewGame(ctx context.Context, opts Options) (*Game, error) {
	lvl, err := levels.LoadLevelFromFS(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("game: load level %q: %w", opts.Level, err)
	}
	camSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	cfg := camSpec.Config()
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}

	world := ecs.NewWorld()
	if _, err := entity.LoadLevelToWorld(world, lvl); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	spawn := lvl.SpawnPoint()
	if _, err := entity.NewPlayer(world, spawn, spawnRoom(lvl.CameraRooms(), spawn)); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewCamera(world, spawn); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	sched := ecs.NewScheduler()
	cam := camera.NewRoomCamera(cfg)
	roomEvents := system.NewRoomEventSystem(ctx, sched, prefabs.LoadScript, tracer)
	phys := system.NewPhysicsSystem(physics.NewWorld(physics.DefaultWorldConfig()))
	phys.Sync(world)

	g := &Game{
		world:    world,
		sched:    sched,
		renderer: system.NewDebugRenderer(common.Vec2{X: cfg.ViewportWidth, Y: cfg.ViewportHeight}),
		debug:    opts.Debug,
	}
	g.renderer.ShowInfo = opts.Debug

	var events <-chan prefabs.Change
	var errs <-chan error
	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabDir, scriptDir)
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
			events, errs = w.Events, w.Errors
		}
	}

	sched.Add(system.NameHotReload, system.NewHotReloadSystem(events, errs, cam, roomEvents))
	sched.Add(system.NameInput, system.NewInputSystem())
	sched.Add(system.NamePlayerController, system.NewPlayerControllerSystem())
	sched.Add(system.NamePlatform, system.NewPlatformSystem())
	sched.Add(system.NamePhysics, phys)
	sched.Add(system.NameRespawn, system.NewRespawnSystem())
	sched.Add(system.NameAnimation, system.NewAnimationSystem())
	sched.Add(system.NameCamera, system.NewCameraSystem(ctx, cam, sched, tracer))
	sched.Add(system.NameTransitionFollow, system.NewTransitionFollowSystem())
	sched.Add(system.NameRoomEvent, roomEvents)

	log.Printf("game: level %q with %d rooms, spawn %s", lvl.Name, len(lvl.Rooms), spawn)
	return g, nil
}

// spawnRoom names the first room containing p.
func spawnRoom(rooms []camera.Room, p common.Vec2) string {
	for _, r := range rooms {
		if r.Bounds.Contains(p) {
			return r.Name
		}
	}
	return ""
}

func (g *Game) Update() error {
	g.frames++
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.renderer.ShowInfo = !g.renderer.ShowInfo
	}
	g.sched.Update(g.world, 1/float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 10, baseHeight-20)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		log.Printf("game: close watcher: %v", err)
	}
}
