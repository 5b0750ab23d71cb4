package system

import (
	"log"
	"path/filepath"

	"github.com/milk9111/roomscroller/camera"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/prefabs"
)

// ConfigTarget accepts new camera tuning.
type ConfigTarget interface {
	SetConfig(cfg camera.Config)
}

// ScriptCache forgets compiled scripts.
type ScriptCache interface {
	Invalidate(name string)
}

// HotReloadSystem applies prefab edits reported by a watcher: camera tuning
// goes to the camera, edited scripts are recompiled on their next run.
type HotReloadSystem struct {
	events  <-chan prefabs.Change
	errs    <-chan error
	camera  ConfigTarget
	scripts ScriptCache
	loadCam func() (prefabs.CameraSpec, error)
}

func NewHotReloadSystem(events <-chan prefabs.Change, errs <-chan error, cam ConfigTarget, scripts ScriptCache) *HotReloadSystem {
	return &HotReloadSystem{
		events:  events,
		errs:    errs,
		camera:  cam,
		scripts: scripts,
		loadCam: prefabs.LoadCameraSpec,
	}
}

func (h *HotReloadSystem) Update(w *ecs.World) {
	if h == nil {
		return
	}
	for {
		select {
		case change, ok := <-h.events:
			if !ok {
				h.events = nil
				continue
			}
			h.reload(change)
		case err, ok := <-h.errs:
			if !ok {
				h.errs = nil
				continue
			}
			log.Printf("hot reload: watcher: %v", err)
		default:
			return
		}
	}
}

func (h *HotReloadSystem) reload(change prefabs.Change) {
	name := filepath.Base(change.Path)
	switch {
	case change.Kind == prefabs.ChangeScript:
		if h.scripts != nil {
			h.scripts.Invalidate(change.Path)
			log.Printf("hot reload: script %s", name)
		}
	case change.Kind == prefabs.ChangeSpec && name == prefabs.CameraSpecFile:
		spec, err := h.loadCam()
		if err != nil {
			log.Printf("hot reload: %v", err)
			return
		}
		if h.camera != nil {
			h.camera.SetConfig(spec.Config())
			log.Printf("hot reload: camera tuning from %s", name)
		}
	}
}
