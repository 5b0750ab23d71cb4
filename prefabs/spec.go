package prefabs

import (
	"fmt"

	"github.com/milk9111/roomscroller/camera"
	"github.com/milk9111/roomscroller/common"
	"gopkg.in/yaml.v3"
)

const (
	CameraSpecFile = "camera.yaml"
	PlayerSpecFile = "player.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data)
}

// DecodeSpec unmarshals YAML data that was read from filename.
func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CameraSpec tunes the room camera. Distances are in tiles.
type CameraSpec struct {
	Name                string   `yaml:"name"`
	Delay               float64  `yaml:"delay"`
	Transition          float64  `yaml:"transition"`
	LeadInTiles         float64  `yaml:"lead_in_tiles"`
	InterpolationScalar float64  `yaml:"interpolation_scalar"`
	ProbeTiles          float64  `yaml:"probe_tiles"`
	Viewport            SizeSpec `yaml:"viewport"`
}

// Config converts the spec to world units. Zero fields keep the defaults.
func (s CameraSpec) Config() camera.Config {
	cfg := camera.DefaultConfig()
	if s.Delay > 0 {
		cfg.DelayDuration = s.Delay
	}
	if s.Transition > 0 {
		cfg.TransitionDuration = s.Transition
	}
	if s.LeadInTiles > 0 {
		cfg.LeadInDistance = s.LeadInTiles * common.PPM
	}
	if s.InterpolationScalar > 0 {
		cfg.InterpolationScalar = s.InterpolationScalar
	}
	if s.ProbeTiles > 0 {
		cfg.ProbeSize = s.ProbeTiles * common.PPM
	}
	if s.Viewport.Width > 0 {
		cfg.ViewportWidth = s.Viewport.Width * common.PPM
	}
	if s.Viewport.Height > 0 {
		cfg.ViewportHeight = s.Viewport.Height * common.PPM
	}
	return cfg
}

type BodySpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

// MovementSpec speeds are in tiles per second.
type MovementSpec struct {
	MoveSpeed      float64 `yaml:"move_speed"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	WallSlideSpeed float64 `yaml:"wall_slide_speed"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
}

type AnimationSpec struct {
	Name   string  `yaml:"name"`
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Loop   bool    `yaml:"loop"`
}

type PlayerSpec struct {
	Name       string          `yaml:"name"`
	Body       BodySpec        `yaml:"body"`
	Movement   MovementSpec    `yaml:"movement"`
	Animations []AnimationSpec `yaml:"animations"`
}

func LoadCameraSpec() (CameraSpec, error) {
	return LoadSpec[CameraSpec](CameraSpecFile)
}

func LoadPlayerSpec() (PlayerSpec, error) {
	return LoadSpec[PlayerSpec](PlayerSpecFile)
}
