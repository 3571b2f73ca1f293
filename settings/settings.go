package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/game"
	"github.com/pelletier/go-toml/v2"
)

// Settings describe a table: its playfield, physics constants, balls and items. Coordinates are in table
// units with X to the right, Y growing towards the player and Z up from the playfield.
type Settings struct {
	Table struct {
		Name string
		// Width and Height are the size of the playfield.
		Width  float32
		Height float32
		// GlassHeight is the height of the glass above the playfield.
		GlassHeight float32
		// TimeStep is the length of a tick in ms.
		TimeStep float32
		// Workers is the amount of goroutines ball detection is spread over.
		Workers int
	}
	Physics struct {
		Gravity     Vec3
		Elasticity  float32
		Friction    float32
		MaxSubSteps int
	}
	Balls       []Ball
	Walls       []Wall
	Bumpers     []Bumper
	HitTargets  []HitTarget
	DropTargets []DropTarget
	Kickers     []Kicker
}

// Vec2 is a point on the playfield.
type Vec2 struct {
	X, Y float32
}

// Vec returns v as a vector.
func (v Vec2) Vec() mgl32.Vec2 { return mgl32.Vec2{v.X, v.Y} }

// Vec3 is a point in table space.
type Vec3 struct {
	X, Y, Z float32
}

// Vec returns v as a vector.
func (v Vec3) Vec() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

// Material is the response of a surface to a ball bouncing off it.
type Material struct {
	Elasticity float32
	Friction   float32
	// Threshold is the minimum normal speed of a hit that raises an event.
	Threshold float32
}

type Ball struct {
	ID       int32
	Position Vec3
	Velocity Vec3
	Radius   float32
	Mass     float32
}

// Wall is a vertical wall from From to To. It collides on its left side when walking from From to To.
type Wall struct {
	ID     int32
	From   Vec2
	To     Vec2
	Height float32
	Material
	// FireEvents reports hits on the wall, for slingshots and rubbers.
	FireEvents bool
}

type Bumper struct {
	ID             int32
	Center         Vec2
	Radius         float32
	Height         float32
	Force          float32
	RingSpeed      float32
	RingDropOffset float32
	Material
}

type HitTarget struct {
	ID       int32
	Min      Vec3
	Max      Vec3
	Speed    float32
	MaxAngle float32
	Material
}

type DropTarget struct {
	ID         int32
	Min        Vec3
	Max        Vec3
	Speed      float32
	RaiseDelay uint32
	Material
}

type Kicker struct {
	ID            int32
	Center        Vec2
	Radius        float32
	HitAccuracy   float32
	LegacyMode    bool
	PinSpeed      float32
	PinTravel     float32
	AutoKickDelay uint32
	AutoKickAngle float32
	AutoKickSpeed float32
}

// DefaultSettings returns a small table with a bumper triangle, a drop target bank, two hit targets and a kicker.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Table.Name = "default"
	settings.Table.Width = 1000
	settings.Table.Height = 2000
	settings.Table.GlassHeight = 210
	settings.Table.TimeStep = 1000.0 / 60.0
	settings.Table.Workers = 1

	settings.Physics.Gravity = Vec3{0, game.DefaultGravityY, game.DefaultGravityZ}
	settings.Physics.Elasticity = game.DefaultElasticity
	settings.Physics.Friction = game.DefaultFriction
	settings.Physics.MaxSubSteps = game.MaxSubSteps

	settings.Balls = []Ball{
		{ID: 1, Position: Vec3{950, 1800, game.DefaultBallRadius}, Velocity: Vec3{-0.9, -3.5, 0}, Radius: game.DefaultBallRadius, Mass: game.DefaultBallMass},
	}

	rail := Material{Elasticity: 0.6, Friction: 0.1}
	settings.Walls = []Wall{
		{ID: 1, From: Vec2{1000, 0}, To: Vec2{0, 0}, Height: 50, Material: rail},
		{ID: 2, From: Vec2{0, 0}, To: Vec2{0, 2000}, Height: 50, Material: rail},
		{ID: 3, From: Vec2{0, 2000}, To: Vec2{1000, 2000}, Height: 50, Material: rail},
		{ID: 4, From: Vec2{1000, 2000}, To: Vec2{1000, 0}, Height: 50, Material: rail},
		{ID: 5, From: Vec2{150, 1500}, To: Vec2{300, 1700}, Height: 50, Material: Material{Elasticity: 0.9, Threshold: 1}, FireEvents: true},
	}

	bumper := Material{Elasticity: 0.9, Threshold: 0.4}
	settings.Bumpers = []Bumper{
		{ID: 10, Center: Vec2{400, 500}, Radius: 45, Height: 60, Force: 1.5, RingSpeed: 0.5, RingDropOffset: 10, Material: bumper},
		{ID: 11, Center: Vec2{600, 500}, Radius: 45, Height: 60, Force: 1.5, RingSpeed: 0.5, RingDropOffset: 10, Material: bumper},
		{ID: 12, Center: Vec2{500, 650}, Radius: 45, Height: 60, Force: 1.5, RingSpeed: 0.5, RingDropOffset: 10, Material: bumper},
	}

	target := Material{Elasticity: 0.3, Friction: 0.2}
	settings.HitTargets = []HitTarget{
		{ID: 20, Min: Vec3{80, 800, 0}, Max: Vec3{100, 860, 50}, Speed: 0.5, MaxAngle: 13, Material: target},
		{ID: 21, Min: Vec3{900, 800, 0}, Max: Vec3{920, 860, 50}, Speed: 0.5, MaxAngle: 13, Material: target},
	}
	for i := range 3 {
		x := 380 + float32(i)*90
		settings.DropTargets = append(settings.DropTargets, DropTarget{
			ID: int32(30 + i), Min: Vec3{x, 1000, 0}, Max: Vec3{x + 60, 1015, 50}, Speed: 0.5, RaiseDelay: 100, Material: target,
		})
	}

	settings.Kickers = []Kicker{
		{ID: 40, Center: Vec2{500, 250}, Radius: 25, HitAccuracy: 0.7, PinSpeed: 0.2, PinTravel: 10, AutoKickDelay: 1000, AutoKickAngle: 180, AutoKickSpeed: 3},
	}
	return settings
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %w", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %w", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading settings: %w", err)
	}

	var settings Settings
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding settings: %w", err)
	}
	return settings, nil
}
