// Package config loads the game configuration and the persisted user
// settings.
package config

import "fmt"

// Config is everything the game reads from platformer.yaml.
type Config struct {
	Screen  Screen  `yaml:"screen"`
	Physics Physics `yaml:"physics"`
	Game    Game    `yaml:"game"`
	Debug   Debug   `yaml:"debug"`
}

type Screen struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
}

// Physics holds movement constants in pixels and seconds.
type Physics struct {
	// CollisionIterations is the default round budget for iterative moves.
	CollisionIterations int     `yaml:"collision_iterations"`
	Gravity             float64 `yaml:"gravity"`
	MaxFallSpeed        float64 `yaml:"max_fall_speed"`
	// FallOutMargin is how far below the level an entity may drop before it
	// counts as fallen out.
	FallOutMargin float64 `yaml:"fall_out_margin"`
}

type Game struct {
	StartLevel       string  `yaml:"start_level"`
	Lives            int     `yaml:"lives"`
	DeathDelay       float64 `yaml:"death_delay"`
	InvulnerableTime float64 `yaml:"invulnerable_time"`
	// CameraLead is how many seconds of the player's velocity the camera
	// looks ahead.
	CameraLead float64 `yaml:"camera_lead"`
	// ActivationMargin is how close to the view, in pixels, an enemy has to
	// get before it starts moving.
	ActivationMargin int `yaml:"activation_margin"`
}

type Debug struct {
	DrawColliders bool `yaml:"draw_colliders"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: Screen{Width: 320, Height: 240, Scale: 3, Title: "Platformer"},
		Physics: Physics{
			CollisionIterations: 3,
			Gravity:             900,
			MaxFallSpeed:        320,
			FallOutMargin:       32,
		},
		Game: Game{
			StartLevel:       "1-1",
			Lives:            3,
			DeathDelay:       2.5,
			InvulnerableTime: 1.5,
			CameraLead:       0.4,
			ActivationMargin: 48,
		},
	}
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Scale <= 0 {
		return fmt.Errorf("config: screen scale %d must be positive", c.Screen.Scale)
	}
	if c.Physics.CollisionIterations < 1 {
		return fmt.Errorf("config: collision_iterations %d must be at least 1", c.Physics.CollisionIterations)
	}
	if c.Physics.Gravity < 0 || c.Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("config: gravity %.1f and max_fall_speed %.1f are out of range", c.Physics.Gravity, c.Physics.MaxFallSpeed)
	}
	if c.Game.Lives < 1 {
		return fmt.Errorf("config: lives %d must be at least 1", c.Game.Lives)
	}
	if c.Game.StartLevel == "" {
		return fmt.Errorf("config: start_level is empty")
	}
	return nil
}
