package config

// SettingsConfig is the root config for settings.json
type SettingsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Player    PlayerTuning    `json:"player"`
	Collision CollisionConfig `json:"collision"`
	Audio     AudioConfig     `json:"audio"`
	Logging   LoggingConfig   `json:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// PlayerTuning configures player movement (pixels per second)
type PlayerTuning struct {
	Speed        float64 `json:"speed"`
	MaxSpeed     float64 `json:"maxSpeed"`
	Deceleration float64 `json:"deceleration"`
	// Below RestSpeed the walk cycle freezes on RestFrame
	RestSpeed float64 `json:"restSpeed"`
	RestFrame int     `json:"restFrame"`
}

type CollisionConfig struct {
	EllipseSegments int `json:"ellipseSegments"`
}

type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	SampleRate int     `json:"sampleRate"`
	Volume     float64 `json:"volume"`
}

type LoggingConfig struct {
	Level    string `json:"level"`
	Encoding string `json:"encoding"`
	// Output is a file path, "stdout" or "stderr" (the default)
	Output string `json:"output,omitempty"`
}

// DefaultSettings returns the settings used when settings.json leaves a
// value unset
func DefaultSettings() SettingsConfig {
	return SettingsConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			Title:        "tilequest",
		},
		Player: PlayerTuning{
			Speed:     500,
			MaxSpeed:  500,
			RestSpeed: 1,
			RestFrame: 1,
		},
		Collision: CollisionConfig{EllipseSegments: 12},
		Audio:     AudioConfig{Enabled: true, SampleRate: 44100, Volume: 0.3},
		Logging:   LoggingConfig{Level: "info", Encoding: "console"},
	}
}
