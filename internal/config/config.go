// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Paths    PathsConfig    `yaml:"paths"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds orbit camera tuning.
type CameraConfig struct {
	DragSensitivity float64 `yaml:"drag_sensitivity"`
	ZoomSensitivity float64 `yaml:"zoom_sensitivity"`
}

// PathsConfig holds file locations the viewer reads and writes.
type PathsConfig struct {
	DecalDir    string `yaml:"decal_dir"`    // base directory for decal images
	SnapshotDir string `yaml:"snapshot_dir"` // viewport captures land here
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1440,
			Height:     900,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		Paths: PathsConfig{
			DecalDir:    "decals",
			SnapshotDir: "snapshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
