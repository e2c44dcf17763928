// Package config loads host configuration. The core itself has nothing to
// configure (geometry, timing and content are fixed); this covers the
// knobs the host binaries expose.
package config

// Config is the full host configuration.
type Config struct {
	Framebuffer FramebufferConfig `yaml:"framebuffer"`
	Simulator   SimulatorConfig   `yaml:"simulator"`
}

// FramebufferConfig configures the Linux framebuffer host.
type FramebufferConfig struct {
	// Device is the framebuffer device to open.
	Device string `yaml:"device"`
	// StdioLog, when set, receives redirected stdout/stderr so panics are
	// readable after the console has been switched to graphics mode.
	StdioLog string `yaml:"stdio_log"`
}

// SimulatorConfig configures the HTTP simulator host.
type SimulatorConfig struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`
	// Scale multiplies the frame size served at /frame.png.
	Scale int `yaml:"scale"`
	// PublicURL overrides the URL encoded into the QR code; when empty
	// the listen address is used.
	PublicURL string `yaml:"public_url"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Framebuffer: FramebufferConfig{Device: "/dev/fb0"},
		Simulator:   SimulatorConfig{Listen: ":8080", Scale: 1},
	}
}
