// Package core is the host-facing surface of the viewer: a session object
// that owns the framebuffer and navigation state, driven one tick at a
// time. Hosts install callbacks for video, audio and input, call LoadGame,
// then call Run once per frame.
package core

import (
	"errors"
	"fmt"

	"github.com/retrofab/emupages/internal/content"
	"github.com/retrofab/emupages/internal/input"
	"github.com/retrofab/emupages/internal/nav"
	"github.com/retrofab/emupages/internal/render"
)

// Fixed presentation parameters.
const (
	FPS        = 60.0
	SampleRate = 44100

	// AudioFramesPerTick is the number of stereo sample pairs emitted per
	// frame (44100 / 60).
	AudioFramesPerTick = 735
)

// SystemInfo describes the core to the host.
type SystemInfo struct {
	Name            string
	Version         string
	ValidExtensions string
	NeedFullPath    bool
}

// Geometry is the fixed display shape.
type Geometry struct {
	BaseWidth   int
	BaseHeight  int
	MaxWidth    int
	MaxHeight   int
	AspectRatio float32
}

// Timing is the fixed frame and sample cadence.
type Timing struct {
	FPS        float64
	SampleRate float64
}

// AVInfo bundles the audiovisual contract reported at load time.
type AVInfo struct {
	Geometry Geometry
	Timing   Timing
}

// PixelFormat names the framebuffer encodings a host might offer.
type PixelFormat int

const (
	PixelFormatXRGB8888 PixelFormat = iota
	PixelFormatRGB565
)

// Host callback shapes, mirroring the classic frontend surface.
type (
	// VideoRefreshFunc receives the finished frame: packed XRGB8888 pixels
	// in row-major order with the given geometry and row pitch in bytes.
	VideoRefreshFunc func(pixels []uint32, width, height, pitchBytes int)

	// AudioBatchFunc receives interleaved stereo 16-bit samples.
	AudioBatchFunc func(samples []int16)

	// InputPollFunc is called once per tick before input state is read.
	InputPollFunc func()

	// SetPixelFormatFunc asks the host to accept a framebuffer encoding.
	SetPixelFormatFunc func(format PixelFormat) bool
)

// ErrUnsupported is returned by the operations this core deliberately does
// not implement (save states, cheats, special loads).
var ErrUnsupported = errors.New("operation not supported")

// Core is a single viewer session. Create with New, wire callbacks, then
// LoadGame and Run. Not safe for concurrent use: the host drives all
// methods from one goroutine, one tick at a time.
type Core struct {
	Video          VideoRefreshFunc
	Audio          AudioBatchFunc
	InputPoll      InputPollFunc
	InputState     input.StateFunc
	SetPixelFormat SetPixelFormatFunc
	Logger         Logger

	drawer  *render.Drawer
	machine *nav.Machine
	silence []int16
	loaded  bool
}

// catalog adapts the content package to the navigation machine.
type catalog struct{}

func (catalog) PageCount() int         { return content.Count() }
func (catalog) LineCount(page int) int { return len(content.At(page).Lines) }

// New returns an initialised but unloaded session.
func New() *Core {
	return &Core{
		drawer:  render.NewDrawer(),
		machine: nav.New(catalog{}, render.ContentRows),
		silence: make([]int16, AudioFramesPerTick*2),
	}
}

// SystemInfo reports the core's identity.
func (c *Core) SystemInfo() SystemInfo {
	return SystemInfo{
		Name:            "The Emu Pages",
		Version:         "1.0.0",
		ValidExtensions: "emupages",
		NeedFullPath:    true,
	}
}

// AVInfo reports the fixed display geometry and timing.
func (c *Core) AVInfo() AVInfo {
	return AVInfo{
		Geometry: Geometry{
			BaseWidth:   render.ScreenW,
			BaseHeight:  render.ScreenH,
			MaxWidth:    render.ScreenW,
			MaxHeight:   render.ScreenH,
			AspectRatio: 4.0 / 3.0,
		},
		Timing: Timing{FPS: FPS, SampleRate: SampleRate},
	}
}

// LoadGame starts a session. The path is required (the catalog itself is
// baked in, but the host contract demands a content file), and the host
// must accept the XRGB8888 framebuffer.
func (c *Core) LoadGame(path string) error {
	log := c.logger()
	if path == "" {
		log.Errorf("core", "no content file provided")
		return errors.New("no content file provided")
	}
	if c.SetPixelFormat == nil || !c.SetPixelFormat(PixelFormatXRGB8888) {
		log.Errorf("core", "host rejected XRGB8888 pixel format")
		return errors.New("host rejected XRGB8888 pixel format")
	}

	c.machine.Reset()
	c.loaded = true
	log.Infof("core", "loaded %d wiki pages (built %s)", content.Count(), content.BuildDate)
	return nil
}

// UnloadGame ends the session; Run becomes a no-op until the next load.
func (c *Core) UnloadGame() {
	c.loaded = false
}

// Reset returns navigation to the boot screen, as a console reset would.
func (c *Core) Reset() {
	c.machine.Reset()
}

// Loaded reports whether a session is active.
func (c *Core) Loaded() bool { return c.loaded }

// Run executes one tick: poll input, advance the navigation machine,
// repaint the frame, and hand video plus one block of silence to the host.
func (c *Core) Run() {
	if !c.loaded {
		return
	}

	if c.InputPoll != nil {
		c.InputPoll()
	}
	c.machine.Tick(c.InputState)

	s := c.machine.State
	switch s.Mode {
	case nav.ModeBoot:
		c.drawer.Boot(s.BootTimer)
	case nav.ModeTOC:
		c.drawer.TOC(s.TOCCursor, s.TOCScroll)
	case nav.ModePage:
		c.drawer.Page(s.CurrentPage, s.PageScroll)
	}

	if c.Video != nil {
		c.Video(c.drawer.Pixels(), render.ScreenW, render.ScreenH, render.ScreenW*4)
	}
	if c.Audio != nil {
		c.Audio(c.silence)
	}
}

// State exposes a copy of the navigation state for debug surfaces.
func (c *Core) State() nav.State { return c.machine.State }

// Frame exposes the drawer's current pixels for hosts that pull frames
// instead of installing a video callback.
func (c *Core) Frame() []uint32 { return c.drawer.Pixels() }

// The remaining frontend surface is deliberately unsupported. Each stub
// fails or no-ops deterministically so hosts get a consistent answer.

// SerializeSize reports no save-state support.
func (c *Core) SerializeSize() int { return 0 }

// Serialize always fails; there is no persistent state worth saving.
func (c *Core) Serialize() ([]byte, error) { return nil, ErrUnsupported }

// Unserialize always fails.
func (c *Core) Unserialize(data []byte) error { return ErrUnsupported }

// LoadGameSpecial always fails.
func (c *Core) LoadGameSpecial(kind int, paths []string) error {
	return fmt.Errorf("special load type %d: %w", kind, ErrUnsupported)
}

// CheatReset is a no-op.
func (c *Core) CheatReset() {}

// CheatSet is a no-op.
func (c *Core) CheatSet(index int, enabled bool, code string) {}

// MemoryData reports no auxiliary memory regions.
func (c *Core) MemoryData(id int) []byte { return nil }

// MemorySize reports no auxiliary memory regions.
func (c *Core) MemorySize(id int) int { return 0 }

// Region reports the fixed video region.
func (c *Core) Region() string { return "NTSC" }

// SetControllerPortDevice is a no-op; only the single joypad exists.
func (c *Core) SetControllerPortDevice(port, device int) {}

func (c *Core) logger() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return ConsoleLogger{}
}
