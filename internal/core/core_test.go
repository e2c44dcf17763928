package core

import (
	"errors"
	"testing"

	"github.com/retrofab/emupages/internal/content"
	"github.com/retrofab/emupages/internal/input"
	"github.com/retrofab/emupages/internal/nav"
	"github.com/retrofab/emupages/internal/render"
)

func acceptXRGB(f PixelFormat) bool { return f == PixelFormatXRGB8888 }

func newLoadedCore(t *testing.T) *Core {
	t.Helper()
	c := New()
	c.Logger = NoopLogger{}
	c.SetPixelFormat = acceptXRGB
	if err := c.LoadGame("wiki.emupages"); err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	return c
}

func TestLoadGameRequiresPath(t *testing.T) {
	c := New()
	c.Logger = NoopLogger{}
	c.SetPixelFormat = acceptXRGB
	if err := c.LoadGame(""); err == nil {
		t.Error("LoadGame without a path should fail")
	}
	if c.Loaded() {
		t.Error("failed load must not mark the session loaded")
	}
}

func TestLoadGameRequiresPixelFormat(t *testing.T) {
	c := New()
	c.Logger = NoopLogger{}
	c.SetPixelFormat = func(PixelFormat) bool { return false }
	if err := c.LoadGame("wiki.emupages"); err == nil {
		t.Error("LoadGame should fail when the host rejects XRGB8888")
	}

	c.SetPixelFormat = nil
	if err := c.LoadGame("wiki.emupages"); err == nil {
		t.Error("LoadGame should fail without an environment callback")
	}
}

func TestRunIsNoopUntilLoaded(t *testing.T) {
	c := New()
	called := false
	c.Video = func([]uint32, int, int, int) { called = true }
	c.Run()
	if called {
		t.Error("Run before LoadGame must not emit video")
	}
}

func TestRunEmitsVideoAndSilence(t *testing.T) {
	c := newLoadedCore(t)

	var gotW, gotH, gotPitch int
	var gotPixels []uint32
	c.Video = func(pixels []uint32, w, h, pitch int) {
		gotPixels, gotW, gotH, gotPitch = pixels, w, h, pitch
	}
	var gotSamples []int16
	c.Audio = func(samples []int16) { gotSamples = samples }

	polled := 0
	c.InputPoll = func() { polled++ }

	c.Run()

	if gotW != render.ScreenW || gotH != render.ScreenH || gotPitch != render.ScreenW*4 {
		t.Errorf("video geometry %dx%d pitch %d, expected %dx%d pitch %d",
			gotW, gotH, gotPitch, render.ScreenW, render.ScreenH, render.ScreenW*4)
	}
	if len(gotPixels) != render.ScreenW*render.ScreenH {
		t.Errorf("pixel count = %d, expected %d", len(gotPixels), render.ScreenW*render.ScreenH)
	}
	if polled != 1 {
		t.Errorf("input polled %d times in one tick, expected 1", polled)
	}

	if len(gotSamples) != AudioFramesPerTick*2 {
		t.Fatalf("audio block = %d samples, expected %d", len(gotSamples), AudioFramesPerTick*2)
	}
	for i, s := range gotSamples {
		if s != 0 {
			t.Fatalf("audio sample %d = %d, expected silence", i, s)
		}
	}
}

func TestBootRunsToTOC(t *testing.T) {
	c := newLoadedCore(t)
	for i := 0; i < nav.BootFrames; i++ {
		c.Run()
	}
	if got := c.State().Mode; got != nav.ModeTOC {
		t.Errorf("mode after full boot = %v, expected toc", got)
	}
}

func TestButtonSkipsBoot(t *testing.T) {
	c := newLoadedCore(t)
	c.Run()
	c.InputState = func(port int, btn input.Button) bool { return btn == input.A }
	c.Run()
	if got := c.State().Mode; got != nav.ModeTOC {
		t.Errorf("mode after skip press = %v, expected toc", got)
	}
}

func TestResetReturnsToBoot(t *testing.T) {
	c := newLoadedCore(t)
	c.InputState = func(port int, btn input.Button) bool { return btn == input.Start }
	c.Run()
	c.InputState = nil

	c.Reset()
	s := c.State()
	if s.Mode != nav.ModeBoot || s.BootTimer != 0 || s.TOCCursor != 0 {
		t.Errorf("Reset left state %+v, expected initial values", s)
	}
}

func TestAVInfoIsFixed(t *testing.T) {
	c := New()
	av := c.AVInfo()
	if av.Geometry.BaseWidth != 640 || av.Geometry.BaseHeight != 480 {
		t.Errorf("geometry %dx%d, expected 640x480", av.Geometry.BaseWidth, av.Geometry.BaseHeight)
	}
	if av.Timing.FPS != 60.0 || av.Timing.SampleRate != 44100 {
		t.Errorf("timing %v/%v, expected 60/44100", av.Timing.FPS, av.Timing.SampleRate)
	}
}

func TestUnsupportedSurface(t *testing.T) {
	c := New()

	if got := c.SerializeSize(); got != 0 {
		t.Errorf("SerializeSize = %d, expected 0", got)
	}
	if _, err := c.Serialize(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Serialize error = %v, expected ErrUnsupported", err)
	}
	if err := c.Unserialize([]byte{1, 2, 3}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Unserialize error = %v, expected ErrUnsupported", err)
	}
	if err := c.LoadGameSpecial(2, nil); !errors.Is(err, ErrUnsupported) {
		t.Errorf("LoadGameSpecial error = %v, expected ErrUnsupported", err)
	}
	if c.MemoryData(0) != nil || c.MemorySize(0) != 0 {
		t.Error("memory regions should be empty")
	}

	// Pure no-ops must not panic.
	c.CheatReset()
	c.CheatSet(0, true, "AAAA")
	c.SetControllerPortDevice(0, 1)
}

func TestSystemInfoMatchesCatalog(t *testing.T) {
	c := New()
	info := c.SystemInfo()
	if info.Name == "" || info.Version == "" {
		t.Error("system info must carry a name and version")
	}
	if content.Count() == 0 {
		t.Error("core ships with an empty catalog")
	}
}
