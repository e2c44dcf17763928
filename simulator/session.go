package main

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/retrofab/emupages/internal/core"
	"github.com/retrofab/emupages/internal/input"
	"github.com/retrofab/emupages/internal/nav"
	"github.com/retrofab/emupages/internal/render"
)

// coreLogger adapts a charmbracelet logger to the component-tagged
// interface the core expects.
type coreLogger struct {
	l *log.Logger
}

func (c coreLogger) Infof(component, format string, args ...interface{}) {
	c.l.Info(fmt.Sprintf(format, args...), "component", component)
}

func (c coreLogger) Errorf(component, format string, args ...interface{}) {
	c.l.Error(fmt.Sprintf(format, args...), "component", component)
}

// Session owns a headless core and ticks it at the fixed frame rate.
// Injected input is expressed in frames: a press of N frames reports the
// button held for the next N ticks, which is how the auto-repeat machinery
// expects to see it.
type Session struct {
	mu    sync.Mutex
	core  *core.Core
	frame *image.RGBA
	press [input.ButtonCount]int
	hold  [input.ButtonCount]bool
}

func NewSession(logger *log.Logger) (*Session, error) {
	s := &Session{
		frame: image.NewRGBA(image.Rect(0, 0, render.ScreenW, render.ScreenH)),
	}

	c := core.New()
	c.Logger = coreLogger{logger}
	c.SetPixelFormat = func(f core.PixelFormat) bool {
		return f == core.PixelFormatXRGB8888
	}
	c.InputPoll = func() {}
	c.Audio = func(samples []int16) {}
	// Run is only ever called with s.mu held, so these callbacks touch
	// session fields without locking.
	c.InputState = func(port int, btn input.Button) bool {
		if port != 0 || btn < 0 || int(btn) >= input.ButtonCount {
			return false
		}
		return s.hold[btn] || s.press[btn] > 0
	}
	c.Video = func(pixels []uint32, width, height, pitchBytes int) {
		for i, px := range pixels {
			s.frame.Pix[i*4+0] = uint8(px >> 16)
			s.frame.Pix[i*4+1] = uint8(px >> 8)
			s.frame.Pix[i*4+2] = uint8(px)
			s.frame.Pix[i*4+3] = 0xFF
		}
	}

	if err := c.LoadGame("builtin:wiki"); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	s.core = c
	return s, nil
}

// Start ticks the core at 60Hz until ctx is cancelled.
func (s *Session) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(core.FPS))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()
}

func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.core.Run()
	for b := range s.press {
		if s.press[b] > 0 {
			s.press[b]--
		}
	}
}

// Press reports btn held for the next frames ticks.
func (s *Session) Press(btn input.Button, frames int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if frames < 1 {
		frames = 1
	}
	s.press[btn] = frames
}

// Hold sets or clears a persistent hold on btn, for exercising auto-repeat.
func (s *Session) Hold(btn input.Button, held bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hold[btn] = held
}

// Reset returns the browser to the boot sequence.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.core.Reset()
}

// State returns the navigation state and frame counter as of the last tick.
func (s *Session) State() nav.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.State()
}

// Frame returns a copy of the most recently rendered frame.
func (s *Session) Frame() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewRGBA(s.frame.Rect)
	copy(out.Pix, s.frame.Pix)
	return out
}
