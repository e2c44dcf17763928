// The emupages binary runs the wiki browser on a Linux framebuffer console.
// It loads the built-in page catalog, switches the VT into graphics mode,
// and drives the core at 60Hz with keyboard input from evdev.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/retrofab/emupages/internal/config"
	"github.com/retrofab/emupages/internal/core"
	"github.com/retrofab/emupages/internal/render"
	"github.com/retrofab/emupages/internal/system"
)

// charmLogger adapts a charmbracelet logger to the component-tagged
// interface the core expects.
type charmLogger struct {
	l *log.Logger
}

func (c charmLogger) Infof(component, format string, args ...interface{}) {
	c.l.Info(fmt.Sprintf(format, args...), "component", component)
}

func (c charmLogger) Errorf(component, format string, args ...interface{}) {
	c.l.Error(fmt.Sprintf(format, args...), "component", component)
}

func main() {
	configPath := flag.String("config", "", "path to config file (YAML)")
	debug := flag.Bool("debug", false, "enable debug logging")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via EMUPAGES_STDIO_LOG or the config file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "emupages",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("config load failed", "err", err)
	}

	// Redirect all stdout/stderr output (including panic stack traces) to a
	// file so crashes stay diagnosable after the console is switched to
	// graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("EMUPAGES_STDIO_LOG")
	}
	if logPath == "" {
		logPath = cfg.Framebuffer.StdioLog
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			logger.Error("stdio redirect failed", "path", logPath, "err", err)
		}
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("fatal", "err", err)
	}
}

func run(cfg config.Config, logger *log.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fb, err := framebuffer.Open(cfg.Framebuffer.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", cfg.Framebuffer.Device, err)
	}
	defer fb.Close()

	if err := system.SetGraphicsMode(); err != nil {
		// Not fatal: fall back to hiding the text cursor.
		logger.Warn("graphics mode unavailable", "err", err)
		if err := system.HideCursor(); err != nil {
			logger.Warn("hide cursor failed", "err", err)
		}
		defer system.ShowCursor()
	} else {
		defer system.RestoreTextMode()
	}

	kb := system.StartKeyboard(ctx, charmLogger{logger}, cancel)

	frame := image.NewRGBA(image.Rect(0, 0, render.ScreenW, render.ScreenH))

	c := core.New()
	c.Logger = charmLogger{logger}
	c.SetPixelFormat = func(f core.PixelFormat) bool {
		return f == core.PixelFormatXRGB8888
	}
	c.InputPoll = func() {}
	c.InputState = kb.Held
	c.Audio = func(samples []int16) {} // no audio device on the console
	c.Video = func(pixels []uint32, width, height, pitchBytes int) {
		for i, px := range pixels {
			frame.Pix[i*4+0] = uint8(px >> 16)
			frame.Pix[i*4+1] = uint8(px >> 8)
			frame.Pix[i*4+2] = uint8(px)
			frame.Pix[i*4+3] = 0xFF
		}
		// Scale to whatever mode the framebuffer is in.
		xdraw.NearestNeighbor.Scale(fb, fb.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)
	}

	path := flag.Arg(0)
	if path == "" {
		path = "builtin:wiki"
	}
	if err := c.LoadGame(path); err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	defer c.UnloadGame()

	info := c.SystemInfo()
	logger.Info("running", "name", info.Name, "version", info.Version, "fb", cfg.Framebuffer.Device)

	ticker := time.NewTicker(time.Second / time.Duration(core.FPS))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case <-ticker.C:
			c.Run()
		}
	}
}
