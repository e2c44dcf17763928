// Package system handles the Linux console plumbing the framebuffer host
// needs: switching the active VT in and out of graphics mode and reading
// keyboard state from evdev.
package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h.
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// SetGraphicsMode switches the active console to graphics mode so the
// hardware cursor and kernel console output stop scribbling over the
// framebuffer. It tries /dev/tty first, then /dev/tty0.
func SetGraphicsMode() error {
	return setConsoleMode(kdGraphics)
}

// RestoreTextMode returns the console to text mode. Call this on shutdown
// or the VT is left unusable.
func RestoreTextMode() error {
	return setConsoleMode(kdText)
}

func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range []string{"/dev/tty", "/dev/tty0"} {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE on %s: %w", p, err)
			continue
		}
		return nil
	}
	return lastErr
}

// HideCursor and ShowCursor write the ANSI cursor escapes to the active VT.
// They matter when the console stays in text mode (e.g. during development
// over ssh) and graphics mode was not available.
func HideCursor() error { return writeVT("\x1b[?25l") }
func ShowCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	var lastErr error
	for _, p := range []string{"/dev/tty", "/dev/tty0"} {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT: %w", lastErr)
}
