//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/retrofab/emupages/internal/input"
)

const evKey = 0x01

// Linux input-event-codes.h key numbers for the keys the browser maps.
const (
	keyEsc       = 1
	keyTab       = 15
	keyEnter     = 28
	keySpace     = 57
	keyUp        = 103
	keyPageUp    = 104
	keyLeft      = 105
	keyRight     = 106
	keyDown      = 108
	keyPageDown  = 109
	keyBackspace = 14
	keyZ         = 44
	keyX         = 45
)

// keyToButton maps evdev key codes onto the joypad buttons the navigation
// machine reads. PageDown maps to L and PageUp to R, matching what those
// shoulder buttons do in the page view.
var keyToButton = map[uint16]input.Button{
	keyUp:        input.Up,
	keyDown:      input.Down,
	keyLeft:      input.Left,
	keyRight:     input.Right,
	keyEnter:     input.A,
	keyX:         input.A,
	keyBackspace: input.B,
	keyZ:         input.B,
	keySpace:     input.Start,
	keyTab:       input.Select,
	keyPageDown:  input.L,
	keyPageUp:    input.R,
}

type keyboardLogger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Keyboard reads evdev devices under /dev/input/event* and maintains the
// current held state of the mapped joypad buttons. Escape requests exit.
type Keyboard struct {
	mu   sync.Mutex
	held [input.ButtonCount]bool

	onExit   func()
	exitOnce sync.Once
}

// StartKeyboard opens every evdev device and starts a reader goroutine per
// device. Readers stop when ctx is cancelled. Best-effort: with no readable
// devices the Keyboard still works, it just never reports anything held.
func StartKeyboard(ctx context.Context, logger keyboardLogger, onExit func()) *Keyboard {
	kb := &Keyboard{onExit: onExit}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found")
		}
		return kb
	}

	opened := 0
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			continue
		}
		opened++
		go kb.readLoop(ctx, fd)
	}
	if logger != nil {
		logger.Infof("input", "reading %d evdev devices", opened)
	}
	return kb
}

// Held reports whether a joypad button is currently held. It has the shape
// the core's input state callback expects; only port 0 is populated.
func (kb *Keyboard) Held(port int, btn input.Button) bool {
	if port != 0 || btn < 0 || int(btn) >= input.ButtonCount {
		return false
	}
	kb.mu.Lock()
	defer kb.mu.Unlock()
	return kb.held[btn]
}

func (kb *Keyboard) readLoop(ctx context.Context, fd int) {
	defer unix.Close(fd)

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 8

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}

		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
			code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
			if typ != evKey {
				continue
			}
			if code == keyEsc && value == 1 {
				kb.exitOnce.Do(func() {
					if kb.onExit != nil {
						kb.onExit()
					}
				})
				continue
			}
			btn, ok := keyToButton[code]
			if !ok {
				continue
			}
			// value: 0 release, 1 press, 2 kernel autorepeat. The
			// navigation machine does its own repeat, so autorepeat
			// events just confirm the key is still down.
			kb.mu.Lock()
			kb.held[btn] = value != 0
			kb.mu.Unlock()
		}
	}
}
