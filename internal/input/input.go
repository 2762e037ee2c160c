// Package input turns a raw terminal byte stream into per-frame key and
// mouse state.
package input

import (
	"bufio"
	"strconv"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Terminal mouse tracking control sequences: any-motion reporting with SGR
// extended coordinates.
const (
	EnableMouse  = "\x1b[?1003h\x1b[?1006h"
	DisableMouse = "\x1b[?1003l\x1b[?1006l"
)

// Input represents the current frame's input state.
type Input struct {
	Quit  bool
	Left  bool
	Right bool
	Up    bool
	Down  bool

	// Reticle nudges (IJKL) for terminals without mouse reporting.
	AimLeft  bool
	AimRight bool
	AimUp    bool
	AimDown  bool

	Shoot bool // Space or a mouse button press arrived this frame
	Start bool // Enter arrived this frame

	Mouse    bool // A mouse report arrived this frame
	MouseCol int  // 1-based terminal column of the latest report
	MouseRow int  // 1-based terminal row of the latest report

	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit     time.Time
	left     time.Time
	right    time.Time
	up       time.Time
	down     time.Time
	aimLeft  time.Time
	aimRight time.Time
	aimUp    time.Time
	aimDown  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	closed bool
	state  keyState
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := s.parse(buf, time.Now())
	if s.closed {
		in.Quit = true
	}
	return in
}

// parse applies buf to the key state and builds the frame's input.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			case '<':
				if n, ok := parseMouse(buf[i+3:], &in); ok {
					i += 2 + n
					continue
				}
			}
		}

		switch b {
		case ' ':
			in.Shoot = true
		case '\n', '\r':
			in.Start = true
		default:
			applyByteToState(&s.state, b, now)
		}
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }
	in.Quit = held(s.state.quit)
	in.Left = held(s.state.left)
	in.Right = held(s.state.right)
	in.Up = held(s.state.up)
	in.Down = held(s.state.down)
	in.AimLeft = held(s.state.aimLeft)
	in.AimRight = held(s.state.aimRight)
	in.AimUp = held(s.state.aimUp)
	in.AimDown = held(s.state.aimDown)
	return in
}

// parseMouse reads the body of an SGR mouse report "b;x;yM" (or "m" for a
// release) and returns the number of bytes consumed.
func parseMouse(buf []byte, in *Input) (int, bool) {
	var fields [3]int
	field, start := 0, 0

	for i, c := range buf {
		switch {
		case c >= '0' && c <= '9':
			continue
		case c == ';' && field < 2:
			v, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return 0, false
			}
			fields[field] = v
			field++
			start = i + 1
		case (c == 'M' || c == 'm') && field == 2:
			v, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return 0, false
			}
			fields[2] = v

			button := fields[0]
			in.Mouse = true
			in.MouseCol, in.MouseRow = fields[1], fields[2]
			// Press of a real button; motion reports set bit 5, wheel sets bit 6.
			if c == 'M' && button&32 == 0 && button&64 == 0 && button&3 != 3 {
				in.Shoot = true
			}
			return i + 1, true
		default:
			return 0, false
		}
	}
	return 0, false
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case 'j', 'J':
		state.aimLeft = now
	case 'l', 'L':
		state.aimRight = now
	case 'i', 'I':
		state.aimUp = now
	case 'k', 'K':
		state.aimDown = now
	}
}

// ResetKeyInput forgets all held keys.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}
