package draw

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Screen mode sequences.
const (
	altScreenOn  = "\033[?1049h"
	altScreenOff = "\033[?1049l"
	hideCursor   = "\033[?25l"
	showCursor   = "\033[?25h"
	clearScreen  = "\033[H\033[2J"
)

// ErrNoSize is returned when a terminal reports a zero or negative size.
var ErrNoSize = errors.New("terminal size unavailable")

// ChunkWriter buffers one frame of terminal output and sends it in
// network-sized chunks on Flush. Cursor positions are 1-based canvas
// coordinates shifted by the centering offset.
type ChunkWriter struct {
	buf    bytes.Buffer
	out    *bufio.Writer
	numBuf [20]byte // Scratch for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		out:    bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the centering offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

func (cw *ChunkWriter) moveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write lets Canvas.Render draw into the frame buffer.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteString queues raw output.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt queues s at a canvas position.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.moveCursor(col, row)
	cw.buf.WriteString(s)
}

// Clear queues a full terminal clear.
func (cw *ChunkWriter) Clear() {
	cw.buf.WriteString(clearScreen)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the queued frame and empties the buffer.
func (cw *ChunkWriter) Flush() error {
	for cw.buf.Len() > 0 {
		if _, err := cw.out.Write(cw.buf.Next(maxChunkSize)); err != nil {
			cw.buf.Reset()
			return err
		}
	}
	cw.buf.Reset()
	return cw.out.Flush()
}

// TermSizeFunc returns the terminal dimensions in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the terminal on stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Size calls f and rejects degenerate answers, which some SSH clients send
// before the first window change.
func (f TermSizeFunc) Size() (width, height int, err error) {
	width, height, err = f()
	if err != nil {
		return 0, 0, err
	}
	if width <= 0 || height <= 0 {
		return 0, 0, ErrNoSize
	}
	return width, height, nil
}

// EnterScreen switches to the alternate screen, hides the cursor and enables
// any extra modes (such as mouse reporting).
func EnterScreen(w io.Writer, modes ...string) error {
	var b bytes.Buffer
	b.WriteString(altScreenOn)
	b.WriteString(hideCursor)
	for _, m := range modes {
		b.WriteString(m)
	}
	b.WriteString(clearScreen)
	_, err := w.Write(b.Bytes())
	return err
}

// LeaveScreen disables the given modes and restores the normal screen.
func LeaveScreen(w io.Writer, modes ...string) error {
	var b bytes.Buffer
	for _, m := range modes {
		b.WriteString(m)
	}
	b.WriteString(ColorReset)
	b.WriteString(showCursor)
	b.WriteString(altScreenOff)
	_, err := w.Write(b.Bytes())
	return err
}
