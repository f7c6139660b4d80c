package emitter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"goxviet/internal/charset"
)

// Terminal writes edits to a raw-mode terminal. Backspaces erase one cell
// each; text is converted to the configured encoding. Closing it does not
// close the underlying writer.
type Terminal struct {
	w           *bufio.Writer
	encoding    charset.Encoding
	inputBuffer strings.Builder
	closed      bool
}

func NewTerminal(w io.Writer, enc charset.Encoding) *Terminal {
	return &Terminal{w: bufio.NewWriter(w), encoding: enc}
}

func (t *Terminal) Encoding() charset.Encoding { return t.encoding }

func (t *Terminal) SetEncoding(enc charset.Encoding) error {
	if err := t.flushBuffer(); err != nil {
		return err
	}
	t.encoding = enc
	return nil
}

func (t *Terminal) SendBackspace(count int) error {
	if t.closed {
		return nil
	}
	if err := t.flushBuffer(); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if _, err := t.w.WriteString("\b \b"); err != nil {
			return fmt.Errorf("emit backspace: %w", err)
		}
	}
	return t.w.Flush()
}

func (t *Terminal) SendText(text string) error {
	if t.closed || text == "" {
		return nil
	}
	t.inputBuffer.WriteString(text)
	return t.flushBuffer()
}

func (t *Terminal) flushBuffer() error {
	if t.inputBuffer.Len() == 0 {
		return nil
	}
	text := t.inputBuffer.String()
	t.inputBuffer.Reset()
	out, err := charset.Encode(text, t.encoding)
	if err != nil {
		return fmt.Errorf("emit text: %w", err)
	}
	if _, err := t.w.Write(out); err != nil {
		return fmt.Errorf("emit text: %w", err)
	}
	return t.w.Flush()
}

func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	err := t.flushBuffer()
	t.closed = true
	return err
}
