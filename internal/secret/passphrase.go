// Package secret holds volume passphrases in locked, wiped-on-destroy memory.
package secret

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

// ErrEmptyPassphrase is returned when no passphrase was supplied.
var ErrEmptyPassphrase = errors.New("passphrase is empty")

// maxPassphraseSize bounds reads from non-terminal input.
const maxPassphraseSize = 4096

// Passphrase is a passphrase held in a memguard LockedBuffer.
// Call Destroy as soon as the passphrase has been handed to diskutil.
type Passphrase struct {
	buf *memguard.LockedBuffer
}

// FromBytes moves b into locked memory and wipes b.
func FromBytes(b []byte) (*Passphrase, error) {
	if len(b) == 0 {
		return nil, ErrEmptyPassphrase
	}
	return &Passphrase{buf: memguard.NewBufferFromBytes(b)}, nil
}

// ReadPassphrase prompts on prompt and reads a passphrase from the terminal
// fd without echo.
func ReadPassphrase(fd int, prompt io.Writer) (*Passphrase, error) {
	if !term.IsTerminal(fd) {
		return nil, errors.New("standard input is not a terminal")
	}
	fmt.Fprint(prompt, "Passphrase: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return FromBytes(b)
}

// ReadPassphraseFrom reads the first line of r as a passphrase.
// A trailing carriage return is dropped.
func ReadPassphraseFrom(r io.Reader) (*Passphrase, error) {
	reader := bufio.NewReaderSize(io.LimitReader(r, maxPassphraseSize), maxPassphraseSize)
	line, err := reader.ReadSlice('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		memguard.WipeBytes(line)
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	trimmed := bytes.TrimRight(line, "\r\n")
	p, perr := FromBytes(trimmed)
	memguard.WipeBytes(line)
	return p, perr
}

// Bytes returns the passphrase. The slice is only valid until Destroy.
func (p *Passphrase) Bytes() []byte {
	if p == nil || p.buf == nil {
		return nil
	}
	return p.buf.Bytes()
}

// Destroy wipes and releases the passphrase. It is safe to call more than once.
func (p *Passphrase) Destroy() {
	if p == nil || p.buf == nil {
		return
	}
	p.buf.Destroy()
	p.buf = nil
}
