// Package input turns the raw terminal byte stream into discrete key presses.
package input

import (
	"bufio"
	"unicode/utf8"
)

// Kind classifies a key press.
type Kind int

const (
	KeyRune      Kind = iota // printable character in Rune
	KeyEnter                 // Enter / Return
	KeySpace                 // Space bar
	KeyBackspace             // Backspace or DEL
	KeyTab                   // Tab
	KeyEscape                // lone Escape
	KeyInterrupt             // Ctrl-C
	KeyUp                    // arrow keys
	KeyDown
	KeyLeft
	KeyRight
)

// Key is one press.
type Key struct {
	Kind Kind
	Rune rune
}

// Stream delivers input bytes from a reader goroutine.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 256)}
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

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadKeys drains all available bytes (non-blocking) and parses them.
func ReadKeys(s *Stream) []Key {
	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return Parse(buf)
			}
			buf = append(buf, b)
		default:
			return Parse(buf)
		}
	}
}

// Parse splits a byte burst into keys. CSI arrow sequences become arrow
// keys; other escape sequences are dropped; an escape byte with nothing
// after it is a lone Escape.
func Parse(buf []byte) []Key {
	var keys []Key
	for i := 0; i < len(buf); {
		b := buf[i]

		if b == 0x1b {
			if i+1 >= len(buf) {
				keys = append(keys, Key{Kind: KeyEscape})
				i++
				continue
			}
			if buf[i+1] == '[' || buf[i+1] == 'O' {
				j := i + 2
				for j < len(buf) && !isFinal(buf[j]) {
					j++
				}
				if j < len(buf) {
					if k, ok := arrow(buf[j]); ok {
						keys = append(keys, Key{Kind: k})
					}
					j++
				}
				i = j
				continue
			}
			keys = append(keys, Key{Kind: KeyEscape})
			i++
			continue
		}

		switch b {
		case '\r', '\n':
			keys = append(keys, Key{Kind: KeyEnter})
		case ' ':
			keys = append(keys, Key{Kind: KeySpace})
		case '\b', 0x7f:
			keys = append(keys, Key{Kind: KeyBackspace})
		case '\t':
			keys = append(keys, Key{Kind: KeyTab})
		case 0x03:
			keys = append(keys, Key{Kind: KeyInterrupt})
		default:
			if b < 0x20 {
				i++
				continue
			}
			r, size := utf8.DecodeRune(buf[i:])
			keys = append(keys, Key{Kind: KeyRune, Rune: r})
			i += size
			continue
		}
		i++
	}
	return keys
}

// isFinal reports whether b ends a CSI sequence.
func isFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}

func arrow(b byte) (Kind, bool) {
	switch b {
	case 'A':
		return KeyUp, true
	case 'B':
		return KeyDown, true
	case 'C':
		return KeyRight, true
	case 'D':
		return KeyLeft, true
	default:
		return 0, false
	}
}
