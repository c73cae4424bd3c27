package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Key
	}{
		{"empty", "", nil},
		{"letters", "ab;", []Key{{KeyRune, 'a'}, {KeyRune, 'b'}, {KeyRune, ';'}}},
		{"enter cr", "\r", []Key{{Kind: KeyEnter}}},
		{"enter lf", "\n", []Key{{Kind: KeyEnter}}},
		{"space", " ", []Key{{Kind: KeySpace}}},
		{"backspace del", "\x7f", []Key{{Kind: KeyBackspace}}},
		{"backspace bs", "\b", []Key{{Kind: KeyBackspace}}},
		{"tab", "\t", []Key{{Kind: KeyTab}}},
		{"ctrl-c", "\x03", []Key{{Kind: KeyInterrupt}}},
		{"lone escape", "\x1b", []Key{{Kind: KeyEscape}}},
		{"escape then letter", "\x1bx", []Key{{Kind: KeyEscape}, {KeyRune, 'x'}}},
		{"arrows", "\x1b[A\x1b[D", []Key{{Kind: KeyUp}, {Kind: KeyLeft}}},
		{"ss3 arrow", "\x1bOB", []Key{{Kind: KeyDown}}},
		{"ignored csi", "\x1b[1;5Hz", []Key{{KeyRune, 'z'}}},
		{"other control", "\x01q", []Key{{KeyRune, 'q'}}},
		{"utf8", "é", []Key{{KeyRune, 'é'}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse([]byte(tc.in)))
		})
	}
}

func TestStreamDrainsAndCloses(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("hi\r")))

	var keys []Key
	assert.Eventually(t, func() bool {
		keys = append(keys, ReadKeys(s)...)
		return s.Closed()
	}, time.Second, time.Millisecond)

	assert.Equal(t, []Key{{KeyRune, 'h'}, {KeyRune, 'i'}, {Kind: KeyEnter}}, keys)
}
