package sfx

import (
	"bytes"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimkro/TYPE-100/internal/game"
	"github.com/jimkro/TYPE-100/internal/weapon"
)

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	b := Bell{W: &buf}

	b.Handle(game.Event{Kind: game.EventKill, Weapon: weapon.Gun})
	assert.Empty(t, buf.String())

	b.Handle(game.Event{Kind: game.EventHitPlayer})
	assert.Equal(t, "\a", buf.String())

	Bell{}.Handle(game.Event{Kind: game.EventHitPlayer})
	Nop{}.Handle(game.Event{Kind: game.EventHitPlayer})
}

func TestSinksNeedNoAudioDriver(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	fset := token.NewFileSet()
	for _, name := range files {
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		require.NoError(t, err, name)
		for _, imp := range f.Imports {
			assert.False(t, strings.Contains(imp.Path.Value, "gopxl/beep"), "%s imports %s", name, imp.Path.Value)
		}
	}
}
