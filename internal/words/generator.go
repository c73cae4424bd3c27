package words

import (
	"strings"

	"github.com/jimkro/TYPE-100/internal/rng"
)

// Endless labels may double once the player passes this level.
const (
	endlessDoubleLevel  = 15
	endlessDoubleChance = 0.7
)

// Generator produces enemy labels.
type Generator struct {
	list []string
}

// NewGenerator creates a generator that draws endless words from list.
func NewGenerator(list *WordList) *Generator {
	g := &Generator{}
	if list != nil {
		g.list = list.Words
	}
	return g
}

// Word returns a label for an ordinary enemy.
// An empty result means no label could be produced.
func (g *Generator) Word(src rng.Source, stage Stage, level int) string {
	if stage.Endless {
		w := rng.Pick(src, g.list)
		if level > endlessDoubleLevel && src.Float64() > endlessDoubleChance {
			w += rng.Pick(src, g.list)
		}
		return w
	}

	chars := []rune(stage.Chars)
	if len(chars) == 0 || stage.MaxLen < stage.MinLen {
		return ""
	}
	n := src.Intn(stage.MaxLen-stage.MinLen+1) + stage.MinLen

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteRune(chars[src.Intn(len(chars))])
	}
	return b.String()
}

// BossWord returns a label for a boss or a boss phase. Endless bosses carry
// two words back to back.
func (g *Generator) BossWord(src rng.Source, stage Stage, level int) string {
	w := g.Word(src, stage, level)
	if stage.Endless {
		w += g.Word(src, stage, level)
	}
	return w
}
