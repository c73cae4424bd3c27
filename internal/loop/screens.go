package loop

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jimkro/TYPE-100/internal/draw"
	"github.com/jimkro/TYPE-100/internal/game"
	"github.com/jimkro/TYPE-100/internal/object"
)

const (
	colorTitle     = "#00d2ff"
	colorText      = "#dddddd"
	colorDim       = "#666666"
	colorHighlight = "#ffffff"
	colorPrefix    = "#00ff66"
	colorHP        = "#33ff33"
	colorHPLow     = "#ff3333"
	colorXP        = "#00aaff"
	colorOutside   = "#333333"
	colorWarn      = "#ff8800"
	colorPlayer    = "#00d2ff"
	colorShot      = "#ffff00"
	colorChain     = "#00ffff"
	colorEnemyShot = "#ff3333"
	colorFire      = "#ff8800"
	colorKeys      = "#00aaff"
)

// Minimap dimensions in cells. Each cell holds two sub-rows.
const (
	minimapWidth   = 24
	minimapHeight  = 6
	minimapSubRows = minimapHeight * 2
)

// titleArt is the figlet "small" rendering of the game name.
var titleArt = []string{
	` _______   _____ ___     _  __   __  `,
	`|_   _\ \ / / _ \ __|___/ |/  \ /  \ `,
	`  | |  \ V /|  _/ _|___| | () | () |`,
	`  |_|   |_| |_| |___|  |_|\__/ \__/ `,
}

// drawFrame renders the canvas and any overlay box, then flushes the frame.
func (s *Session) drawFrame() error {
	// On state or inactivity transitions, do a full terminal clear so
	// overlay boxes from the previous screen don't persist.
	state := s.world.State()
	if s.forceClear || state != s.prevState || s.inactive != s.wasInactive {
		s.cw.WriteString("\033[H\033[2J")
		s.forceClear = false
		s.prevState = state
		s.wasInactive = s.inactive
	}

	s.canvas.Clear()

	if s.cols < MinTermWidth || s.rows < MinTermHeight {
		s.canvas.TextCentered(s.cols/2, s.rows/2, "Terminal too small", colorWarn)
		s.canvas.Render(s.cw, s.pal)
		return s.cw.Flush()
	}

	snap := s.world.Snapshot()
	if snap.State == game.StateMenu {
		s.drawMenu()
	} else {
		s.drawWorld(&snap)
		s.drawHUD(&snap)
		s.drawMinimap(&snap)
		s.drawPrompt(&snap)
	}
	s.canvas.Render(s.cw, s.pal)

	if block := s.overlay(&snap); block != "" {
		draw.Overlay(s.cw, s.cols, s.rows, block)
	}
	return s.cw.Flush()
}

// drawMenu draws the title screen with the stage list.
func (s *Session) drawMenu() {
	centerX := s.cols / 2
	stages := s.world.Stages().Stages

	top := max((s.rows-len(titleArt)-len(stages)-10)/2, 0)
	for i, line := range titleArt {
		s.canvas.TextCentered(centerX, top+i, line, colorTitle)
	}
	row := top + len(titleArt) + 1
	s.canvas.TextCentered(centerX, row, "~ type the word, fire the shot ~", colorDim)
	if s.opts.Username != "" {
		row++
		s.canvas.TextCentered(centerX, row, "welcome, "+s.opts.Username, colorText)
	}

	row += 2
	for i, st := range stages {
		key := fmt.Sprintf("[%d]", i+1)
		detail := fmt.Sprintf("%d-%d of %q", st.MinLen, st.MaxLen, st.Chars)
		if st.Endless {
			key = fmt.Sprintf("[%d/E]", i+1)
			detail = "real words, no end"
		}
		line := fmt.Sprintf("%s %-10s %s", key, st.Name, detail)

		color := colorText
		marker := "  "
		if i == s.menuIndex {
			color = colorHighlight
			marker = "> "
		}
		s.canvas.TextCentered(centerX, row+i, marker+line, color)
	}

	row += len(stages) + 1
	controls := []string{
		"type a word + ENTER . . fire at it",
		"type a move key + ENTER  . . step",
		"TAB  . . . . . . . switch weapon",
		"ESC / Ctrl-C  . . . . . . . quit",
	}
	for i, line := range controls {
		s.canvas.TextCentered(centerX, row+i, line, colorDim)
	}

	if s.now().UnixMilli()/600%2 == 0 {
		s.canvas.TextCentered(centerX, row+len(controls)+1, ">>  Pick a stage  <<", colorHighlight)
	}
}

// drawWorld draws the playfield between the HUD and the prompt.
func (s *Session) drawWorld(snap *game.Snapshot) {
	proj := draw.Projection{CamX: snap.Camera.X, CamY: snap.Camera.Y, OriginRow: hudRows}
	lastRow := hudRows + viewRows(s.rows)

	// Cells past the world edge.
	for row := hudRows; row < lastRow; row++ {
		for col := 0; col < s.cols; col++ {
			x, y := proj.CellCenter(col, row)
			if x < 0 || y < 0 || x > snap.Bounds.Width || y > snap.Bounds.Height {
				s.canvas.Set(col, row, '·', colorOutside)
			}
		}
	}

	for _, z := range snap.FireZones {
		intensity := 0.3 + 0.5*min(float64(z.Life)/game.FireBaseLifetime, 1)
		s.canvas.Disc(proj, z.X, z.Y, z.Radius, draw.ShadeLevel(intensity), colorFire)
	}

	for i := range snap.Enemies {
		s.drawEnemy(proj, &snap.Enemies[i], snap.Input)
	}

	for _, p := range snap.EnemyProjectiles {
		col, row := proj.ToCell(p.X, p.Y)
		s.canvas.Set(col, row, draw.GlyphEnemyShot, colorEnemyShot)
	}
	for i := range snap.Projectiles {
		p := &snap.Projectiles[i]
		color := colorShot
		if p.Evolved() {
			color = colorChain
		}
		col, row := proj.ToCell(p.X, p.Y)
		s.canvas.SetBold(col, row, draw.GlyphShot, color)
	}

	s.drawPlayer(proj, &snap.Player)

	for _, e := range snap.Effects {
		col, row := proj.ToCell(e.X, e.Y)
		if e.Size >= 25 {
			for i, r := range []rune(e.Text) {
				s.canvas.SetBold(col-utf8.RuneCountInString(e.Text)/2+i, row, r, e.Color)
			}
			continue
		}
		s.canvas.TextCentered(col, row, e.Text, e.Color)
	}

	// Keep the playfield off the HUD and prompt rows.
	s.canvas.Fill(0, 0, s.cols, hudRows, ' ', "")
	s.canvas.Fill(0, lastRow, s.cols, s.rows-lastRow, ' ', "")
}

// drawEnemy draws an enemy's word centred on its position. The part that
// matches the typed input is highlighted.
func (s *Session) drawEnemy(proj draw.Projection, e *object.Enemy, typed string) {
	col, row := proj.ToCell(e.X, e.Y)
	word := []rune(e.Word)
	start := col - len(word)/2

	matched := 0
	if typed != "" && strings.HasPrefix(e.Word, typed) {
		matched = utf8.RuneCountInString(typed)
	}

	if e.Boss {
		s.canvas.Ring(proj, e.X, e.Y, e.Size, '·', e.Color)
		hearts := strings.Repeat(string(draw.GlyphHeart), max(e.Lives, 0))
		s.canvas.TextCentered(col, row-1, hearts, colorHPLow)
	}

	for i, r := range word {
		if i < matched {
			s.canvas.SetBold(start+i, row, r, colorPrefix)
			continue
		}
		s.canvas.Set(start+i, row, r, e.Color)
	}
}

// drawPlayer draws the player glyph with its four move keys around it.
func (s *Session) drawPlayer(proj draw.Projection, p *object.Player) {
	col, row := proj.ToCell(p.X, p.Y)
	s.canvas.SetBold(col, row, draw.GlyphPlayer, colorPlayer)

	k := p.Keys
	up, down, left, right := draw.DirectionGlyphs[object.Up], draw.DirectionGlyphs[object.Down],
		draw.DirectionGlyphs[object.Left], draw.DirectionGlyphs[object.Right]

	s.canvas.Set(col-1, row-1, up, colorDim)
	s.canvas.SetBold(col, row-1, k[object.Up], colorKeys)
	s.canvas.Set(col-1, row+1, down, colorDim)
	s.canvas.SetBold(col, row+1, k[object.Down], colorKeys)
	s.canvas.Set(col-3, row, left, colorDim)
	s.canvas.SetBold(col-2, row, k[object.Left], colorKeys)
	s.canvas.SetBold(col+2, row, k[object.Right], colorKeys)
	s.canvas.Set(col+3, row, right, colorDim)
}

// drawHUD draws the status line: health, level, experience, stage and
// the active weapon.
func (s *Session) drawHUD(snap *game.Snapshot) {
	h := snap.HUD
	col := 1

	hpFrac := 0.0
	if h.MaxHP > 0 {
		hpFrac = h.HP / h.MaxHP
	}
	hpColor := colorHP
	if hpFrac < 0.3 {
		hpColor = colorHPLow
	}
	col = s.canvas.Text(col, 0, "HP ", colorDim)
	col = s.bar(col, 0, hpFrac, 10, hpColor)
	col = s.canvas.Text(col, 0, fmt.Sprintf(" %3.0f  ", max(h.HP, 0)), colorText)

	col = s.canvas.Text(col, 0, fmt.Sprintf("LV %-2d ", h.Level), colorHighlight)

	xpFrac := 0.0
	if h.MaxXP > 0 {
		xpFrac = float64(h.XP) / float64(h.MaxXP)
	}
	col = s.canvas.Text(col, 0, "XP ", colorDim)
	col = s.bar(col, 0, xpFrac, 10, colorXP)
	col = s.canvas.Text(col, 0, "  ", "")
	s.canvas.Text(col, 0, h.StageName, colorTitle)

	weapon := h.Weapon.Name
	if weapon != "" {
		weapon = fmt.Sprintf("%s Lv%d", weapon, h.Weapon.Level)
		if h.Weapon.Evolved {
			weapon += " ★"
		}
		if len(h.Inventory) > 1 {
			weapon = fmt.Sprintf("[TAB %d/%d] %s", h.WeaponIndex+1, len(h.Inventory), weapon)
		}
	}
	s.canvas.Text(s.cols-utf8.RuneCountInString(weapon)-1, 0, weapon, colorHighlight)
}

// bar draws a width-cell gauge filled to frac and returns the next column.
func (s *Session) bar(col, row int, frac float64, width int, color string) int {
	filled := int(max(min(frac, 1), 0)*float64(width) + 0.5)
	for i := range width {
		if i < filled {
			s.canvas.Set(col+i, row, draw.BlockFull, color)
		} else {
			s.canvas.Set(col+i, row, draw.Shades[1], colorDim)
		}
	}
	return col + width
}

// drawMinimap draws a small overview of the world in the top-right corner.
// Uses half-block characters for 2x vertical resolution. The player is
// cyan, bosses gold, other enemies dim.
func (s *Session) drawMinimap(snap *game.Snapshot) {
	worldW, worldH := snap.Bounds.Width, snap.Bounds.Height
	startCol := s.cols - minimapWidth - 3
	startRow := hudRows + 1
	if worldW <= 0 || worldH <= 0 || startCol < s.cols/2 || startRow+minimapHeight+2 > hudRows+viewRows(s.rows) {
		return
	}

	// 0 empty, 1 enemy, 2 boss, 3 player. Higher values win a cell.
	var grid [minimapSubRows][minimapWidth]byte
	mark := func(x, y float64, v byte) {
		col := min(max(int(x/worldW*minimapWidth), 0), minimapWidth-1)
		sub := min(max(int(y/worldH*minimapSubRows), 0), minimapSubRows-1)
		grid[sub][col] = max(grid[sub][col], v)
	}
	for _, e := range snap.Enemies {
		if e.Boss {
			mark(e.X, e.Y, 2)
		} else {
			mark(e.X, e.Y, 1)
		}
	}
	mark(snap.Player.X, snap.Player.Y, 3)

	colors := [...]string{"", colorDim, object.ColorBoss, colorPlayer}

	s.canvas.Text(startCol, startRow, "┌"+strings.Repeat("─", minimapWidth)+"┐", colorDim)
	for r := range minimapHeight {
		row := startRow + 1 + r
		s.canvas.Set(startCol, row, '│', colorDim)
		for c := range minimapWidth {
			top, bot := grid[r*2][c], grid[r*2+1][c]
			var ch rune
			switch {
			case top != 0 && bot != 0:
				ch = draw.BlockFull
			case top != 0:
				ch = draw.BlockUpperHalf
			case bot != 0:
				ch = draw.BlockLowerHalf
			default:
				ch = ' '
			}
			s.canvas.Set(startCol+1+c, row, ch, colors[max(top, bot)])
		}
		s.canvas.Set(startCol+minimapWidth+1, row, '│', colorDim)
	}
	s.canvas.Text(startCol, startRow+minimapHeight+1, "└"+strings.Repeat("─", minimapWidth)+"┘", colorDim)
}

// drawPrompt draws the typing line at the bottom.
func (s *Session) drawPrompt(snap *game.Snapshot) {
	row := s.rows - 1
	col := s.canvas.Text(1, row, "> ", colorDim)
	col = s.canvas.Text(col, row, snap.Input, colorHighlight)
	if s.now().UnixMilli()/500%2 == 0 {
		s.canvas.Set(col, row, '_', colorHighlight)
	}

	hint := "ENTER fire · TAB weapon · ESC menu"
	if s.opts.Online != nil {
		hint = fmt.Sprintf("online %d · %s", s.opts.Online(), hint)
	}
	s.canvas.Text(s.cols-utf8.RuneCountInString(hint)-1, row, hint, colorDim)
}

// overlay returns the box drawn over the frame for the current screen,
// or "" when there is none.
func (s *Session) overlay(snap *game.Snapshot) string {
	switch {
	case s.shuttingDown:
		return s.shutdownBox()
	case s.inactive:
		return s.inactivityBox()
	}

	switch snap.State {
	case game.StatePaused:
		return s.upgradeBox(snap.Offer)
	case game.StateGameOver:
		return s.gameOverBox(snap)
	case game.StateStageClear:
		return s.stageClearBox(snap)
	}
	return ""
}

func (s *Session) boxWidth(w int) int {
	return max(min(w, s.cols-4), 10)
}

func (s *Session) upgradeBox(offer []game.UpgradeOption) string {
	lines := []string{s.pal.Paint("LEVEL UP!", colorTitle, true), ""}
	for i, o := range offer {
		name := o.Name
		if o.Level > 0 {
			name = fmt.Sprintf("%s Lv%d", o.Name, o.Level)
		}
		head := fmt.Sprintf("[%d] %s  (%s)", i+1, name, o.Tag)
		color := colorText
		if i == s.menuIndex {
			head = "> " + head + " <"
			color = colorHighlight
		}
		lines = append(lines, s.pal.Paint(head, color, i == s.menuIndex))
		lines = append(lines, s.pal.Paint(o.Description, colorDim, false), "")
	}
	lines = append(lines, s.pal.Paint("Press 1-3 or ENTER to choose", colorDim, false))
	return s.pal.Box(strings.Join(lines, "\n"), colorTitle, s.boxWidth(60))
}

func (s *Session) gameOverBox(snap *game.Snapshot) string {
	lines := []string{
		s.pal.Paint("GAME OVER", colorHPLow, true),
		"",
		fmt.Sprintf("%s · level %d", snap.Stage.Name, snap.HUD.Level),
		"",
		s.pal.Paint("[R] retry    [M] menu", colorText, false),
	}
	return s.pal.Box(strings.Join(lines, "\n"), colorHPLow, s.boxWidth(44))
}

func (s *Session) stageClearBox(snap *game.Snapshot) string {
	next, _ := s.world.Stages().Get(s.world.Stages().Next(snap.Stage.ID))
	lines := []string{
		s.pal.Paint("STAGE CLEAR!", object.ColorBoss, true),
		"",
		fmt.Sprintf("%s cleared at level %d", snap.Stage.Name, snap.HUD.Level),
		"",
		s.pal.Paint(fmt.Sprintf("[N] next: %s    [M] menu", next.Name), colorText, false),
	}
	return s.pal.Box(strings.Join(lines, "\n"), object.ColorBoss, s.boxWidth(56))
}

func (s *Session) inactivityBox() string {
	remaining := int((InactivityDisconnectUser - s.now().Sub(s.lastInput)).Seconds())
	lines := []string{
		s.pal.Paint("INACTIVITY WARNING", colorWarn, true),
		"",
		fmt.Sprintf("You will be disconnected in %d seconds.", max(remaining, 0)),
		"",
		s.pal.Paint("Press any key to continue", colorDim, false),
	}
	return s.pal.Box(strings.Join(lines, "\n"), colorWarn, s.boxWidth(52))
}

func (s *Session) shutdownBox() string {
	remaining := int(math.Ceil(s.shutdownAt.Sub(s.now()).Seconds()))
	lines := []string{
		s.pal.Paint("SERVER SHUTTING DOWN", colorWarn, true),
		"",
		"The server is restarting for maintenance.",
		"Please reconnect in a moment.",
		"",
		fmt.Sprintf("Disconnecting in %d seconds...", max(remaining, 0)),
		s.pal.Paint("Press Q to disconnect now", colorDim, false),
	}
	return s.pal.Box(strings.Join(lines, "\n"), colorWarn, s.boxWidth(52))
}
