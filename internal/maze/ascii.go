package maze

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Glyphs used by the terminal preview.
const (
	glyphEmpty  = ' '
	glyphFloor  = '.'
	glyphWall   = '#'
	glyphInert  = ','
	glyphPlayer = '@'
	glyphGoal   = '$'
	glyphEnemy  = 'E'
	glyphHidden = '~'
)

type glyphColor uint8

const (
	colorPlain glyphColor = iota
	colorFloor
	colorWall
	colorInert
	colorPlayer
	colorGoal
	colorEnemy
	colorHidden
)

var glyphStyles = map[glyphColor]lipgloss.Style{
	colorPlain:  lipgloss.NewStyle(),
	colorFloor:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	colorWall:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	colorInert:  lipgloss.NewStyle().Foreground(lipgloss.Color("66")),
	colorPlayer: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	colorGoal:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	colorEnemy:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	colorHidden: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
}

// PreviewOptions controls RenderASCII.
type PreviewOptions struct {
	FOVRadius int  // radius around the player marker; 0 uses DefaultFOVRadius
	FOVOnly   bool // hide cells outside the field of view
	Plain     bool // no ANSI styling

	// MaxWidth and MaxHeight crop the output to a window centred on the
	// player (or the map centre). Zero means no limit.
	MaxWidth, MaxHeight int
}

type glyph struct {
	r rune
	c glyphColor
}

// RenderASCII draws the map as text, one rune per tile. Cells outside the
// player's field of view are dimmed, or hidden when FOVOnly is set.
func RenderASCII(m *Map, opts PreviewOptions) string {
	radius := opts.FOVRadius
	if radius <= 0 {
		radius = DefaultFOVRadius
	}
	player, hasPlayer := m.Player()

	cells := make([][]glyph, m.GridH)
	for y := range cells {
		cells[y] = make([]glyph, m.GridW)
		for x := range cells[y] {
			cells[y][x] = tileGlyph(m.Tiles[y][x])
		}
	}
	for _, e := range m.Entities {
		switch e.Kind {
		case KindPlayer:
			cells[e.Y][e.X] = glyph{glyphPlayer, colorPlayer}
		case KindGoal:
			cells[e.Y][e.X] = glyph{glyphGoal, colorGoal}
		default:
			cells[e.Y][e.X] = glyph{glyphEnemy, colorEnemy}
		}
	}
	if hasPlayer {
		for y := range cells {
			for x := range cells[y] {
				if InRadius(player.X, player.Y, x, y, radius) {
					continue
				}
				if opts.FOVOnly {
					cells[y][x] = glyph{glyphHidden, colorHidden}
				} else if cells[y][x].c != colorPlain {
					cells[y][x].c = colorHidden
				}
			}
		}
	}

	cx, cy := m.GridW/2, m.GridH/2
	if hasPlayer {
		cx, cy = player.X, player.Y
	}
	x0, x1 := cropSpan(cx, m.GridW, opts.MaxWidth)
	y0, y1 := cropSpan(cy, m.GridH, opts.MaxHeight)

	var sb strings.Builder
	sb.Grow((x1-x0)*(y1-y0)*2 + (y1 - y0))
	for y := y0; y < y1; y++ {
		if y > y0 {
			sb.WriteRune('\n')
		}
		row := cells[y][x0:x1]
		// Group runs of the same colour to keep escape sequences down.
		x := 0
		for x < len(row) {
			start := row[x].c
			var run strings.Builder
			for x < len(row) && row[x].c == start {
				run.WriteRune(row[x].r)
				x++
			}
			if opts.Plain {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(glyphStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}

// cropSpan returns the half-open range of at most limit indices out of n,
// centred on c where the edges allow.
func cropSpan(c, n, limit int) (int, int) {
	if limit <= 0 || limit >= n {
		return 0, n
	}
	lo := clampInt(c-limit/2, 0, n-limit)
	return lo, lo + limit
}

func tileGlyph(id int) glyph {
	switch ClassifyTile(id) {
	case TileFloor:
		return glyph{glyphFloor, colorFloor}
	case TileWall:
		return glyph{glyphWall, colorWall}
	case TileInert:
		return glyph{glyphInert, colorInert}
	default:
		return glyph{glyphEmpty, colorPlain}
	}
}
