package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/automoto/tileworld/shared/geom"
)

// Parse reads a level in the text map format. Directive lines come first;
// blank lines and lines starting with # are skipped until the grid begins.
//
//	name Cave
//	size 12 8 16
//	tile # solid 3
//	tile . open 0
//	start @ player
//	start e enemy
//	grid
//	############
//	#@...e.....#
//
// size takes width, height and an optional tile size. tile maps a legend
// char to solid or open and a sprite id. start marks a spawn char with its
// kind and an optional floor char (default "."). grid is followed by
// exactly height rows of width chars, top row first. source names the
// input in error messages.
func Parse(source string, r io.Reader) (*Level, error) {
	p := &parser{
		source: source,
		legend: make(map[rune]Tile),
		marks:  make(map[rune]marker),
		name:   source,
		ts:     DefaultTileSize,
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		p.line++
		if err := p.feed(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return p.finish()
}

// FromString parses a level held in memory.
func FromString(source, text string) (*Level, error) {
	return Parse(source, strings.NewReader(text))
}

type marker struct {
	kind  EntityKind
	floor rune
}

type parser struct {
	source string
	line   int

	name    string
	w, h    int
	ts      float64
	sized   bool
	legend  map[rune]Tile
	marks   map[rune]marker
	inGrid  bool
	rows    []string
	rowLine []int
}

func (p *parser) feed(raw string) error {
	if p.inGrid {
		if len(p.rows) == p.h {
			if strings.TrimSpace(raw) == "" {
				return nil
			}
			return malformed(p.source, p.line, "grid has more than %d rows", p.h)
		}
		p.rows = append(p.rows, strings.TrimRight(raw, "\r"))
		p.rowLine = append(p.rowLine, p.line)
		return nil
	}

	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "#") {
		return nil
	}
	fields := strings.Fields(text)
	switch fields[0] {
	case "name":
		p.name = strings.TrimSpace(strings.TrimPrefix(text, "name"))
	case "size":
		return p.size(fields[1:])
	case "tile":
		return p.tile(fields[1:])
	case "start":
		return p.start(fields[1:])
	case "grid":
		if !p.sized {
			return malformed(p.source, p.line, "grid before size")
		}
		p.inGrid = true
	default:
		return malformed(p.source, p.line, "unknown directive %q", fields[0])
	}
	return nil
}

func (p *parser) size(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return malformed(p.source, p.line, "size wants width height [tile size]")
	}
	w, err := strconv.Atoi(args[0])
	if err != nil || w <= 0 {
		return malformed(p.source, p.line, "bad width %q", args[0])
	}
	h, err := strconv.Atoi(args[1])
	if err != nil || h <= 0 {
		return malformed(p.source, p.line, "bad height %q", args[1])
	}
	if len(args) == 3 {
		ts, err := strconv.ParseFloat(args[2], 64)
		if err != nil || !(ts > 0) {
			return malformed(p.source, p.line, "bad tile size %q", args[2])
		}
		p.ts = ts
	}
	p.w, p.h, p.sized = w, h, true
	return nil
}

func (p *parser) tile(args []string) error {
	if len(args) != 3 {
		return malformed(p.source, p.line, "tile wants char solid|open sprite")
	}
	ch, err := p.char(args[0])
	if err != nil {
		return err
	}
	var solid bool
	switch args[1] {
	case "solid":
		solid = true
	case "open":
	default:
		return malformed(p.source, p.line, "tile %q: want solid or open, got %q", args[0], args[1])
	}
	sprite, err := strconv.Atoi(args[2])
	if err != nil {
		return malformed(p.source, p.line, "tile %q: bad sprite %q", args[0], args[2])
	}
	p.legend[ch] = Tile{Solid: solid, Sprite: sprite}
	return nil
}

func (p *parser) start(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return malformed(p.source, p.line, "start wants char kind [floor char]")
	}
	ch, err := p.char(args[0])
	if err != nil {
		return err
	}
	kind := EntityKind(args[1])
	if !kind.Valid() {
		return malformed(p.source, p.line, "unknown start kind %q", args[1])
	}
	m := marker{kind: kind, floor: '.'}
	if len(args) == 3 {
		if m.floor, err = p.char(args[2]); err != nil {
			return err
		}
	}
	p.marks[ch] = m
	return nil
}

func (p *parser) char(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, malformed(p.source, p.line, "legend entry %q is not a single char", s)
	}
	return r[0], nil
}

func (p *parser) finish() (*Level, error) {
	if !p.sized {
		return nil, malformed(p.source, 0, "missing size")
	}
	if !p.inGrid {
		return nil, malformed(p.source, 0, "missing grid")
	}
	if len(p.rows) != p.h {
		return nil, malformed(p.source, p.line, "grid has %d rows, want %d", len(p.rows), p.h)
	}

	tiles := make([]Tile, 0, p.w*p.h)
	var starts []Start
	for row, text := range p.rows {
		cells := []rune(text)
		if len(cells) != p.w {
			return nil, malformed(p.source, p.rowLine[row], "row has %d cells, want %d", len(cells), p.w)
		}
		for col, ch := range cells {
			if m, ok := p.marks[ch]; ok {
				// Marker cells take the floor tile, or an open blank cell.
				floor, ok := p.legend[m.floor]
				if !ok {
					floor = Tile{Sprite: -1}
				}
				tiles = append(tiles, floor)
				center := geom.Vec2{
					X: (float64(col) + 0.5) * p.ts,
					Y: (float64(row) + 0.5) * p.ts,
				}
				starts = append(starts, Start{Kind: m.kind, Pos: center})
				continue
			}
			t, ok := p.legend[ch]
			if !ok {
				return nil, malformed(p.source, p.rowLine[row], "undeclared tile %q at column %d", ch, col+1)
			}
			tiles = append(tiles, t)
		}
	}

	lvl, err := NewLevel(p.name, p.w, p.h, p.ts, tiles, starts)
	if err != nil {
		return nil, &ConfigError{Source: p.source, Msg: "build grid", Err: err}
	}
	if _, err := lvl.PlayerStart(); err != nil {
		return nil, &ConfigError{Source: p.source, Msg: "validate", Err: ErrNoPlayerStart}
	}
	return lvl, nil
}
