package sand

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"sandcastle/internal/core"
)

// Kind enumerates the closed set of materials a cell can hold.
type Kind uint8

const (
	Air Kind = iota
	Bedrock
	Sand
	Dirt
	Gold
	Water

	kindCount
)

// Direction is Water's persisted horizontal seek bias.
type Direction uint8

const (
	SeekLeft Direction = iota
	SeekRight
)

// Flip returns the opposite seek direction.
func (d Direction) Flip() Direction {
	if d == SeekLeft {
		return SeekRight
	}
	return SeekLeft
}

// Dx returns the column offset for the direction.
func (d Direction) Dx() int {
	if d == SeekLeft {
		return -1
	}
	return 1
}

// ErrUnknownKind is returned when a material identifier is not part of the registry.
var ErrUnknownKind = errors.New("unknown material kind")

// Cell is the occupant of a single grid position. The zero value is Air.
type Cell struct {
	Kind Kind
	Seek Direction
}

// Color returns the display color of the cell's material.
func (c Cell) Color() color.RGBA { return c.Kind.Color() }

// Empty reports whether the cell is Air.
func (c Cell) Empty() bool { return c.Kind == Air }

// rule proposes a destination for the cell at (x, y) by reading the old grid.
// It may mutate the cell's own state; the mutated cell is what gets committed.
type rule func(old *Grid, x, y int, c *Cell) (dx, dy int, moved bool)

type material struct {
	name  string
	color color.RGBA
	rule  rule
}

var materials = [kindCount]material{
	Air:     {name: "air", color: color.RGBA{R: 135, G: 206, B: 235, A: 255}},
	Bedrock: {name: "bedrock", color: color.RGBA{R: 60, G: 60, B: 64, A: 255}},
	Sand:    {name: "sand", color: color.RGBA{R: 237, G: 201, B: 175, A: 255}, rule: fall},
	Dirt:    {name: "dirt", color: color.RGBA{R: 118, G: 85, B: 43, A: 255}},
	Gold:    {name: "gold", color: color.RGBA{R: 255, G: 205, B: 40, A: 255}},
	Water:   {name: "water", color: color.RGBA{R: 40, G: 110, B: 230, A: 255}, rule: flow},
}

// hotkeys maps digit keys to tools, in the order the editor exposes them.
var hotkeys = [...]Kind{Air, Sand, Bedrock, Dirt, Gold, Water}

// Valid reports whether k is a registered material.
func (k Kind) Valid() bool { return k < kindCount }

// String returns the lowercase material name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return materials[k].name
}

// Color returns the fixed display color for k. Unknown kinds render as Air.
func (k Kind) Color() color.RGBA {
	if !k.Valid() {
		return materials[Air].color
	}
	return materials[k].color
}

// Kinds lists every material in hotkey order.
func Kinds() []Kind {
	out := make([]Kind, len(hotkeys))
	copy(out, hotkeys[:])
	return out
}

// ParseKind resolves a material by name, ignoring case.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := Kind(0); k < kindCount; k++ {
		if materials[k].name == n {
			return k, nil
		}
	}
	return Air, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// UnmarshalText lets kinds be decoded from config files by name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// NewCell builds a fresh cell of the given kind. Water picks a random initial
// seek direction; rng may be nil, in which case Water seeks left.
func NewCell(k Kind, rng *core.RNG) (Cell, error) {
	if !k.Valid() {
		return Cell{}, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	c := Cell{Kind: k}
	if k == Water && rng != nil && rng.Bool() {
		c.Seek = SeekRight
	}
	return c, nil
}

// fall moves a cell one row down when the cell below is Air.
func fall(old *Grid, x, y int, _ *Cell) (int, int, bool) {
	if below, ok := old.Neighbor(x, y, Down); ok && below.Empty() {
		return x, y + 1, true
	}
	return x, y, false
}

// flow tries straight down, then both diagonals starting on the seek side,
// then one step sideways along the seek direction. When every option is
// blocked the seek direction flips for the next tick.
func flow(old *Grid, x, y int, c *Cell) (int, int, bool) {
	side := c.Seek.Dx()
	order := [3]int{0, side, -side}
	for _, dx := range order {
		if target, ok := old.Cell(x+dx, y+1); ok && target.Empty() {
			return x + dx, y + 1, true
		}
	}
	sx := x + side
	if target, ok := old.Cell(sx, y); ok && target.Empty() {
		return sx, y, true
	}
	c.Seek = c.Seek.Flip()
	return x, y, false
}
