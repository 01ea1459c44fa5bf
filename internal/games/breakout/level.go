// Package breakout implements the brick breaker played in the terminal. The
// arena is a physics.World: walls, a curved paddle, balls, bricks and
// falling power-ups are entities, and gameplay rules are collision listeners.
package breakout

import "strings"

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickEmpty  BrickType = iota // No brick
	BrickNormal                  // Destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
	BrickSolid                   // Indestructible
)

// Brick is one cell of a level layout.
type Brick struct {
	Type   BrickType
	Points int // Points awarded per hit
	HP     int // Hits needed to destroy; zero for solid bricks
}

// Breakable reports whether the brick counts toward clearing the level.
func (b Brick) Breakable() bool {
	return b.Type == BrickNormal || b.Type == BrickHard
}

// Level is a brick layout.
type Level struct {
	ID     string
	Name   string
	Width  int       // Number of brick columns
	Height int       // Number of brick rows
	Bricks [][]Brick // [row][col], row 0 at the top
}

// CountBreakable returns the number of bricks that must be destroyed to
// clear the level.
func (l *Level) CountBreakable() int {
	count := 0
	for _, row := range l.Bricks {
		for _, b := range row {
			if b.Breakable() {
				count++
			}
		}
	}
	return count
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = normal brick (10 points)
//	'.' = empty
//	'1'-'9' = brick with custom points (10 * digit)
//	'H' = hard brick (2 HP, 10 points per hit)
//	'X' = solid/indestructible brick (0 points)
func ParseLevel(id, name string, lines []string) *Level {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  width,
		Height: len(lines),
		Bricks: make([][]Brick, len(lines)),
	}

	for row, line := range lines {
		line += strings.Repeat(".", width-len(line))
		level.Bricks[row] = make([]Brick, width)
		for col := range width {
			level.Bricks[row][col] = parseBrick(line[col])
		}
	}
	return level
}

func parseBrick(ch byte) Brick {
	switch {
	case ch == '#':
		return Brick{Type: BrickNormal, Points: 10, HP: 1}
	case ch >= '1' && ch <= '9':
		return Brick{Type: BrickNormal, Points: int(ch-'0') * 10, HP: 1}
	case ch == 'H' || ch == 'h':
		return Brick{Type: BrickHard, Points: 10, HP: 2}
	case ch == 'X' || ch == 'x':
		return Brick{Type: BrickSolid}
	default:
		return Brick{Type: BrickEmpty}
	}
}

// BuiltinLevels returns all built-in levels.
func BuiltinLevels() []*Level {
	return []*Level{
		ParseLevel("classic", "Classic", []string{
			"5555555555555555",
			"4444444444444444",
			"3333333333333333",
			"2222222222222222",
			"################",
		}),

		ParseLevel("pyramid", "Pyramid", []string{
			"......####......",
			"....########....",
			"..############..",
			"################",
		}),

		ParseLevel("checker", "Checkerboard", []string{
			"#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.",
		}),

		ParseLevel("fortress", "Fortress", []string{
			"HHHHHHHHHHHHHHHH",
			"H..............H",
			"H.############.H",
			"H.############.H",
			"H..............H",
			"HHHHHHHHHHHHHHHH",
		}),

		ParseLevel("gates", "Gates", []string{
			"X..X....##....X..X",
			"XXXX....##....XXXX",
			"........##........",
			"##################",
			"##################",
			"HHHHHHHHHHHHHHHHHH",
		}),

		ParseLevel("invaders", "Invaders", []string{
			"..#.........#...",
			".###.......###..",
			"#####.....#####.",
			"#.#.#.....#.#.#.",
			"#####.....#####.",
		}),

		ParseLevel("boss", "Final Boss", []string{
			"HHHHHHHHHHHHHHHH",
			"H99999999999999H",
			"H##############H",
			"H##############H",
			"HXXXXXX..XXXXXXH",
		}),
	}
}

// GetLevel returns a level by index (wraps around if index >= len).
func GetLevel(index int) *Level {
	levels := BuiltinLevels()
	return levels[index%len(levels)]
}

// LevelCount returns the total number of available levels.
func LevelCount() int {
	return len(BuiltinLevels())
}
