package scene

// Cell is a dungeon cell-type symbol, e.g. "wall", "floor", "chest".
type Cell string

const (
	CellEmpty Cell = ""
	CellWall  Cell = "wall"
	CellFloor Cell = "floor"
	CellChest Cell = "chest"
	CellMine  Cell = "mine"
	CellTree  Cell = "tree"
	CellBones Cell = "bones"
	CellGrave Cell = "grave"
	CellAltar Cell = "altar"
	CellExit  Cell = "exit"
	CellShop  Cell = "shop"
)

// Grid is a row-major dungeon layout indexed [y][x].
type Grid [][]Cell

// At returns the symbol at (x, y), or CellEmpty when out of range.
func (g Grid) At(x, y int) Cell {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		return CellEmpty
	}
	return g[y][x]
}

// Fog is a row-major visibility mask; true hides the cell.
type Fog [][]bool

// Hidden reports whether (x, y) is fogged. Out-of-range cells are not fogged.
func (f Fog) Hidden(x, y int) bool {
	if y < 0 || y >= len(f) || x < 0 || x >= len(f[y]) {
		return false
	}
	return f[y][x]
}

// UnitKind distinguishes the unit collections in a Scene.
type UnitKind int

const (
	KindPlayer UnitKind = iota
	KindMonster
	KindMercenary
)

func (k UnitKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	case KindMercenary:
		return "mercenary"
	default:
		return "unknown"
	}
}

// Unit is anything that stands on the dungeon: the player, a monster or a
// hired mercenary.
type Unit struct {
	ID   string
	Kind UnitKind
	Type string // sprite tag, matched case-insensitively; may be empty

	X, Y float64 // world position in tiles

	// HasHealth is false for units with no health attribute at all; they are
	// never treated as dead.
	HasHealth bool
	Health    float64
	MaxHealth float64

	Effects []string
}

// Alive reports whether the unit should be drawn.
func (u *Unit) Alive() bool {
	return u != nil && (!u.HasHealth || u.Health > 0)
}

// Scene is a read-only snapshot of everything the renderer draws.
type Scene struct {
	Dungeon Grid
	Fog     Fog
	Size    int // tiles per edge

	Player      *Unit
	Monsters    []*Unit
	Mercenaries []*Unit
}

// Units returns monsters, then mercenaries, then the player. Nil entries are
// dropped.
func (s *Scene) Units() []*Unit {
	out := make([]*Unit, 0, len(s.Monsters)+len(s.Mercenaries)+1)
	for _, u := range s.Monsters {
		if u != nil {
			out = append(out, u)
		}
	}
	for _, u := range s.Mercenaries {
		if u != nil {
			out = append(out, u)
		}
	}
	if s.Player != nil {
		out = append(out, s.Player)
	}
	return out
}

// NewGrid returns a size×size grid filled with c.
func NewGrid(size int, c Cell) Grid {
	g := make(Grid, size)
	for y := range g {
		row := make([]Cell, size)
		for x := range row {
			row[x] = c
		}
		g[y] = row
	}
	return g
}

// NewFog returns a size×size mask with every cell initialised to hidden.
func NewFog(size int, hidden bool) Fog {
	f := make(Fog, size)
	for y := range f {
		row := make([]bool, size)
		if hidden {
			for x := range row {
				row[x] = true
			}
		}
		f[y] = row
	}
	return f
}
