package scene

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	walkSpeed       = 0.125 // tiles per tick; exact in binary so corridors stay aligned
	trailSpacing    = 8     // trail samples between consecutive followers
	monsterMoveRate = 30    // ticks between monster drift steps
	combatRate      = 60    // ticks between player attacks on adjacent monsters
	playerDamage    = 10.0
)

var (
	featureCells = []Cell{CellChest, CellMine, CellTree, CellBones, CellGrave, CellAltar, CellShop}
	monsterTypes = []string{"zombie", "Zombie", "skeleton", "zombie"}
	mercTypes    = []string{"Warrior", "Archer", "Wizard", "Healer", "Bard", "Paladin"}
)

type room struct {
	x, y, w, h int
}

func (r room) center() (int, int) {
	return r.x + r.w/2, r.y + r.h/2
}

func (r room) overlaps(o room) bool {
	// One-cell wall margin between rooms.
	return r.x-1 < o.x+o.w && o.x-1 < r.x+r.w && r.y-1 < o.y+o.h && o.y-1 < r.y+r.h
}

// World is a small self-running dungeon used to feed the renderer: rooms and
// corridors, a patrolling player, trailing mercenaries and drifting monsters.
type World struct {
	size         int
	seed         int64
	roomTarget   int
	monsterCount int
	mercCount    int
	sightRadius  int

	rng     *rand.Rand
	dungeon Grid
	fog     Fog
	rooms   []room

	player   *Unit
	monsters []*Unit
	mercs    []*Unit

	// Patrol: the player walks room to room and bounces at either end.
	patrolTarget int
	patrolDir    int
	trail        [][2]float64

	tick int
}

// Option configures a World before generation.
type Option func(*World)

// WithSize sets the dungeon edge length in tiles (minimum 8).
func WithSize(n int) Option {
	return func(w *World) { w.size = n }
}

// WithSeed sets the RNG seed for deterministic layouts.
func WithSeed(seed int64) Option {
	return func(w *World) { w.seed = seed }
}

// WithRooms sets how many rooms the generator tries to place.
func WithRooms(n int) Option {
	return func(w *World) { w.roomTarget = n }
}

// WithMonsters sets the monster count.
func WithMonsters(n int) Option {
	return func(w *World) { w.monsterCount = n }
}

// WithMercenaries sets how many mercenaries follow the player.
func WithMercenaries(n int) Option {
	return func(w *World) { w.mercCount = n }
}

// WithSightRadius sets the fog reveal radius around the player, in tiles.
func WithSightRadius(r int) Option {
	return func(w *World) { w.sightRadius = r }
}

// NewWorld generates a dungeon from the given options.
func NewWorld(opts ...Option) *World {
	w := &World{
		size:         48,
		seed:         1,
		roomTarget:   9,
		monsterCount: 12,
		mercCount:    2,
		sightRadius:  6,
		patrolDir:    1,
	}
	for _, o := range opts {
		o(w)
	}
	if w.size < 8 {
		w.size = 8
	}
	if w.roomTarget < 1 {
		w.roomTarget = 1
	}
	w.rng = rand.New(rand.NewSource(w.seed)) // #nosec G404 -- cosmetic only

	w.carve()
	w.scatterFeatures()
	w.spawn()
	w.reveal()
	return w
}

func (w *World) carve() {
	w.dungeon = NewGrid(w.size, CellWall)
	w.fog = NewFog(w.size, true)

	maxRoom := w.size / 2
	if maxRoom > 9 {
		maxRoom = 9
	}
	for attempt := 0; attempt < w.roomTarget*10 && len(w.rooms) < w.roomTarget; attempt++ {
		rw := 3 + w.rng.Intn(maxRoom-2)
		rh := 3 + w.rng.Intn(maxRoom-2)
		r := room{
			x: 1 + w.rng.Intn(w.size-rw-1),
			y: 1 + w.rng.Intn(w.size-rh-1),
			w: rw,
			h: rh,
		}
		clash := false
		for _, o := range w.rooms {
			if r.overlaps(o) {
				clash = true
				break
			}
		}
		if clash {
			continue
		}
		for y := r.y; y < r.y+r.h; y++ {
			for x := r.x; x < r.x+r.w; x++ {
				w.dungeon[y][x] = CellFloor
			}
		}
		if n := len(w.rooms); n > 0 {
			w.corridor(w.rooms[n-1], r)
		}
		w.rooms = append(w.rooms, r)
	}
}

// corridor digs horizontally from a's centre, then vertically into b's.
func (w *World) corridor(a, b room) {
	ax, ay := a.center()
	bx, by := b.center()
	for x := min(ax, bx); x <= max(ax, bx); x++ {
		if w.dungeon[ay][x] == CellWall {
			w.dungeon[ay][x] = CellFloor
		}
	}
	for y := min(ay, by); y <= max(ay, by); y++ {
		if w.dungeon[y][bx] == CellWall {
			w.dungeon[y][bx] = CellFloor
		}
	}
}

func (w *World) scatterFeatures() {
	for i, r := range w.rooms {
		if i == 0 {
			continue
		}
		cx, cy := r.center()
		x := r.x + w.rng.Intn(r.w)
		y := r.y + w.rng.Intn(r.h)
		// Keep the patrol line through room centres clear.
		if x == cx || y == cy {
			continue
		}
		w.dungeon[y][x] = featureCells[w.rng.Intn(len(featureCells))]
	}
	if n := len(w.rooms); n > 1 {
		last := w.rooms[n-1]
		w.dungeon[last.y][last.x] = CellExit
	}
}

func (w *World) spawn() {
	px, py := w.rooms[0].center()
	w.player = &Unit{
		ID:        "player",
		Kind:      KindPlayer,
		X:         float64(px),
		Y:         float64(py),
		HasHealth: true,
		Health:    80,
		MaxHealth: 100,
	}
	w.patrolTarget = 1
	if len(w.rooms) == 1 {
		w.patrolTarget = 0
	}

	for i := 0; i < w.mercCount; i++ {
		maxHP := 60.0
		w.mercs = append(w.mercs, &Unit{
			ID:        fmt.Sprintf("merc-%d", i),
			Kind:      KindMercenary,
			Type:      mercTypes[i%len(mercTypes)],
			X:         w.player.X,
			Y:         w.player.Y,
			HasHealth: true,
			Health:    float64(20 + w.rng.Intn(41)),
			MaxHealth: maxHP,
		})
	}

	spawnRooms := w.rooms
	if len(spawnRooms) > 1 {
		spawnRooms = spawnRooms[1:]
	}
	for i := 0; i < w.monsterCount; i++ {
		r := spawnRooms[w.rng.Intn(len(spawnRooms))]
		w.monsters = append(w.monsters, &Unit{
			ID:        fmt.Sprintf("monster-%d", i),
			Kind:      KindMonster,
			Type:      monsterTypes[w.rng.Intn(len(monsterTypes))],
			X:         float64(r.x + w.rng.Intn(r.w)),
			Y:         float64(r.y + w.rng.Intn(r.h)),
			HasHealth: true,
			Health:    float64(5 + w.rng.Intn(26)),
			MaxHealth: 30,
		})
	}
}

// reveal clears fog on cells within sightRadius that the player can see.
func (w *World) reveal() {
	cx := int(math.Round(w.player.X))
	cy := int(math.Round(w.player.Y))
	r := w.sightRadius
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if x < 0 || y < 0 || x >= w.size || y >= w.size {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			if w.dungeon.HasLineOfSight(float64(cx)+0.5, float64(cy)+0.5, float64(x)+0.5, float64(y)+0.5) {
				w.fog[y][x] = false
			}
		}
	}
}

// Step advances the world by one tick.
func (w *World) Step() {
	w.tick++
	w.walkPlayer()
	w.trailMercenaries()
	if w.tick%monsterMoveRate == 0 {
		w.driftMonsters()
	}
	if w.tick%combatRate == 0 {
		w.strikeAdjacent()
	}
	w.reveal()
}

func (w *World) walkPlayer() {
	w.trail = append(w.trail, [2]float64{w.player.X, w.player.Y})
	if keep := (w.mercCount + 1) * trailSpacing; len(w.trail) > keep {
		w.trail = w.trail[len(w.trail)-keep:]
	}

	tx, ty := w.rooms[w.patrolTarget].center()
	fx, fy := float64(tx), float64(ty)
	p := w.player
	if p.X == fx && p.Y == fy {
		w.advancePatrol()
		return
	}
	// Corridors run horizontal-first from the lower-index room, so walk
	// x-first going forward and y-first coming back.
	if w.patrolDir > 0 {
		if p.X != fx {
			p.X = approach(p.X, fx, walkSpeed)
		} else {
			p.Y = approach(p.Y, fy, walkSpeed)
		}
	} else {
		if p.Y != fy {
			p.Y = approach(p.Y, fy, walkSpeed)
		} else {
			p.X = approach(p.X, fx, walkSpeed)
		}
	}
}

func (w *World) advancePatrol() {
	if len(w.rooms) == 1 {
		return
	}
	next := w.patrolTarget + w.patrolDir
	if next < 0 || next >= len(w.rooms) {
		w.patrolDir = -w.patrolDir
		next = w.patrolTarget + w.patrolDir
	}
	w.patrolTarget = next
}

func approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}

func (w *World) trailMercenaries() {
	for i, m := range w.mercs {
		idx := len(w.trail) - (i+1)*trailSpacing
		if idx < 0 {
			idx = 0
		}
		if len(w.trail) == 0 {
			continue
		}
		m.X, m.Y = w.trail[idx][0], w.trail[idx][1]
	}
}

var cardinals = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func (w *World) driftMonsters() {
	for _, m := range w.monsters {
		if !m.Alive() {
			continue
		}
		d := cardinals[w.rng.Intn(len(cardinals))]
		nx, ny := int(m.X)+d[0], int(m.Y)+d[1]
		if w.dungeon.At(nx, ny) != CellWall && w.dungeon.At(nx, ny) != CellEmpty {
			m.X, m.Y = float64(nx), float64(ny)
		}
	}
}

func (w *World) strikeAdjacent() {
	for _, m := range w.monsters {
		if !m.Alive() {
			continue
		}
		if math.Hypot(m.X-w.player.X, m.Y-w.player.Y) <= 1.5 {
			m.Health -= playerDamage
		}
	}
}

// Tick returns the number of Step calls so far.
func (w *World) Tick() int {
	return w.tick
}

// Size returns the dungeon edge length in tiles.
func (w *World) Size() int {
	return w.size
}

// Snapshot copies the current state into a Scene that later Step calls do
// not touch.
func (w *World) Snapshot() *Scene {
	sc := &Scene{
		Dungeon: make(Grid, len(w.dungeon)),
		Fog:     make(Fog, len(w.fog)),
		Size:    w.size,
		Player:  copyUnit(w.player),
	}
	for y, row := range w.dungeon {
		sc.Dungeon[y] = append([]Cell(nil), row...)
	}
	for y, row := range w.fog {
		sc.Fog[y] = append([]bool(nil), row...)
	}
	for _, m := range w.monsters {
		sc.Monsters = append(sc.Monsters, copyUnit(m))
	}
	for _, m := range w.mercs {
		sc.Mercenaries = append(sc.Mercenaries, copyUnit(m))
	}
	return sc
}

func copyUnit(u *Unit) *Unit {
	if u == nil {
		return nil
	}
	c := *u
	c.Effects = append([]string(nil), u.Effects...)
	return &c
}
