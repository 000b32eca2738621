package assets

// Keys with special meaning to the renderer.
const (
	KeyPlayer = "player"
	KeyFloor  = "floor"
	KeyWall   = "wall"
	KeyZombie = "zombie"
)

// DefaultManifest returns the standard sprite set, with locators relative to
// the asset root.
func DefaultManifest() Manifest {
	return Manifest{
		KeyPlayer: "images/player.png",
		KeyFloor:  "images/floor-tile.png",
		KeyWall:   "images/wall-tile.png",
		KeyZombie: "images/zombie.png",
		"warrior": "images/warrior.png",
		"archer":  "images/archer.png",
		"wizard":  "images/wizard.png",
		"healer":  "images/healer.png",
		"bard":    "images/bard.png",
		"paladin": "images/paladin.png",
		"item":    "images/gold.png",
		"corpse":  "images/corpse.png",
		"chest":   "images/chest.png",
	}
}
