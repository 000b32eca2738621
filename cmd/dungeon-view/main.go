package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Dungeon-View/internal/assets"
	"github.com/Garsondee/Dungeon-View/internal/game"
	"github.com/Garsondee/Dungeon-View/internal/scene"
)

func main() {
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	assetDir := flag.String("assets", "assets", "asset root directory")
	seed := flag.Int64("seed", time.Now().UnixNano(), "dungeon RNG seed")
	size := flag.Int("size", 48, "dungeon edge length in tiles")
	speed := flag.Float64("speed", 0.5, "world steps per frame (0 pauses)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	batch := assets.LoadDefault(assets.DirFetcher{Root: *assetDir}, func(t assets.Table) {
		log.Printf("assets: %d loaded", len(t))
	})
	table, err := batch.Wait(ctx)
	if err != nil {
		log.Fatalf("assets: %v", err)
	}

	world := scene.NewWorld(scene.WithSeed(*seed), scene.WithSize(*size))
	g, err := game.New(world, table)
	if err != nil {
		log.Fatal(err)
	}
	g.SetSpeed(*speed)

	ebiten.SetWindowTitle("Dungeon View")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
