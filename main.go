package main

import (
	"flag"
	"log"

	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

var configPath = flag.String("config", "", "YAML or INI file overriding the default settings")

func main() {
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		settings = loaded
	}

	g, err := game.NewGame(settings)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(g.WindowSize())
	ebiten.SetWindowTitle("Roadrush")
	ebiten.SetTPS(settings.TPS)
	// Call ebiten.RunGame to start your game loop.
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
