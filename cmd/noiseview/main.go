//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"valnoise/internal/app"
	"valnoise/internal/fields"
	_ "valnoise/internal/fields/clouds"
	_ "valnoise/internal/fields/density"
	_ "valnoise/internal/fields/plane"
	"valnoise/internal/render"
	"valnoise/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	view, err := fields.New(cfg.View, nil)
	if err != nil {
		log.Fatal(err)
	}
	palette, err := render.ByName(cfg.Palette)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(view, session.New(cfg.Seed), palette, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("valnoise - " + view.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
