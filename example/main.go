// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Example viewer: decodes an image file and uploads it into an Ebitengine
// image through texupload.ImageTarget.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/YindSoft/texupload"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/draw"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

var (
	source    = flag.String("in", "", "Image file to upload (PNG, JPEG, GIF, WebP, BMP, TIFF)")
	newWidth  = flag.Int("width", 0, "Resample to this width before uploading")
	newHeight = flag.Int("height", 0, "Resample to this height before uploading")
	debug     = flag.Bool("debug", false, "Log every upload")
)

type Game struct {
	target  *texupload.ImageTarget
	bitmap  *texupload.Bitmap
	uploads int
}

func newGame(path string) (*Game, error) {
	bm, err := texupload.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	if *newWidth > 0 && *newHeight > 0 {
		bm = texupload.NewBitmapScaled(bm.RGBA(), *newWidth, *newHeight, draw.CatmullRom)
	}

	g := &Game{target: &texupload.ImageTarget{}, bitmap: bm}
	if err := g.upload(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) upload() error {
	if err := g.bitmap.Upload(g.target); err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	g.uploads++
	return nil
}

func (g *Game) Update() error {
	// Re-upload on R to exercise repeated uploads into the same texture.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.upload()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	opts := &ebiten.DrawImageOptions{}
	w, h := float64(g.bitmap.Width), float64(g.bitmap.Height)
	if s := min(screenWidth/w, screenHeight/h); s < 1 {
		opts.GeoM.Scale(s, s)
		w, h = w*s, h*s
	}
	opts.GeoM.Translate((screenWidth-w)/2, (screenHeight-h)/2)
	screen.DrawImage(g.target.Image, opts)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%dx%d  uploads: %d  FPS: %.1f",
		g.bitmap.Width, g.bitmap.Height, g.uploads, ebiten.ActualFPS()))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if *source == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *debug {
		texupload.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	game, err := newGame(*source)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("texupload - image viewer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("run: %v", err)
	}
}
