// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Example of Direct buffers: an animated pattern is written into memory
// outside the Go heap and uploaded every frame without copying.
package main

import (
	"log"
	"math"

	"github.com/YindSoft/texupload"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	screenWidth  = 640
	screenHeight = 480
	texWidth     = 160
	texHeight    = 120
)

type Game struct {
	buf     *texupload.DirectBuffer
	target  *texupload.ImageTarget
	counter int
}

func newGame() (*Game, error) {
	buf, err := texupload.AllocDirect(texWidth * texHeight * 4)
	if err != nil {
		return nil, err
	}
	return &Game{buf: buf, target: &texupload.ImageTarget{}}, nil
}

func (g *Game) Update() error {
	g.counter++
	t := float64(g.counter) / 60.0

	pix := g.buf.Bytes()
	for y := 0; y < texHeight; y++ {
		for x := 0; x < texWidth; x++ {
			v := math.Sin(float64(x)/16+t) + math.Sin(float64(y)/8+t*0.7) + math.Sin(float64(x+y)/24+t*1.3)
			i := (y*texWidth + x) * 4
			pix[i+0] = uint8(127 + 127*math.Sin(v*math.Pi))
			pix[i+1] = uint8(127 + 127*math.Sin(v*math.Pi+2))
			pix[i+2] = uint8(127 + 127*math.Sin(v*math.Pi+4))
			pix[i+3] = 255
		}
	}
	return texupload.UploadRGBA(g.target, g.buf.Direct(), texWidth, texHeight)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.target.Image == nil {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(screenWidth/texWidth, screenHeight/texHeight)
	screen.DrawImage(g.target.Image, opts)
	ebitenutil.DebugPrint(screen, "direct buffer upload")
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	game, err := newGame()
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer game.buf.Free()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("texupload - direct buffer")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("run: %v", err)
	}
}
