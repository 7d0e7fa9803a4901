package main

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var hudFace font.Face

func uiFace() font.Face {
	if hudFace != nil {
		return hudFace
	}
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	hudFace = truetype.NewFace(tt, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return hudFace
}

const hudHelp = "[1]start [2]end [3]wall  [D]ijkstra [A]*  [R]eset [C]lear [X]scatter"

func (g *Game) drawHUD(screen *ebiten.Image) {
	line := fmt.Sprintf("Tool: %s  State: %s", g.tool, g.State.Name())
	if g.haveStats {
		line += fmt.Sprintf("  %s: explored %d, path %d",
			g.stats.Algorithm, g.stats.NodesExplored, g.stats.PathLength)
	}
	baseline := gridRows*cellSize + hudHeight - 9
	text.Draw(screen, line, uiFace(), 6, baseline, hexRGB(0xdddddd))

	bounds := text.BoundString(uiFace(), hudHelp)
	text.Draw(screen, hudHelp, uiFace(), screenWidth-bounds.Dx()-6, baseline, hexRGB(0x8a8a8a))
}
