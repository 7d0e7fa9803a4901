package main

import (
	"image/color"

	"github.com/zucenko/pathviz/model"
)

const (
	gridCols = 50
	gridRows = 30
	cellSize = 20

	hudHeight = 28

	screenWidth  = gridCols * cellSize
	screenHeight = gridRows*cellSize + hudHeight
)

var (
	defaultStart = model.Point{X: 5, Y: 15}
	defaultEnd   = model.Point{X: 44, Y: 15}
)

func hexRGB(u uint32) color.RGBA {
	return color.RGBA{
		R: uint8(0xff & (u >> 16)),
		G: uint8(0xff & (u >> 8)),
		B: uint8(0xff & u),
		A: 0xff,
	}
}

var (
	colorBackground = hexRGB(0x1e1e22)
	colorGridline   = color.RGBA{R: 200, G: 200, B: 200, A: 64}
	colorWall       = hexRGB(0x444444)
	colorVisited    = hexRGB(0x34fbf6)
	colorPath       = hexRGB(0xedbc1e)
	colorStart      = hexRGB(0x0abd38)
	colorEnd        = hexRGB(0xfa3636)
	colorToastErr   = hexRGB(0xfa3636)
	colorToastOK    = hexRGB(0x0abd38)
)
