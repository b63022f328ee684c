// Package render rasterizes a board.Tree snapshot — the tile grid, owned
// properties coloured by colour set, player tokens and balances — into an
// image.Image, using golang.org/x/image/font and github.com/golang/freetype
// for text and font rasterization (see DESIGN.md for the dependency
// rationale).
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/haziq21/monopoly-ai/board"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	gridSize  = 10 // tiles per side of the square board, including corners
	cellSize  = 48 // pixels per tile cell
	boardSize = gridSize * cellSize
	tokenR    = 6 // player token radius in pixels
)

var colorRGBA = map[board.Color]color.RGBA{
	board.Brown:     {139, 69, 19, 255},
	board.LightBlue: {135, 206, 235, 255},
	board.Pink:      {255, 105, 180, 255},
	board.Orange:    {255, 140, 0, 255},
	board.Red:       {220, 20, 60, 255},
	board.Yellow:    {255, 215, 0, 255},
	board.Green:     {34, 139, 34, 255},
	board.Blue:      {0, 0, 205, 255},
}

var (
	bgColor     = color.RGBA{250, 250, 240, 255}
	gridColor   = color.RGBA{60, 60, 60, 255}
	unownedFill = color.RGBA{225, 225, 225, 255}
	tokenColors = []color.RGBA{
		{200, 30, 30, 255}, {30, 30, 200, 255}, {30, 160, 30, 255}, {200, 150, 0, 255},
	}
)

// Board rasterizes the board state at handle h: every tile cell, coloured
// by ownership and colour set, with a token per player at their current
// position and a balance readout beneath the grid.
func Board(t *state.Tree, h state.Handle) (image.Image, error) {
	if t == nil {
		return nil, errors.Errorf("render.Board: nil tree")
	}

	players := t.Players(h)
	owned := t.OwnedProperties(h)

	footerHeight := 16 * (len(players) + 1)
	img := image.NewRGBA(image.Rect(0, 0, boardSize, boardSize+footerHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{bgColor}, image.Point{}, draw.Src)

	for pos := uint8(0); pos < board.NumTiles; pos++ {
		col, row := tileGridCell(pos)
		drawTile(img, col, row, pos, owned)
	}

	for seat, p := range players {
		col, row := tileGridCell(p.Position)
		drawToken(img, col, row, seat, len(players))
	}

	drawFooter(img, players)
	return img, nil
}

// tileGridCell maps a board position (0..NumTiles-1) to the (col, row)
// cell it occupies on a gridSize x gridSize perimeter, walking clockwise
// from the Go corner at the bottom-right.
func tileGridCell(pos uint8) (col, row int) {
	n := gridSize - 1
	p := int(pos)
	switch {
	case p <= n: // bottom row, right to left
		return n - p, n
	case p <= 2*n: // left column, bottom to top
		return 0, n - (p - n)
	case p <= 3*n: // top row, left to right
		return p - 2*n, 0
	default: // right column, top to bottom
		return n, p - 3*n
	}
}

func drawTile(img *image.RGBA, col, row int, pos uint8, owned map[uint8]board.PropertyOwnership) {
	x0, y0 := col*cellSize, row*cellSize
	rect := image.Rect(x0, y0, x0+cellSize, y0+cellSize)

	fill := unownedFill
	if prop, ok := board.Properties[pos]; ok {
		fill = colorRGBA[prop.Color]
		if o, isOwned := owned[pos]; isOwned {
			fill = shade(fill, o.RentLevel)
		} else {
			fill = unownedFill
		}
	} else {
		switch board.ClassOf(pos) {
		case board.TileGo, board.TileFreeParking:
			fill = color.RGBA{210, 235, 210, 255}
		case board.TileJail, board.TileGoToJail:
			fill = color.RGBA{210, 210, 230, 255}
		case board.TileChanceCard:
			fill = color.RGBA{255, 250, 205, 255}
		case board.TileLocation:
			fill = color.RGBA{230, 210, 255, 255}
		}
	}
	draw.Draw(img, rect, &image.Uniform{fill}, image.Point{}, draw.Src)
	drawRectOutline(img, rect, gridColor)
	drawLabel(img, x0+2, y0+12, fmt.Sprintf("%d", pos))
}

// shade darkens a colour-set fill as its rent level climbs, giving a
// cheap visual read of development without a second colour legend.
func shade(c color.RGBA, rentLevel uint8) color.RGBA {
	factor := 1.0 - float64(rentLevel-1)*0.12
	if factor < 0.4 {
		factor = 0.4
	}
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: 255,
	}
}

func drawRectOutline(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.Set(x, rect.Min.Y, c)
		img.Set(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.Set(rect.Min.X, y, c)
		img.Set(rect.Max.X-1, y, c)
	}
}

func drawToken(img *image.RGBA, col, row, seat, playerCount int) {
	c := tokenColors[seat%len(tokenColors)]
	// offset tokens sharing a tile so they don't fully overlap
	offsetX := (seat % playerCount) * (tokenR + 2)
	cx := col*cellSize + cellSize/2 + offsetX - (playerCount-1)*(tokenR+2)/2
	cy := row*cellSize + cellSize/2 + 10

	for dy := -tokenR; dy <= tokenR; dy++ {
		for dx := -tokenR; dx <= tokenR; dx++ {
			if dx*dx+dy*dy <= tokenR*tokenR {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

func drawFooter(img *image.RGBA, players []board.Player) {
	baseY := boardSize + 14
	drawLabel(img, 4, baseY, "balances:")
	for i, p := range players {
		status := ""
		if p.InJail {
			status = " (in jail)"
		}
		drawLabel(img, 4, baseY+16*(i+1), fmt.Sprintf("seat %d: %d%s", i, p.Balance, status))
	}
}

// drawLabel draws s at (x, y) using the fixed basicfont face — no
// external font file required, so render.Board works with zero setup.
// RenderWithFont (freetype.go) upgrades this to a supplied TrueType font.
func drawLabel(img *image.RGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
