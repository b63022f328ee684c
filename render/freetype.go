package render

import (
	"image"
	"image/color"
	"strconv"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/haziq21/monopoly-ai/state"
	"github.com/pkg/errors"
)

// RenderWithFont behaves like Board, but overlays a title and the current
// player's turn using a supplied TrueType font instead of the fixed
// basicfont face — useful for a caller that ships its own font and wants
// nicer anti-aliased labels than the 7x13 bitmap face gives.
func RenderWithFont(t *state.Tree, h state.Handle, fontBytes []byte, pointSize float64) (image.Image, error) {
	base, err := Board(t, h)
	if err != nil {
		return nil, err
	}
	rgba, ok := base.(*image.RGBA)
	if !ok {
		return nil, errors.Errorf("render.RenderWithFont: unexpected base image type %T", base)
	}

	f, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, errors.Wrap(err, "render.RenderWithFont: parsing font")
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(pointSize)
	c.SetClip(rgba.Bounds())
	c.SetDst(rgba)
	c.SetSrc(image.NewUniform(color.Black))

	pt := freetype.Pt(4, int(pointSize*1.2))
	if _, err := c.DrawString("monopoly-ai", pt); err != nil {
		return nil, errors.Wrap(err, "render.RenderWithFont: drawing title")
	}

	seat := t.CurrentPlayer(h)
	pt = freetype.Pt(4, int(pointSize*2.6))
	if _, err := c.DrawString(turnLabel(seat), pt); err != nil {
		return nil, errors.Wrap(err, "render.RenderWithFont: drawing turn label")
	}

	return rgba, nil
}

func turnLabel(seat int) string {
	return "seat " + strconv.Itoa(seat) + " to move"
}
