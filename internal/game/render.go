package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Garsondee/dungeon-chase/internal/engine"
)

func loadFontSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load ui font: %w", err)
	}
	return src, nil
}

// screenRenderer draws onto an ebiten image. Inside WithCamera every
// coordinate is shifted from world space to screen space.
type screenRenderer struct {
	dst   *ebiten.Image
	font  *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
	dx    float32
	dy    float32
}

func newScreenRenderer(dst *ebiten.Image, font *text.GoTextFaceSource, faces map[float64]*text.GoTextFace) *screenRenderer {
	return &screenRenderer{dst: dst, font: font, faces: faces}
}

func (r *screenRenderer) Clear(c color.Color) {
	r.dst.Fill(c)
}

func (r *screenRenderer) FillRect(x, y, w, h float32, c color.Color) {
	vector.FillRect(r.dst, x+r.dx, y+r.dy, w, h, c, false)
}

func (r *screenRenderer) Circle(cx, cy, radius float32, c color.Color) {
	vector.FillCircle(r.dst, cx+r.dx, cy+r.dy, radius, c, true)
}

func (r *screenRenderer) face(size float64) *text.GoTextFace {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: r.font, Size: size}
	if r.faces != nil {
		r.faces[size] = f
	}
	return f
}

func (r *screenRenderer) Text(s string, x, y int, size float64, c color.Color) {
	if r.font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(float32(x)+r.dx), float64(float32(y)+r.dy))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = size * 1.3
	text.Draw(r.dst, s, r.face(size), op)
}

func (r *screenRenderer) Sprite(tex engine.Texture, src, dst image.Rectangle) {
	t, ok := tex.(*imageTexture)
	if !ok || t.img == nil || src.Empty() || dst.Empty() {
		return
	}
	sub, ok := t.img.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	op.GeoM.Translate(float64(float32(dst.Min.X)+r.dx), float64(float32(dst.Min.Y)+r.dy))
	r.dst.DrawImage(sub, op)
}

func (r *screenRenderer) WithCamera(cam engine.Camera, fn func()) {
	pdx, pdy := r.dx, r.dy
	ox, oy := cam.WorldToScreen(0, 0)
	r.dx, r.dy = float32(ox), float32(oy)
	defer func() { r.dx, r.dy = pdx, pdy }()
	fn()
}
