package systems

import (
	"image/color"

	"github.com/automoto/tileworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// drawText draws s with its baseline at y.
func drawText(screen *ebiten.Image, s string, face fonts.FontName, x, y int, c color.Color) {
	text.Draw(screen, s, face.Get(), x, y, c)
}

// drawCentered draws s horizontally centered on the screen.
func drawCentered(screen *ebiten.Image, s string, face fonts.FontName, y int, c color.Color) {
	x := (screen.Bounds().Dx() - textWidth(s, face)) / 2
	drawText(screen, s, face, x, y, c)
}

func textWidth(s string, face fonts.FontName) int {
	return text.BoundString(face.Get(), s).Dx()
}
