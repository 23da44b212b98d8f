package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/mwhite/tictactoe-ui/internal/common"
	"github.com/mwhite/tictactoe-ui/internal/game"
)

// BoardRenderer draws one board snapshot as a 3x3 grid of cells.
type BoardRenderer struct {
	cellSize    int
	offsetX     int
	offsetY     int
	defaultFont font.Face
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(cellSize, offsetX, offsetY int, f font.Face) *BoardRenderer {
	return &BoardRenderer{cellSize: cellSize, offsetX: offsetX, offsetY: offsetY, defaultFont: f}
}

// Draw renders the board on the supplied Ebiten screen. When hasLine is
// true the three cells of line get the highlight background.
func (br *BoardRenderer) Draw(screen *ebiten.Image, board game.Board, line game.Line, hasLine bool) {
	for i, mark := range board {
		row, col := game.RowCol(i)

		screenX := float64(br.offsetX + col*br.cellSize)
		screenY := float64(br.offsetY + row*br.cellSize)

		// ---------------------------------------------------------------------
		// Background pass
		// ---------------------------------------------------------------------
		cellColor := color.Color(common.CellColor)
		if hasLine && (i == line[0] || i == line[1] || i == line[2]) {
			cellColor = common.HighlightColor
		}

		cell := ebiten.NewImage(br.cellSize, br.cellSize)
		cell.Fill(common.GridLineColor)

		inner := ebiten.NewImage(br.cellSize-2, br.cellSize-2)
		inner.Fill(cellColor)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(1, 1)
		cell.DrawImage(inner, op)

		// ---------------------------------------------------------------------
		// Mark pass
		// ---------------------------------------------------------------------
		if mark != game.Empty {
			m := br.cellSize / 2
			sq := ebiten.NewImage(m, m)
			sq.Fill(markColor(mark))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(br.cellSize-m)/2, float64(br.cellSize-m)/2)
			cell.DrawImage(sq, op)
		}

		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(screenX, screenY)
		screen.DrawImage(cell, op)

		// ---------------------------------------------------------------------
		// Mark glyph, centered over the cell
		// ---------------------------------------------------------------------
		if mark != game.Empty && br.defaultFont != nil {
			markStr := mark.String()

			b := text.BoundString(br.defaultFont, markStr)
			textW := b.Max.X - b.Min.X
			textH := b.Max.Y - b.Min.Y

			x := int(screenX) + (br.cellSize-textW)/2
			y := int(screenY) + (br.cellSize+textH)/2

			text.Draw(screen, markStr, br.defaultFont, x, y, color.White)
		}
	}
}

func markColor(m game.Mark) color.Color {
	if m == game.X {
		return common.XColor
	}
	return common.OColor
}
