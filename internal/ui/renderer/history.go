package renderer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/mwhite/tictactoe-ui/internal/common"
)

// HistoryRenderer draws the move-history list next to the board. Every
// entry but the current one is a button; the current entry is plain
// text, matching its non-interactive role.
type HistoryRenderer struct {
	entryWidth  int
	entryHeight int
	offsetX     int
	offsetY     int
	defaultFont font.Face
}

func NewHistoryRenderer(entryWidth, entryHeight, offsetX, offsetY int, f font.Face) *HistoryRenderer {
	return &HistoryRenderer{
		entryWidth:  entryWidth,
		entryHeight: entryHeight,
		offsetX:     offsetX,
		offsetY:     offsetY,
		defaultFont: f,
	}
}

// Draw renders one row per history entry. entries is the history
// length, current the index of the snapshot on display. Rows that
// would land below the screen edge are skipped.
func (hr *HistoryRenderer) Draw(screen *ebiten.Image, entries, current int) {
	rows := common.Min(entries, (screen.Bounds().Dy()-hr.offsetY)/hr.entryHeight)
	for i := 0; i < rows; i++ {
		rowY := hr.offsetY + i*hr.entryHeight

		if i != current {
			btn := ebiten.NewImage(hr.entryWidth, hr.entryHeight-2)
			btn.Fill(common.HistoryItemColor)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(hr.offsetX), float64(rowY))
			screen.DrawImage(btn, op)
		}

		label := EntryLabel(i, i == current)
		textY := rowY + (hr.entryHeight+textHeight(hr.defaultFont, label))/2 - 1
		var textColor color.Color = common.HistoryTextColor
		if i != current {
			textColor = common.StatusTextColor
		}
		text.Draw(screen, label, hr.defaultFont, hr.offsetX+6, textY, textColor)
	}
}

// EntryLabel returns the text for one history row.
func EntryLabel(index int, current bool) string {
	switch {
	case current && index == 0:
		return "You are at the start of the game"
	case current:
		return fmt.Sprintf("You are at move #%d", index)
	case index == 0:
		return "Go to start of game"
	default:
		return fmt.Sprintf("Go to move #%d", index)
	}
}

func textHeight(f font.Face, s string) int {
	if f == nil {
		return 0
	}
	b := text.BoundString(f, s)
	return b.Max.Y - b.Min.Y
}
